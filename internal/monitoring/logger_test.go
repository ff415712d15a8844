package monitoring

import (
	"fmt"
	"testing"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var got string
	SetLogger(func(format string, v ...interface{}) {
		got = fmt.Sprintf(format, v...)
	})
	Logf("processed %d rows", 7)
	if got != "processed 7 rows" {
		t.Errorf("captured %q, want %q", got, "processed 7 rows")
	}
}

func TestSetLogger_NilMutes(t *testing.T) {
	SetLogger(nil)
	// Must not panic.
	Logf("dropped %s", "message")
}
