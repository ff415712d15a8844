package testutil

import (
	"errors"
	"testing"
)

func TestAssertStatusCode(t *testing.T) {
	mock := &testing.T{}
	AssertStatusCode(mock, 200, 200)
	if mock.Failed() {
		t.Error("matching status codes should not fail")
	}
}

func TestAssertNoError(t *testing.T) {
	AssertNoError(t, nil)
}

func TestAssertError(t *testing.T) {
	AssertError(t, errors.New("boom"))
}
