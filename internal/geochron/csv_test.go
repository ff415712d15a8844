package geochron

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadTable(t *testing.T) {
	in := "group,age,uncertainty\n" +
		"a,21000,3000\n" +
		"b,16900,2100\n" +
		"blank,7500,2000\n"

	got, err := ReadTable(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}

	want := Table{
		{Group: "a", Age: 21000, Uncertainty: 3000},
		{Group: "b", Age: 16900, Uncertainty: 2100},
		{Group: "blank", Age: 7500, Uncertainty: 2000},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestReadTable_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"wrong header", "label,mean,sd\na,1,1\n"},
		{"extra column", "group,age,uncertainty,extra\na,1,1,x\n"},
		{"no rows", "group,age,uncertainty\n"},
		{"bad age", "group,age,uncertainty\na,old,3000\n"},
		{"bad uncertainty", "group,age,uncertainty\na,21000,wide\n"},
		{"zero uncertainty", "group,age,uncertainty\na,21000,0\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadTable(strings.NewReader(tc.in)); err == nil {
				t.Errorf("ReadTable(%q) = nil error, want failure", tc.in)
			}
		})
	}
}
