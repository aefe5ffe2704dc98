package main

import (
	"testing"

	"github.com/amishk599/vacancies/internal/pipeline"
)

func TestValidateTop(t *testing.T) {
	for _, n := range []int{0, -3} {
		if err := validateTop(n); err == nil {
			t.Errorf("validateTop(%d): expected error", n)
		}
	}
	if err := validateTop(1); err != nil {
		t.Errorf("validateTop(1) = %v, want nil", err)
	}
}

func TestResultMessage(t *testing.T) {
	tests := []struct {
		name   string
		res    pipeline.Result
		dryRun bool
		want   string
	}{
		{"added", pipeline.Result{Added: 2}, false, msgSaved},
		{"only duplicates", pipeline.Result{Duplicates: 1}, false, msgSaved},
		{"nothing shown", pipeline.Result{Fetched: 5, Matched: 5}, false, ""},
		{"dry run", pipeline.Result{Added: 2}, true, ""},
	}
	for _, tc := range tests {
		if got := resultMessage(tc.res, tc.dryRun); got != tc.want {
			t.Errorf("%s: resultMessage = %q, want %q", tc.name, got, tc.want)
		}
	}
}
