package vtest_test

import (
	"fmt"
	"testing"
)

// recorder is a testing.TB that records failures instead of reporting them.
// Only the methods the helpers call are implemented.
type recorder struct {
	testing.TB
	errors []string
	fatals []string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recorder) Fatalf(format string, args ...any) {
	r.fatals = append(r.fatals, fmt.Sprintf(format, args...))
}

func (r *recorder) Failed() bool {
	return len(r.errors) > 0 || len(r.fatals) > 0
}
