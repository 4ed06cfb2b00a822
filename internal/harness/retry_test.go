package harness

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/themizzi/swagtest/internal/pages"
)

type fakeReporter struct {
	errors []string
	logs   []string
	failed bool
}

func (f *fakeReporter) Helper() {}

func (f *fakeReporter) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func (f *fakeReporter) FailNow() {
	f.failed = true
}

func (f *fakeReporter) Logf(format string, args ...any) {
	f.logs = append(f.logs, fmt.Sprintf(format, args...))
}

func TestRetry(t *testing.T) {
	tests := []struct {
		name         string
		retries      int
		failFirst    int
		wantRuns     int
		wantFailed   bool
		wantErrCount int
	}{
		{name: "passes first time", retries: 1, failFirst: 0, wantRuns: 1},
		{name: "passes on retry", retries: 1, failFirst: 1, wantRuns: 2},
		{name: "exhausts retries", retries: 1, failFirst: 5, wantRuns: 2, wantFailed: true, wantErrCount: 1},
		{name: "no retries", retries: 0, failFirst: 1, wantRuns: 1, wantFailed: true, wantErrCount: 1},
		{name: "several retries", retries: 3, failFirst: 3, wantRuns: 4},
		{name: "negative retries runs once", retries: -1, failFirst: 0, wantRuns: 1},
		{name: "negative retries reports failure", retries: -2, failFirst: 1, wantRuns: 1, wantFailed: true, wantErrCount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeReporter{}
			runs := 0

			Retry(r, tt.retries, func(tb pages.TB) {
				runs++
				require.Greater(tb, runs, tt.failFirst, "run %d fails", runs)
			})

			assert.Equal(t, tt.wantRuns, runs)
			assert.Equal(t, tt.wantFailed, r.failed)
			assert.Len(t, r.errors, tt.wantErrCount)
		})
	}
}

func TestRetry_CleanupsRunAfterEachAttempt(t *testing.T) {
	r := &fakeReporter{}
	var order []string

	Retry(r, 1, func(tb pages.TB) {
		tb.Cleanup(func() { order = append(order, "first") })
		tb.Cleanup(func() { order = append(order, "second") })
		tb.FailNow()
		order = append(order, "unreachable")
	})

	// GIVEN two registered cleanups WHEN both attempts fail THEN each attempt unwinds LIFO
	assert.Equal(t, []string{"second", "first", "second", "first"}, order)
	assert.True(t, r.failed)
	require.Len(t, r.errors, 1)
	assert.Contains(t, r.errors[0], "test failed with no failure message")
}

func TestRetry_RecordsUnexpectedPanic(t *testing.T) {
	r := &fakeReporter{}

	Retry(r, 0, func(tb pages.TB) {
		var m map[string]int
		m["boom"] = 1
	})

	assert.True(t, r.failed)
	require.Len(t, r.errors, 1)
	assert.Contains(t, r.errors[0], "unexpected panic in test")
}

func TestRetry_OnlyLastAttemptReported(t *testing.T) {
	r := &fakeReporter{}
	runs := 0

	Retry(r, 2, func(tb pages.TB) {
		runs++
		tb.Errorf("failure on run %d", runs)
	})

	assert.True(t, r.failed)
	assert.Equal(t, []string{"failure on run 3"}, r.errors)
	require.Len(t, r.logs, 2)
	assert.Contains(t, r.logs[0], "attempt 1 of 3 failed")
	assert.Contains(t, r.logs[1], "attempt 2 of 3 failed")
}

func TestAttempt_LogfIsPrefixed(t *testing.T) {
	r := &fakeReporter{}

	Retry(r, 0, func(tb pages.TB) {
		tb.Logf("hello %s", "world")
	})

	assert.False(t, r.failed)
	assert.Equal(t, []string{"[attempt 1] hello world"}, r.logs)
}
