package harness

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/themizzi/swagtest/internal/pages"
)

// Reporter is the part of testing.TB a retried test reports its outcome to
type Reporter interface {
	Helper()
	Errorf(format string, args ...any)
	FailNow()
	Logf(format string, args ...any)
}

// attempt records one run of a test body. FailNow unwinds the body with a
// panic carrying the attempt, which run recovers.
type attempt struct {
	reporter Reporter
	number   int
	failed   bool
	errors   []error
	cleanups []func()
}

func (a *attempt) Helper() {}

func (a *attempt) Errorf(format string, args ...any) {
	a.failed = true
	a.errors = append(a.errors, fmt.Errorf(format, args...))
}

func (a *attempt) FailNow() {
	a.failed = true
	panic(a)
}

func (a *attempt) Logf(format string, args ...any) {
	a.reporter.Logf("[attempt %d] "+format, append([]any{a.number}, args...)...)
}

func (a *attempt) Cleanup(fn func()) {
	a.cleanups = append(a.cleanups, fn)
}

func (a *attempt) run(body func(pages.TB)) {
	defer a.cleanup()
	defer func() {
		if r := recover(); r != nil {
			a.failed = true
			if r == a {
				if len(a.errors) == 0 {
					a.errors = append(a.errors, errors.New("test failed with no failure message"))
				}
				return
			}
			a.errors = append(a.errors, fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack())))
		}
	}()

	body(a)
}

func (a *attempt) cleanup() {
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		a.cleanups[i]()
	}
	a.cleanups = nil
}

// Retry runs body up to retries+1 times, each time with fresh cleanups. Only
// the last attempt's errors reach t; earlier failures are logged. A negative
// retries runs body once.
func Retry(t Reporter, retries int, body func(pages.TB)) {
	t.Helper()
	retries = max(retries, 0)

	var last *attempt
	for i := 0; i <= retries; i++ {
		a := &attempt{reporter: t, number: i + 1}
		a.run(body)
		if !a.failed {
			if i > 0 {
				t.Logf("passed on attempt %d of %d", a.number, retries+1)
			}
			return
		}
		last = a
		if i < retries {
			t.Logf("attempt %d of %d failed, retrying: %v", a.number, retries+1, errors.Join(a.errors...))
		}
	}

	for _, err := range last.errors {
		t.Errorf("%v", err)
	}
	t.FailNow()
}
