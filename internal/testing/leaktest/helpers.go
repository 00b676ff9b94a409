// Package leaktest checks that background workers exit when they are stopped.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultSettle bounds how long Check waits for goroutines to exit.
const DefaultSettle = time.Second

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	before int
	t      testing.TB
	settle time.Duration
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t, settle: DefaultSettle}
}

// Check fails the test if more than tolerance goroutines are still running
// once the settle time has passed.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(g.settle)
	for {
		leaked := runtime.NumGoroutine() - g.before
		if leaked <= tolerance {
			return
		}
		if time.Now().After(deadline) {
			g.t.Errorf("Potential goroutine leak: before=%d, leaked=%d (tolerance=%d)", g.before, leaked, tolerance)
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// CheckNoGoroutineLeak runs fn and expects every goroutine it started to be gone afterwards
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
