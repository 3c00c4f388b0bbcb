// Package leaktest checks that code under test does not leave goroutines
// behind, such as hub loops, stream handlers or pool workers.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	// settleTimeout bounds how long Check waits for goroutines to exit
	settleTimeout = 2 * time.Second
	pollInterval  = 10 * time.Millisecond
	stackBufSize  = 1 << 16
)

// GoroutineChecker compares goroutine counts before and after a test body
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check waits for the goroutine count to fall back to at most tolerance above
// the recorded baseline. On timeout it fails the test and dumps every stack.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after, ok := settle(g.before+tolerance, settleTimeout)
	if ok {
		return
	}

	buf := make([]byte, stackBufSize)
	buf = buf[:runtime.Stack(buf, true)]
	g.t.Errorf("goroutine leak: before=%d after=%d tolerance=%d\n%s",
		g.before, after, tolerance, buf)
}

// CheckOnCleanup registers Check to run when the test finishes
func (g *GoroutineChecker) CheckOnCleanup(tolerance int) {
	g.t.Cleanup(func() { g.Check(tolerance) })
}

// settle polls until at most limit goroutines run or timeout passes
func settle(limit int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		n := runtime.NumGoroutine()
		if n <= limit {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		runtime.Gosched()
		time.Sleep(pollInterval)
	}
}
