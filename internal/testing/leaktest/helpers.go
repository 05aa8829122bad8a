// Package leaktest checks that tests do not leave goroutines running.
package leaktest

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
	"time"
)

const (
	// settleTimeout is how long Check waits for goroutines to wind down
	settleTimeout = 2 * time.Second

	// baselineTimeout bounds the wait for goroutines left by earlier tests to exit
	baselineTimeout = 500 * time.Millisecond

	// stableSamples is how many equal consecutive counts make a baseline
	stableSamples = 3
)

// ignoredStacks match long-lived goroutines owned by libraries or the runtime.
// The expirable LRU starts a reaper that lives for the rest of the process.
var ignoredStacks = []string{
	"github.com/hashicorp/golang-lru/v2/expirable.NewLRU",
	"testing.(*T).Run",
	"testing.tRunner.func1",
	"os/signal.signal_recv",
	"created by testing.",
}

// GoroutineChecker helps detect goroutine leaks
type GoroutineChecker struct {
	before int
	settle time.Duration
	t      testing.TB
}

// NewGoroutineChecker records how many relevant goroutines exist once the
// count has stopped changing
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	return &GoroutineChecker{before: settledCount(), settle: settleTimeout, t: t}
}

// settledCount waits until goroutines exiting from earlier work are gone
func settledCount() int {
	runtime.Gosched()
	deadline := time.Now().Add(baselineTimeout)
	last, same := len(relevantStacks()), 1
	for same < stableSamples && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
		n := len(relevantStacks())
		if n == last {
			same++
			continue
		}
		last, same = n, 1
	}
	return last
}

// Check fails the test if, after a settle period, more than tolerance extra
// goroutines are still running. The leaked stacks are included in the failure.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(g.settle)
	var stacks []string
	for {
		stacks = relevantStacks()
		if len(stacks)-g.before <= tolerance || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if leaked := len(stacks) - g.before; leaked > tolerance {
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d (tolerance=%d)\n%s",
			g.before, len(stacks), leaked, tolerance, strings.Join(stacks, "\n\n"))
	}
}

// CheckNoGoroutineLeak runs fn and fails the test if it leaves goroutines behind
func CheckNoGoroutineLeak(t *testing.T, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// relevantStacks returns the stacks of every goroutine except the caller's and the ignored ones
func relevantStacks() []string {
	buf := make([]byte, 1<<20)
	for {
		n := runtime.Stack(buf, true)
		if n < len(buf) {
			buf = buf[:n]
			break
		}
		buf = make([]byte, 2*len(buf))
	}

	var out []string
	// first block is the calling goroutine
	for i, g := range bytes.Split(buf, []byte("\n\n")) {
		if i == 0 {
			continue
		}
		stack := string(g)
		if isIgnored(stack) {
			continue
		}
		out = append(out, stack)
	}
	return out
}

func isIgnored(stack string) bool {
	for _, s := range ignoredStacks {
		if strings.Contains(stack, s) {
			return true
		}
	}
	return false
}
