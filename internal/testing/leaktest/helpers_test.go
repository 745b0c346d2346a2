package leaktest

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// parkedWaiter mimics a purchase waiting on a selection channel until it is
// answered or cancelled.
func parkedWaiter(answer <-chan int, cancel <-chan struct{}) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case <-answer:
		case <-cancel:
		}
	}()
	return done
}

func TestChecker_AnsweredWaiterLeavesNothing(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		answer := make(chan int, 1)
		done := parkedWaiter(answer, nil)
		answer <- 2
		<-done
	})
}

func TestChecker_ToleratesBoundedExtras(t *testing.T) {
	checker := NewGoroutineChecker(t)

	cancel := make(chan struct{})
	defer close(cancel)
	parkedWaiter(nil, cancel)

	checker.Check(1)
}

func TestChecker_WaitsForCancelledWaiter(t *testing.T) {
	checker := NewGoroutineChecker(t)

	cancel := make(chan struct{})
	parkedWaiter(nil, cancel)
	time.AfterFunc(50*time.Millisecond, func() { close(cancel) })

	checker.Check(0)
}

func TestSettle_ReportsStuckWaiter(t *testing.T) {
	cancel := make(chan struct{})
	defer close(cancel)
	parkedWaiter(nil, cancel)

	assert.False(t, settle(runtime.NumGoroutine()-1, 30*time.Millisecond))
}

func TestWaitForGoroutines_ReturnsToBaseline(t *testing.T) {
	base := runtime.NumGoroutine()

	answer := make(chan int)
	parkedWaiter(answer, nil)
	go func() { answer <- 1 }()

	WaitForGoroutines(t, base, time.Second)
}
