package leaktest

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WaitsForExit(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() {
		<-done
	}()
	time.AfterFunc(50*time.Millisecond, func() { close(done) })

	// Passes once the goroutine above returns
	checker.Check(1)
}

func TestGoroutineChecker_WithinTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	defer close(done)
	go func() {
		<-done
	}()

	checker.Check(2)
}

func TestSettle(t *testing.T) {
	n, ok := settle(runtime.NumGoroutine()+10, 0)
	assert.True(t, ok)
	assert.Positive(t, n)

	done := make(chan struct{})
	defer close(done)
	go func() {
		<-done
	}()

	_, ok = settle(0, 20*time.Millisecond)
	assert.False(t, ok)
}
