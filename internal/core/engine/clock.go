package engine

import (
	"sync"
	"time"
)

// Timer is a cancellable deferred call.
type Timer interface {
	Stop() bool
}

// Clock supplies current time, periodic ticks and deferred calls. Injected
// so tests can drive time manually.
type Clock interface {
	Now() time.Time
	TickEvery(interval time.Duration, fn func()) (stop func())
	AfterFunc(delay time.Duration, fn func()) Timer
}

// SystemClock implements Clock with runtime timers.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// TickEvery invokes fn at the given interval until the returned stop
// function is called. Stop is safe to call more than once.
func (SystemClock) TickEvery(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	stopCh := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stopCh)
		})
	}
}

// AfterFunc schedules fn after the delay and returns a cancellable handle.
func (SystemClock) AfterFunc(delay time.Duration, fn func()) Timer {
	return systemTimer{timer: time.AfterFunc(delay, fn)}
}

type systemTimer struct {
	timer *time.Timer
}

func (t systemTimer) Stop() bool {
	return t.timer.Stop()
}
