package usecase

import (
	"sync"
	"time"
)

// MoveScheduler holds at most one pending one-shot task per key.
type MoveScheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewMoveScheduler() *MoveScheduler {
	return &MoveScheduler{
		timers: make(map[string]*time.Timer),
	}
}

// Schedule runs fn after delay, replacing any task pending for key.
func (that *MoveScheduler) Schedule(key string, delay time.Duration, fn func()) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if timer, ok := that.timers[key]; ok {
		timer.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		that.mu.Lock()
		if that.timers[key] != timer {
			// replaced or cancelled while firing
			that.mu.Unlock()
			return
		}
		delete(that.timers, key)
		that.mu.Unlock()

		fn()
	})

	that.timers[key] = timer
}

// Cancel drops the task pending for key, if any.
func (that *MoveScheduler) Cancel(key string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if timer, ok := that.timers[key]; ok {
		timer.Stop()
		delete(that.timers, key)
	}
}

// Pending reports whether a task is waiting for key.
func (that *MoveScheduler) Pending(key string) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	_, ok := that.timers[key]
	return ok
}

// Stop cancels every pending task.
func (that *MoveScheduler) Stop() {
	that.mu.Lock()
	defer that.mu.Unlock()

	for key, timer := range that.timers {
		timer.Stop()
		delete(that.timers, key)
	}
}
