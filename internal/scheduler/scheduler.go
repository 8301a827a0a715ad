package scheduler

import (
	"sync"
	"time"
)

type entry struct {
	timer *time.Timer
	id    uint64
}

// Scheduler runs keyed one-shot callbacks. Scheduling a key that is already
// pending replaces the pending callback.
type Scheduler struct {
	mu      sync.Mutex
	entries map[string]entry
	nextID  uint64
	stopped bool
}

func New() *Scheduler {
	return &Scheduler{
		entries: make(map[string]entry),
	}
}

// Schedule - runs fn once after delay unless key is cancelled or rescheduled first.
// Returns false once the scheduler is stopped.
func (that *Scheduler) Schedule(key string, delay time.Duration, fn func()) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.stopped {
		return false
	}

	if old, ok := that.entries[key]; ok {
		old.timer.Stop()
	}

	that.nextID++
	id := that.nextID

	timer := time.AfterFunc(delay, func() {
		if !that.release(key, id) {
			return
		}

		fn()
	})

	that.entries[key] = entry{timer: timer, id: id}

	return true
}

// Cancel - drops the pending callback for key. Reports whether one was pending.
func (that *Scheduler) Cancel(key string) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	old, ok := that.entries[key]
	if !ok {
		return false
	}

	old.timer.Stop()
	delete(that.entries, key)

	return true
}

// Pending - number of callbacks waiting to fire.
func (that *Scheduler) Pending() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.entries)
}

// Stop - cancels everything and refuses new work.
func (that *Scheduler) Stop() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.stopped = true
	for key, old := range that.entries {
		old.timer.Stop()
		delete(that.entries, key)
	}
}

// release - removes key if it still belongs to timer id.
func (that *Scheduler) release(key string, id uint64) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	current, ok := that.entries[key]
	if !ok || current.id != id {
		return false
	}

	delete(that.entries, key)

	return true
}
