package service

import (
	"sync"
	"time"
)

// Handle identifies a scheduled callback.
type Handle interface {
	// Stop cancels the callback. It reports whether the cancellation won:
	// false means the callback already ran or was stopped before.
	Stop() bool
}

// Scheduler schedules a single delayed callback. The debounce discipline
// only ever needs schedule-and-cancel, so the contract stays that small;
// tests substitute a manual implementation and never touch the wall clock.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Handle
}

// TimerScheduler implements Scheduler with real timers.
type TimerScheduler struct{}

// NewTimerScheduler creates a wall-clock scheduler.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

type timerHandle struct {
	t *time.Timer
}

func (h *timerHandle) Stop() bool {
	return h.t.Stop()
}

// Schedule runs fn after d on a timer goroutine.
func (s *TimerScheduler) Schedule(d time.Duration, fn func()) Handle {
	return &timerHandle{t: time.AfterFunc(d, fn)}
}

// ManualScheduler implements Scheduler under test control: callbacks run
// only when Fire is called.
type ManualScheduler struct {
	mu      sync.Mutex
	seq     int
	pending map[int]func()
}

// NewManualScheduler creates an empty manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{pending: make(map[int]func())}
}

type manualHandle struct {
	s  *ManualScheduler
	id int
}

func (h *manualHandle) Stop() bool {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if _, ok := h.s.pending[h.id]; !ok {
		return false
	}
	delete(h.s.pending, h.id)
	return true
}

// Schedule registers fn without running it.
func (m *ManualScheduler) Schedule(_ time.Duration, fn func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.pending[m.seq] = fn
	return &manualHandle{s: m, id: m.seq}
}

// Fire runs and clears all pending callbacks, oldest first.
func (m *ManualScheduler) Fire() {
	m.mu.Lock()
	fns := make([]func(), 0, len(m.pending))
	for id := 1; id <= m.seq; id++ {
		if fn, ok := m.pending[id]; ok {
			fns = append(fns, fn)
		}
	}
	m.pending = make(map[int]func())
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Pending returns the number of scheduled callbacks.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}
