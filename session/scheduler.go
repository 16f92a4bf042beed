package session

import (
	"sort"
	"sync"
	"time"
)

// FrameHandle identifies a pending frame callback. Zero is never issued.
type FrameHandle uint64

// FrameFunc receives the host's frame timestamp.
type FrameFunc func(now time.Duration)

// Scheduler is the host's "run before next repaint" primitive.
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameHandle
	CancelFrame(h FrameHandle)
}

// ManualScheduler runs frame callbacks only when stepped. Callbacks
// requested during a step run on the following step.
type ManualScheduler struct {
	mu      sync.Mutex
	next    FrameHandle
	pending map[FrameHandle]FrameFunc
	now     time.Duration
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{pending: make(map[FrameHandle]FrameFunc)}
}

func (m *ManualScheduler) RequestFrame(fn FrameFunc) FrameHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	m.pending[m.next] = fn
	return m.next
}

func (m *ManualScheduler) CancelFrame(h FrameHandle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending, h)
}

// Pending is the number of callbacks waiting for the next step.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Step advances the clock by dt and runs every callback that was pending
// when Step was called, in request order. It returns how many ran.
func (m *ManualScheduler) Step(dt time.Duration) int {
	m.mu.Lock()
	m.now += dt
	now := m.now
	handles := make([]FrameHandle, 0, len(m.pending))
	for h := range m.pending {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	fns := make([]FrameFunc, len(handles))
	for i, h := range handles {
		fns[i] = m.pending[h]
		delete(m.pending, h)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(now)
	}
	return len(fns)
}
