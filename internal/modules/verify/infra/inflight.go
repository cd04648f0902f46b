package infra

import "sync"

// InFlight tracks sessions with a verification pending. A second
// submission from the same session is refused, never queued.
type InFlight struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func NewInFlight() *InFlight {
	return &InFlight{active: make(map[string]struct{})}
}

// TryAcquire marks sessionID busy and reports whether it was idle.
func (f *InFlight) TryAcquire(sessionID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, busy := f.active[sessionID]; busy {
		return false
	}
	f.active[sessionID] = struct{}{}
	return true
}

func (f *InFlight) Release(sessionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.active, sessionID)
}

func (f *InFlight) Busy(sessionID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, busy := f.active[sessionID]
	return busy
}
