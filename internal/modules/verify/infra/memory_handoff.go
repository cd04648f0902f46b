package infra

import (
	"context"
	"errors"
	"sync"
	"time"

	"prodcheck/internal/modules/verify/domain"
)

var (
	ErrStoreQuota       = errors.New("store_quota_exceeded")
	ErrStoreUnavailable = errors.New("store_unavailable")
	ErrNoSession        = errors.New("no_session")
)

const (
	DefaultSessionTTL     = 30 * time.Minute
	DefaultMaxRecordBytes = 4 << 10
)

type slot struct {
	raw     []byte
	touched time.Time
}

// MemoryHandoffStore keeps one wire-encoded record per browsing session.
// Slots idle for longer than the session TTL read as absent and are
// dropped by Sweep. Nothing is ever written to disk.
type MemoryHandoffStore struct {
	mu       sync.RWMutex
	slots    map[string]map[string]slot // session id -> key -> slot
	ttl      time.Duration
	maxBytes int
	now      func() time.Time
	closed   bool
}

func NewMemoryHandoffStore(ttl time.Duration) *MemoryHandoffStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &MemoryHandoffStore{
		slots:    make(map[string]map[string]slot),
		ttl:      ttl,
		maxBytes: DefaultMaxRecordBytes,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithMaxRecordBytes sets the per-record quota; zero or less disables it.
func (s *MemoryHandoffStore) WithMaxRecordBytes(n int) *MemoryHandoffStore {
	s.maxBytes = n
	return s
}

func (s *MemoryHandoffStore) WithClock(now func() time.Time) *MemoryHandoffStore {
	s.now = now
	return s
}

func (s *MemoryHandoffStore) Write(_ context.Context, sessionID string, r domain.Result) error {
	if sessionID == "" {
		return ErrNoSession
	}
	raw, err := domain.EncodeRecord(r)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreUnavailable
	}
	// the whole session is cleared before every write, even a rejected one
	delete(s.slots, sessionID)
	if s.maxBytes > 0 && len(raw) > s.maxBytes {
		return ErrStoreQuota
	}
	s.slots[sessionID] = map[string]slot{
		domain.HandoffKey: {raw: raw, touched: s.now()},
	}
	return nil
}

func (s *MemoryHandoffStore) Read(_ context.Context, sessionID string) (domain.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return domain.Result{}, ErrStoreUnavailable
	}
	sl, ok := s.slots[sessionID][domain.HandoffKey]
	if !ok || s.expired(sl) {
		return domain.Result{}, domain.ErrHandoffMissing
	}
	return domain.DecodeRecord(sl.raw)
}

func (s *MemoryHandoffStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreUnavailable
	}
	delete(s.slots, sessionID)
	return nil
}

// Sweep drops expired slots and returns how many sessions were removed.
func (s *MemoryHandoffStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for sid, keys := range s.slots {
		for k, sl := range keys {
			if s.expired(sl) {
				delete(keys, k)
			}
		}
		if len(keys) == 0 {
			delete(s.slots, sid)
			count++
		}
	}
	return count
}

// RunJanitor sweeps every interval until ctx is done.
func (s *MemoryHandoffStore) RunJanitor(ctx context.Context, interval time.Duration, onSweep func(removed int)) error {
	if interval <= 0 {
		interval = s.ttl / 2
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if n := s.Sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}

// Close makes every later call fail with ErrStoreUnavailable.
func (s *MemoryHandoffStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.slots = make(map[string]map[string]slot)
}

// Len returns the number of sessions holding a slot.
func (s *MemoryHandoffStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}

func (s *MemoryHandoffStore) expired(sl slot) bool {
	return s.now().Sub(sl.touched) > s.ttl
}
