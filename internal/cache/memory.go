package cache

import (
	"context"
	"sort"
	"sync"
	"time"
)

// DefaultMaxEntries caps the fallback map so abusive traffic that fans out
// across many dimensions cannot grow process memory without bound.
const DefaultMaxEntries = 10000

type memoryEntry struct {
	value     string
	expiresAt time.Time
	storedAt  time.Time
}

// MemoryStore is the in-process fallback used when no Redis address is
// configured. Process-wide, reset on restart. Once the map exceeds its cap
// a sweep drops expired entries first, then the oldest, until it fits.
type MemoryStore struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	maxEntries int
	now        func() time.Time
}

func NewMemoryStore(maxEntries int) *MemoryStore {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryStore{
		entries:    make(map[string]memoryEntry),
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return "", false, nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, key)
		return "", false, nil
	}
	return entry.value, true, nil
}

func (s *MemoryStore) Put(ctx context.Context, key string, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	stored := now
	if prev, ok := s.entries[key]; ok {
		stored = prev.storedAt
	}
	s.entries[key] = memoryEntry{
		value:     value,
		expiresAt: now.Add(ttl),
		storedAt:  stored,
	}

	if len(s.entries) > s.maxEntries {
		s.evict(now)
	}
	return nil
}

// evict drops expired entries, then oldest-first until the map is back
// under the cap.
func (s *MemoryStore) evict(now time.Time) {
	for key, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, key)
		}
	}
	if len(s.entries) <= s.maxEntries {
		return
	}

	type aged struct {
		key      string
		storedAt time.Time
	}
	byAge := make([]aged, 0, len(s.entries))
	for key, entry := range s.entries {
		byAge = append(byAge, aged{key: key, storedAt: entry.storedAt})
	}
	sort.Slice(byAge, func(i, j int) bool {
		return byAge[i].storedAt.Before(byAge[j].storedAt)
	})

	for _, candidate := range byAge {
		if len(s.entries) <= s.maxEntries {
			break
		}
		delete(s.entries, candidate.key)
	}
}

// Len reports the current number of entries. Used by tests and the
// eviction sweep assertions.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// SetClock overrides the time source. Tests only.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}
