package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/shoproute/backend/internal/domain"
)

// DefaultCleanupInterval is how often expired routes are swept
const DefaultCleanupInterval = 10 * time.Minute

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// RouteStore keeps planned routes in memory until their TTL runs out.
// Values go through a JSON round trip on Set, so callers always read back plain
// decoded data and never share memory with the stored copy.
type RouteStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewRouteStore creates a store and starts its janitor.
// A non-positive interval selects DefaultCleanupInterval.
func NewRouteStore(cleanupInterval time.Duration) *RouteStore {
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}

	s := &RouteStore{
		entries: make(map[string]entry),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go s.janitor(cleanupInterval)

	return s
}

// Get returns the value stored under key, or domain.ErrCacheMiss
func (s *RouteStore) Get(ctx context.Context, key string) (interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok || s.expired(e) {
		return nil, domain.ErrCacheMiss
	}
	return e.value, nil
}

// Set stores value under key for ttl
func (s *RouteStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	var stored interface{}
	if err := json.Unmarshal(data, &stored); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{value: stored, expiresAt: s.now().Add(ttl)}
	return nil
}

// Delete removes key
func (s *RouteStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// Exists reports whether key holds an unexpired value
func (s *RouteStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	return ok && !s.expired(e), nil
}

// Len returns the number of stored entries, expired ones included until swept
func (s *RouteStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close stops the janitor. The store stays readable.
func (s *RouteStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *RouteStore) expired(e entry) bool {
	return !s.now().Before(e.expiresAt)
}

func (s *RouteStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep drops every expired entry
func (s *RouteStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.entries {
		if s.expired(e) {
			delete(s.entries, key)
		}
	}
}
