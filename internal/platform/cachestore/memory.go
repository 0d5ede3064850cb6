// Package cachestore provides storage backends for the single-slot price cache.
package cachestore

import (
	"context"
	"sync"
	"time"

	"powerwidget/internal/feature/prices/usecase"
)

type memoryEntry struct {
	payload   []byte
	writtenAt time.Time
}

// MemoryStore is an in-process CacheStore. Entries do not survive a restart,
// which makes it the fallback when no persistent backend is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

var _ usecase.CacheStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

// Exists reports whether an entry is stored under key.
func (s *MemoryStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[key]
	return ok, nil
}

// AgeOf returns how long ago the entry under key was written.
func (s *MemoryStore) AgeOf(ctx context.Context, key string, now time.Time) (time.Duration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok {
		return 0, ErrNotFound
	}
	return now.Sub(e.writtenAt), nil
}

// Read returns the blob stored under key.
func (s *MemoryStore) Read(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	return e.payload, nil
}

// Write replaces the entry under key wholesale.
func (s *MemoryStore) Write(ctx context.Context, key string, payload []byte, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{payload: payload, writtenAt: now}
	return nil
}
