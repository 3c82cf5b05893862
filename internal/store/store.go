package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dgallion1/wordtree/internal/sentence"
	"github.com/dgallion1/wordtree/internal/wordtree"
)

// Entry is a built tree held by the registry. Entries are immutable once
// stored; only the store touches lastUsed.
type Entry struct {
	ID          string
	Title       string
	Filename    string
	ContentHash string
	Sentences   int
	Records     []sentence.Record
	Skipped     []sentence.LineError
	Tree        *wordtree.Tree
	CreatedAt   time.Time

	lastUsed time.Time
}

// Store is a thread-safe in-memory tree registry with TTL eviction and a
// size bound.
type Store struct {
	mu         sync.Mutex
	entries    map[string]*Entry
	ttl        time.Duration
	maxEntries int

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(ttl time.Duration, maxEntries int) *Store {
	return &Store{
		entries:    make(map[string]*Entry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

// Put stores e, replacing any entry with the same ID. When the store is
// full the least recently used entry is evicted.
func (s *Store) Put(e *Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.lastUsed = time.Now()
	if _, exists := s.entries[e.ID]; !exists && s.maxEntries > 0 && len(s.entries) >= s.maxEntries {
		s.evictOldestLocked()
	}
	s.entries[e.ID] = e
}

func (s *Store) Get(id string) *Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entries[id]
	if e != nil {
		e.lastUsed = time.Now()
	}
	return e
}

// Delete removes an entry and reports whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[id]
	delete(s.entries, id)
	return ok
}

// List returns all entries, oldest first.
func (s *Store) List() []*Entry {
	s.mu.Lock()
	out := make([]*Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Cleanup removes entries unused for longer than the TTL.
func (s *Store) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	removed := 0
	for id, e := range s.entries {
		if now.Sub(e.lastUsed) > s.ttl {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

func (s *Store) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, e := range s.entries {
		if oldestID == "" || e.lastUsed.Before(oldest) {
			oldestID, oldest = id, e.lastUsed
		}
	}
	if oldestID != "" {
		delete(s.entries, oldestID)
	}
}

// StartJanitor runs Cleanup every interval until ctx is done or Stop is
// called.
func (s *Store) StartJanitor(ctx context.Context, interval time.Duration) {
	janitorCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-janitorCtx.Done():
				return
			case <-ticker.C:
				s.Cleanup()
			}
		}
	}()
}

// Stop halts the janitor and waits for it to exit.
func (s *Store) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}
