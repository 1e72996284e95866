package symbols

import (
	"maps"
	"slices"
	"sync"
)

// Store maps names to values and falls back to a parent store on miss.
// Safe for concurrent use.
type Store[T any] struct {
	mu     sync.RWMutex
	items  map[string]T
	parent *Store[T]
	frozen bool
}

// NewStore creates an empty store. parent may be nil.
func NewStore[T any](parent *Store[T]) *Store[T] {
	return &Store[T]{items: make(map[string]T), parent: parent}
}

// Parent returns the fallback store or nil.
func (s *Store[T]) Parent() *Store[T] { return s.parent }

// Get looks the name up locally, then along the parent chain.
func (s *Store[T]) Get(name string) (T, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		cur.mu.RLock()
		v, ok := cur.items[name]
		cur.mu.RUnlock()
		if ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether the name is stored locally. The parent is not consulted.
func (s *Store[T]) Contains(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[name]
	return ok
}

// Set stores the value. When a writable ancestor already owns the name the
// value replaces it there; otherwise it lands in s.
func (s *Store[T]) Set(name string, v T) {
	if owner := s.owner(name); owner != nil && !owner.isFrozen() {
		owner.put(name, v)
		return
	}
	s.put(name, v)
}

// Insert stores a batch of values locally under one lock.
func (s *Store[T]) Insert(items map[string]T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	maps.Copy(s.items, items)
}

// Len returns the number of local entries.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Names returns local names sorted.
func (s *Store[T]) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.items))
}

// Freeze makes the store read-only for Set calls arriving from children.
// Direct Set and Insert on a frozen store still work.
func (s *Store[T]) Freeze() *Store[T] {
	s.mu.Lock()
	s.frozen = true
	s.mu.Unlock()
	return s
}

func (s *Store[T]) isFrozen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frozen
}

func (s *Store[T]) owner(name string) *Store[T] {
	for cur := s.parent; cur != nil; cur = cur.parent {
		if cur.Contains(name) {
			return cur
		}
	}
	return nil
}

func (s *Store[T]) put(name string, v T) {
	s.mu.Lock()
	s.items[name] = v
	s.mu.Unlock()
}
