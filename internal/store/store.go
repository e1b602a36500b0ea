// Package store holds the client's in-memory ordered collections. Each store
// is an explicit object owned by the composition root; services mutate it
// through their success paths and everything else only reads.
package store

import (
	"slices"
	"sync"
)

// Entity is any record with a server-assigned identifier.
type Entity interface {
	EntityID() string
}

// Store is an ordered in-memory collection of one entity type, keyed by
// identifier. Insertion order is most-recently-created-first after
// InsertFront.
type Store[T Entity] struct {
	mu      sync.RWMutex
	items   []T
	subs    map[int]func()
	nextSub int
}

// New returns a store seeded with the given initial collection.
func New[T Entity](initial []T) *Store[T] {
	return &Store[T]{
		items: slices.Clone(initial),
		subs:  make(map[int]func()),
	}
}

// List returns a copy of the collection in order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.items)
}

// Len returns the number of entities held.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Get looks an entity up by identifier.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.EntityID() == id {
			return item, true
		}
	}

	var zero T

	return zero, false
}

// ReplaceAll swaps the whole collection for the given one.
func (s *Store[T]) ReplaceAll(items []T) {
	s.mu.Lock()
	s.items = slices.Clone(items)
	s.mu.Unlock()

	s.notify()
}

// InsertFront prepends a freshly created entity.
func (s *Store[T]) InsertFront(item T) {
	s.mu.Lock()
	s.items = append([]T{item}, s.items...)
	s.mu.Unlock()

	s.notify()
}

// Replace swaps the entity at id for the given one, keeping its position.
// It is a no-op returning false when id is absent, so an update that lost a
// race against a delete does not resurrect the entity.
func (s *Store[T]) Replace(id string, item T) bool {
	s.mu.Lock()

	for i := range s.items {
		if s.items[i].EntityID() == id {
			s.items[i] = item
			s.mu.Unlock()

			s.notify()

			return true
		}
	}

	s.mu.Unlock()

	return false
}

// RemoveByID removes the entity with the given id. Removing an absent id is
// an idempotent no-op returning false.
func (s *Store[T]) RemoveByID(id string) bool {
	s.mu.Lock()

	for i := range s.items {
		if s.items[i].EntityID() == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			s.mu.Unlock()

			s.notify()

			return true
		}
	}

	s.mu.Unlock()

	return false
}

// Subscribe registers a notification callback fired after every mutation.
// The returned function cancels the subscription.
func (s *Store[T]) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.subs, id)
	}
}

func (s *Store[T]) notify() {
	s.mu.RLock()
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.RUnlock()

	for _, fn := range subs {
		fn()
	}
}
