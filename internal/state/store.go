package state

import "sync"

// Observer is notified with the new and previous state after a change.
type Observer func(next, prev State)

type subscription struct {
	id int
	fn Observer
}

// Store owns the current State and applies actions to it.
type Store struct {
	mu        sync.Mutex
	state     State
	observers []subscription
	nextID    int
}

// NewStore creates a store holding initial.
func NewStore(initial State) *Store {
	return &Store{state: initial}
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies action and notifies observers if the state changed.
// Observers run after the store is unlocked and may dispatch again.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	prev := s.state
	next := action(prev)
	s.state = next
	observers := append([]subscription(nil), s.observers...)
	s.mu.Unlock()

	if next != prev {
		for _, sub := range observers {
			sub.fn(next, prev)
		}
	}
	return next
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *Store) remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.observers {
		if sub.id == id {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Close drops every observer.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = nil
}
