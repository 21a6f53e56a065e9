package host

import "sync"

// Store holds named string/bool fields.
//
// Subscribers are called synchronously after every effective write, on the
// writer's goroutine, which mirrors controlled-component re-render
// semantics: a write from inside a subscriber re-enters the subscribers
// before the outer write returns. Writes that do not change the stored value
// do not notify.
type Store struct {
	mu     sync.Mutex
	fields map[string]any
	subs   []subscription
	nextID int
}

type subscription struct {
	id int
	fn func(name string)
}

func NewStore() *Store {
	return &Store{fields: map[string]any{}}
}

func (s *Store) ReadString(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.fields[name].(string)
	return v, ok
}

func (s *Store) ReadBool(name string) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.fields[name].(bool)
	return v, ok
}

func (s *Store) WriteString(name, value string) { s.write(name, value) }

func (s *Store) WriteBool(name string, value bool) { s.write(name, value) }

// Seed sets initial field values without notifying subscribers.
func (s *Store) Seed(values map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range values {
		switch v.(type) {
		case string, bool:
			s.fields[k] = v
		}
	}
}

// Snapshot returns a copy of all fields.
func (s *Store) Snapshot() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]any, len(s.fields))
	for k, v := range s.fields {
		out[k] = v
	}
	return out
}

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (s *Store) Subscribe(fn func(name string)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) write(name string, value any) {
	s.mu.Lock()
	if prev, ok := s.fields[name]; ok && prev == value {
		s.mu.Unlock()
		return
	}
	s.fields[name] = value
	subs := append([]subscription(nil), s.subs...)
	s.mu.Unlock()

	// Notify without holding the lock so subscribers may write back.
	for _, sub := range subs {
		sub.fn(name)
	}
}
