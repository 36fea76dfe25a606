package store

import (
	"errors"
	"sync"

	"rider-client/internal/rides"
)

// ErrUnknownDriver is returned when a selection does not match any
// driver in the current list.
var ErrUnknownDriver = errors.New("driver not in current list")

// DriverStore owns the candidate driver list and the rider's current
// pick.
type DriverStore struct {
	mu       sync.Mutex
	drivers  []rides.Driver
	selected *int
	subs     map[int]func()
	nextSub  int
}

// NewDriverStore creates an empty store.
func NewDriverStore() *DriverStore {
	return &DriverStore{subs: make(map[int]func())}
}

// Drivers returns a copy of the current list.
func (s *DriverStore) Drivers() []rides.Driver {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]rides.Driver, len(s.drivers))
	copy(out, s.drivers)
	return out
}

// SelectedDriver returns the selected id, if any.
func (s *DriverStore) SelectedDriver() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return 0, false
	}
	return *s.selected, true
}

// Subscribe registers fn to run after every change and returns an
// unsubscribe function.
func (s *DriverStore) Subscribe(fn func()) (unsubscribe func()) {
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

// SetDrivers replaces the full list (no merge). A selection that no
// longer resolves against the new list is cleared.
func (s *DriverStore) SetDrivers(drivers []rides.Driver) {
	s.mu.Lock()
	s.drivers = make([]rides.Driver, len(drivers))
	copy(s.drivers, drivers)
	if s.selected != nil && !s.has(*s.selected) {
		s.selected = nil
	}
	subs := s.subscribers()
	s.mu.Unlock()
	notify(subs)
}

// SetSelectedDriver records the rider's pick. Ids not present in the
// current list are rejected.
func (s *DriverStore) SetSelectedDriver(id int) error {
	s.mu.Lock()
	if !s.has(id) {
		s.mu.Unlock()
		return ErrUnknownDriver
	}
	s.selected = &id
	subs := s.subscribers()
	s.mu.Unlock()
	notify(subs)
	return nil
}

// ClearSelectedDriver drops the pick; idempotent, and only notifies
// when there was a selection to drop.
func (s *DriverStore) ClearSelectedDriver() {
	s.mu.Lock()
	if s.selected == nil {
		s.mu.Unlock()
		return
	}
	s.selected = nil
	subs := s.subscribers()
	s.mu.Unlock()
	notify(subs)
}

func (s *DriverStore) has(id int) bool {
	for _, d := range s.drivers {
		if d.ID == id {
			return true
		}
	}
	return false
}

func (s *DriverStore) subscribers() []func() {
	out := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
