// Package store holds the two process-wide selection containers:
// where the rider is going and which driver they picked. Both are
// mutex-guarded and observable; every location change invalidates the
// current driver selection.
package store

import "sync"

// Location is a snapshot of the rider's geography. Nil means unset.
type Location struct {
	UserLatitude         *float64
	UserLongitude        *float64
	UserAddress          *string
	DestinationLatitude  *float64
	DestinationLongitude *float64
	DestinationAddress   *string
}

// LocationStore owns the current and destination locations. The
// invalidate hook is called after either half changes, which is how
// the driver selection is kept from going stale; it is injected at
// construction so the two stores stay decoupled.
type LocationStore struct {
	mu         sync.Mutex
	loc        Location
	invalidate func()
	subs       map[int]func(Location)
	nextSub    int
}

// NewLocationStore creates a store; invalidate may be nil.
func NewLocationStore(invalidate func()) *LocationStore {
	return &LocationStore{
		invalidate: invalidate,
		subs:       make(map[int]func(Location)),
	}
}

// Snapshot returns the current location state.
func (s *LocationStore) Snapshot() Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loc
}

// Subscribe registers fn to run after every change and returns an
// unsubscribe function.
func (s *LocationStore) Subscribe(fn func(Location)) (unsubscribe func()) {
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

// SetUserLocation replaces the user triple atomically, then clears any
// current driver selection.
func (s *LocationStore) SetUserLocation(lat, lng float64, address string) {
	s.mu.Lock()
	s.loc.UserLatitude = &lat
	s.loc.UserLongitude = &lng
	s.loc.UserAddress = &address
	snap := s.loc
	subs := s.subscribers()
	s.mu.Unlock()

	if s.invalidate != nil {
		s.invalidate()
	}
	for _, fn := range subs {
		fn(snap)
	}
}

// SetDestinationLocation replaces the destination triple atomically,
// then clears any current driver selection.
func (s *LocationStore) SetDestinationLocation(lat, lng float64, address string) {
	s.mu.Lock()
	s.loc.DestinationLatitude = &lat
	s.loc.DestinationLongitude = &lng
	s.loc.DestinationAddress = &address
	snap := s.loc
	subs := s.subscribers()
	s.mu.Unlock()

	if s.invalidate != nil {
		s.invalidate()
	}
	for _, fn := range subs {
		fn(snap)
	}
}

// Clear resets both halves; screens call this on navigation-driven
// teardown, the store never clears itself.
func (s *LocationStore) Clear() {
	s.mu.Lock()
	s.loc = Location{}
	snap := s.loc
	subs := s.subscribers()
	s.mu.Unlock()

	if s.invalidate != nil {
		s.invalidate()
	}
	for _, fn := range subs {
		fn(snap)
	}
}

// subscribers copies the callback list; callers invoke them outside
// the lock.
func (s *LocationStore) subscribers() []func(Location) {
	out := make([]func(Location), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}
