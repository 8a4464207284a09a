// Package session holds the in-memory authentication state that drives
// screen selection. The Store is safe for concurrent use and notifies
// subscribers on every change.
package session

import (
	"sync"
	"time"
)

type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Session is the current auth state. Identity fields are only meaningful
// when State is Authenticated.
type Session struct {
	State    State
	UserID   string
	Email    string
	IssuedAt time.Time
}

func (s Session) IsAuthenticated() bool { return s.State == Authenticated }

type Store struct {
	mu      sync.RWMutex
	current Session
	epoch   uint64
	subs    map[int]chan Session
	nextID  int
}

// NewStore returns a store in the Unauthenticated state.
func NewStore() *Store {
	return &Store{subs: make(map[int]chan Session)}
}

func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) IsAuthenticated() bool {
	return s.Current().IsAuthenticated()
}

// Epoch counts transitions between Unauthenticated and Authenticated.
func (s *Store) Epoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// SetAuthenticated flips the flag without identity details. Setting false
// drops any identity held.
func (s *Store) SetAuthenticated(v bool) {
	if !v {
		s.SignOut()
		return
	}
	s.mu.Lock()
	next := s.current
	next.State = Authenticated
	s.set(next)
	s.mu.Unlock()
}

func (s *Store) SignIn(sess Session) {
	sess.State = Authenticated
	s.mu.Lock()
	s.set(sess)
	s.mu.Unlock()
}

func (s *Store) SignOut() {
	s.mu.Lock()
	s.set(Session{State: Unauthenticated})
	s.mu.Unlock()
}

// set must be called with mu held.
func (s *Store) set(next Session) {
	if next.State != s.current.State {
		s.epoch++
	}
	s.current = next
	for _, ch := range s.subs {
		// latest value wins for slow subscribers
		select {
		case <-ch:
		default:
		}
		ch <- next
	}
}

// Subscribe returns a channel receiving every subsequent state and a
// cancel func that closes it. Only the most recent undelivered value is
// kept.
func (s *Store) Subscribe() (<-chan Session, func()) {
	ch := make(chan Session, 1)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}
}
