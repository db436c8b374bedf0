// File: internal/session/store.go

// Package session bridges the auth provider's push-based session
// notifications into application state. The store is the sole producer of
// identity/profile state for the lifetime of the process.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"worklink_app/internal/identity"
	"worklink_app/internal/user"
)

// ProfileFetcher is the single profile read the store performs per identity
// change. *user.Service satisfies it.
type ProfileFetcher interface {
	GetProfile(ctx context.Context, uid string) (*user.Profile, error)
}

// State is an immutable snapshot of the session store.
//
// IsLoading is true until the very first session-change callback has fired;
// a present Session with a nil Profile after loading means the profile fetch
// failed, which consumers must treat distinctly from "not yet loaded".
type State struct {
	Session   *identity.Session
	Profile   *user.Profile
	IsLoading bool
}

// Listener receives state snapshots.
type Listener func(State)

// Store subscribes once to the identity provider and resolves the profile
// document for each signed-in identity.
type Store struct {
	profiles ProfileFetcher
	logger   *zap.Logger

	mu          sync.Mutex
	state       State
	subscribers map[int]Listener
	nextSubID   int
	unsubscribe func()
}

// NewStore creates the store and registers its provider subscription. The
// subscription is torn down by Close.
func NewStore(provider identity.Provider, profiles ProfileFetcher, logger *zap.Logger) *Store {
	s := &Store{
		profiles:    profiles,
		logger:      logger.Named("session"),
		state:       State{IsLoading: true},
		subscribers: make(map[int]Listener),
	}
	s.unsubscribe = provider.Subscribe(s.onSessionChange)
	return s
}

// onSessionChange is the only writer of the store's state.
func (s *Store) onSessionChange(sess *identity.Session) {
	var profile *user.Profile
	if sess != nil {
		// Single read, not live. Fetch errors are swallowed: the app
		// continues with a nil profile.
		p, err := s.profiles.GetProfile(context.Background(), sess.UID)
		if err != nil {
			s.logger.Error("Profile fetch failed during session resolution",
				zap.Error(err), zap.String("uid", sess.UID))
		} else {
			profile = p
		}
	}

	s.mu.Lock()
	s.state = State{Session: sess, Profile: profile, IsLoading: false}
	state := s.state
	listeners := make([]Listener, 0, len(s.subscribers))
	for _, l := range s.subscribers {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
}

// Current returns the latest state snapshot.
func (s *Store) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a state listener and immediately delivers the current
// state. Returns the listener's teardown function.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = l
	state := s.state
	s.mu.Unlock()

	l(state)

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Close tears down the provider subscription.
func (s *Store) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}
