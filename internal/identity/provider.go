// File: internal/identity/provider.go

// Package identity wraps the managed authentication provider. Everything the
// rest of the application knows about "who is signed in" flows through the
// Provider interface; the provider owns the session and pushes changes to
// subscribers.
package identity

import "context"

// Session is the opaque provider-side identity as seen by this application.
type Session struct {
	UID           string
	Email         string
	EmailVerified bool
}

// Listener receives session changes. A nil session means signed out.
type Listener func(*Session)

// Provider is the boundary to the authentication service.
//
// Contract: Subscribe delivers at least one callback with the current
// session (possibly nil) upon registration, so consumers can resolve their
// initial loading state. EmailVerified reflects server truth only after an
// explicit Reload.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context) error
	// Reload re-fetches the current identity from the provider, refreshing
	// the EmailVerified flag. Returns the refreshed session, or nil when
	// signed out.
	Reload(ctx context.Context) (*Session, error)
	SendVerificationEmail(ctx context.Context) error
	// DeleteAccount removes the identity record at the provider and signs
	// the session out.
	DeleteAccount(ctx context.Context) error
	// Subscribe registers a session-change listener and returns its
	// teardown function.
	Subscribe(l Listener) (unsubscribe func())
}
