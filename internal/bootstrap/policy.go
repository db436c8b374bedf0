// File: internal/bootstrap/policy.go

// Package bootstrap chooses the landing screen from session and profile
// state. The policy itself is a pure function; the Reactor applies it to
// session-store changes.
package bootstrap

import (
	"worklink_app/internal/screen"
	"worklink_app/internal/session"
	"worklink_app/internal/user"
)

// Decision is the outcome of one policy evaluation: at most one transition.
type Decision struct {
	Target       screen.ID
	PendingEmail string
	// Redirect is false when the policy performs no transition: still
	// loading, signed out, or identity present with a failed profile fetch.
	Redirect bool
}

// Decide evaluates the redirect rule table in order, first match wins.
//
// A present identity with a nil profile matches no rule: the user stays on
// the current screen. That is accepted degraded behavior when the profile
// fetch failed, not an error path.
func Decide(state session.State) Decision {
	if state.IsLoading {
		return Decision{}
	}
	if state.Session == nil {
		// Signed out: no forced transition; initial placement is Onboarding.
		return Decision{}
	}
	if state.Profile == nil {
		return Decision{}
	}

	if !state.Session.EmailVerified {
		return Decision{
			Target:       screen.EmailVerification,
			PendingEmail: state.Session.Email,
			Redirect:     true,
		}
	}

	switch state.Profile.AccountType {
	case user.AccountFreelancer:
		return Decision{Target: screen.FreelancerHome, Redirect: true}
	case user.AccountClient:
		return Decision{Target: screen.ClientHome, Redirect: true}
	default:
		return Decision{}
	}
}
