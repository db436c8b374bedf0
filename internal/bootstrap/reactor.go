// File: internal/bootstrap/reactor.go
package bootstrap

import (
	"sync"

	"go.uber.org/zap"

	"worklink_app/internal/navigation"
	"worklink_app/internal/session"
	"worklink_app/internal/user"
)

// redirectKey identifies one distinct policy outcome. The reactor fires at
// most one transition per distinct key in sequence, so unrelated re-renders
// of the same session state never re-trigger navigation.
type redirectKey struct {
	uid           string
	accountType   user.AccountType
	emailVerified bool
}

// Reactor applies the redirect policy to every session-store change and
// drives the navigation controller.
type Reactor struct {
	store  *session.Store
	nav    navigation.Controller
	logger *zap.Logger

	mu          sync.Mutex
	lastKey     *redirectKey
	unsubscribe func()
}

// NewReactor creates a reactor. Call Start to begin evaluation.
func NewReactor(store *session.Store, nav navigation.Controller, logger *zap.Logger) *Reactor {
	return &Reactor{
		store:  store,
		nav:    nav,
		logger: logger.Named("bootstrap"),
	}
}

// Start subscribes to the session store. The store delivers the current
// state immediately, so a cached session redirects without waiting for a
// fresh provider event.
func (r *Reactor) Start() {
	r.unsubscribe = r.store.Subscribe(r.onState)
}

// Stop tears down the store subscription.
func (r *Reactor) Stop() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}

func (r *Reactor) onState(state session.State) {
	decision := Decide(state)
	if !decision.Redirect {
		// A settled state that produces no transition ends the current
		// sequence. Forget the last outcome so a later sign-in by the same
		// user is not mistaken for a duplicate.
		if !state.IsLoading {
			r.mu.Lock()
			r.lastKey = nil
			r.mu.Unlock()
		}
		return
	}

	key := redirectKey{
		uid:           state.Session.UID,
		emailVerified: state.Session.EmailVerified,
	}
	if state.Profile != nil {
		key.accountType = state.Profile.AccountType
	}

	r.mu.Lock()
	if r.lastKey != nil && *r.lastKey == key {
		r.mu.Unlock()
		return
	}
	r.lastKey = &key
	r.mu.Unlock()

	r.logger.Info("Bootstrap redirect",
		zap.String("target", string(decision.Target)),
		zap.String("uid", key.uid),
		zap.Bool("emailVerified", key.emailVerified),
	)

	if decision.PendingEmail != "" {
		r.nav.Go(decision.Target, navigation.EmailParam{Email: decision.PendingEmail})
		return
	}
	r.nav.Go(decision.Target, nil)
}
