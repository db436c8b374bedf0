// File: internal/bootstrap/reactor_test.go
package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"worklink_app/internal/identity"
	"worklink_app/internal/navigation"
	"worklink_app/internal/screen"
	"worklink_app/internal/session"
	"worklink_app/internal/user"
)

type fakeProvider struct {
	listener identity.Listener
	current  *identity.Session
}

func (f *fakeProvider) SignUp(ctx context.Context, email, password string) (*identity.Session, error) {
	return nil, nil
}
func (f *fakeProvider) SignIn(ctx context.Context, email, password string) (*identity.Session, error) {
	return nil, nil
}
func (f *fakeProvider) SignOut(ctx context.Context) error { return nil }
func (f *fakeProvider) Reload(ctx context.Context) (*identity.Session, error) {
	return f.current, nil
}
func (f *fakeProvider) SendVerificationEmail(ctx context.Context) error { return nil }
func (f *fakeProvider) DeleteAccount(ctx context.Context) error { return nil }

func (f *fakeProvider) Subscribe(l identity.Listener) func() {
	f.listener = l
	l(f.current)
	return func() { f.listener = nil }
}

func (f *fakeProvider) emit(s *identity.Session) {
	f.current = s
	if f.listener != nil {
		f.listener(s)
	}
}

type fakeProfiles struct {
	profile *user.Profile
}

func (f *fakeProfiles) GetProfile(ctx context.Context, uid string) (*user.Profile, error) {
	return f.profile, nil
}

type recordingNav struct {
	targets []screen.ID
	params  []navigation.Param
}

func (n *recordingNav) Go(target screen.ID, param navigation.Param) {
	n.targets = append(n.targets, target)
	n.params = append(n.params, param)
}

func (n *recordingNav) Back() {}

func TestReactor_RedirectsOnSignIn(t *testing.T) {
	provider := &fakeProvider{}
	profiles := &fakeProfiles{profile: &user.Profile{ID: "u1", AccountType: user.AccountFreelancer}}
	store := session.NewStore(provider, profiles, zap.NewNop())
	defer store.Close()

	nav := &recordingNav{}
	r := NewReactor(store, nav, zap.NewNop())
	r.Start()
	defer r.Stop()

	provider.emit(&identity.Session{UID: "u1", EmailVerified: true})

	require.Len(t, nav.targets, 1)
	assert.Equal(t, screen.FreelancerHome, nav.targets[0])
}

func TestReactor_DedupsIdenticalOutcome(t *testing.T) {
	// Re-delivery of the same session state must not re-trigger navigation,
	// or a user browsing elsewhere would be yanked back home.
	provider := &fakeProvider{}
	profiles := &fakeProfiles{profile: &user.Profile{ID: "u1", AccountType: user.AccountClient}}
	store := session.NewStore(provider, profiles, zap.NewNop())
	defer store.Close()

	nav := &recordingNav{}
	r := NewReactor(store, nav, zap.NewNop())
	r.Start()
	defer r.Stop()

	sess := &identity.Session{UID: "u1", EmailVerified: true}
	provider.emit(sess)
	provider.emit(sess)
	provider.emit(sess)

	assert.Len(t, nav.targets, 1)
}

func TestReactor_SignOutThenSignInRedirectsAgain(t *testing.T) {
	// The same user signing back in after a sign-out produces the same
	// policy outcome as before, but it is a new sequence and must redirect.
	provider := &fakeProvider{}
	profiles := &fakeProfiles{profile: &user.Profile{ID: "u1", AccountType: user.AccountClient}}
	store := session.NewStore(provider, profiles, zap.NewNop())
	defer store.Close()

	nav := &recordingNav{}
	r := NewReactor(store, nav, zap.NewNop())
	r.Start()
	defer r.Stop()

	sess := &identity.Session{UID: "u1", EmailVerified: true}
	provider.emit(sess)
	provider.emit(nil)
	provider.emit(sess)

	require.Len(t, nav.targets, 2)
	assert.Equal(t, screen.ClientHome, nav.targets[0])
	assert.Equal(t, screen.ClientHome, nav.targets[1])
}

func TestReactor_VerificationFlowRedirectsTwice(t *testing.T) {
	// Unverified first, then verified after Reload: two distinct outcomes,
	// two transitions.
	provider := &fakeProvider{}
	profiles := &fakeProfiles{profile: &user.Profile{ID: "u1", AccountType: user.AccountClient}}
	store := session.NewStore(provider, profiles, zap.NewNop())
	defer store.Close()

	nav := &recordingNav{}
	r := NewReactor(store, nav, zap.NewNop())
	r.Start()
	defer r.Stop()

	provider.emit(&identity.Session{UID: "u1", Email: "u1@example.com", EmailVerified: false})
	provider.emit(&identity.Session{UID: "u1", Email: "u1@example.com", EmailVerified: true})

	require.Len(t, nav.targets, 2)
	assert.Equal(t, screen.EmailVerification, nav.targets[0])
	assert.Equal(t, navigation.EmailParam{Email: "u1@example.com"}, nav.params[0])
	assert.Equal(t, screen.ClientHome, nav.targets[1])
}

func TestReactor_SignOutPerformsNoTransition(t *testing.T) {
	provider := &fakeProvider{}
	store := session.NewStore(provider, &fakeProfiles{}, zap.NewNop())
	defer store.Close()

	nav := &recordingNav{}
	r := NewReactor(store, nav, zap.NewNop())
	r.Start()
	defer r.Stop()

	provider.emit(nil)

	assert.Empty(t, nav.targets)
}
