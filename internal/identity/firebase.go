// File: internal/identity/firebase.go
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	firebaseauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"

	"worklink_app/internal/common"
	"worklink_app/internal/config"
)

const identityToolkitBase = "https://identitytoolkit.googleapis.com/v1"

// FirebaseProvider implements Provider on top of the Firebase Admin SDK and
// the Identity Toolkit REST API. The Admin SDK covers identity management
// (lookup, deletion); password credential checks and out-of-band email codes
// go through the REST endpoints keyed by the project's web API key.
type FirebaseProvider struct {
	authClient *firebaseauth.Client
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger

	mu          sync.Mutex
	current     *Session
	idToken     string // Identity Toolkit token for the current session, needed for sendOobCode
	subscribers map[int]Listener
	nextSubID   int
}

var _ Provider = (*FirebaseProvider)(nil)

// NewFirebaseProvider creates a Provider backed by Firebase.
func NewFirebaseProvider(cfg *config.Config, authClient *firebaseauth.Client, logger *zap.Logger) *FirebaseProvider {
	return &FirebaseProvider{
		authClient:  authClient,
		apiKey:      cfg.FirebaseWebAPIKey,
		baseURL:     identityToolkitBase,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		logger:      logger.Named("identity"),
		subscribers: make(map[int]Listener),
	}
}

// toolkitResponse is the subset of the Identity Toolkit response we consume.
type toolkitResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *FirebaseProvider) SignUp(ctx context.Context, email, password string) (*Session, error) {
	resp, err := p.callToolkit(ctx, "accounts:signUp", map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, err
	}

	session := &Session{UID: resp.LocalID, Email: resp.Email, EmailVerified: false}
	p.setSession(session, resp.IDToken)
	p.logger.Info("Identity created at provider", zap.String("uid", session.UID))
	return session, nil
}

func (p *FirebaseProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	resp, err := p.callToolkit(ctx, "accounts:signInWithPassword", map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, err
	}

	// The sign-in response does not carry the verification flag; fetch
	// server truth through the Admin SDK.
	record, err := p.authClient.GetUser(ctx, resp.LocalID)
	if err != nil {
		p.logger.Error("Failed to fetch user record after sign-in", zap.Error(err), zap.String("uid", resp.LocalID))
		return nil, common.ErrInternal.WithDetails("Could not resolve the signed-in identity.")
	}

	session := &Session{UID: record.UID, Email: record.Email, EmailVerified: record.EmailVerified}
	p.setSession(session, resp.IDToken)
	p.logger.Info("Identity signed in", zap.String("uid", session.UID), zap.Bool("emailVerified", session.EmailVerified))
	return session, nil
}

func (p *FirebaseProvider) SignOut(_ context.Context) error {
	p.setSession(nil, "")
	p.logger.Info("Identity signed out")
	return nil
}

func (p *FirebaseProvider) Reload(ctx context.Context) (*Session, error) {
	p.mu.Lock()
	current := p.current
	token := p.idToken
	p.mu.Unlock()

	if current == nil {
		return nil, nil
	}

	record, err := p.authClient.GetUser(ctx, current.UID)
	if err != nil {
		p.logger.Warn("Identity reload failed", zap.Error(err), zap.String("uid", current.UID))
		return nil, common.ErrInternal.WithDetails("Could not refresh the identity.")
	}

	session := &Session{UID: record.UID, Email: record.Email, EmailVerified: record.EmailVerified}
	p.setSession(session, token)
	return session, nil
}

func (p *FirebaseProvider) SendVerificationEmail(ctx context.Context) error {
	p.mu.Lock()
	token := p.idToken
	p.mu.Unlock()

	if token == "" {
		return common.ErrUnauthorized.WithDetails("No signed-in identity to verify.")
	}

	_, err := p.callToolkit(ctx, "accounts:sendOobCode", map[string]interface{}{
		"requestType": "VERIFY_EMAIL",
		"idToken":     token,
	})
	return err
}

func (p *FirebaseProvider) DeleteAccount(ctx context.Context) error {
	p.mu.Lock()
	current := p.current
	p.mu.Unlock()

	if current == nil {
		return common.ErrUnauthorized.WithDetails("No signed-in identity to delete.")
	}

	if err := p.authClient.DeleteUser(ctx, current.UID); err != nil {
		p.logger.Error("Failed to delete identity at provider", zap.Error(err), zap.String("uid", current.UID))
		return common.ErrInternal.WithDetails("Could not delete the account.")
	}

	p.setSession(nil, "")
	p.logger.Info("Identity deleted at provider", zap.String("uid", current.UID))
	return nil
}

// DeleteIdentity removes an identity record without touching the current
// session. Used by the registration saga to compensate a half-completed
// sign-up before any session was established for it.
func (p *FirebaseProvider) DeleteIdentity(ctx context.Context, uid string) error {
	if err := p.authClient.DeleteUser(ctx, uid); err != nil {
		return fmt.Errorf("failed to delete identity %s: %w", uid, err)
	}
	p.mu.Lock()
	cleared := false
	if p.current != nil && p.current.UID == uid {
		p.current = nil
		p.idToken = ""
		cleared = true
	}
	listeners := p.snapshotListenersLocked()
	p.mu.Unlock()
	if cleared {
		for _, l := range listeners {
			l(nil)
		}
	}
	return nil
}

func (p *FirebaseProvider) Subscribe(l Listener) func() {
	p.mu.Lock()
	id := p.nextSubID
	p.nextSubID++
	p.subscribers[id] = l
	current := p.current
	p.mu.Unlock()

	// Initial resolution: the listener always hears about the current
	// session, even when it is "no session".
	l(current)

	return func() {
		p.mu.Lock()
		delete(p.subscribers, id)
		p.mu.Unlock()
	}
}

func (p *FirebaseProvider) setSession(s *Session, idToken string) {
	p.mu.Lock()
	p.current = s
	p.idToken = idToken
	listeners := p.snapshotListenersLocked()
	p.mu.Unlock()

	// Listeners run outside the lock: a listener may call back into the
	// provider (e.g. a profile fetch followed by a Reload).
	for _, l := range listeners {
		l(s)
	}
}

func (p *FirebaseProvider) snapshotListenersLocked() []Listener {
	listeners := make([]Listener, 0, len(p.subscribers))
	for _, l := range p.subscribers {
		listeners = append(listeners, l)
	}
	return listeners
}

func (p *FirebaseProvider) callToolkit(ctx context.Context, endpoint string, payload map[string]interface{}) (*toolkitResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode toolkit request: %w", err)
	}

	url := fmt.Sprintf("%s/%s?key=%s", p.baseURL, endpoint, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build toolkit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Error("Identity Toolkit request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, common.ErrInternal.WithDetails("The authentication service could not be reached.")
	}
	defer httpResp.Body.Close()

	var resp toolkitResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode toolkit response: %w", err)
	}

	if resp.Error != nil {
		p.logger.Warn("Identity Toolkit rejected request",
			zap.String("endpoint", endpoint),
			zap.String("code", resp.Error.Message),
		)
		return nil, MapProviderError(resp.Error.Message)
	}
	return &resp, nil
}
