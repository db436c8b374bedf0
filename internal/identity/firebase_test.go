// File: internal/identity/firebase_test.go
package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"worklink_app/internal/common"
	"worklink_app/internal/config"
)

// newToolkitServer fakes the Identity Toolkit REST API. handlers maps the
// endpoint suffix (e.g. "accounts:signUp") to its canned JSON response.
func newToolkitServer(t *testing.T, handlers map[string]string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for suffix, body := range handlers {
			if strings.HasSuffix(r.URL.Path, suffix) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
				return
			}
		}
		t.Errorf("unexpected toolkit endpoint: %s", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{})
	}))
}

func newTestProvider(t *testing.T, server *httptest.Server) *FirebaseProvider {
	cfg := &config.Config{FirebaseWebAPIKey: "test-key"}
	p := NewFirebaseProvider(cfg, nil, zap.NewNop())
	if server != nil {
		p.baseURL = server.URL
		p.httpClient = server.Client()
		t.Cleanup(server.Close)
	}
	return p
}

func TestProvider_SignUp_EstablishesSession(t *testing.T) {
	server := newToolkitServer(t, map[string]string{
		"accounts:signUp": `{"localId":"uid-1","email":"a@example.com","idToken":"tok-1"}`,
	})
	p := newTestProvider(t, server)

	var notified []*Session
	unsub := p.Subscribe(func(s *Session) { notified = append(notified, s) })
	defer unsub()

	session, err := p.SignUp(context.Background(), "a@example.com", "hunter22")

	require.NoError(t, err)
	assert.Equal(t, "uid-1", session.UID)
	assert.False(t, session.EmailVerified)

	// Initial nil delivery, then the new session.
	require.Len(t, notified, 2)
	assert.Nil(t, notified[0])
	assert.Equal(t, session, notified[1])
}

func TestProvider_SignUp_DuplicateEmailMapsToConflict(t *testing.T) {
	server := newToolkitServer(t, map[string]string{
		"accounts:signUp": `{"error":{"message":"EMAIL_EXISTS"}}`,
	})
	p := newTestProvider(t, server)

	_, err := p.SignUp(context.Background(), "a@example.com", "hunter22")

	require.Error(t, err)
	appErr, ok := common.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestProvider_SignOut_NotifiesNilSession(t *testing.T) {
	server := newToolkitServer(t, map[string]string{
		"accounts:signUp": `{"localId":"uid-1","email":"a@example.com","idToken":"tok-1"}`,
	})
	p := newTestProvider(t, server)

	_, err := p.SignUp(context.Background(), "a@example.com", "hunter22")
	require.NoError(t, err)

	var notified []*Session
	unsub := p.Subscribe(func(s *Session) { notified = append(notified, s) })
	defer unsub()

	require.NoError(t, p.SignOut(context.Background()))

	require.Len(t, notified, 2)
	assert.NotNil(t, notified[0])
	assert.Nil(t, notified[1])
}

func TestProvider_SendVerificationEmail_RequiresSession(t *testing.T) {
	p := newTestProvider(t, nil)

	err := p.SendVerificationEmail(context.Background())

	require.Error(t, err)
	appErr, ok := common.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

func TestProvider_SendVerificationEmail_UsesSessionToken(t *testing.T) {
	var gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "accounts:signUp"):
			_, _ = w.Write([]byte(`{"localId":"uid-1","email":"a@example.com","idToken":"tok-1"}`))
		case strings.HasSuffix(r.URL.Path, "accounts:sendOobCode"):
			var payload struct {
				IDToken     string `json:"idToken"`
				RequestType string `json:"requestType"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			gotToken = payload.IDToken
			assert.Equal(t, "VERIFY_EMAIL", payload.RequestType)
			_, _ = w.Write([]byte(`{}`))
		default:
			t.Errorf("unexpected toolkit endpoint: %s", r.URL.Path)
		}
	}))
	p := newTestProvider(t, server)

	_, err := p.SignUp(context.Background(), "a@example.com", "hunter22")
	require.NoError(t, err)
	require.NoError(t, p.SendVerificationEmail(context.Background()))

	assert.Equal(t, "tok-1", gotToken)
}

func TestProvider_Unsubscribe(t *testing.T) {
	server := newToolkitServer(t, map[string]string{
		"accounts:signUp": `{"localId":"uid-1","email":"a@example.com","idToken":"tok-1"}`,
	})
	p := newTestProvider(t, server)

	count := 0
	unsub := p.Subscribe(func(*Session) { count++ })
	unsub()

	_, err := p.SignUp(context.Background(), "a@example.com", "hunter22")
	require.NoError(t, err)

	assert.Equal(t, 1, count)
}
