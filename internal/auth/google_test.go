package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenInfoServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestGoogleVerifier_ValidToken(t *testing.T) {
	srv := newTokenInfoServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token-abc", r.URL.Query().Get("id_token"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sub":"g-123","aud":"client-1","email":"ada@example.com","name":"Ada","picture":"https://img.example/a.png"}`))
	})

	v := NewGoogleVerifier(GoogleVerifierConfig{ClientID: "client-1", TokenInfoURL: srv.URL})

	identity, err := v.Verify(context.Background(), "token-abc")
	require.NoError(t, err)
	assert.Equal(t, "g-123", identity.GoogleID)
	assert.Equal(t, "ada@example.com", identity.Email)
	assert.Equal(t, "Ada", identity.Name)
	assert.Equal(t, "https://img.example/a.png", identity.AvatarURL)
}

func TestGoogleVerifier_RejectedByProvider(t *testing.T) {
	srv := newTokenInfoServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_token"}`))
	})

	v := NewGoogleVerifier(GoogleVerifierConfig{TokenInfoURL: srv.URL})

	_, err := v.Verify(context.Background(), "bad-token")
	assert.ErrorIs(t, err, ErrGoogleTokenRejected)
}

func TestGoogleVerifier_AudienceMismatch(t *testing.T) {
	srv := newTokenInfoServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sub":"g-123","aud":"someone-else","email":"ada@example.com"}`))
	})

	v := NewGoogleVerifier(GoogleVerifierConfig{ClientID: "client-1", TokenInfoURL: srv.URL})

	_, err := v.Verify(context.Background(), "token")
	assert.ErrorIs(t, err, ErrGoogleTokenRejected)
}

func TestGoogleVerifier_IncompleteIdentity(t *testing.T) {
	srv := newTokenInfoServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"aud":"client-1"}`))
	})

	v := NewGoogleVerifier(GoogleVerifierConfig{TokenInfoURL: srv.URL})

	_, err := v.Verify(context.Background(), "token")
	assert.ErrorIs(t, err, ErrGoogleTokenRejected)
}

func TestGoogleVerifier_ProviderUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // закрываем сразу: соединение должно упасть

	v := NewGoogleVerifier(GoogleVerifierConfig{TokenInfoURL: srv.URL})

	_, err := v.Verify(context.Background(), "token")
	assert.ErrorIs(t, err, ErrGoogleTokenRejected)
}
