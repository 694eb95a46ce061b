// internal/pkg/auth/google_test.go
package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lepetitmarche/storefront-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVerifier(t *testing.T, handler http.HandlerFunc) *GoogleVerifier {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.OAuth.GoogleClientID = "client-123.apps.googleusercontent.com"
	cfg.OAuth.GoogleTokenInfoURL = server.URL
	return NewGoogleVerifier(cfg)
}

func TestVerifyValidToken(t *testing.T) {
	verifier := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok", r.URL.Query().Get("id_token"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sub":"g-1","email":"marie@example.fr","name":"Marie","picture":"https://p.example/m.jpg","aud":"client-123.apps.googleusercontent.com"}`))
	})

	profile, err := verifier.Verify(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "g-1", profile.Subject)
	assert.Equal(t, "marie@example.fr", profile.Email)
	assert.Equal(t, "Marie", profile.Name)
}

func TestVerifyRejectsAudienceMismatch(t *testing.T) {
	verifier := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sub":"g-1","email":"marie@example.fr","aud":"someone-else"}`))
	})

	_, err := verifier.Verify(context.Background(), "tok")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audience")
}

func TestVerifyRejectsInvalidToken(t *testing.T) {
	verifier := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_token"}`))
	})

	_, err := verifier.Verify(context.Background(), "tok")
	assert.Error(t, err)
}

func TestVerifyRejectsMissingEmail(t *testing.T) {
	verifier := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sub":"g-1","aud":"client-123.apps.googleusercontent.com"}`))
	})

	_, err := verifier.Verify(context.Background(), "tok")
	assert.Error(t, err)
}

func TestVerifyRejectsEmptyToken(t *testing.T) {
	verifier := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an empty token")
	})

	_, err := verifier.Verify(context.Background(), "")
	assert.Error(t, err)
}
