// internal/pkg/auth/google.go
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/lepetitmarche/storefront-api/internal/config"
)

// GoogleProfile is the verified identity extracted from a Google ID
// token.
type GoogleProfile struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleVerifier validates Google ID tokens against the tokeninfo
// endpoint and checks the audience matches our OAuth client.
type GoogleVerifier struct {
	clientID     string
	tokenInfoURL string
	httpClient   *http.Client
}

// NewGoogleVerifier creates a new Google ID token verifier
func NewGoogleVerifier(cfg *config.Config) *GoogleVerifier {
	return &GoogleVerifier{
		clientID:     cfg.OAuth.GoogleClientID,
		tokenInfoURL: cfg.OAuth.GoogleTokenInfoURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Verify validates an ID token and returns the profile it asserts
func (v *GoogleVerifier) Verify(ctx context.Context, idToken string) (*GoogleProfile, error) {
	if idToken == "" {
		return nil, fmt.Errorf("missing ID token")
	}

	endpoint := v.tokenInfoURL + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build tokeninfo request: %w", err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read tokeninfo response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("invalid ID token (status %d)", resp.StatusCode)
	}

	var info struct {
		GoogleProfile
		Audience string `json:"aud"`
	}
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to parse tokeninfo response: %w", err)
	}

	if v.clientID != "" && info.Audience != v.clientID {
		return nil, fmt.Errorf("ID token audience mismatch")
	}
	if info.Email == "" {
		return nil, fmt.Errorf("ID token carries no email claim")
	}

	return &info.GoogleProfile, nil
}
