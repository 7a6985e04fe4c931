// SPDX-License-Identifier: MIT
package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/thatcatcamp/windpalette/internal/config"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

var (
	// ErrOAuthNotConfigured is returned when the Google client id or secret is missing.
	ErrOAuthNotConfigured = errors.New("google sign-in is not configured")
	// ErrEmailNotVerified is returned for Google accounts with an unverified email.
	ErrEmailNotVerified = errors.New("google account email is not verified")
)

// GoogleProfile is the part of the Google userinfo we keep.
type GoogleProfile struct {
	ID        string
	Email     string
	Name      string
	AvatarURL string
}

// GoogleProvider runs the OAuth authorization code flow against Google.
type GoogleProvider struct {
	Config      *oauth2.Config
	UserInfoURL string
}

// NewGoogleProvider creates a provider redirecting back to redirectURL.
func NewGoogleProvider(clientID, clientSecret, redirectURL string) *GoogleProvider {
	return &GoogleProvider{
		Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		UserInfoURL: googleUserInfoURL,
	}
}

// NewGoogleProviderFromConfig builds a provider from the auth.* settings.
func NewGoogleProviderFromConfig() (*GoogleProvider, error) {
	clientID := config.GetString("auth.google_client_id")
	clientSecret := config.GetString("auth.google_client_secret")
	if clientID == "" || clientSecret == "" {
		return nil, ErrOAuthNotConfigured
	}
	redirect := strings.TrimRight(config.GetString("server.base_url"), "/") + "/auth/google/callback"
	return NewGoogleProvider(clientID, clientSecret, redirect), nil
}

// AuthURL is where the browser is sent to sign in.
func (p *GoogleProvider) AuthURL(state string) string {
	return p.Config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the callback code for a token and fetches the profile.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*GoogleProfile, error) {
	token, err := p.Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.UserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.Config.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read userinfo: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	fields := gjson.GetManyBytes(body, "sub", "email", "name", "picture", "email_verified")
	profile := &GoogleProfile{
		ID:        fields[0].String(),
		Email:     strings.ToLower(fields[1].String()),
		Name:      fields[2].String(),
		AvatarURL: fields[3].String(),
	}
	if profile.ID == "" || profile.Email == "" {
		return nil, errors.New("userinfo is missing sub or email")
	}
	if fields[4].Exists() && !fields[4].Bool() {
		return nil, ErrEmailNotVerified
	}
	return profile, nil
}
