package spotr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const defaultAccountsURL = "https://accounts.spotify.com"

// accessToken is one cached token endpoint response. The refresh token
// survives updates whose responses omit it.
type accessToken struct {
	Token        string
	Expires      time.Time
	RefreshToken string
}

func (t accessToken) valid(now time.Time) bool {
	return t.Token != "" && now.Before(t.Expires)
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
}

// Authenticator owns a set of client credentials and a single cached access
// token. It produces a currently-valid bearer token on demand, refreshing it
// when expired via the refresh-token grant (authorization-code flow) or the
// client-credentials grant.
//
// Safe for concurrent use: the cache mutex is held across the refresh
// round-trip, so concurrent callers hitting a stale cache coalesce onto one
// in-flight token request.
type Authenticator struct {
	creds       Credentials
	http        *http.Client
	accountsURL string
	logger      *log.Logger

	mu    sync.Mutex
	cache accessToken
}

// NewAuthenticator creates an Authenticator for the client-credentials flow.
func NewAuthenticator(creds Credentials) *Authenticator {
	return &Authenticator{
		creds:       creds,
		http:        http.DefaultClient,
		accountsURL: defaultAccountsURL,
	}
}

// NewAuthenticatorWithRefresh creates an Authenticator that holds an existing
// refresh token, so the first GetToken call uses the refresh-token grant.
func NewAuthenticatorWithRefresh(creds Credentials, refreshToken string) *Authenticator {
	a := NewAuthenticator(creds)
	a.cache.RefreshToken = refreshToken
	return a
}

// RefreshToken returns the currently held refresh token, or "" if the
// authenticator runs on the client-credentials flow.
func (a *Authenticator) RefreshToken() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cache.RefreshToken
}

// GetToken returns a valid bearer token, hitting the token endpoint only when
// the cached one has expired. A failed refresh leaves the stale cache entry in
// place so the next call retries.
func (a *Authenticator) GetToken(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cache.valid(time.Now()) {
		return a.cache.Token, nil
	}

	form := url.Values{}
	if a.cache.RefreshToken != "" {
		form.Set("grant_type", "refresh_token")
		form.Set("refresh_token", a.cache.RefreshToken)
	} else {
		form.Set("grant_type", "client_credentials")
	}

	tok, err := a.requestToken(ctx, form)
	if err != nil {
		return "", err
	}

	if tok.RefreshToken == "" {
		// Spotify may omit the refresh token on refresh-grant responses.
		tok.RefreshToken = a.cache.RefreshToken
	}
	a.cache = tok

	return a.cache.Token, nil
}

// exchangeCode trades an authorization code for a token via the
// authorization-code grant and replaces the cache with the result.
func (a *Authenticator) exchangeCode(ctx context.Context, code, redirectURI string) error {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", redirectURI)

	tok, err := a.requestToken(ctx, form)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.cache = tok
	a.mu.Unlock()
	return nil
}

// requestToken performs one POST to the token endpoint. Callers hold the cache
// mutex when the result replaces the cache, or swap it in whole afterwards;
// either way the cache is only ever written as a single unit.
func (a *Authenticator) requestToken(ctx context.Context, form url.Values) (accessToken, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.accountsURL+"/api/token", strings.NewReader(form.Encode()))
	if err != nil {
		return accessToken{}, fmt.Errorf("failed to create token request: %w", err)
	}
	req.SetBasicAuth(a.creds.ID, a.creds.Secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if a.logger != nil {
		a.logger.Debug("requesting access token", "grant_type", form.Get("grant_type"))
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return accessToken{}, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return accessToken{}, fmt.Errorf("failed to read token response: %w", err)
	}
	received := time.Now()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var authErr AuthenticationError
		if err := json.Unmarshal(body, &authErr); err != nil || authErr.Code == "" {
			return accessToken{}, fmt.Errorf("token request failed with status %d: %s", resp.StatusCode, body)
		}
		return accessToken{}, &authErr
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return accessToken{}, fmt.Errorf("failed to decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return accessToken{}, fmt.Errorf("token response contains no access token")
	}

	return accessToken{
		Token:        tr.AccessToken,
		Expires:      received.Add(time.Duration(tr.ExpiresIn) * time.Second),
		RefreshToken: tr.RefreshToken,
	}, nil
}
