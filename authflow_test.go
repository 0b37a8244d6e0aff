package spotr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestAuthorizationURL(t *testing.T) {
	creds := testCredentials(t)

	t.Run("Requires Redirect URI", func(t *testing.T) {
		c := New(creds)
		if _, _, err := c.AuthorizationURL([]Scope{ScopeUserReadPrivate}, false); err == nil {
			t.Error("expected error without a redirect URI")
		}
	})

	t.Run("Builds Authorize URL", func(t *testing.T) {
		c := New(creds, WithRedirectURI("http://localhost:8888/callback"))
		authURL, state, err := c.AuthorizationURL([]Scope{ScopeUserReadPrivate, ScopeUserLibraryRead}, true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		u, err := url.Parse(authURL)
		if err != nil {
			t.Fatalf("failed to parse authorization URL: %v", err)
		}
		if u.Path != "/authorize" {
			t.Errorf("expected /authorize path, got %s", u.Path)
		}

		q := u.Query()
		checks := map[string]string{
			"response_type": "code",
			"client_id":     "test_client_id",
			"scope":         "user-read-private user-library-read",
			"show_dialog":   "true",
			"redirect_uri":  "http://localhost:8888/callback",
			"state":         state,
		}
		for key, want := range checks {
			if got := q.Get(key); got != want {
				t.Errorf("expected %s=%q, got %q", key, want, got)
			}
		}
	})

	t.Run("State Format", func(t *testing.T) {
		c := New(creds, WithRedirectURI("http://localhost:8888/callback"))
		_, state, err := c.AuthorizationURL(nil, false)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(state) != 16 {
			t.Errorf("expected 16-character state, got %d", len(state))
		}
		for _, ch := range state {
			if !strings.ContainsRune(stateChars, ch) {
				t.Errorf("state contains unexpected character %q", ch)
			}
		}
	})
}

func TestRedirected(t *testing.T) {
	ctx := context.Background()
	creds := testCredentials(t)
	const redirectURI = "http://localhost:8888/callback"

	newFlowClient := func(t *testing.T, accountsURL string) (*Client, string) {
		t.Helper()
		c := New(creds, WithRedirectURI(redirectURI), WithAccountsURL(accountsURL))
		_, state, err := c.AuthorizationURL([]Scope{ScopeUserReadPrivate}, false)
		if err != nil {
			t.Fatalf("failed to build authorization URL: %v", err)
		}
		return c, state
	}

	t.Run("Completes Exchange", func(t *testing.T) {
		fs := newFakeTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, tokenJSON("user-token", 3600, "user-refresh"))
		})
		c, state := newFlowClient(t, fs.URL)

		err := c.Redirected(ctx, redirectURI+"?code=auth-code&state="+state)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		form := fs.form()
		if form["grant_type"] != "authorization_code" {
			t.Errorf("expected authorization_code grant, got %q", form["grant_type"])
		}
		if form["code"] != "auth-code" {
			t.Errorf("expected code forwarded, got %q", form["code"])
		}
		if form["redirect_uri"] != redirectURI {
			t.Errorf("expected redirect URI without query, got %q", form["redirect_uri"])
		}
		if got := c.Authenticator().RefreshToken(); got != "user-refresh" {
			t.Errorf("expected refresh token stored, got %q", got)
		}
	})

	t.Run("Rejects Unknown State", func(t *testing.T) {
		c, _ := newFlowClient(t, "http://accounts.invalid")

		err := c.Redirected(ctx, redirectURI+"?code=auth-code&state=WRONGSTATEWRONGS")
		if !errors.Is(err, ErrIncorrectState) {
			t.Errorf("expected ErrIncorrectState, got %v", err)
		}
	})

	t.Run("State Is Single Use", func(t *testing.T) {
		fs := newFakeTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, tokenJSON("user-token", 3600, "user-refresh"))
		})
		c, state := newFlowClient(t, fs.URL)
		redirected := redirectURI + "?code=auth-code&state=" + state

		if err := c.Redirected(ctx, redirected); err != nil {
			t.Fatalf("expected first redirect to succeed, got %v", err)
		}
		if err := c.Redirected(ctx, redirected); !errors.Is(err, ErrIncorrectState) {
			t.Errorf("expected replay to fail with ErrIncorrectState, got %v", err)
		}
	})

	t.Run("State Consumed On Declined Authorization", func(t *testing.T) {
		c, state := newFlowClient(t, "http://accounts.invalid")

		err := c.Redirected(ctx, redirectURI+"?error=access_denied&state="+state)
		var declined *AuthDeclinedError
		if !errors.As(err, &declined) {
			t.Fatalf("expected AuthDeclinedError, got %v", err)
		}
		if declined.Reason != "access_denied" {
			t.Errorf("expected access_denied reason, got %q", declined.Reason)
		}

		// The state must not survive the failed attempt.
		err = c.Redirected(ctx, redirectURI+"?code=auth-code&state="+state)
		if !errors.Is(err, ErrIncorrectState) {
			t.Errorf("expected ErrIncorrectState on reuse, got %v", err)
		}
	})

	t.Run("Missing Code", func(t *testing.T) {
		c, state := newFlowClient(t, "http://accounts.invalid")

		err := c.Redirected(ctx, redirectURI+"?state="+state)
		if !errors.Is(err, ErrInvalidRedirect) {
			t.Errorf("expected ErrInvalidRedirect, got %v", err)
		}
	})

	t.Run("Malformed URL", func(t *testing.T) {
		c, _ := newFlowClient(t, "http://accounts.invalid")

		err := c.Redirected(ctx, ":not-a-url")
		if !errors.Is(err, ErrInvalidRedirect) {
			t.Errorf("expected ErrInvalidRedirect, got %v", err)
		}
	})
}

func TestStateSet(t *testing.T) {
	t.Run("Consume Unknown", func(t *testing.T) {
		s := newStateSet()
		if s.Consume("never-generated") {
			t.Error("expected consume of unknown state to fail")
		}
	})

	t.Run("Multiple Pending States", func(t *testing.T) {
		s := newStateSet()
		first := s.Generate()
		second := s.Generate()
		if first == second {
			t.Error("expected distinct states")
		}
		if !s.Consume(second) || !s.Consume(first) {
			t.Error("expected both pending states to be consumable in any order")
		}
		if s.Consume(first) {
			t.Error("expected consumed state to be gone")
		}
	})
}
