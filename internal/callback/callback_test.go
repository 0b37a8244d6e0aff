package callback

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lunamark/spotr"
)

const redirectURI = "http://localhost:8080/callback"

// flowClient builds a client with a pending authorization state and a fake
// accounts server behind it.
func flowClient(t *testing.T) (*spotr.Client, string) {
	t.Helper()

	accounts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"access_token":"tok","token_type":"Bearer","expires_in":3600,"refresh_token":"refresh"}`)
	}))
	t.Cleanup(accounts.Close)

	creds, err := spotr.NewCredentials("id", "secret")
	if err != nil {
		t.Fatalf("failed to create credentials: %v", err)
	}
	c := spotr.New(creds, spotr.WithRedirectURI(redirectURI), spotr.WithAccountsURL(accounts.URL))

	_, state, err := c.AuthorizationURL([]spotr.Scope{spotr.ScopeUserReadPrivate}, false)
	if err != nil {
		t.Fatalf("failed to build authorization URL: %v", err)
	}
	return c, state
}

func TestHandler(t *testing.T) {
	t.Run("Completes Flow", func(t *testing.T) {
		c, state := flowClient(t)
		h := NewHandler(c, redirectURI)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?code=auth-code&state="+state, nil))

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d: %s", rec.Code, rec.Body)
		}
		res := <-h.Result()
		if res.Error() != nil {
			t.Errorf("expected no error, got %v", res.Error())
		}
		if got := c.Authenticator().RefreshToken(); got != "refresh" {
			t.Errorf("expected refresh token stored, got %q", got)
		}
	})

	t.Run("Declined Authorization Is Forbidden", func(t *testing.T) {
		c, state := flowClient(t)
		h := NewHandler(c, redirectURI)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?error=access_denied&state="+state, nil))

		if rec.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", rec.Code)
		}
		res := <-h.Result()
		var declined *spotr.AuthDeclinedError
		if !errors.As(res.Error(), &declined) {
			t.Errorf("expected AuthDeclinedError, got %v", res.Error())
		}
	})

	t.Run("Bad State Is Rejected", func(t *testing.T) {
		c, _ := flowClient(t)
		h := NewHandler(c, redirectURI)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?code=auth-code&state=BOGUS", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
		res := <-h.Result()
		if !errors.Is(res.Error(), spotr.ErrIncorrectState) {
			t.Errorf("expected ErrIncorrectState, got %v", res.Error())
		}
	})

	t.Run("Second Callback Is Ignored", func(t *testing.T) {
		c, state := flowClient(t)
		h := NewHandler(c, redirectURI)

		first := httptest.NewRecorder()
		h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/callback?code=auth-code&state="+state, nil))
		if first.Code != http.StatusOK {
			t.Fatalf("expected first callback to succeed, got %d", first.Code)
		}

		second := httptest.NewRecorder()
		h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/callback?code=other&state="+state, nil))
		if second.Code != http.StatusBadRequest {
			t.Errorf("expected repeated callback to be rejected, got %d", second.Code)
		}
	})
}
