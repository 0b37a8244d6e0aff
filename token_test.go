package spotr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// fakeTokenServer serves the token endpoint, counting requests and recording
// the last form it received.
type fakeTokenServer struct {
	*httptest.Server
	requests atomic.Int64
	lastForm atomic.Value // url.Values encoded as string map

	respond func(w http.ResponseWriter, r *http.Request)
}

func newFakeTokenServer(t *testing.T, respond func(w http.ResponseWriter, r *http.Request)) *fakeTokenServer {
	t.Helper()
	fs := &fakeTokenServer{respond: respond}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/token" {
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("failed to parse form: %v", err)
		}
		form := map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostForm.Get(k)
		}
		fs.lastForm.Store(form)
		fs.requests.Add(1)
		fs.respond(w, r)
	}))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fakeTokenServer) form() map[string]string {
	v, _ := fs.lastForm.Load().(map[string]string)
	return v
}

func tokenJSON(token string, expiresIn int, refresh string) string {
	body := map[string]any{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   expiresIn,
	}
	if refresh != "" {
		body["refresh_token"] = refresh
	}
	data, _ := json.Marshal(body)
	return string(data)
}

func testCredentials(t *testing.T) Credentials {
	t.Helper()
	creds, err := NewCredentials("test_client_id", "test_client_secret")
	if err != nil {
		t.Fatalf("failed to create credentials: %v", err)
	}
	return creds
}

func TestAuthenticator(t *testing.T) {
	ctx := context.Background()

	t.Run("Token Reuse", func(t *testing.T) {
		fs := newFakeTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, tokenJSON("tok-1", 3600, ""))
		})

		a := NewAuthenticator(testCredentials(t))
		a.accountsURL = fs.URL

		first, err := a.GetToken(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		second, err := a.GetToken(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if first != "tok-1" || second != "tok-1" {
			t.Errorf("expected cached token tok-1 on both calls, got %q then %q", first, second)
		}
		if got := fs.requests.Load(); got != 1 {
			t.Errorf("expected exactly 1 token request, got %d", got)
		}
	})

	t.Run("Expiry Triggers Refresh", func(t *testing.T) {
		var n atomic.Int64
		fs := newFakeTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, tokenJSON(fmt.Sprintf("tok-%d", n.Add(1)), 3600, ""))
		})

		a := NewAuthenticator(testCredentials(t))
		a.accountsURL = fs.URL

		if _, err := a.GetToken(ctx); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		a.mu.Lock()
		a.cache.Expires = time.Now().Add(-time.Second)
		a.mu.Unlock()

		tok, err := a.GetToken(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if tok != "tok-2" {
			t.Errorf("expected a fresh token after expiry, got %q", tok)
		}
		if got := fs.requests.Load(); got != 2 {
			t.Errorf("expected 2 token requests, got %d", got)
		}
	})

	t.Run("Uses Client Credentials Grant", func(t *testing.T) {
		fs := newFakeTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, tokenJSON("tok", 3600, ""))
		})

		a := NewAuthenticator(testCredentials(t))
		a.accountsURL = fs.URL

		if _, err := a.GetToken(ctx); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got := fs.form()["grant_type"]; got != "client_credentials" {
			t.Errorf("expected client_credentials grant, got %q", got)
		}
	})

	t.Run("Refresh Token Grant", func(t *testing.T) {
		fs := newFakeTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, tokenJSON("tok", 3600, "rotated-refresh"))
		})

		a := NewAuthenticatorWithRefresh(testCredentials(t), "seed-refresh")
		a.accountsURL = fs.URL

		if _, err := a.GetToken(ctx); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		form := fs.form()
		if form["grant_type"] != "refresh_token" {
			t.Errorf("expected refresh_token grant, got %q", form["grant_type"])
		}
		if form["refresh_token"] != "seed-refresh" {
			t.Errorf("expected seed refresh token in request, got %q", form["refresh_token"])
		}
		if got := a.RefreshToken(); got != "rotated-refresh" {
			t.Errorf("expected rotated refresh token, got %q", got)
		}
	})

	t.Run("Refresh Token Preserved When Response Omits It", func(t *testing.T) {
		fs := newFakeTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, tokenJSON("tok", 3600, ""))
		})

		a := NewAuthenticatorWithRefresh(testCredentials(t), "keep-me")
		a.accountsURL = fs.URL

		if _, err := a.GetToken(ctx); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got := a.RefreshToken(); got != "keep-me" {
			t.Errorf("expected refresh token preserved across refresh, got %q", got)
		}
	})

	t.Run("Failed Refresh Leaves Cache Intact", func(t *testing.T) {
		fs := newFakeTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":"invalid_grant","error_description":"Refresh token revoked"}`)
		})

		a := NewAuthenticatorWithRefresh(testCredentials(t), "stale-refresh")
		a.accountsURL = fs.URL

		_, err := a.GetToken(ctx)
		var authErr *AuthenticationError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthenticationError, got %v", err)
		}
		if authErr.Code != "invalid_grant" {
			t.Errorf("expected invalid_grant code, got %q", authErr.Code)
		}
		if got := a.RefreshToken(); got != "stale-refresh" {
			t.Errorf("expected stale cache untouched after failure, got refresh %q", got)
		}
	})

	t.Run("Basic Auth Sent To Token Endpoint", func(t *testing.T) {
		fs := newFakeTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || user != "test_client_id" || pass != "test_client_secret" {
				t.Errorf("expected basic auth with client credentials, got %q/%q", user, pass)
			}
			fmt.Fprint(w, tokenJSON("tok", 3600, ""))
		})

		a := NewAuthenticator(testCredentials(t))
		a.accountsURL = fs.URL

		if _, err := a.GetToken(ctx); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}
