package spotr

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestOAuth2Interop(t *testing.T) {
	ctx := context.Background()

	t.Run("TokenSource Serves Cached Token", func(t *testing.T) {
		fs := newFakeTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, tokenJSON("tok", 3600, ""))
		})

		a := NewAuthenticator(testCredentials(t))
		a.accountsURL = fs.URL

		tok, err := a.TokenSource(ctx).Token()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if tok.AccessToken != "tok" || tok.TokenType != "Bearer" {
			t.Errorf("unexpected token: %+v", tok)
		}
		if !tok.Valid() {
			t.Error("expected a valid oauth2 token")
		}
	})

	t.Run("SetToken Then Token Round Trip", func(t *testing.T) {
		a := NewAuthenticator(testCredentials(t))
		in := &oauth2.Token{
			AccessToken:  "imported",
			TokenType:    "Bearer",
			RefreshToken: "imported-refresh",
			Expiry:       time.Now().Add(time.Hour).Truncate(time.Second),
		}
		a.SetToken(in)

		out := a.Token()
		if out.AccessToken != in.AccessToken || out.RefreshToken != in.RefreshToken || !out.Expiry.Equal(in.Expiry) {
			t.Errorf("expected %+v after round trip, got %+v", in, out)
		}
	})
}
