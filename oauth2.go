package spotr

import (
	"context"

	"golang.org/x/oauth2"
)

// tokenSource adapts an [Authenticator] to the oauth2.TokenSource interface.
type tokenSource struct {
	ctx  context.Context
	auth *Authenticator
}

// TokenSource exposes the authenticator as a [oauth2.TokenSource], so spotr
// credentials can drive any HTTP stack built on golang.org/x/oauth2.
func (a *Authenticator) TokenSource(ctx context.Context) oauth2.TokenSource {
	return &tokenSource{ctx: ctx, auth: a}
}

func (s *tokenSource) Token() (*oauth2.Token, error) {
	bearer, err := s.auth.GetToken(s.ctx)
	if err != nil {
		return nil, err
	}
	s.auth.mu.Lock()
	cached := s.auth.cache
	s.auth.mu.Unlock()
	return &oauth2.Token{
		AccessToken:  bearer,
		TokenType:    "Bearer",
		RefreshToken: cached.RefreshToken,
		Expiry:       cached.Expires,
	}, nil
}

// SetToken imports an externally obtained oauth2 token, e.g. one persisted by
// an earlier session, replacing the cached token wholesale.
func (a *Authenticator) SetToken(tok *oauth2.Token) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cache = accessToken{
		Token:        tok.AccessToken,
		Expires:      tok.Expiry,
		RefreshToken: tok.RefreshToken,
	}
}

// Token exports the cached token as an oauth2.Token for persistence. The
// zero time expiry means no token has been obtained yet.
func (a *Authenticator) Token() *oauth2.Token {
	a.mu.Lock()
	defer a.mu.Unlock()
	return &oauth2.Token{
		AccessToken:  a.cache.Token,
		TokenType:    "Bearer",
		RefreshToken: a.cache.RefreshToken,
		Expiry:       a.cache.Expires,
	}
}
