package spotr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// AuthorizationURL builds the URL to send the user's browser to for the
// authorization-code flow, along with the anti-forgery state embedded in it.
// The state is registered as pending and is consumed by the next
// [Client.Redirected] call that carries it, successful or not.
//
// forceApprove makes Spotify show the consent dialog even if the user has
// already approved the application.
func (c *Client) AuthorizationURL(scopes []Scope, forceApprove bool) (authURL, state string, err error) {
	if c.redirectURI == "" {
		return "", "", fmt.Errorf("no redirect URI configured, use WithRedirectURI")
	}

	state = c.states.Generate()

	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", c.auth.creds.ID)
	q.Set("scope", joinScopes(scopes))
	q.Set("show_dialog", strconv.FormatBool(forceApprove))
	q.Set("redirect_uri", c.redirectURI)
	q.Set("state", state)

	return c.auth.accountsURL + "/authorize?" + q.Encode(), state, nil
}

// Redirected completes the authorization-code flow from the URL the user's
// browser was redirected back to. On success the authenticator holds a
// user-scoped access token and its refresh token.
//
// Failure modes are distinct: [ErrInvalidRedirect] for a malformed URL or a
// missing code, [ErrIncorrectState] for a missing, unknown, or replayed state,
// and [AuthDeclinedError] when the redirect carries an error parameter.
func (c *Client) Redirected(ctx context.Context, redirectedURL string) error {
	u, err := url.Parse(redirectedURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRedirect, err)
	}
	q := u.Query()

	// Consume the state first so it cannot be replayed even when the rest of
	// the exchange fails.
	if !c.states.Consume(q.Get("state")) {
		return ErrIncorrectState
	}

	if errParam := q.Get("error"); errParam != "" {
		return &AuthDeclinedError{Reason: errParam}
	}

	code := q.Get("code")
	if code == "" {
		return fmt.Errorf("%w: no code parameter", ErrInvalidRedirect)
	}

	// The token exchange must present the exact redirect URI that was
	// registered, without the query string Spotify appended.
	u.RawQuery = ""
	u.Fragment = ""
	return c.auth.exchangeCode(ctx, code, u.String())
}
