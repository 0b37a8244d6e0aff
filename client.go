package spotr

import (
	"net/http"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.spotify.com/v1"

// Client is a handle to the Spotify Web API. It owns an [Authenticator] and
// the set of pending authorization states, both guarded for concurrent use;
// one Client may be shared by any number of goroutines.
type Client struct {
	http        *http.Client
	auth        *Authenticator
	states      *stateSet
	limiter     *rate.Limiter
	logger      *log.Logger
	baseURL     string
	redirectURI string
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for all requests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
		c.auth.http = h
	}
}

// WithLogger enables structured logging of token refreshes and retries.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.logger = l
		c.auth.logger = l
	}
}

// WithRefreshToken seeds the client with a refresh token obtained earlier, so
// requests use the authorization-code flow without re-prompting the user.
func WithRefreshToken(refreshToken string) Option {
	return func(c *Client) {
		c.auth.cache.RefreshToken = refreshToken
	}
}

// WithRedirectURI sets the redirect URI used by [Client.AuthorizationURL].
// It must match one registered in the Spotify developer dashboard and must
// not contain a query string.
func WithRedirectURI(uri string) Option {
	return func(c *Client) { c.redirectURI = uri }
}

// WithRateLimit applies a client-side request rate limit (requests per
// second) on top of the server-directed 429 handling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// WithBaseURL overrides the resource API base URL. Mainly useful for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithAccountsURL overrides the accounts host used for token requests and
// authorization URLs. Mainly useful for tests.
func WithAccountsURL(u string) Option {
	return func(c *Client) { c.auth.accountsURL = u }
}

// New creates a Client from Spotify application credentials.
func New(creds Credentials, opts ...Option) *Client {
	c := &Client{
		http:    http.DefaultClient,
		auth:    NewAuthenticator(creds),
		states:  newStateSet(),
		baseURL: defaultBaseURL,
	}
	c.auth.http = c.http
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Authenticator returns the client's authenticator, e.g. to read the refresh
// token for persistence after a completed authorization-code flow.
func (c *Client) Authenticator() *Authenticator {
	return c.auth
}
