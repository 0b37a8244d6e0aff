package spotr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Response wraps decoded endpoint data together with the instant at which the
// HTTP cache freshness attached to it expires, derived from the
// Cache-Control max-age response directive. The expiry is informational; the
// client does not enforce it.
type Response[T any] struct {
	Data    T
	Expires time.Time
}

// request is one logical API call before dispatch: method, path relative to
// the API base, query parameters, and an optional JSON body.
type request struct {
	method string
	path   string
	query  url.Values
	body   []byte
}

func newRequest(method, path string) *request {
	return &request{method: method, path: path, query: url.Values{}}
}

func get(path string) *request  { return newRequest(http.MethodGet, path) }
func post(path string) *request { return newRequest(http.MethodPost, path) }
func put(path string) *request  { return newRequest(http.MethodPut, path) }
func del(path string) *request  { return newRequest(http.MethodDelete, path) }

func (r *request) param(key, value string) *request {
	if value != "" {
		r.query.Set(key, value)
	}
	return r
}

func (r *request) paramInt(key string, value int) *request {
	r.query.Set(key, strconv.Itoa(value))
	return r
}

func (r *request) jsonBody(v any) *request {
	data, err := json.Marshal(v)
	if err != nil {
		// All body values are library-built maps and structs; a marshal
		// failure is a programming error.
		panic("spotr: failed to marshal request body: " + err.Error())
	}
	r.body = data
	return r
}

// sendText dispatches the request and returns the raw response body. It
// attaches a bearer token, waits out the client-side rate limiter if one is
// configured, retries 429 responses after the server-directed delay, and
// decodes non-2xx bodies into typed errors.
func (c *Client) sendText(ctx context.Context, r *request) (*Response[string], error) {
	token, err := c.auth.GetToken(ctx)
	if err != nil {
		return nil, err
	}

	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var reqID string
	if c.logger != nil {
		reqID = uuid.NewString()
		c.logger.Debug("dispatching request", "id", reqID, "method", r.method, "path", r.path)
	}

	var resp *http.Response
	for {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		var body io.Reader
		if r.body != nil {
			body = bytes.NewReader(r.body)
		}
		req, err := http.NewRequestWithContext(ctx, r.method, u, body)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		if r.body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err = c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			break
		}

		wait := retryAfter(resp.Header)
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if c.logger != nil {
			c.logger.Warn("rate limited, backing off", "id", reqID, "wait", wait)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	defer resp.Body.Close()

	expires := time.Now().Add(cacheLifetime(resp.Header))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp.StatusCode, data)
	}

	return &Response[string]{Data: string(data), Expires: expires}, nil
}

// retryAfter reads the Retry-After header, defaulting to 2 seconds when it is
// absent or unparseable.
func retryAfter(h http.Header) time.Duration {
	if secs, err := strconv.ParseInt(h.Get("Retry-After"), 10, 64); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return 2 * time.Second
}

// cacheLifetime scans every Cache-Control header for max-age directives and
// returns the first one found, or zero.
func cacheLifetime(h http.Header) time.Duration {
	for _, value := range h.Values("Cache-Control") {
		for _, directive := range strings.Split(value, ",") {
			name, arg, ok := strings.Cut(strings.TrimSpace(directive), "=")
			if !ok || !strings.EqualFold(name, "max-age") {
				continue
			}
			if secs, err := strconv.ParseInt(arg, 10, 64); err == nil {
				return time.Duration(secs) * time.Second
			}
		}
	}
	return 0
}

// decodeError converts a non-2xx body into a typed error. Bodies carrying a
// reason field become a [PlayerError], the rest the plain [Error] envelope.
func decodeError(status int, body []byte) error {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil || env.Error.Message == "" {
		return fmt.Errorf("spotify error %d: failed to decode error body %q", status, body)
	}
	if env.Error.Reason != "" {
		return &PlayerError{Status: env.Error.Status, Message: env.Error.Message, Reason: env.Error.Reason}
	}
	return &Error{Status: env.Error.Status, Message: env.Error.Message}
}

// sendJSON dispatches the request and decodes the body into T.
func sendJSON[T any](ctx context.Context, c *Client, r *request) (*Response[T], error) {
	res, err := c.sendText(ctx, r)
	if err != nil {
		return nil, err
	}
	var data T
	if err := json.Unmarshal([]byte(res.Data), &data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &Response[T]{Data: data, Expires: res.Expires}, nil
}

// sendOptJSON dispatches the request and decodes the body into T, mapping an
// empty 2xx body to nil. Used by endpoints that legitimately have nothing to
// return, like the currently-playing item.
func sendOptJSON[T any](ctx context.Context, c *Client, r *request) (*Response[*T], error) {
	res, err := c.sendText(ctx, r)
	if err != nil {
		return nil, err
	}
	if res.Data == "" {
		return &Response[*T]{Data: nil, Expires: res.Expires}, nil
	}
	data := new(T)
	if err := json.Unmarshal([]byte(res.Data), data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &Response[*T]{Data: data, Expires: res.Expires}, nil
}

// sendEmpty dispatches the request and discards any body.
func (c *Client) sendEmpty(ctx context.Context, r *request) error {
	_, err := c.sendText(ctx, r)
	return err
}

// sendSnapshotID dispatches the request and extracts the playlist snapshot id
// from the response.
func (c *Client) sendSnapshotID(ctx context.Context, r *request) (string, error) {
	res, err := sendJSON[struct {
		SnapshotID string `json:"snapshot_id"`
	}](ctx, c, r)
	if err != nil {
		return "", err
	}
	return res.Data.SnapshotID, nil
}
