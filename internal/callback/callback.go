// Package callback runs the local HTTP server that receives the OAuth
// authorization redirect during the CLI login flow.
package callback

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/lunamark/spotr"
)

// Result is the outcome of one authorization flow.
type Result struct {
	err error
}

func (r Result) Error() error {
	return r.err
}

// Handler handles the OAuth redirect for the authorization-code flow. It
// completes the exchange through the spotr client and reports the outcome on
// a channel; only the first callback request is processed.
type Handler struct {
	client      *spotr.Client
	redirectURI string
	resultChan  chan Result
	once        sync.Once
	mu          sync.Mutex
	callbackHit bool
}

// NewHandler creates a callback handler bound to a client whose pending
// authorization state was created by AuthorizationURL. redirectURI must be
// the exact URI embedded in the authorization URL.
func NewHandler(client *spotr.Client, redirectURI string) *Handler {
	return &Handler{
		client:      client,
		redirectURI: redirectURI,
		resultChan:  make(chan Result, 1),
	}
}

// ServeHTTP validates and completes the redirect.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	if h.callbackHit {
		h.mu.Unlock()
		http.Error(w, "Callback already processed", http.StatusBadRequest)
		return
	}
	h.callbackHit = true
	h.mu.Unlock()

	redirected := h.redirectURI + "?" + r.URL.RawQuery
	if err := h.client.Redirected(r.Context(), redirected); err != nil {
		h.send(Result{err: err})
		status := http.StatusBadRequest
		var declined *spotr.AuthDeclinedError
		if errors.As(err, &declined) {
			status = http.StatusForbidden
		}
		http.Error(w, err.Error(), status)
		return
	}

	h.send(Result{})

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head><title>Authorization Successful</title></head>
<body>
	<h1>Authorization Successful</h1>
	<p>You can close this window and return to the terminal.</p>
</body>
</html>
`)
}

// send delivers the result exactly once and closes the channel.
func (h *Handler) send(result Result) {
	h.once.Do(func() {
		h.resultChan <- result
		close(h.resultChan)
	})
}

// Result returns the channel that receives the flow outcome. It is closed
// after delivering exactly one value.
func (h *Handler) Result() <-chan Result {
	return h.resultChan
}

// Serve listens on addr and serves the callback path until a result arrives
// or ctx is cancelled. It returns the flow outcome.
func Serve(ctx context.Context, addr, path string, h *Handler) error {
	mux := http.NewServeMux()
	mux.Handle(path, h)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	srv := &http.Server{Handler: mux}
	go srv.Serve(ln)
	defer srv.Shutdown(context.Background())

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-h.Result():
		return res.Error()
	}
}
