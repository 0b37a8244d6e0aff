package spotr

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// chunked splits ids into chunks of at most size, fetches every chunk
// concurrently, and reassembles the results in input order regardless of
// which chunk's response arrives first. The combined expiry is the earliest
// of the chunk expiries.
//
// Spotify's multi-ID endpoints return one result per requested ID, so the
// combined output has exactly len(ids) entries.
func chunked[T any](ctx context.Context, ids []string, size int, fetch func(ctx context.Context, chunk []string) (*Response[[]T], error)) (*Response[[]T], error) {
	out := make([]T, len(ids))

	var mu sync.Mutex
	var expires time.Time

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunk := ids[start:end]
		g.Go(func() error {
			res, err := fetch(ctx, chunk)
			if err != nil {
				return err
			}
			mu.Lock()
			copy(out[start:], res.Data)
			if expires.IsZero() || res.Expires.Before(expires) {
				expires = res.Expires
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Response[[]T]{Data: out, Expires: expires}, nil
}

// chunkedWrite issues one bodyless write request per chunk of ids, appended
// as a comma-joined ids query parameter. build returns a fresh request for
// each chunk. Chunks run sequentially; write endpoints return no data, so
// there is nothing to reassemble.
func (c *Client) chunkedWrite(ctx context.Context, ids []string, size int, build func() *request) error {
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		req := build().param("ids", strings.Join(ids[start:end], ","))
		if err := c.sendEmpty(ctx, req); err != nil {
			return err
		}
	}
	return nil
}
