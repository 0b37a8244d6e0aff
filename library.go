package spotr

import (
	"context"
	"strings"
)

// GetSavedTracks gets one page of the user's saved tracks.
func (c *Client) GetSavedTracks(ctx context.Context, limit, offset int, market Market) (*Response[Page[SavedTrack]], error) {
	return sendJSON[Page[SavedTrack]](ctx, c,
		get("/me/tracks").paramInt("limit", limit).paramInt("offset", offset).param("market", string(market)))
}

// GetSavedAlbums gets one page of the user's saved albums.
func (c *Client) GetSavedAlbums(ctx context.Context, limit, offset int, market Market) (*Response[Page[SavedAlbum]], error) {
	return sendJSON[Page[SavedAlbum]](ctx, c,
		get("/me/albums").paramInt("limit", limit).paramInt("offset", offset).param("market", string(market)))
}

// GetSavedShows gets one page of the user's saved shows.
func (c *Client) GetSavedShows(ctx context.Context, limit, offset int) (*Response[Page[SavedShow]], error) {
	return sendJSON[Page[SavedShow]](ctx, c,
		get("/me/shows").paramInt("limit", limit).paramInt("offset", offset))
}

// SaveTracks adds tracks to the user's library, in batches of 50.
func (c *Client) SaveTracks(ctx context.Context, ids []string) error {
	return c.chunkedWrite(ctx, ids, 50, func() *request { return put("/me/tracks") })
}

// RemoveSavedTracks removes tracks from the user's library, in batches of 50.
func (c *Client) RemoveSavedTracks(ctx context.Context, ids []string) error {
	return c.chunkedWrite(ctx, ids, 50, func() *request { return del("/me/tracks") })
}

// SaveAlbums adds albums to the user's library, in batches of 50.
func (c *Client) SaveAlbums(ctx context.Context, ids []string) error {
	return c.chunkedWrite(ctx, ids, 50, func() *request { return put("/me/albums") })
}

// RemoveSavedAlbums removes albums from the user's library, in batches of 50.
func (c *Client) RemoveSavedAlbums(ctx context.Context, ids []string) error {
	return c.chunkedWrite(ctx, ids, 50, func() *request { return del("/me/albums") })
}

// HasSavedTracks reports, per input ID and in input order, whether the track
// is in the user's library. Checked in batches of 50.
func (c *Client) HasSavedTracks(ctx context.Context, ids []string) (*Response[[]bool], error) {
	return c.containsCheck(ctx, "/me/tracks/contains", ids)
}

// HasSavedAlbums reports, per input ID and in input order, whether the album
// is in the user's library. Checked in batches of 50.
func (c *Client) HasSavedAlbums(ctx context.Context, ids []string) (*Response[[]bool], error) {
	return c.containsCheck(ctx, "/me/albums/contains", ids)
}

func (c *Client) containsCheck(ctx context.Context, path string, ids []string) (*Response[[]bool], error) {
	return chunked(ctx, ids, 50, func(ctx context.Context, chunk []string) (*Response[[]bool], error) {
		return sendJSON[[]bool](ctx, c,
			get(path).param("ids", strings.Join(chunk, ",")))
	})
}
