package spotr

import (
	"context"
	"strings"
)

// GetAlbum gets information about a single album.
func (c *Client) GetAlbum(ctx context.Context, id string, market Market) (*Response[Album], error) {
	return sendJSON[Album](ctx, c, get("/albums/"+id).param("market", string(market)))
}

// GetAlbums gets information about several albums. The IDs are fetched in
// batches of 20 (the API maximum) and returned in input order.
func (c *Client) GetAlbums(ctx context.Context, ids []string, market Market) (*Response[[]Album], error) {
	return chunked(ctx, ids, 20, func(ctx context.Context, chunk []string) (*Response[[]Album], error) {
		res, err := sendJSON[struct {
			Albums []Album `json:"albums"`
		}](ctx, c, get("/albums").param("ids", strings.Join(chunk, ",")).param("market", string(market)))
		if err != nil {
			return nil, err
		}
		return &Response[[]Album]{Data: res.Data.Albums, Expires: res.Expires}, nil
	})
}

// GetAlbumTracks gets one page of an album's tracks. Limit has a maximum of 50.
func (c *Client) GetAlbumTracks(ctx context.Context, id string, limit, offset int, market Market) (*Response[Page[TrackSimplified]], error) {
	return sendJSON[Page[TrackSimplified]](ctx, c,
		get("/albums/"+id+"/tracks").paramInt("limit", limit).paramInt("offset", offset).param("market", string(market)))
}
