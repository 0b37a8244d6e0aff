package spotr

import (
	"context"
	"strings"
)

// GetArtist gets information about a single artist.
func (c *Client) GetArtist(ctx context.Context, id string) (*Response[Artist], error) {
	return sendJSON[Artist](ctx, c, get("/artists/"+id))
}

// GetArtists gets information about several artists. The IDs are fetched in
// batches of 50 (the API maximum) and returned in input order.
func (c *Client) GetArtists(ctx context.Context, ids []string) (*Response[[]Artist], error) {
	return chunked(ctx, ids, 50, func(ctx context.Context, chunk []string) (*Response[[]Artist], error) {
		res, err := sendJSON[struct {
			Artists []Artist `json:"artists"`
		}](ctx, c, get("/artists").param("ids", strings.Join(chunk, ",")))
		if err != nil {
			return nil, err
		}
		return &Response[[]Artist]{Data: res.Data.Artists, Expires: res.Expires}, nil
	})
}

// GetArtistAlbums gets one page of an artist's albums. includeGroups filters
// by album, single, appears_on, compilation; empty means all.
func (c *Client) GetArtistAlbums(ctx context.Context, id string, includeGroups []string, limit, offset int, market Market) (*Response[Page[AlbumSimplified]], error) {
	req := get("/artists/" + id + "/albums").paramInt("limit", limit).paramInt("offset", offset).param("market", string(market))
	if len(includeGroups) > 0 {
		req.param("include_groups", strings.Join(includeGroups, ","))
	}
	return sendJSON[Page[AlbumSimplified]](ctx, c, req)
}

// GetArtistTopTracks gets an artist's top tracks. The market is required by
// the API.
func (c *Client) GetArtistTopTracks(ctx context.Context, id string, market Market) (*Response[[]Track], error) {
	res, err := sendJSON[struct {
		Tracks []Track `json:"tracks"`
	}](ctx, c, get("/artists/"+id+"/top-tracks").param("market", string(market)))
	if err != nil {
		return nil, err
	}
	return &Response[[]Track]{Data: res.Data.Tracks, Expires: res.Expires}, nil
}

// GetRelatedArtists gets artists similar to an artist.
func (c *Client) GetRelatedArtists(ctx context.Context, id string) (*Response[[]Artist], error) {
	res, err := sendJSON[struct {
		Artists []Artist `json:"artists"`
	}](ctx, c, get("/artists/"+id+"/related-artists"))
	if err != nil {
		return nil, err
	}
	return &Response[[]Artist]{Data: res.Data.Artists, Expires: res.Expires}, nil
}
