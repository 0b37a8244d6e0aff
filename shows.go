package spotr

import (
	"context"
	"strings"
)

// GetShow gets information about a single show.
func (c *Client) GetShow(ctx context.Context, id string, market Market) (*Response[Show], error) {
	return sendJSON[Show](ctx, c, get("/shows/"+id).param("market", string(market)))
}

// GetShows gets information about several shows. The IDs are fetched in
// batches of 50 (the API maximum) and returned in input order.
func (c *Client) GetShows(ctx context.Context, ids []string, market Market) (*Response[[]ShowSimplified], error) {
	return chunked(ctx, ids, 50, func(ctx context.Context, chunk []string) (*Response[[]ShowSimplified], error) {
		res, err := sendJSON[struct {
			Shows []ShowSimplified `json:"shows"`
		}](ctx, c, get("/shows").param("ids", strings.Join(chunk, ",")).param("market", string(market)))
		if err != nil {
			return nil, err
		}
		return &Response[[]ShowSimplified]{Data: res.Data.Shows, Expires: res.Expires}, nil
	})
}

// GetShowEpisodes gets one page of a show's episodes. Limit has a maximum of 50.
func (c *Client) GetShowEpisodes(ctx context.Context, id string, limit, offset int, market Market) (*Response[Page[EpisodeSimplified]], error) {
	return sendJSON[Page[EpisodeSimplified]](ctx, c,
		get("/shows/"+id+"/episodes").paramInt("limit", limit).paramInt("offset", offset).param("market", string(market)))
}

// GetEpisode gets information about a single episode.
func (c *Client) GetEpisode(ctx context.Context, id string, market Market) (*Response[Episode], error) {
	return sendJSON[Episode](ctx, c, get("/episodes/"+id).param("market", string(market)))
}

// GetEpisodes gets information about several episodes. The IDs are fetched
// in batches of 50 (the API maximum) and returned in input order.
func (c *Client) GetEpisodes(ctx context.Context, ids []string, market Market) (*Response[[]Episode], error) {
	return chunked(ctx, ids, 50, func(ctx context.Context, chunk []string) (*Response[[]Episode], error) {
		res, err := sendJSON[struct {
			Episodes []Episode `json:"episodes"`
		}](ctx, c, get("/episodes").param("ids", strings.Join(chunk, ",")).param("market", string(market)))
		if err != nil {
			return nil, err
		}
		return &Response[[]Episode]{Data: res.Data.Episodes, Expires: res.Expires}, nil
	})
}
