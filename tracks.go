package spotr

import (
	"context"
	"strings"
)

// GetTrack gets information about a single track.
func (c *Client) GetTrack(ctx context.Context, id string, market Market) (*Response[Track], error) {
	return sendJSON[Track](ctx, c, get("/tracks/"+id).param("market", string(market)))
}

// GetTracks gets information about several tracks. The IDs are fetched in
// batches of 50 (the API maximum) and returned in input order.
func (c *Client) GetTracks(ctx context.Context, ids []string, market Market) (*Response[[]Track], error) {
	return chunked(ctx, ids, 50, func(ctx context.Context, chunk []string) (*Response[[]Track], error) {
		res, err := sendJSON[struct {
			Tracks []Track `json:"tracks"`
		}](ctx, c, get("/tracks").param("ids", strings.Join(chunk, ",")).param("market", string(market)))
		if err != nil {
			return nil, err
		}
		return &Response[[]Track]{Data: res.Data.Tracks, Expires: res.Expires}, nil
	})
}

// GetAudioFeatures gets the audio feature summary of a single track.
func (c *Client) GetAudioFeatures(ctx context.Context, id string) (*Response[AudioFeatures], error) {
	return sendJSON[AudioFeatures](ctx, c, get("/audio-features/"+id))
}

// GetSeveralAudioFeatures gets audio features for several tracks. The IDs are
// fetched in batches of 100 (the API maximum) and returned in input order.
func (c *Client) GetSeveralAudioFeatures(ctx context.Context, ids []string) (*Response[[]AudioFeatures], error) {
	return chunked(ctx, ids, 100, func(ctx context.Context, chunk []string) (*Response[[]AudioFeatures], error) {
		res, err := sendJSON[struct {
			AudioFeatures []AudioFeatures `json:"audio_features"`
		}](ctx, c, get("/audio-features").param("ids", strings.Join(chunk, ",")))
		if err != nil {
			return nil, err
		}
		return &Response[[]AudioFeatures]{Data: res.Data.AudioFeatures, Expires: res.Expires}, nil
	})
}
