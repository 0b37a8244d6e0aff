package spotr

import "context"

// GetTopArtists gets one page of the user's most played artists over the
// given time range.
func (c *Client) GetTopArtists(ctx context.Context, limit, offset int, timeRange TimeRange) (*Response[Page[Artist]], error) {
	return sendJSON[Page[Artist]](ctx, c,
		get("/me/top/artists").paramInt("limit", limit).paramInt("offset", offset).param("time_range", string(timeRange)))
}

// GetTopTracks gets one page of the user's most played tracks over the given
// time range.
func (c *Client) GetTopTracks(ctx context.Context, limit, offset int, timeRange TimeRange) (*Response[Page[Track]], error) {
	return sendJSON[Page[Track]](ctx, c,
		get("/me/top/tracks").paramInt("limit", limit).paramInt("offset", offset).param("time_range", string(timeRange)))
}
