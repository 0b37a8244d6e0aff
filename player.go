package spotr

import (
	"context"
	"strconv"
)

// PlayOptions control what the Play call starts playing. The zero value
// resumes the current playback.
type PlayOptions struct {
	// ContextURI starts playback of an album, artist, or playlist.
	ContextURI string `json:"context_uri,omitempty"`
	// URIs starts playback of a list of tracks. Mutually exclusive with
	// ContextURI.
	URIs []string `json:"uris,omitempty"`
	// OffsetPosition starts playback at this position inside the context.
	OffsetPosition *int `json:"-"`
	// OffsetURI starts playback at this item inside the context.
	OffsetURI string `json:"-"`
	// PositionMS seeks inside the starting track.
	PositionMS *int `json:"position_ms,omitempty"`
}

// GetDevices gets the playback devices available to the user.
func (c *Client) GetDevices(ctx context.Context) (*Response[[]Device], error) {
	res, err := sendJSON[struct {
		Devices []Device `json:"devices"`
	}](ctx, c, get("/me/player/devices"))
	if err != nil {
		return nil, err
	}
	return &Response[[]Device]{Data: res.Data.Devices, Expires: res.Expires}, nil
}

// GetCurrentPlayback gets the full playback state. The data is nil when
// nothing is playing and no device is active.
func (c *Client) GetCurrentPlayback(ctx context.Context, market Market) (*Response[*CurrentPlayback], error) {
	return sendOptJSON[CurrentPlayback](ctx, c,
		get("/me/player").param("market", string(market)).param("additional_types", "episode"))
}

// GetCurrentlyPlaying gets the item playing right now. The data is nil when
// nothing is playing.
func (c *Client) GetCurrentlyPlaying(ctx context.Context, market Market) (*Response[*CurrentlyPlaying], error) {
	return sendOptJSON[CurrentlyPlaying](ctx, c,
		get("/me/player/currently-playing").param("market", string(market)).param("additional_types", "episode"))
}

// GetRecentlyPlayed gets the user's recently played tracks, newest first.
func (c *Client) GetRecentlyPlayed(ctx context.Context, limit int, after, before string) (*Response[CursorPage[PlayHistory]], error) {
	return sendJSON[CursorPage[PlayHistory]](ctx, c,
		get("/me/player/recently-played").paramInt("limit", limit).param("after", after).param("before", before))
}

// Play starts or resumes playback, optionally on a specific device.
func (c *Client) Play(ctx context.Context, deviceID string, opts PlayOptions) error {
	body := map[string]any{}
	if opts.ContextURI != "" {
		body["context_uri"] = opts.ContextURI
	}
	if len(opts.URIs) > 0 {
		body["uris"] = opts.URIs
	}
	if opts.OffsetPosition != nil {
		body["offset"] = map[string]any{"position": *opts.OffsetPosition}
	} else if opts.OffsetURI != "" {
		body["offset"] = map[string]any{"uri": opts.OffsetURI}
	}
	if opts.PositionMS != nil {
		body["position_ms"] = *opts.PositionMS
	}
	req := put("/me/player/play").param("device_id", deviceID)
	if len(body) > 0 {
		req.jsonBody(body)
	}
	return c.sendEmpty(ctx, req)
}

// Pause pauses playback.
func (c *Client) Pause(ctx context.Context, deviceID string) error {
	return c.sendEmpty(ctx, put("/me/player/pause").param("device_id", deviceID))
}

// SkipNext skips to the next track in the context.
func (c *Client) SkipNext(ctx context.Context, deviceID string) error {
	return c.sendEmpty(ctx, post("/me/player/next").param("device_id", deviceID))
}

// SkipPrevious skips to the previous track in the context.
func (c *Client) SkipPrevious(ctx context.Context, deviceID string) error {
	return c.sendEmpty(ctx, post("/me/player/previous").param("device_id", deviceID))
}

// Seek seeks inside the currently playing track.
func (c *Client) Seek(ctx context.Context, positionMS int, deviceID string) error {
	return c.sendEmpty(ctx, put("/me/player/seek").paramInt("position_ms", positionMS).param("device_id", deviceID))
}

// SetRepeat sets the repeat mode.
func (c *Client) SetRepeat(ctx context.Context, state RepeatState, deviceID string) error {
	return c.sendEmpty(ctx, put("/me/player/repeat").param("state", string(state)).param("device_id", deviceID))
}

// SetShuffle toggles shuffle.
func (c *Client) SetShuffle(ctx context.Context, shuffle bool, deviceID string) error {
	return c.sendEmpty(ctx, put("/me/player/shuffle").param("state", strconv.FormatBool(shuffle)).param("device_id", deviceID))
}

// SetVolume sets the playback volume percentage.
func (c *Client) SetVolume(ctx context.Context, percent int, deviceID string) error {
	return c.sendEmpty(ctx, put("/me/player/volume").paramInt("volume_percent", percent).param("device_id", deviceID))
}

// TransferPlayback moves playback to a different device; play controls
// whether playback starts immediately there.
func (c *Client) TransferPlayback(ctx context.Context, deviceID string, play bool) error {
	return c.sendEmpty(ctx, put("/me/player").jsonBody(map[string]any{
		"device_ids": []string{deviceID},
		"play":       play,
	}))
}

// AddToQueue appends an item to the playback queue.
func (c *Client) AddToQueue(ctx context.Context, uri, deviceID string) error {
	return c.sendEmpty(ctx, post("/me/player/queue").param("uri", uri).param("device_id", deviceID))
}
