package spotr

import (
	"context"
)

// GetPlaylist gets a playlist with its first page of items inline.
func (c *Client) GetPlaylist(ctx context.Context, id string, market Market) (*Response[Playlist], error) {
	return sendJSON[Playlist](ctx, c, get("/playlists/"+id).param("market", string(market)))
}

// GetPlaylistItems gets one page of a playlist's items. Limit has a maximum
// of 100.
func (c *Client) GetPlaylistItems(ctx context.Context, id string, limit, offset int, market Market) (*Response[Page[PlaylistItem]], error) {
	return sendJSON[Page[PlaylistItem]](ctx, c,
		get("/playlists/"+id+"/tracks").paramInt("limit", limit).paramInt("offset", offset).param("market", string(market)))
}

// GetCurrentUserPlaylists gets one page of the current user's playlists.
func (c *Client) GetCurrentUserPlaylists(ctx context.Context, limit, offset int) (*Response[Page[PlaylistSimplified]], error) {
	return sendJSON[Page[PlaylistSimplified]](ctx, c,
		get("/me/playlists").paramInt("limit", limit).paramInt("offset", offset))
}

// GetUserPlaylists gets one page of a user's public playlists.
func (c *Client) GetUserPlaylists(ctx context.Context, userID string, limit, offset int) (*Response[Page[PlaylistSimplified]], error) {
	return sendJSON[Page[PlaylistSimplified]](ctx, c,
		get("/users/"+userID+"/playlists").paramInt("limit", limit).paramInt("offset", offset))
}

// PlaylistDetails are the mutable attributes of a playlist. Nil fields are
// left unchanged.
type PlaylistDetails struct {
	Name          *string `json:"name,omitempty"`
	Public        *bool   `json:"public,omitempty"`
	Collaborative *bool   `json:"collaborative,omitempty"`
	Description   *string `json:"description,omitempty"`
}

// CreatePlaylist creates an empty playlist owned by a user.
func (c *Client) CreatePlaylist(ctx context.Context, userID string, details PlaylistDetails) (*Response[Playlist], error) {
	return sendJSON[Playlist](ctx, c, post("/users/"+userID+"/playlists").jsonBody(details))
}

// ChangePlaylistDetails updates a playlist's attributes.
func (c *Client) ChangePlaylistDetails(ctx context.Context, id string, details PlaylistDetails) error {
	return c.sendEmpty(ctx, put("/playlists/"+id).jsonBody(details))
}

// AddTracksToPlaylist appends items to a playlist, optionally at a position,
// returning the new snapshot id. Maximum 100 URIs per call.
func (c *Client) AddTracksToPlaylist(ctx context.Context, id string, uris []string, position *int) (string, error) {
	body := map[string]any{"uris": uris}
	if position != nil {
		body["position"] = *position
	}
	return c.sendSnapshotID(ctx, post("/playlists/"+id+"/tracks").jsonBody(body))
}

// RemoveTracksFromPlaylist removes all occurrences of the given items,
// returning the new snapshot id.
func (c *Client) RemoveTracksFromPlaylist(ctx context.Context, id string, uris []string) (string, error) {
	type trackRef struct {
		URI string `json:"uri"`
	}
	refs := make([]trackRef, len(uris))
	for i, uri := range uris {
		refs[i] = trackRef{URI: uri}
	}
	return c.sendSnapshotID(ctx, del("/playlists/"+id+"/tracks").jsonBody(map[string]any{"tracks": refs}))
}

// ReorderPlaylistTracks moves rangeLength items starting at rangeStart to sit
// before insertBefore, returning the new snapshot id. snapshotID may be empty
// to operate on the latest version.
func (c *Client) ReorderPlaylistTracks(ctx context.Context, id string, rangeStart, rangeLength, insertBefore int, snapshotID string) (string, error) {
	body := map[string]any{
		"range_start":   rangeStart,
		"range_length":  rangeLength,
		"insert_before": insertBefore,
	}
	if snapshotID != "" {
		body["snapshot_id"] = snapshotID
	}
	return c.sendSnapshotID(ctx, put("/playlists/"+id+"/tracks").jsonBody(body))
}

// ReplacePlaylistTracks replaces the entire playlist contents. Maximum 100
// URIs per call.
func (c *Client) ReplacePlaylistTracks(ctx context.Context, id string, uris []string) error {
	return c.sendEmpty(ctx, put("/playlists/"+id+"/tracks").jsonBody(map[string]any{"uris": uris}))
}

// GetPlaylistCoverImages gets the cover art of a playlist.
func (c *Client) GetPlaylistCoverImages(ctx context.Context, id string) (*Response[[]Image], error) {
	return sendJSON[[]Image](ctx, c, get("/playlists/"+id+"/images"))
}
