package spotr

import (
	"context"
	"strings"
)

// FollowArtists follows artists on behalf of the user, in batches of 50.
func (c *Client) FollowArtists(ctx context.Context, ids []string) error {
	return c.chunkedWrite(ctx, ids, 50, func() *request { return put("/me/following").param("type", "artist") })
}

// UnfollowArtists unfollows artists, in batches of 50.
func (c *Client) UnfollowArtists(ctx context.Context, ids []string) error {
	return c.chunkedWrite(ctx, ids, 50, func() *request { return del("/me/following").param("type", "artist") })
}

// FollowUsers follows users on behalf of the user, in batches of 50.
func (c *Client) FollowUsers(ctx context.Context, ids []string) error {
	return c.chunkedWrite(ctx, ids, 50, func() *request { return put("/me/following").param("type", "user") })
}

// UnfollowUsers unfollows users, in batches of 50.
func (c *Client) UnfollowUsers(ctx context.Context, ids []string) error {
	return c.chunkedWrite(ctx, ids, 50, func() *request { return del("/me/following").param("type", "user") })
}

// IsFollowingArtists reports, per input ID and in input order, whether the
// user follows the artist. Checked in batches of 50.
func (c *Client) IsFollowingArtists(ctx context.Context, ids []string) (*Response[[]bool], error) {
	return c.followingCheck(ctx, "artist", ids)
}

// IsFollowingUsers reports, per input ID and in input order, whether the
// user follows the other user. Checked in batches of 50.
func (c *Client) IsFollowingUsers(ctx context.Context, ids []string) (*Response[[]bool], error) {
	return c.followingCheck(ctx, "user", ids)
}

func (c *Client) followingCheck(ctx context.Context, kind string, ids []string) (*Response[[]bool], error) {
	return chunked(ctx, ids, 50, func(ctx context.Context, chunk []string) (*Response[[]bool], error) {
		return sendJSON[[]bool](ctx, c,
			get("/me/following/contains").param("type", kind).param("ids", strings.Join(chunk, ",")))
	})
}

// GetFollowedArtists gets one cursor page of the artists the user follows.
func (c *Client) GetFollowedArtists(ctx context.Context, limit int, after string) (*Response[CursorPage[Artist]], error) {
	res, err := sendJSON[struct {
		Artists CursorPage[Artist] `json:"artists"`
	}](ctx, c, get("/me/following").param("type", "artist").paramInt("limit", limit).param("after", after))
	if err != nil {
		return nil, err
	}
	return &Response[CursorPage[Artist]]{Data: res.Data.Artists, Expires: res.Expires}, nil
}

// FollowPlaylist follows a playlist, publicly or privately.
func (c *Client) FollowPlaylist(ctx context.Context, playlistID string, public bool) error {
	return c.sendEmpty(ctx, put("/playlists/"+playlistID+"/followers").jsonBody(map[string]any{"public": public}))
}

// UnfollowPlaylist unfollows a playlist.
func (c *Client) UnfollowPlaylist(ctx context.Context, playlistID string) error {
	return c.sendEmpty(ctx, del("/playlists/"+playlistID+"/followers"))
}

// AreFollowingPlaylist reports, per user ID and in input order, whether each
// user follows the playlist. Maximum five IDs.
func (c *Client) AreFollowingPlaylist(ctx context.Context, playlistID string, userIDs []string) (*Response[[]bool], error) {
	return sendJSON[[]bool](ctx, c,
		get("/playlists/"+playlistID+"/followers/contains").param("ids", strings.Join(userIDs, ",")))
}
