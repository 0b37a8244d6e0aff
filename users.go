package spotr

import "context"

// GetCurrentUser gets the authorized user's profile. Email and Country
// require the user-read-email and user-read-private scopes.
func (c *Client) GetCurrentUser(ctx context.Context) (*Response[PrivateUser], error) {
	return sendJSON[PrivateUser](ctx, c, get("/me"))
}

// GetUser gets a user's public profile.
func (c *Client) GetUser(ctx context.Context, userID string) (*Response[PublicUser], error) {
	return sendJSON[PublicUser](ctx, c, get("/users/"+userID))
}
