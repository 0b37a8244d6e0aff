package spotr

import "strings"

// Scope is a permission the user can grant during the authorization-code flow.
//
// https://developer.spotify.com/documentation/web-api/concepts/scopes
type Scope string

const (
	ScopeUgcImageUpload            Scope = "ugc-image-upload"
	ScopeUserReadPlaybackState     Scope = "user-read-playback-state"
	ScopeUserModifyPlaybackState   Scope = "user-modify-playback-state"
	ScopeUserReadCurrentlyPlaying  Scope = "user-read-currently-playing"
	ScopeStreaming                 Scope = "streaming"
	ScopeAppRemoteControl          Scope = "app-remote-control"
	ScopeUserReadEmail             Scope = "user-read-email"
	ScopeUserReadPrivate           Scope = "user-read-private"
	ScopePlaylistReadCollaborative Scope = "playlist-read-collaborative"
	ScopePlaylistModifyPublic      Scope = "playlist-modify-public"
	ScopePlaylistReadPrivate       Scope = "playlist-read-private"
	ScopePlaylistModifyPrivate     Scope = "playlist-modify-private"
	ScopeUserLibraryModify         Scope = "user-library-modify"
	ScopeUserLibraryRead           Scope = "user-library-read"
	ScopeUserTopRead               Scope = "user-top-read"
	ScopeUserReadRecentlyPlayed    Scope = "user-read-recently-played"
	ScopeUserReadPlaybackPosition  Scope = "user-read-playback-position"
	ScopeUserFollowRead            Scope = "user-follow-read"
	ScopeUserFollowModify          Scope = "user-follow-modify"
)

func joinScopes(scopes []Scope) string {
	parts := make([]string, len(scopes))
	for i, s := range scopes {
		parts[i] = string(s)
	}
	return strings.Join(parts, " ")
}
