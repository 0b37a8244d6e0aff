package spotr

// Object shapes follow
// https://developer.spotify.com/documentation/web-api/reference/

// Image is an image resource (album art, profile pictures, category icons).
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// Followers holds follower information for artists, playlists, and users.
type Followers struct {
	Href  string `json:"href"`
	Total int    `json:"total"`
}

// Copyright is a copyright statement on an album or show.
type Copyright struct {
	Text string `json:"text"`
	Type string `json:"type"` // "C" for copyright, "P" for performance
}

// ResumePoint is the user's most recent position in an episode.
type ResumePoint struct {
	FullyPlayed      bool `json:"fully_played"`
	ResumePositionMS int  `json:"resume_position_ms"`
}

// Context is the playback context (album, artist, or playlist) a track is
// played from.
type Context struct {
	URI          string            `json:"uri"`
	Href         string            `json:"href"`
	ExternalURLs map[string]string `json:"external_urls"`
	Type         string            `json:"type"`
}
