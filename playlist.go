package spotr

// TracksRef is the link-plus-count stub of a playlist's tracks in listings.
type TracksRef struct {
	Href  string `json:"href"`
	Total int    `json:"total"`
}

// PlaylistSimplified is the reduced playlist view returned in listings.
type PlaylistSimplified struct {
	Collaborative bool              `json:"collaborative"`
	Description   string            `json:"description"`
	ExternalURLs  map[string]string `json:"external_urls"`
	Href          string            `json:"href"`
	ID            string            `json:"id"`
	Images        []Image           `json:"images"`
	Name          string            `json:"name"`
	Owner         PublicUser        `json:"owner"`
	Public        *bool             `json:"public"`
	SnapshotID    string            `json:"snapshot_id"`
	Tracks        TracksRef         `json:"tracks"`
	URI           string            `json:"uri"`
}

// Playlist is the full playlist object with its first page of items inline.
type Playlist struct {
	Collaborative bool                `json:"collaborative"`
	Description   string              `json:"description"`
	ExternalURLs  map[string]string   `json:"external_urls"`
	Followers     Followers           `json:"followers"`
	Href          string              `json:"href"`
	ID            string              `json:"id"`
	Images        []Image             `json:"images"`
	Name          string              `json:"name"`
	Owner         PublicUser          `json:"owner"`
	Public        *bool               `json:"public"`
	SnapshotID    string              `json:"snapshot_id"`
	Tracks        Page[PlaylistItem]  `json:"tracks"`
	URI           string              `json:"uri"`
}

// PlaylistItem is one entry of a playlist. Track is nil for items the
// requesting market cannot play.
type PlaylistItem struct {
	AddedAt string      `json:"added_at"`
	AddedBy *PublicUser `json:"added_by"`
	IsLocal bool        `json:"is_local"`
	Track   *Track      `json:"track"`
}
