package spotr

// AlbumSimplified is the reduced album view returned inside other objects.
type AlbumSimplified struct {
	AlbumGroup           string             `json:"album_group,omitempty"` // only on artist album listings
	AlbumType            string             `json:"album_type"`
	Artists              []ArtistSimplified `json:"artists"`
	AvailableMarkets     []string           `json:"available_markets"`
	ExternalURLs         map[string]string  `json:"external_urls"`
	Href                 string             `json:"href"`
	ID                   string             `json:"id"`
	Images               []Image            `json:"images"`
	Name                 string             `json:"name"`
	ReleaseDate          string             `json:"release_date"`
	ReleaseDatePrecision string             `json:"release_date_precision"`
	URI                  string             `json:"uri"`
}

// Album is the full album object. It embeds the simplified view and adds the
// fields only present when the album is fetched directly.
type Album struct {
	AlbumSimplified
	Copyrights  []Copyright            `json:"copyrights"`
	ExternalIDs map[string]string      `json:"external_ids"`
	Genres      []string               `json:"genres"`
	Label       string                 `json:"label"`
	Popularity  int                    `json:"popularity"`
	Tracks      Page[TrackSimplified]  `json:"tracks"`
}

// SavedAlbum is an album saved in the user's library.
type SavedAlbum struct {
	AddedAt string `json:"added_at"`
	Album   Album  `json:"album"`
}
