package spotr

// TrackLink points at the original track when relinking applies a market
// restriction.
type TrackLink struct {
	ExternalURLs map[string]string `json:"external_urls"`
	Href         string            `json:"href"`
	ID           string            `json:"id"`
	URI          string            `json:"uri"`
}

// TrackSimplified is the reduced track view returned inside other objects.
type TrackSimplified struct {
	Artists          []ArtistSimplified `json:"artists"`
	AvailableMarkets []string           `json:"available_markets"`
	DiscNumber       int                `json:"disc_number"`
	DurationMS       int                `json:"duration_ms"`
	Explicit         bool               `json:"explicit"`
	ExternalURLs     map[string]string  `json:"external_urls"`
	Href             string             `json:"href"`
	ID               string             `json:"id"`
	IsLocal          bool               `json:"is_local"`
	IsPlayable       *bool              `json:"is_playable,omitempty"`
	LinkedFrom       *TrackLink         `json:"linked_from,omitempty"`
	Name             string             `json:"name"`
	PreviewURL       string             `json:"preview_url"`
	TrackNumber      int                `json:"track_number"`
	URI              string             `json:"uri"`
}

// Track is the full track object.
type Track struct {
	TrackSimplified
	Album       AlbumSimplified   `json:"album"`
	ExternalIDs map[string]string `json:"external_ids"`
	Popularity  int               `json:"popularity"`
}

// SavedTrack is a track saved in the user's library.
type SavedTrack struct {
	AddedAt string `json:"added_at"`
	Track   Track  `json:"track"`
}

// PlayHistory is one entry of the user's recently played tracks.
type PlayHistory struct {
	Track    TrackSimplified `json:"track"`
	PlayedAt string          `json:"played_at"`
	Context  *Context        `json:"context"`
}

// AudioFeatures are the audio analysis summary attributes of a track.
type AudioFeatures struct {
	Acousticness     float64 `json:"acousticness"`
	AnalysisURL      string  `json:"analysis_url"`
	Danceability     float64 `json:"danceability"`
	DurationMS       int     `json:"duration_ms"`
	Energy           float64 `json:"energy"`
	ID               string  `json:"id"`
	Instrumentalness float64 `json:"instrumentalness"`
	Key              int     `json:"key"`
	Liveness         float64 `json:"liveness"`
	Loudness         float64 `json:"loudness"`
	Mode             int     `json:"mode"`
	Speechiness      float64 `json:"speechiness"`
	Tempo            float64 `json:"tempo"`
	TimeSignature    int     `json:"time_signature"`
	TrackHref        string  `json:"track_href"`
	URI              string  `json:"uri"`
	Valence          float64 `json:"valence"`
}
