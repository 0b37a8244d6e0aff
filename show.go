package spotr

// ShowSimplified is the reduced show view returned inside other objects.
type ShowSimplified struct {
	AvailableMarkets   []string          `json:"available_markets"`
	Copyrights         []Copyright       `json:"copyrights"`
	Description        string            `json:"description"`
	Explicit           bool              `json:"explicit"`
	ExternalURLs       map[string]string `json:"external_urls"`
	Href               string            `json:"href"`
	ID                 string            `json:"id"`
	Images             []Image           `json:"images"`
	IsExternallyHosted *bool             `json:"is_externally_hosted"`
	Languages          []string          `json:"languages"`
	MediaType          string            `json:"media_type"`
	Name               string            `json:"name"`
	Publisher          string            `json:"publisher"`
	URI                string            `json:"uri"`
}

// Show is the full show object with its first page of episodes inline.
type Show struct {
	ShowSimplified
	Episodes Page[EpisodeSimplified] `json:"episodes"`
}

// SavedShow is a show saved in the user's library.
type SavedShow struct {
	AddedAt string         `json:"added_at"`
	Show    ShowSimplified `json:"show"`
}

// EpisodeSimplified is the reduced episode view returned inside other objects.
type EpisodeSimplified struct {
	AudioPreviewURL      string            `json:"audio_preview_url"`
	Description          string            `json:"description"`
	DurationMS           int               `json:"duration_ms"`
	Explicit             bool              `json:"explicit"`
	ExternalURLs         map[string]string `json:"external_urls"`
	Href                 string            `json:"href"`
	ID                   string            `json:"id"`
	Images               []Image           `json:"images"`
	IsExternallyHosted   bool              `json:"is_externally_hosted"`
	IsPlayable           bool              `json:"is_playable"`
	Languages            []string          `json:"languages"`
	Name                 string            `json:"name"`
	ReleaseDate          string            `json:"release_date"`
	ReleaseDatePrecision string            `json:"release_date_precision"`
	ResumePoint          *ResumePoint      `json:"resume_point,omitempty"`
	URI                  string            `json:"uri"`
}

// Episode is the full episode object, carrying the show it belongs to.
type Episode struct {
	EpisodeSimplified
	Show ShowSimplified `json:"show"`
}
