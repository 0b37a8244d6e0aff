package spotr

// ArtistSimplified is the reduced artist view returned inside other objects.
type ArtistSimplified struct {
	ExternalURLs map[string]string `json:"external_urls"`
	Href         string            `json:"href"`
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	URI          string            `json:"uri"`
}

// Artist is the full artist object.
type Artist struct {
	ArtistSimplified
	Followers  Followers `json:"followers"`
	Genres     []string  `json:"genres"`
	Images     []Image   `json:"images"`
	Popularity int       `json:"popularity"`
}
