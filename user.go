package spotr

// PublicUser is the publicly visible part of a user profile.
type PublicUser struct {
	DisplayName  string            `json:"display_name"`
	ExternalURLs map[string]string `json:"external_urls"`
	Followers    Followers         `json:"followers"`
	Href         string            `json:"href"`
	ID           string            `json:"id"`
	Images       []Image           `json:"images"`
	URI          string            `json:"uri"`
}

// PrivateUser is the current user's profile. Country, Email and Product are
// only populated when the corresponding scopes were granted.
type PrivateUser struct {
	PublicUser
	Country string `json:"country"`
	Email   string `json:"email"`
	Product string `json:"product"` // premium, free, open
}
