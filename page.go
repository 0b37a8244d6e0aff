package spotr

// Page is one offset-based page of items.
type Page[T any] struct {
	Href     string  `json:"href"`
	Items    []T     `json:"items"`
	Limit    int     `json:"limit"`
	Next     *string `json:"next"`
	Offset   int     `json:"offset"`
	Previous *string `json:"previous"`
	Total    int     `json:"total"`
}

// Cursors are the pointers of a cursor-based page.
type Cursors struct {
	After  string `json:"after"`
	Before string `json:"before"`
}

// CursorPage is one cursor-based page of items, used by endpoints like
// followed artists and recently played where offsets are not supported.
type CursorPage[T any] struct {
	Href    string  `json:"href"`
	Items   []T     `json:"items"`
	Limit   int     `json:"limit"`
	Cursors Cursors `json:"cursors"`
	Next    *string `json:"next"`
	Total   int     `json:"total"`
}
