package spotr

import (
	"context"
	"strings"
)

// SearchType selects which object kinds a search covers.
type SearchType string

const (
	SearchAlbum    SearchType = "album"
	SearchArtist   SearchType = "artist"
	SearchPlaylist SearchType = "playlist"
	SearchTrack    SearchType = "track"
	SearchShow     SearchType = "show"
	SearchEpisode  SearchType = "episode"
)

// SearchResults holds one page per requested object kind; kinds that were not
// requested are nil.
type SearchResults struct {
	Albums    *Page[AlbumSimplified]    `json:"albums"`
	Artists   *Page[Artist]             `json:"artists"`
	Playlists *Page[PlaylistSimplified] `json:"playlists"`
	Tracks    *Page[Track]              `json:"tracks"`
	Shows     *Page[ShowSimplified]     `json:"shows"`
	Episodes  *Page[EpisodeSimplified]  `json:"episodes"`
}

// Search queries the catalogue. Limit applies per object kind, maximum 50.
func (c *Client) Search(ctx context.Context, query string, types []SearchType, limit, offset int, market Market) (*Response[SearchResults], error) {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return sendJSON[SearchResults](ctx, c, get("/search").
		param("q", query).
		param("type", strings.Join(parts, ",")).
		paramInt("limit", limit).
		paramInt("offset", offset).
		param("market", string(market)))
}
