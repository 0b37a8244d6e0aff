package spotr

import (
	"context"
	"strconv"
	"strings"
)

// Category is a browse category.
type Category struct {
	Href  string  `json:"href"`
	Icons []Image `json:"icons"`
	ID    string  `json:"id"`
	Name  string  `json:"name"`
}

// FeaturedPlaylists is the featured-playlists listing with its tagline.
type FeaturedPlaylists struct {
	Message   string                   `json:"message"`
	Playlists Page[PlaylistSimplified] `json:"playlists"`
}

// RecommendationSeed describes how one seed contributed to a recommendation
// response.
type RecommendationSeed struct {
	AfterFilteringSize int    `json:"afterFilteringSize"`
	AfterRelinkingSize int    `json:"afterRelinkingSize"`
	Href               string `json:"href"`
	ID                 string `json:"id"`
	InitialPoolSize    int    `json:"initialPoolSize"`
	Type               string `json:"type"`
}

// Recommendations is a generated track listing.
type Recommendations struct {
	Seeds  []RecommendationSeed `json:"seeds"`
	Tracks []TrackSimplified    `json:"tracks"`
}

// Seeds are the starting points of a recommendation request. Up to five
// seeds across all three kinds may be supplied.
type Seeds struct {
	Artists []string
	Genres  []string
	Tracks  []string
}

// GetNewReleases gets one page of newly released albums.
func (c *Client) GetNewReleases(ctx context.Context, limit, offset int, country string) (*Response[Page[AlbumSimplified]], error) {
	res, err := sendJSON[struct {
		Albums Page[AlbumSimplified] `json:"albums"`
	}](ctx, c, get("/browse/new-releases").paramInt("limit", limit).paramInt("offset", offset).param("country", country))
	if err != nil {
		return nil, err
	}
	return &Response[Page[AlbumSimplified]]{Data: res.Data.Albums, Expires: res.Expires}, nil
}

// GetFeaturedPlaylists gets the playlists featured on the browse tab.
func (c *Client) GetFeaturedPlaylists(ctx context.Context, limit, offset int, country, locale string) (*Response[FeaturedPlaylists], error) {
	return sendJSON[FeaturedPlaylists](ctx, c,
		get("/browse/featured-playlists").paramInt("limit", limit).paramInt("offset", offset).param("country", country).param("locale", locale))
}

// GetCategories gets one page of browse categories.
func (c *Client) GetCategories(ctx context.Context, limit, offset int, country, locale string) (*Response[Page[Category]], error) {
	res, err := sendJSON[struct {
		Categories Page[Category] `json:"categories"`
	}](ctx, c, get("/browse/categories").paramInt("limit", limit).paramInt("offset", offset).param("country", country).param("locale", locale))
	if err != nil {
		return nil, err
	}
	return &Response[Page[Category]]{Data: res.Data.Categories, Expires: res.Expires}, nil
}

// GetCategory gets a single browse category.
func (c *Client) GetCategory(ctx context.Context, id, country, locale string) (*Response[Category], error) {
	return sendJSON[Category](ctx, c, get("/browse/categories/"+id).param("country", country).param("locale", locale))
}

// GetCategoryPlaylists gets one page of a category's playlists.
func (c *Client) GetCategoryPlaylists(ctx context.Context, id string, limit, offset int, country string) (*Response[Page[PlaylistSimplified]], error) {
	res, err := sendJSON[struct {
		Playlists Page[PlaylistSimplified] `json:"playlists"`
	}](ctx, c, get("/browse/categories/"+id+"/playlists").paramInt("limit", limit).paramInt("offset", offset).param("country", country))
	if err != nil {
		return nil, err
	}
	return &Response[Page[PlaylistSimplified]]{Data: res.Data.Playlists, Expires: res.Expires}, nil
}

// GetRecommendations generates track recommendations from seeds. attributes
// holds tunable audio attribute bounds and targets keyed by their query
// parameter names (min_energy, target_tempo, ...).
func (c *Client) GetRecommendations(ctx context.Context, seeds Seeds, attributes map[string]float64, limit int, market Market) (*Response[Recommendations], error) {
	req := get("/recommendations").paramInt("limit", limit).param("market", string(market))
	if len(seeds.Artists) > 0 {
		req.param("seed_artists", strings.Join(seeds.Artists, ","))
	}
	if len(seeds.Genres) > 0 {
		req.param("seed_genres", strings.Join(seeds.Genres, ","))
	}
	if len(seeds.Tracks) > 0 {
		req.param("seed_tracks", strings.Join(seeds.Tracks, ","))
	}
	for name, value := range attributes {
		req.param(name, strconv.FormatFloat(value, 'f', -1, 64))
	}
	return sendJSON[Recommendations](ctx, c, req)
}
