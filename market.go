package spotr

// Market is an ISO 3166-1 alpha-2 country code used for track relinking, or
// [MarketFromToken] to derive the market from the user's token. The empty
// string omits the parameter.
type Market string

// MarketFromToken makes the API use the country of the authorized user.
const MarketFromToken Market = "from_token"

// TimeRange selects the window over which top artists and tracks are
// computed.
type TimeRange string

const (
	// LongTerm is several years of listening history.
	LongTerm TimeRange = "long_term"
	// MediumTerm is approximately the last six months.
	MediumTerm TimeRange = "medium_term"
	// ShortTerm is approximately the last four weeks.
	ShortTerm TimeRange = "short_term"
)
