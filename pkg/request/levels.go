package request

import (
	"strconv"
	"strings"

	"github.com/dash-protocol/dash-go/pkg/model"
	"github.com/dash-protocol/dash-go/pkg/wire"
)

// LevelRequest downloads a single level including its level data.
type LevelRequest struct {
	Base    BaseRequest
	LevelID uint64

	// Inc counts the download towards the level's download total.
	Inc bool

	// Extra asks for additional metadata (upload and update times).
	Extra bool
}

// NewLevelRequest creates a download request for levelID.
func NewLevelRequest(levelID uint64) LevelRequest {
	return LevelRequest{Base: DefaultBase, LevelID: levelID}
}

// WithBase returns a copy of r using base.
func (r LevelRequest) WithBase(base BaseRequest) LevelRequest {
	r.Base = base
	return r
}

// WithInc returns a copy of r with Inc set.
func (r LevelRequest) WithInc(inc bool) LevelRequest {
	r.Inc = inc
	return r
}

// WithExtra returns a copy of r with Extra set.
func (r LevelRequest) WithExtra(extra bool) LevelRequest {
	r.Extra = extra
	return r
}

func (LevelRequest) Script() string { return "downloadGJLevel22" }

func (r LevelRequest) Record() wire.Record {
	return record("LevelRequest", r.Base,
		wire.F("levelID", wire.Uint64(r.LevelID)),
		wire.F("inc", wire.Bool(r.Inc)),
		wire.F("extra", wire.Bool(r.Extra)),
	)
}

func (r LevelRequest) String() string { return stringOf(r) }

// SearchType selects the listing a LevelsRequest retrieves.
type SearchType uint8

const (
	SearchByName       SearchType = 0
	SearchMostDownload SearchType = 1
	SearchMostLiked    SearchType = 2
	SearchTrending     SearchType = 3
	SearchRecent       SearchType = 4
	SearchByUser       SearchType = 5
	SearchFeatured     SearchType = 6
	SearchMagic        SearchType = 7
	SearchByIDs        SearchType = 10
	SearchAwarded      SearchType = 11
	SearchFollowed     SearchType = 12
	SearchFriends      SearchType = 13
	SearchHallOfFame   SearchType = 16
)

// String returns the search type name.
func (t SearchType) String() string {
	switch t {
	case SearchByName:
		return "NAME"
	case SearchMostDownload:
		return "MOST_DOWNLOADED"
	case SearchMostLiked:
		return "MOST_LIKED"
	case SearchTrending:
		return "TRENDING"
	case SearchRecent:
		return "RECENT"
	case SearchByUser:
		return "USER"
	case SearchFeatured:
		return "FEATURED"
	case SearchMagic:
		return "MAGIC"
	case SearchByIDs:
		return "IDS"
	case SearchAwarded:
		return "AWARDED"
	case SearchFollowed:
		return "FOLLOWED"
	case SearchFriends:
		return "FRIENDS"
	case SearchHallOfFame:
		return "HALL_OF_FAME"
	default:
		return "UNKNOWN"
	}
}

// LevelsRequest retrieves one page of a level listing.
type LevelsRequest struct {
	Base       BaseRequest
	SearchType SearchType

	// Search is the search string. For SearchByUser it is the user id and
	// for SearchByIDs a comma-separated list of level ids.
	Search string
	Page   uint32
	Total  uint32

	// Lengths and Ratings filter the listing. Empty means no filter.
	Lengths []model.LevelLength
	Ratings []model.LevelRating

	Featured  bool
	Original  bool
	TwoPlayer bool
	Coins     bool
	Epic      bool
	Rated     bool

	// CustomSong restricts the listing to levels using this song.
	CustomSong *uint64
}

// NewLevelsRequest creates a name search for s.
func NewLevelsRequest(s string) LevelsRequest {
	return LevelsRequest{Base: DefaultBase, SearchType: SearchByName, Search: s}
}

// LevelsByCreator lists the levels uploaded by c.
func LevelsByCreator(c *model.Creator) LevelsRequest {
	return NewLevelsRequest(strconv.FormatUint(c.UserID, 10)).WithSearchType(SearchByUser)
}

// WithBase returns a copy of r using base.
func (r LevelsRequest) WithBase(base BaseRequest) LevelsRequest {
	r.Base = base
	return r
}

// WithSearchType returns a copy of r for listing t.
func (r LevelsRequest) WithSearchType(t SearchType) LevelsRequest {
	r.SearchType = t
	return r
}

// WithSearch returns a copy of r searching for s.
func (r LevelsRequest) WithSearch(s string) LevelsRequest {
	r.Search = s
	return r
}

// WithPage returns a copy of r for page.
func (r LevelsRequest) WithPage(page uint32) LevelsRequest {
	r.Page = page
	return r
}

// WithTotal returns a copy of r with total set.
func (r LevelsRequest) WithTotal(total uint32) LevelsRequest {
	r.Total = total
	return r
}

// WithLengths returns a copy of r filtered to the given lengths.
func (r LevelsRequest) WithLengths(lengths ...model.LevelLength) LevelsRequest {
	r.Lengths = append([]model.LevelLength(nil), lengths...)
	return r
}

// WithRatings returns a copy of r filtered to the given ratings.
func (r LevelsRequest) WithRatings(ratings ...model.LevelRating) LevelsRequest {
	r.Ratings = append([]model.LevelRating(nil), ratings...)
	return r
}

// WithFeatured returns a copy of r with the featured filter set.
func (r LevelsRequest) WithFeatured(v bool) LevelsRequest {
	r.Featured = v
	return r
}

// WithOriginal returns a copy of r with the original (not copied) filter set.
func (r LevelsRequest) WithOriginal(v bool) LevelsRequest {
	r.Original = v
	return r
}

// WithTwoPlayer returns a copy of r with the two player filter set.
func (r LevelsRequest) WithTwoPlayer(v bool) LevelsRequest {
	r.TwoPlayer = v
	return r
}

// WithCoins returns a copy of r with the verified coins filter set.
func (r LevelsRequest) WithCoins(v bool) LevelsRequest {
	r.Coins = v
	return r
}

// WithEpic returns a copy of r with the epic filter set.
func (r LevelsRequest) WithEpic(v bool) LevelsRequest {
	r.Epic = v
	return r
}

// WithRated returns a copy of r with the star rated filter set.
func (r LevelsRequest) WithRated(v bool) LevelsRequest {
	r.Rated = v
	return r
}

// WithCustomSong returns a copy of r restricted to songID.
func (r LevelsRequest) WithCustomSong(songID uint64) LevelsRequest {
	r.CustomSong = &songID
	return r
}

func (LevelsRequest) Script() string { return "getGJLevels21" }

func (r LevelsRequest) Record() wire.Record {
	return record("LevelsRequest", r.Base,
		wire.F("type", wire.Uint8(uint8(r.SearchType))),
		wire.F("str", wire.String(r.Search)),
		wire.F("len", wire.String(lengthFilter(r.Lengths))),
		wire.F("diff", wire.String(ratingFilter(r.Ratings))),
		wire.F("page", wire.Uint32(r.Page)),
		wire.F("total", wire.Uint32(r.Total)),
		wire.F("featured", wire.Bool(r.Featured)),
		wire.F("original", wire.Bool(r.Original)),
		wire.F("twoPlayer", wire.Bool(r.TwoPlayer)),
		wire.F("coins", wire.Bool(r.Coins)),
		wire.F("epic", wire.Bool(r.Epic)),
		wire.F("star", wire.Bool(r.Rated)),
		wire.F("customSong", wire.Maybe(r.CustomSong, wire.Uint64)),
	)
}

func (r LevelsRequest) String() string { return stringOf(r) }

// noFilter is sent for an unset list filter.
const noFilter = "-"

func lengthFilter(lengths []model.LevelLength) string {
	if len(lengths) == 0 {
		return noFilter
	}
	parts := make([]string, len(lengths))
	for i, l := range lengths {
		parts[i] = strconv.Itoa(int(l))
	}
	return strings.Join(parts, ",")
}

// ratingFilter maps ratings onto the server's difficulty filter values.
func ratingFilter(ratings []model.LevelRating) string {
	if len(ratings) == 0 {
		return noFilter
	}
	parts := make([]string, 0, len(ratings))
	for _, r := range ratings {
		var v int
		switch r {
		case model.RatingNA:
			v = -1
		case model.RatingAuto:
			v = -3
		case model.RatingDemon:
			v = -2
		default:
			v = int(r) - int(model.RatingEasy) + 1
		}
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, ",")
}
