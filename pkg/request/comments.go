package request

import (
	"github.com/dash-protocol/dash-go/pkg/model"
	"github.com/dash-protocol/dash-go/pkg/wire"
)

// SortMode orders a comment listing.
type SortMode uint8

const (
	// SortRecent lists the newest comments first.
	SortRecent SortMode = 0
	// SortLiked lists the most liked comments first.
	SortLiked SortMode = 1
)

// String returns the sort mode name.
func (m SortMode) String() string {
	switch m {
	case SortRecent:
		return "RECENT"
	case SortLiked:
		return "LIKED"
	default:
		return "UNKNOWN"
	}
}

// DefaultCommentCount is the page size the official client requests.
const DefaultCommentCount = 20

// LevelCommentsRequest retrieves one page of comments on a level.
type LevelCommentsRequest struct {
	Base    BaseRequest
	LevelID uint64
	Page    uint32
	Total   uint32

	// Count is the page size.
	Count uint32
	Mode  SortMode
}

// NewLevelCommentsRequest creates a request for the first page of
// comments on levelID, newest first.
func NewLevelCommentsRequest(levelID uint64) LevelCommentsRequest {
	return LevelCommentsRequest{Base: DefaultBase, LevelID: levelID, Count: DefaultCommentCount}
}

// CommentsOn creates a comments request for l.
func CommentsOn(l *model.Level) LevelCommentsRequest {
	return NewLevelCommentsRequest(l.LevelID)
}

// WithBase returns a copy of r using base.
func (r LevelCommentsRequest) WithBase(base BaseRequest) LevelCommentsRequest {
	r.Base = base
	return r
}

// WithPage returns a copy of r for page.
func (r LevelCommentsRequest) WithPage(page uint32) LevelCommentsRequest {
	r.Page = page
	return r
}

// WithTotal returns a copy of r with total set.
func (r LevelCommentsRequest) WithTotal(total uint32) LevelCommentsRequest {
	r.Total = total
	return r
}

// WithCount returns a copy of r with page size count.
func (r LevelCommentsRequest) WithCount(count uint32) LevelCommentsRequest {
	r.Count = count
	return r
}

// WithMode returns a copy of r sorted by mode.
func (r LevelCommentsRequest) WithMode(mode SortMode) LevelCommentsRequest {
	r.Mode = mode
	return r
}

func (LevelCommentsRequest) Script() string { return "getGJComments21" }

func (r LevelCommentsRequest) Record() wire.Record {
	return record("LevelCommentsRequest", r.Base,
		wire.F("levelID", wire.Uint64(r.LevelID)),
		wire.F("page", wire.Uint32(r.Page)),
		wire.F("total", wire.Uint32(r.Total)),
		wire.F("count", wire.Uint32(r.Count)),
		wire.F("mode", wire.Uint8(uint8(r.Mode))),
	)
}

func (r LevelCommentsRequest) String() string { return stringOf(r) }

// ProfileCommentsRequest retrieves one page of posts on a profile.
type ProfileCommentsRequest struct {
	Base      BaseRequest
	AccountID uint64
	Page      uint32
	Total     uint32
}

// NewProfileCommentsRequest creates a request for the first page of posts
// by accountID.
func NewProfileCommentsRequest(accountID uint64) ProfileCommentsRequest {
	return ProfileCommentsRequest{Base: DefaultBase, AccountID: accountID}
}

// WithBase returns a copy of r using base.
func (r ProfileCommentsRequest) WithBase(base BaseRequest) ProfileCommentsRequest {
	r.Base = base
	return r
}

// WithPage returns a copy of r for page.
func (r ProfileCommentsRequest) WithPage(page uint32) ProfileCommentsRequest {
	r.Page = page
	return r
}

// WithTotal returns a copy of r with total set.
func (r ProfileCommentsRequest) WithTotal(total uint32) ProfileCommentsRequest {
	r.Total = total
	return r
}

func (ProfileCommentsRequest) Script() string { return "getGJAccountComments20" }

func (r ProfileCommentsRequest) Record() wire.Record {
	return record("ProfileCommentsRequest", r.Base,
		wire.F("accountID", wire.Uint64(r.AccountID)),
		wire.F("page", wire.Uint32(r.Page)),
		wire.F("total", wire.Uint32(r.Total)),
	)
}

func (r ProfileCommentsRequest) String() string { return stringOf(r) }
