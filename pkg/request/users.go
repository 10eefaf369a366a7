package request

import (
	"github.com/dash-protocol/dash-go/pkg/model"
	"github.com/dash-protocol/dash-go/pkg/wire"
)

// UserRequest retrieves a player profile by account id.
type UserRequest struct {
	Base BaseRequest

	// AccountID is the account id (not the user id) of the profile. Sent as
	// targetAccountID.
	AccountID uint64
}

// NewUserRequest creates a request for the profile of accountID.
func NewUserRequest(accountID uint64) UserRequest {
	return UserRequest{Base: DefaultBase, AccountID: accountID}
}

// WithBase returns a copy of r using base.
func (r UserRequest) WithBase(base BaseRequest) UserRequest {
	r.Base = base
	return r
}

// WithAccountID returns a copy of r for accountID.
func (r UserRequest) WithAccountID(accountID uint64) UserRequest {
	r.AccountID = accountID
	return r
}

func (UserRequest) Script() string { return "getGJUserInfo20" }

func (r UserRequest) Record() wire.Record {
	return record("UserRequest", r.Base,
		wire.F("targetAccountID", wire.Uint64(r.AccountID)),
	)
}

func (r UserRequest) String() string { return stringOf(r) }

// UserSearchRequest searches for a player by exact name.
type UserSearchRequest struct {
	Base BaseRequest

	// Total and Page page through results. The server only ever returns the
	// exact match, so both are normally zero.
	Total uint32
	Page  uint32

	// SearchString is the player name. Sent as str.
	SearchString string
}

// NewUserSearchRequest creates a search for name.
func NewUserSearchRequest(name string) UserSearchRequest {
	return UserSearchRequest{Base: DefaultBase, SearchString: name}
}

// SearchCreator creates a search for the creator of a level listing, which
// yields the creator's full user record.
func SearchCreator(c *model.Creator) UserSearchRequest {
	return NewUserSearchRequest(c.Name)
}

// WithBase returns a copy of r using base.
func (r UserSearchRequest) WithBase(base BaseRequest) UserSearchRequest {
	r.Base = base
	return r
}

// WithTotal returns a copy of r with total set.
func (r UserSearchRequest) WithTotal(total uint32) UserSearchRequest {
	r.Total = total
	return r
}

// WithPage returns a copy of r for page.
func (r UserSearchRequest) WithPage(page uint32) UserSearchRequest {
	r.Page = page
	return r
}

// WithSearchString returns a copy of r searching for s.
func (r UserSearchRequest) WithSearchString(s string) UserSearchRequest {
	r.SearchString = s
	return r
}

func (UserSearchRequest) Script() string { return "getGJUsers20" }

func (r UserSearchRequest) Record() wire.Record {
	return record("UserSearchRequest", r.Base,
		wire.F("total", wire.Uint32(r.Total)),
		wire.F("page", wire.Uint32(r.Page)),
		wire.F("str", wire.String(r.SearchString)),
	)
}

func (r UserSearchRequest) String() string { return stringOf(r) }
