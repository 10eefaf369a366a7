package model

import (
	"fmt"

	"github.com/dash-protocol/dash-go/pkg/wire"
)

var profileSchema = wire.MustSchema("Profile",
	wire.Required("1", wire.KindString),  // name
	wire.Required("2", wire.KindUint64),  // user id
	wire.Required("3", wire.KindUint32),  // stars
	wire.Required("4", wire.KindUint16),  // demons
	wire.Required("8", wire.KindUint16),  // creator points
	wire.Required("10", wire.KindUint8),  // primary color
	wire.Required("11", wire.KindUint8),  // secondary color
	wire.Required("13", wire.KindUint8),  // secret coins
	wire.Required("16", wire.KindUint64), // account id
	wire.Required("17", wire.KindUint16), // user coins
	wire.Optional("18", wire.KindUint8),  // message policy
	wire.Optional("19", wire.KindUint8),  // friend request policy
	wire.Optional("20", wire.KindString), // youtube
	wire.Optional("21", wire.KindUint16), // cube index
	wire.Optional("30", wire.KindUint64), // global rank
	wire.Optional("44", wire.KindString), // twitter
	wire.Optional("45", wire.KindString), // twitch
	wire.Optional("46", wire.KindUint32), // diamonds
	wire.Optional("49", wire.KindUint8),  // mod level
	wire.Optional("50", wire.KindUint8),  // comment history policy
)

// ProfileSchema returns the schema profiles are decoded with.
func ProfileSchema() *wire.Schema { return profileSchema }

// Profile is the full user record returned by the user info endpoint.
type Profile struct {
	Name           string
	UserID         uint64
	Stars          uint32
	Demons         uint16
	CreatorPoints  uint16
	PrimaryColor   uint8
	SecondaryColor uint8
	SecretCoins    uint8
	AccountID      uint64
	UserCoins      uint16

	MessagePolicy        *uint8
	FriendRequestPolicy  *uint8
	CommentHistoryPolicy *uint8

	YouTube *string
	Twitter *string
	Twitch  *string

	CubeIndex *uint16

	// Rank is nil for users outside the global leaderboard.
	Rank     *uint64
	Diamonds *uint32
	ModLevel ModLevel
}

// DecodeProfile decodes a keyed profile body.
func DecodeProfile(text string) (*Profile, error) {
	rec, err := ProfileFormat.decode(profileSchema, text)
	if err != nil {
		return nil, err
	}
	return ProfileFromRecord(rec)
}

// ProfileFromRecord converts a decoded record into a Profile.
func ProfileFromRecord(rec wire.Record) (*Profile, error) {
	r := wire.NewReader(rec)
	p := &Profile{
		Name:                 r.String("1"),
		UserID:               r.Uint("2"),
		Stars:                uint32(r.Uint("3")),
		Demons:               uint16(r.Uint("4")),
		CreatorPoints:        uint16(r.Uint("8")),
		PrimaryColor:         uint8(r.Uint("10")),
		SecondaryColor:       uint8(r.Uint("11")),
		SecretCoins:          uint8(r.Uint("13")),
		AccountID:            r.Uint("16"),
		UserCoins:            uint16(r.Uint("17")),
		MessagePolicy:        narrow[uint8](r.OptUint("18")),
		FriendRequestPolicy:  narrow[uint8](r.OptUint("19")),
		YouTube:              r.OptString("20"),
		CubeIndex:            narrow[uint16](r.OptUint("21")),
		Rank:                 nonZero(r.OptUint("30")),
		Twitter:              r.OptString("44"),
		Twitch:               r.OptString("45"),
		Diamonds:             narrow[uint32](r.OptUint("46")),
		ModLevel:             ModLevel(zeroIfNil(r.OptUint("49"))),
		CommentHistoryPolicy: narrow[uint8](r.OptUint("50")),
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	return p, nil
}

// Record converts the profile into its wire record.
func (p *Profile) Record() wire.Record {
	return wire.NewRecord(profileSchema.Name,
		wire.F("1", wire.String(p.Name)),
		wire.F("2", wire.Uint64(p.UserID)),
		wire.F("3", wire.Uint32(p.Stars)),
		wire.F("4", wire.Uint16(p.Demons)),
		wire.F("8", wire.Uint16(p.CreatorPoints)),
		wire.F("10", wire.Uint8(p.PrimaryColor)),
		wire.F("11", wire.Uint8(p.SecondaryColor)),
		wire.F("13", wire.Uint8(p.SecretCoins)),
		wire.F("16", wire.Uint64(p.AccountID)),
		wire.F("17", wire.Uint16(p.UserCoins)),
		wire.F("18", wire.Maybe(p.MessagePolicy, wire.Uint8)),
		wire.F("19", wire.Maybe(p.FriendRequestPolicy, wire.Uint8)),
		wire.F("20", wire.Maybe(p.YouTube, wire.String)),
		wire.F("21", wire.Maybe(p.CubeIndex, wire.Uint16)),
		wire.F("30", wire.Maybe(p.Rank, wire.Uint64)),
		wire.F("44", wire.Maybe(p.Twitter, wire.String)),
		wire.F("45", wire.Maybe(p.Twitch, wire.String)),
		wire.F("46", wire.Maybe(p.Diamonds, wire.Uint32)),
		wire.F("49", wire.Some(wire.Uint8(uint8(p.ModLevel)))),
		wire.F("50", wire.Maybe(p.CommentHistoryPolicy, wire.Uint8)),
	)
}

// Encode returns the keyed wire text of the profile.
func (p *Profile) Encode() (string, error) {
	return ProfileFormat.encode(p.Record())
}

var searchedUserSchema = wire.MustSchema("SearchedUser",
	wire.Required("1", wire.KindString),  // name
	wire.Required("2", wire.KindUint64),  // user id
	wire.Required("3", wire.KindUint32),  // stars
	wire.Required("4", wire.KindUint16),  // demons
	wire.Optional("6", wire.KindUint64),  // global rank
	wire.Required("8", wire.KindUint16),  // creator points
	wire.Required("9", wire.KindUint16),  // icon index
	wire.Required("10", wire.KindUint8),  // primary color
	wire.Required("11", wire.KindUint8),  // secondary color
	wire.Required("13", wire.KindUint8),  // secret coins
	wire.Required("14", wire.KindUint8),  // icon type
	wire.Required("15", wire.KindUint8),  // glow
	wire.Required("16", wire.KindUint64), // account id
	wire.Required("17", wire.KindUint16), // user coins
)

// SearchedUserSchema returns the schema user search results are decoded with.
func SearchedUserSchema() *wire.Schema { return searchedUserSchema }

// SearchedUser is the user record returned by a user search.
type SearchedUser struct {
	Name           string
	UserID         uint64
	Stars          uint32
	Demons         uint16
	Rank           *uint64
	CreatorPoints  uint16
	IconIndex      uint16
	PrimaryColor   uint8
	SecondaryColor uint8
	SecretCoins    uint8
	IconType       IconType
	Glow           uint8
	AccountID      uint64
	UserCoins      uint16
}

// HasGlow reports whether the user's icon is drawn with a glow. The server
// sends 0 or 2.
func (u *SearchedUser) HasGlow() bool {
	return u.Glow != 0
}

// DecodeSearchedUser decodes one keyed user search result.
func DecodeSearchedUser(text string) (*SearchedUser, error) {
	rec, err := SearchedUserFormat.decode(searchedUserSchema, text)
	if err != nil {
		return nil, err
	}
	return SearchedUserFromRecord(rec)
}

// SearchedUserFromRecord converts a decoded record into a SearchedUser.
func SearchedUserFromRecord(rec wire.Record) (*SearchedUser, error) {
	r := wire.NewReader(rec)
	u := &SearchedUser{
		Name:           r.String("1"),
		UserID:         r.Uint("2"),
		Stars:          uint32(r.Uint("3")),
		Demons:         uint16(r.Uint("4")),
		Rank:           nonZero(r.OptUint("6")),
		CreatorPoints:  uint16(r.Uint("8")),
		IconIndex:      uint16(r.Uint("9")),
		PrimaryColor:   uint8(r.Uint("10")),
		SecondaryColor: uint8(r.Uint("11")),
		SecretCoins:    uint8(r.Uint("13")),
		IconType:       IconType(r.Uint("14")),
		Glow:           uint8(r.Uint("15")),
		AccountID:      r.Uint("16"),
		UserCoins:      uint16(r.Uint("17")),
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("failed to read searched user: %w", err)
	}
	return u, nil
}

// Record converts the user into its wire record.
func (u *SearchedUser) Record() wire.Record {
	return wire.NewRecord(searchedUserSchema.Name,
		wire.F("1", wire.String(u.Name)),
		wire.F("2", wire.Uint64(u.UserID)),
		wire.F("3", wire.Uint32(u.Stars)),
		wire.F("4", wire.Uint16(u.Demons)),
		wire.F("6", wire.Maybe(u.Rank, wire.Uint64)),
		wire.F("8", wire.Uint16(u.CreatorPoints)),
		wire.F("9", wire.Uint16(u.IconIndex)),
		wire.F("10", wire.Uint8(u.PrimaryColor)),
		wire.F("11", wire.Uint8(u.SecondaryColor)),
		wire.F("13", wire.Uint8(u.SecretCoins)),
		wire.F("14", wire.Uint8(uint8(u.IconType))),
		wire.F("15", wire.Uint8(u.Glow)),
		wire.F("16", wire.Uint64(u.AccountID)),
		wire.F("17", wire.Uint16(u.UserCoins)),
	)
}

// Encode returns the keyed wire text of the user.
func (u *SearchedUser) Encode() (string, error) {
	return SearchedUserFormat.encode(u.Record())
}
