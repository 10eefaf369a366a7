package model

import (
	"fmt"

	"github.com/dash-protocol/dash-go/pkg/version"
	"github.com/dash-protocol/dash-go/pkg/wire"
)

var levelSchema = wire.MustSchema("Level",
	wire.Required("1", wire.KindUint64),  // level id
	wire.Required("2", wire.KindString),  // name
	wire.Optional("3", wire.KindString),  // description, base64
	wire.Optional("4", wire.KindString),  // level data, base64 gzip
	wire.Required("5", wire.KindUint32),  // version
	wire.Required("6", wire.KindUint64),  // creator user id
	wire.Required("8", wire.KindUint8),   // difficulty denominator
	wire.Required("9", wire.KindUint8),   // difficulty numerator
	wire.Required("10", wire.KindUint32), // downloads
	wire.Required("12", wire.KindUint8),  // main song
	wire.Required("13", wire.KindUint8),  // game version
	wire.Required("14", wire.KindInt32),  // likes
	wire.Required("15", wire.KindUint8),  // length
	wire.Optional("17", wire.KindBool),   // demon
	wire.Required("18", wire.KindUint8),  // stars
	wire.Required("19", wire.KindInt32),  // featured score
	wire.Optional("25", wire.KindBool),   // auto
	wire.Optional("30", wire.KindUint64), // copy of
	wire.Optional("31", wire.KindBool),   // two player
	wire.Optional("35", wire.KindUint64), // custom song id
	wire.Optional("37", wire.KindUint8),  // coins
	wire.Optional("38", wire.KindBool),   // coins verified
	wire.Optional("39", wire.KindUint8),  // stars requested
	wire.Optional("42", wire.KindBool),   // epic
	wire.Optional("45", wire.KindUint32), // object count
	wire.Optional("46", wire.KindString),
	wire.Optional("47", wire.KindString),
)

// LevelSchema returns the schema levels are decoded with.
func LevelSchema() *wire.Schema { return levelSchema }

// Level is a level as listed by searches or returned by a download.
type Level struct {
	LevelID     uint64
	Name        string
	Description *Thunk[string]
	Data        *Thunk[[]byte]
	Version     uint32

	// CreatorID is the creator's user id. Creator is filled in when the
	// response carries the matching creator record.
	CreatorID uint64
	Creator   *Creator

	DifficultyDenominator uint8
	DifficultyNumerator   uint8
	Demon                 bool
	Auto                  bool

	Downloads uint32
	MainSong  uint8
	GDVersion version.GameVersion
	Likes     int32
	Length    LevelLength
	Stars     uint8
	Featured  int32
	CopyOf    *uint64
	TwoPlayer bool

	// CustomSongID is nil for levels using a main song. CustomSong is filled
	// in when the response carries the matching song record.
	CustomSongID *uint64
	CustomSong   *NewgroundsSong

	Coins          uint8
	CoinsVerified  bool
	StarsRequested *uint8
	Epic           bool
	ObjectCount    *uint32
	Index46        *string
	Index47        *string
}

// Rating derives the difficulty face from the raw difficulty fields.
func (l *Level) Rating() LevelRating {
	switch {
	case l.Auto:
		return RatingAuto
	case l.Demon:
		return RatingDemon
	case l.DifficultyDenominator == 0:
		return RatingNA
	}
	switch l.DifficultyNumerator / 10 {
	case 1:
		return RatingEasy
	case 2:
		return RatingNormal
	case 3:
		return RatingHard
	case 4:
		return RatingHarder
	case 5:
		return RatingInsane
	default:
		return RatingNA
	}
}

// IsFeatured reports whether the level is currently featured.
func (l *Level) IsFeatured() bool {
	return l.Featured > 0
}

// DecodeLevel decodes one keyed level fragment.
func DecodeLevel(text string) (*Level, error) {
	rec, err := LevelFormat.decode(levelSchema, text)
	if err != nil {
		return nil, err
	}
	return LevelFromRecord(rec)
}

// LevelFromRecord converts a decoded record into a Level.
func LevelFromRecord(rec wire.Record) (*Level, error) {
	r := wire.NewReader(rec)
	l := &Level{
		LevelID:               r.Uint("1"),
		Name:                  r.String("2"),
		Description:           textThunk(r.OptString("3")),
		Version:               uint32(r.Uint("5")),
		CreatorID:             r.Uint("6"),
		DifficultyDenominator: uint8(r.Uint("8")),
		DifficultyNumerator:   uint8(r.Uint("9")),
		Downloads:             uint32(r.Uint("10")),
		MainSong:              uint8(r.Uint("12")),
		GDVersion:             version.FromWire(uint8(r.Uint("13"))),
		Likes:                 int32(r.Int("14")),
		Length:                LevelLength(r.Uint("15")),
		Demon:                 flag(r.OptBool("17")),
		Stars:                 uint8(r.Uint("18")),
		Featured:              int32(r.Int("19")),
		Auto:                  flag(r.OptBool("25")),
		CopyOf:                nonZero(r.OptUint("30")),
		TwoPlayer:             flag(r.OptBool("31")),
		CustomSongID:          nonZero(r.OptUint("35")),
		Coins:                 uint8(zeroIfNil(r.OptUint("37"))),
		CoinsVerified:         flag(r.OptBool("38")),
		StarsRequested:        nonZero(narrow[uint8](r.OptUint("39"))),
		Epic:                  flag(r.OptBool("42")),
		ObjectCount:           nonZero(narrow[uint32](r.OptUint("45"))),
		Index46:               r.OptString("46"),
		Index47:               r.OptString("47"),
	}
	if data := r.OptString("4"); data != nil {
		l.Data = NewThunk(*data, DecodeLevelData)
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("failed to read level: %w", err)
	}
	return l, nil
}

// Record converts the level into its wire record. Resolved relations are
// not written; only their ids are.
func (l *Level) Record() wire.Record {
	return wire.NewRecord(levelSchema.Name,
		wire.F("1", wire.Uint64(l.LevelID)),
		wire.F("2", wire.String(l.Name)),
		wire.F("3", wire.Maybe(rawOf(l.Description), wire.String)),
		wire.F("4", wire.Maybe(rawOf(l.Data), wire.String)),
		wire.F("5", wire.Uint32(l.Version)),
		wire.F("6", wire.Uint64(l.CreatorID)),
		wire.F("8", wire.Uint8(l.DifficultyDenominator)),
		wire.F("9", wire.Uint8(l.DifficultyNumerator)),
		wire.F("10", wire.Uint32(l.Downloads)),
		wire.F("12", wire.Uint8(l.MainSong)),
		wire.F("13", wire.Uint8(l.GDVersion.Wire())),
		wire.F("14", wire.Int32(l.Likes)),
		wire.F("15", wire.Uint8(uint8(l.Length))),
		wire.F("17", optFlag(l.Demon)),
		wire.F("18", wire.Uint8(l.Stars)),
		wire.F("19", wire.Int32(l.Featured)),
		wire.F("25", optFlag(l.Auto)),
		wire.F("30", wire.Maybe(l.CopyOf, wire.Uint64)),
		wire.F("31", wire.Some(wire.Bool(l.TwoPlayer))),
		wire.F("35", wire.Maybe(l.CustomSongID, wire.Uint64)),
		wire.F("37", wire.Some(wire.Uint8(l.Coins))),
		wire.F("38", wire.Some(wire.Bool(l.CoinsVerified))),
		wire.F("39", wire.Maybe(l.StarsRequested, wire.Uint8)),
		wire.F("42", wire.Some(wire.Bool(l.Epic))),
		wire.F("45", wire.Maybe(l.ObjectCount, wire.Uint32)),
		wire.F("46", wire.Maybe(l.Index46, wire.String)),
		wire.F("47", wire.Maybe(l.Index47, wire.String)),
	)
}

// Encode returns the keyed wire text of the level.
func (l *Level) Encode() (string, error) {
	return LevelFormat.encode(l.Record())
}

// flag reads an optional server flag; an empty field means false.
func flag(p *bool) bool {
	return p != nil && *p
}

// optFlag writes a flag the way the server does: "1" when set, empty otherwise.
func optFlag(b bool) wire.Value {
	if b {
		return wire.Some(wire.Bool(true))
	}
	return wire.None()
}

func zeroIfNil(p *uint64) uint64 {
	if p == nil {
		return 0
	}
	return *p
}
