package model

import (
	"fmt"

	"github.com/dash-protocol/dash-go/pkg/wire"
)

var levelCommentSchema = wire.MustSchema("LevelComment",
	wire.Required("2", wire.KindString),  // content, base64
	wire.Required("3", wire.KindUint64),  // author user id
	wire.Required("4", wire.KindInt32),   // likes
	wire.Required("6", wire.KindUint64),  // comment id
	wire.Required("7", wire.KindBool),    // flagged as spam
	wire.Required("9", wire.KindString),  // time since posting
	wire.Optional("10", wire.KindUint8),  // progress
	wire.Required("11", wire.KindUint8),  // mod level
	wire.Optional("12", wire.KindString), // text color "r,g,b"
)

// LevelCommentSchema returns the schema level comments are decoded with.
func LevelCommentSchema() *wire.Schema { return levelCommentSchema }

// LevelComment is a comment posted on a level.
type LevelComment struct {
	// User is the author. It is nil when the author's account no longer exists.
	User *CommentUser

	Content   *Thunk[string]
	UserID    uint64
	Likes     int32
	CommentID uint64
	IsSpam    bool

	// Time is the server's human-readable age ("5 days").
	Time     string
	Progress *uint8
	ModLevel ModLevel
	Color    *string
}

// DecodeLevelComment decodes the comment half of a comment/author pair.
func DecodeLevelComment(text string) (*LevelComment, error) {
	rec, err := LevelCommentFormat.decode(levelCommentSchema, text)
	if err != nil {
		return nil, err
	}
	return LevelCommentFromRecord(rec)
}

// LevelCommentFromRecord converts a decoded record into a LevelComment.
func LevelCommentFromRecord(rec wire.Record) (*LevelComment, error) {
	r := wire.NewReader(rec)
	c := &LevelComment{
		Content:   NewThunk(r.String("2"), DecodeText),
		UserID:    r.Uint("3"),
		Likes:     int32(r.Int("4")),
		CommentID: r.Uint("6"),
		IsSpam:    r.Bool("7"),
		Time:      r.String("9"),
		Progress:  narrow[uint8](r.OptUint("10")),
		ModLevel:  ModLevel(r.Uint("11")),
		Color:     r.OptString("12"),
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("failed to read level comment: %w", err)
	}
	return c, nil
}

// Record converts the comment into its wire record. The author is written
// separately.
func (c *LevelComment) Record() wire.Record {
	return wire.NewRecord(levelCommentSchema.Name,
		wire.F("2", wire.String(rawText(c.Content))),
		wire.F("3", wire.Uint64(c.UserID)),
		wire.F("4", wire.Int32(c.Likes)),
		wire.F("6", wire.Uint64(c.CommentID)),
		wire.F("7", wire.Bool(c.IsSpam)),
		wire.F("9", wire.String(c.Time)),
		wire.F("10", wire.Maybe(c.Progress, wire.Uint8)),
		wire.F("11", wire.Uint8(uint8(c.ModLevel))),
		wire.F("12", wire.Maybe(c.Color, wire.String)),
	)
}

// Encode returns the keyed wire text of the comment.
func (c *LevelComment) Encode() (string, error) {
	return LevelCommentFormat.encode(c.Record())
}

var commentUserSchema = wire.MustSchema("CommentUser",
	wire.Required("1", wire.KindString),  // name
	wire.Required("9", wire.KindUint16),  // icon index
	wire.Required("10", wire.KindUint8),  // primary color
	wire.Required("11", wire.KindUint8),  // secondary color
	wire.Required("14", wire.KindUint8),  // icon type
	wire.Required("15", wire.KindUint8),  // glow
	wire.Optional("16", wire.KindUint64), // account id
)

// CommentUserSchema returns the schema comment authors are decoded with.
func CommentUserSchema() *wire.Schema { return commentUserSchema }

// CommentUser is the author record attached to a level comment.
type CommentUser struct {
	Name           string
	IconIndex      uint16
	PrimaryColor   uint8
	SecondaryColor uint8
	IconType       IconType
	Glow           uint8

	// AccountID is nil for players who never registered an account.
	AccountID *uint64
}

// HasGlow reports whether the author's icon is drawn with a glow.
func (u *CommentUser) HasGlow() bool {
	return u.Glow != 0
}

// DecodeCommentUser decodes the author half of a comment/author pair.
func DecodeCommentUser(text string) (*CommentUser, error) {
	rec, err := CommentUserFormat.decode(commentUserSchema, text)
	if err != nil {
		return nil, err
	}
	return CommentUserFromRecord(rec)
}

// CommentUserFromRecord converts a decoded record into a CommentUser.
func CommentUserFromRecord(rec wire.Record) (*CommentUser, error) {
	r := wire.NewReader(rec)
	u := &CommentUser{
		Name:           r.String("1"),
		IconIndex:      uint16(r.Uint("9")),
		PrimaryColor:   uint8(r.Uint("10")),
		SecondaryColor: uint8(r.Uint("11")),
		IconType:       IconType(r.Uint("14")),
		Glow:           uint8(r.Uint("15")),
		AccountID:      nonZero(r.OptUint("16")),
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comment user: %w", err)
	}
	return u, nil
}

// Record converts the author into its wire record.
func (u *CommentUser) Record() wire.Record {
	return wire.NewRecord(commentUserSchema.Name,
		wire.F("1", wire.String(u.Name)),
		wire.F("9", wire.Uint16(u.IconIndex)),
		wire.F("10", wire.Uint8(u.PrimaryColor)),
		wire.F("11", wire.Uint8(u.SecondaryColor)),
		wire.F("14", wire.Uint8(uint8(u.IconType))),
		wire.F("15", wire.Uint8(u.Glow)),
		wire.F("16", wire.Maybe(u.AccountID, wire.Uint64)),
	)
}

// Encode returns the keyed wire text of the author.
func (u *CommentUser) Encode() (string, error) {
	return CommentUserFormat.encode(u.Record())
}

var profileCommentSchema = wire.MustSchema("ProfileComment",
	wire.Required("2", wire.KindString), // content, base64
	wire.Required("4", wire.KindInt32),  // likes
	wire.Required("6", wire.KindUint64), // comment id
	wire.Required("9", wire.KindString), // time since posting
)

// ProfileCommentSchema returns the schema profile comments are decoded with.
func ProfileCommentSchema() *wire.Schema { return profileCommentSchema }

// ProfileComment is a post on a user's profile.
type ProfileComment struct {
	Content   *Thunk[string]
	Likes     int32
	CommentID uint64
	Time      string
}

// DecodeProfileComment decodes one keyed profile comment fragment.
func DecodeProfileComment(text string) (*ProfileComment, error) {
	rec, err := ProfileCommentFormat.decode(profileCommentSchema, text)
	if err != nil {
		return nil, err
	}
	return ProfileCommentFromRecord(rec)
}

// ProfileCommentFromRecord converts a decoded record into a ProfileComment.
func ProfileCommentFromRecord(rec wire.Record) (*ProfileComment, error) {
	r := wire.NewReader(rec)
	c := &ProfileComment{
		Content:   NewThunk(r.String("2"), DecodeText),
		Likes:     int32(r.Int("4")),
		CommentID: r.Uint("6"),
		Time:      r.String("9"),
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profile comment: %w", err)
	}
	return c, nil
}

// Record converts the comment into its wire record.
func (c *ProfileComment) Record() wire.Record {
	return wire.NewRecord(profileCommentSchema.Name,
		wire.F("2", wire.String(rawText(c.Content))),
		wire.F("4", wire.Int32(c.Likes)),
		wire.F("6", wire.Uint64(c.CommentID)),
		wire.F("9", wire.String(c.Time)),
	)
}

// Encode returns the keyed wire text of the comment.
func (c *ProfileComment) Encode() (string, error) {
	return ProfileCommentFormat.encode(c.Record())
}

func rawText(t *Thunk[string]) string {
	if t == nil {
		return ""
	}
	return t.Raw()
}
