package model

import "github.com/dash-protocol/dash-go/pkg/wire"

// Format is the delimiter and encoding mode a record kind is written with.
type Format struct {
	Delimiter string
	Mode      wire.Mode
}

// Formats of the record kinds in this package.
var (
	LevelFormat          = Format{Delimiter: ":", Mode: wire.Keyed}
	CreatorFormat        = Format{Delimiter: ":", Mode: wire.Positional}
	SongFormat           = Format{Delimiter: "~|~", Mode: wire.Keyed}
	ProfileFormat        = Format{Delimiter: ":", Mode: wire.Keyed}
	SearchedUserFormat   = Format{Delimiter: ":", Mode: wire.Keyed}
	LevelCommentFormat   = Format{Delimiter: "~", Mode: wire.Keyed}
	CommentUserFormat    = Format{Delimiter: "~", Mode: wire.Keyed}
	ProfileCommentFormat = Format{Delimiter: "~", Mode: wire.Keyed}
)

func (f Format) decode(s *wire.Schema, text string) (wire.Record, error) {
	return wire.Unmarshal(s, text, f.Delimiter, f.Mode)
}

func (f Format) encode(r wire.Record) (string, error) {
	return wire.Marshal(r, f.Delimiter, f.Mode)
}

// narrow converts an optional wire integer to a smaller type. The decoder
// already range-checked the value against the schema's kind.
func narrow[T ~uint8 | ~uint16 | ~uint32](p *uint64) *T {
	if p == nil {
		return nil
	}
	v := T(*p)
	return &v
}

// nonZero maps the server's "0 means none" convention onto nil.
func nonZero[T comparable](p *T) *T {
	var zero T
	if p == nil || *p == zero {
		return nil
	}
	return p
}
