package model

import (
	"fmt"

	"github.com/dash-protocol/dash-go/pkg/wire"
)

var creatorSchema = wire.MustSchema("Creator",
	wire.Required("userID", wire.KindUint64),
	wire.Required("name", wire.KindString),
	wire.Optional("accountID", wire.KindUint64),
)

// CreatorSchema returns the schema creators are decoded with.
func CreatorSchema() *wire.Schema { return creatorSchema }

// Creator is the short user record attached to level listings.
type Creator struct {
	UserID uint64
	Name   string

	// AccountID is nil for players who never registered an account.
	AccountID *uint64
}

// DecodeCreator decodes one positional creator fragment
// ("userID:name:accountID").
func DecodeCreator(text string) (*Creator, error) {
	rec, err := CreatorFormat.decode(creatorSchema, text)
	if err != nil {
		return nil, err
	}
	return CreatorFromRecord(rec)
}

// CreatorFromRecord converts a decoded record into a Creator.
func CreatorFromRecord(rec wire.Record) (*Creator, error) {
	r := wire.NewReader(rec)
	c := &Creator{
		UserID:    r.Uint("userID"),
		Name:      r.String("name"),
		AccountID: nonZero(r.OptUint("accountID")),
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("failed to read creator: %w", err)
	}
	return c, nil
}

// Record converts the creator into its wire record.
func (c *Creator) Record() wire.Record {
	return wire.NewRecord(creatorSchema.Name,
		wire.F("userID", wire.Uint64(c.UserID)),
		wire.F("name", wire.String(c.Name)),
		wire.F("accountID", wire.Maybe(c.AccountID, wire.Uint64)),
	)
}

// Encode returns the positional wire text of the creator.
func (c *Creator) Encode() (string, error) {
	return CreatorFormat.encode(c.Record())
}
