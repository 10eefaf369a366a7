package model

import (
	"fmt"

	"github.com/dash-protocol/dash-go/pkg/wire"
)

var songSchema = wire.MustSchema("NewgroundsSong",
	wire.Required("1", wire.KindUint64),  // song id
	wire.Required("2", wire.KindString),  // name
	wire.Optional("3", wire.KindUint64),  // artist id
	wire.Required("4", wire.KindString),  // artist
	wire.Required("5", wire.KindFloat64), // size in MB
	wire.Optional("6", wire.KindString),  // video id
	wire.Optional("7", wire.KindString),  // youtube channel
	wire.Optional("8", wire.KindString),
	wire.Required("10", wire.KindString), // link, percent-encoded
)

// SongSchema returns the schema songs are decoded with.
func SongSchema() *wire.Schema { return songSchema }

// NewgroundsSong is a custom song hosted on Newgrounds.
type NewgroundsSong struct {
	SongID   uint64
	Name     string
	ArtistID *uint64
	Artist   string

	// Filesize is in megabytes.
	Filesize float64

	VideoID        *string
	YouTubeChannel *string
	Index8         *string

	// Link is the download URL, decoded on first access.
	Link *Thunk[string]
}

// DecodeSong decodes one keyed song fragment.
func DecodeSong(text string) (*NewgroundsSong, error) {
	rec, err := SongFormat.decode(songSchema, text)
	if err != nil {
		return nil, err
	}
	return SongFromRecord(rec)
}

// SongFromRecord converts a decoded record into a NewgroundsSong.
func SongFromRecord(rec wire.Record) (*NewgroundsSong, error) {
	r := wire.NewReader(rec)
	s := &NewgroundsSong{
		SongID:         r.Uint("1"),
		Name:           r.String("2"),
		ArtistID:       nonZero(r.OptUint("3")),
		Artist:         r.String("4"),
		Filesize:       r.Float("5"),
		VideoID:        r.OptString("6"),
		YouTubeChannel: r.OptString("7"),
		Index8:         r.OptString("8"),
		Link:           NewThunk(r.String("10"), DecodeLink),
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("failed to read song: %w", err)
	}
	return s, nil
}

// Record converts the song into its wire record.
func (s *NewgroundsSong) Record() wire.Record {
	return wire.NewRecord(songSchema.Name,
		wire.F("1", wire.Uint64(s.SongID)),
		wire.F("2", wire.String(s.Name)),
		wire.F("3", wire.Maybe(s.ArtistID, wire.Uint64)),
		wire.F("4", wire.String(s.Artist)),
		wire.F("5", wire.Float64(s.Filesize)),
		wire.F("6", wire.Maybe(s.VideoID, wire.String)),
		wire.F("7", wire.Maybe(s.YouTubeChannel, wire.String)),
		wire.F("8", wire.Maybe(s.Index8, wire.String)),
		wire.F("10", wire.String(rawText(s.Link))),
	)
}

// Encode returns the keyed wire text of the song.
func (s *NewgroundsSong) Encode() (string, error) {
	return SongFormat.encode(s.Record())
}
