package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Bounds applied when reading log files, so a corrupt length prefix cannot
// make the reader allocate without limit.
const (
	maxLogArrayElements = 1 << 16
	maxLogMapPairs      = 1 << 16
)

// Events are written canonically: map keys sorted, definite lengths only,
// timestamps as RFC3339 with nanoseconds. Identical events therefore always
// produce identical bytes, which keeps digests of log files stable.
var logEncMode = mustMode(cbor.EncOptions{
	Sort:          cbor.SortCanonical,
	IndefLength:   cbor.IndefLengthForbidden,
	NilContainers: cbor.NilContainerAsNull,
	Time:          cbor.TimeRFC3339Nano,
}.EncMode())

// Reading is lenient about duplicate and unknown keys so files written by a
// newer dash-log stay readable.
var logDecMode = mustMode(cbor.DecOptions{
	DupMapKey:         cbor.DupMapKeyQuiet,
	IndefLength:       cbor.IndefLengthAllowed,
	ExtraReturnErrors: cbor.ExtraDecErrorNone,
	MaxArrayElements:  maxLogArrayElements,
	MaxMapPairs:       maxLogMapPairs,
}.DecMode())

func mustMode[M any](mode M, err error) M {
	if err != nil {
		panic(fmt.Sprintf("log: invalid CBOR options: %v", err))
	}
	return mode
}

// EncodeEvent returns the CBOR form of a single event.
func EncodeEvent(event Event) ([]byte, error) {
	data, err := logEncMode.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("encode log event: %w", err)
	}
	return data, nil
}

// DecodeEvent parses one CBOR-encoded event.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := logDecMode.Unmarshal(data, &event); err != nil {
		return Event{}, fmt.Errorf("decode log event: %w", err)
	}
	return event, nil
}

// NewEncoder returns a streaming encoder that appends events to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return logEncMode.NewEncoder(w)
}

// NewDecoder returns a streaming decoder that reads consecutive events from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return logDecMode.NewDecoder(r)
}
