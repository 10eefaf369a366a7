package log

import (
	"time"
)

// Event represents a protocol log event captured while encoding a request or
// decoding a response. CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID groups the events of one decode or encode call (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction indicates data flow: IN for server responses, OUT for requests.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// Endpoint is the server script the data belongs to (e.g. "getGJLevels21").
	Endpoint string `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Body     *BodyEvent      `cbor:"10,keyasint,omitempty"` // Raw response or request body
	Section  *SectionEvent   `cbor:"11,keyasint,omitempty"` // One '#'-separated section
	Record   *RecordEvent    `cbor:"12,keyasint,omitempty"` // One decoded or encoded record
	Sentinel *SentinelEvent  `cbor:"13,keyasint,omitempty"` // Reserved body or literal
	Error    *ErrorEventData `cbor:"14,keyasint,omitempty"` // Errors at any layer
}

// Direction indicates the direction of data flow.
type Direction uint8

const (
	// DirectionIn indicates a server response being decoded.
	DirectionIn Direction = 0
	// DirectionOut indicates a request being encoded.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which decoding stage captured the event.
type Layer uint8

const (
	// LayerBody is the whole raw body.
	LayerBody Layer = 0
	// LayerSection is one section of a multi-part body.
	LayerSection Layer = 1
	// LayerRecord is one indexed-format record.
	LayerRecord Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerBody:
		return "BODY"
	case LayerSection:
		return "SECTION"
	case LayerRecord:
		return "RECORD"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryDecode indicates data was decoded.
	CategoryDecode Category = 0
	// CategoryEncode indicates data was encoded.
	CategoryEncode Category = 1
	// CategorySentinel indicates a reserved literal was recognised.
	CategorySentinel Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryDecode:
		return "DECODE"
	case CategoryEncode:
		return "ENCODE"
	case CategorySentinel:
		return "SENTINEL"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// BodyEvent captures a raw body.
type BodyEvent struct {
	// Size is the body size in bytes.
	Size int `cbor:"1,keyasint"`

	// Data is the raw body (may be truncated for large bodies).
	Data []byte `cbor:"2,keyasint,omitempty"`

	// Truncated indicates if Data was truncated.
	Truncated bool `cbor:"3,keyasint,omitempty"`

	// Digest is the BLAKE3-256 hash of the complete body.
	Digest []byte `cbor:"4,keyasint,omitempty"`
}

// SectionEvent captures how one section was split into fragments.
type SectionEvent struct {
	// Index is the section's position in the body.
	Index int `cbor:"1,keyasint"`

	// Delimiter is the fragment delimiter used for this section.
	Delimiter string `cbor:"2,keyasint,omitempty"`

	// Fragments is the number of non-empty fragments.
	Fragments int `cbor:"3,keyasint"`

	// Dropped is the number of empty fragments skipped.
	Dropped int `cbor:"4,keyasint,omitempty"`
}

// RecordEvent captures one record passing through the codec.
type RecordEvent struct {
	// Schema is the record kind (e.g. "Level").
	Schema string `cbor:"1,keyasint"`

	// Fields is the number of fields in the record.
	Fields int `cbor:"2,keyasint"`

	// Relations lists the record's cross-references and whether they resolved.
	Relations []Relation `cbor:"3,keyasint,omitempty"`
}

// Relation is one cross-reference from a record to another.
type Relation struct {
	// Name is the relation (e.g. "creator").
	Name string `cbor:"1,keyasint"`

	// ID is the referenced id.
	ID uint64 `cbor:"2,keyasint"`

	// Resolved is true when the referenced record was found.
	Resolved bool `cbor:"3,keyasint,omitempty"`
}

// SentinelEvent captures a reserved value that stands for an outcome rather
// than data.
type SentinelEvent struct {
	// Kind of sentinel recognised.
	Kind SentinelKind `cbor:"1,keyasint"`

	// Text is the literal that matched.
	Text string `cbor:"2,keyasint,omitempty"`
}

// SentinelKind identifies a reserved value.
type SentinelKind uint8

const (
	// SentinelNotFound is the "-1" body.
	SentinelNotFound SentinelKind = 0
	// SentinelAccessBlocked is the "error code: 1005" body.
	SentinelAccessBlocked SentinelKind = 1
	// SentinelNoUser is the deleted comment author literal.
	SentinelNoUser SentinelKind = 2
)

// String returns the sentinel kind name.
func (s SentinelKind) String() string {
	switch s {
	case SentinelNotFound:
		return "NOT_FOUND"
	case SentinelAccessBlocked:
		return "ACCESS_BLOCKED"
	case SentinelNoUser:
		return "NO_USER"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`
}
