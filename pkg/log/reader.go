package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Filter selects events from a log. Zero-valued criteria match everything.
//
// SessionID, Endpoints and Schemas pick which decode sessions and records
// are of interest; the remaining fields narrow events within them.
type Filter struct {
	SessionID string

	// Endpoints matches events whose endpoint is any of the listed names.
	Endpoints []string

	// Schemas matches record events of any listed record kind. Events
	// without a record never match a non-empty Schemas.
	Schemas []string

	Direction *Direction
	Layer     *Layer
	Category  *Category

	// TimeStart is inclusive, TimeEnd exclusive.
	TimeStart *time.Time
	TimeEnd   *time.Time
}

func (f *Filter) matches(event Event) bool {
	return f.inScope(event) && f.inWindow(event)
}

// inScope checks the session, endpoint and record kind of an event.
func (f *Filter) inScope(event Event) bool {
	if f.SessionID != "" && event.SessionID != f.SessionID {
		return false
	}
	if len(f.Endpoints) > 0 && !slices.Contains(f.Endpoints, event.Endpoint) {
		return false
	}
	if len(f.Schemas) > 0 {
		return event.Record != nil && slices.Contains(f.Schemas, event.Record.Schema)
	}
	return true
}

// inWindow checks the direction, layer, category and timestamp of an event.
func (f *Filter) inWindow(event Event) bool {
	switch {
	case f.Direction != nil && event.Direction != *f.Direction:
		return false
	case f.Layer != nil && event.Layer != *f.Layer:
		return false
	case f.Category != nil && event.Category != *f.Category:
		return false
	case f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart):
		return false
	case f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd):
		return false
	}
	return true
}

// Reader streams events out of a protocol log, one at a time, skipping the
// ones the filter rejects.
type Reader struct {
	src     io.Closer
	dec     *cbor.Decoder
	filter  Filter
	scanned int
}

// NewReader opens path and yields every event in it.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader opens path and yields only events matching filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := NewStreamReader(f, filter)
	r.src = f
	return r, nil
}

// NewStreamReader reads events from an already open stream such as standard
// input. Close leaves src open.
func NewStreamReader(src io.Reader, filter Filter) *Reader {
	return &Reader{dec: NewDecoder(src), filter: filter}
}

// Next returns the next matching event, or io.EOF once the log is exhausted.
// A log that ends partway through an event yields a decode error.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		err := r.dec.Decode(&event)
		if errors.Is(err, io.EOF) {
			return Event{}, io.EOF
		}
		if err != nil {
			return Event{}, fmt.Errorf("decode log event %d: %w", r.scanned+1, err)
		}
		r.scanned++
		if r.filter.matches(event) {
			return event, nil
		}
	}
}

// Scanned returns how many events have been decoded so far, matching or not.
func (r *Reader) Scanned() int {
	return r.scanned
}

// Close releases the file opened by NewReader or NewFilteredReader.
func (r *Reader) Close() error {
	if r.src == nil {
		return nil
	}
	return r.src.Close()
}
