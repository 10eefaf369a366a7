package response

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dash-protocol/dash-go/pkg/log"
	"github.com/dash-protocol/dash-go/pkg/wire"
)

// Server scripts whose replies this package decodes. They label protocol
// events only.
const (
	endpointLevels          = "getGJLevels21"
	endpointLevel           = "downloadGJLevel22"
	endpointProfile         = "getGJUserInfo20"
	endpointSearchedUser    = "getGJUsers20"
	endpointLevelComments   = "getGJComments21"
	endpointProfileComments = "getGJAccountComments20"
)

// DecoderConfig configures a Decoder.
type DecoderConfig struct {
	// Logger is the operational logger. If nil, logging is disabled.
	Logger *slog.Logger

	// ProtocolLogger receives an event for every body, section and record the
	// decoder handles. If nil, protocol logging is disabled.
	ProtocolLogger log.Logger
}

// Decoder decodes server replies. It holds no per-call state and is safe for
// concurrent use.
type Decoder struct {
	logger         *slog.Logger
	protocolLogger log.Logger
}

// discardHandler discards all log output; equivalent to slog.DiscardHandler
// (Go 1.24+), which is unavailable on the module's minimum Go version.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// NewDecoder creates a decoder with the given configuration.
func NewDecoder(cfg DecoderConfig) *Decoder {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(discardHandler{})
	}
	return &Decoder{
		logger:         logger,
		protocolLogger: cfg.ProtocolLogger,
	}
}

var defaultDecoder = NewDecoder(DecoderConfig{})

// session is the state of a single decode call.
type session struct {
	d        *Decoder
	id       string
	endpoint string
	logger   *slog.Logger
}

// begin starts a decode call for endpoint and records the raw body.
func (d *Decoder) begin(endpoint, body string) *session {
	s := &session{d: d, endpoint: endpoint}
	if d.protocolLogger != nil {
		s.id = log.NewSessionID()
	}
	s.logger = d.logger.With("endpoint", endpoint)
	s.logger.Debug("decoding response", "size", len(body))

	s.log(log.Event{
		Layer:    log.LayerBody,
		Category: log.CategoryDecode,
		Body:     log.NewBodyEvent(body),
	})
	return s
}

func (s *session) log(ev log.Event) {
	if s.d.protocolLogger == nil {
		return
	}
	ev.Timestamp = time.Now()
	ev.SessionID = s.id
	ev.Direction = log.DirectionIn
	ev.Endpoint = s.endpoint
	s.d.protocolLogger.Log(ev)
}

// sections checks the body for reserved replies and splits it.
func (s *session) sections(body string, need int) ([]string, error) {
	sections, err := Sections(body, need)
	if err != nil {
		return nil, s.fail(log.LayerBody, err, "split sections")
	}
	return sections, nil
}

// checkBody is sections for endpoints that decode the whole body.
func (s *session) checkBody(body string) error {
	if err := CheckBody(body); err != nil {
		return s.fail(log.LayerBody, err, "check body")
	}
	return nil
}

// fragments splits section index on delim and records the result.
func (s *session) fragments(index int, section, delim string) []string {
	fragments, dropped := splitFragments(section, delim)
	s.log(log.Event{
		Layer:    log.LayerSection,
		Category: log.CategoryDecode,
		Section: &log.SectionEvent{
			Index:     index,
			Delimiter: delim,
			Fragments: len(fragments),
			Dropped:   dropped,
		},
	})
	return fragments
}

// record logs one decoded record of schema sch.
func (s *session) record(sch *wire.Schema, relations ...log.Relation) {
	s.log(log.Event{
		Layer:    log.LayerRecord,
		Category: log.CategoryDecode,
		Record: &log.RecordEvent{
			Schema:    sch.Name,
			Fields:    len(sch.Fields),
			Relations: relations,
		},
	})
}

// sentinel logs a reserved literal standing in for a record.
func (s *session) sentinel(kind log.SentinelKind, text string) {
	s.log(log.Event{
		Layer:    log.LayerRecord,
		Category: log.CategorySentinel,
		Sentinel: &log.SentinelEvent{Kind: kind, Text: text},
	})
}

// fail logs err and returns it unchanged. Reserved bodies are logged as
// sentinels rather than errors.
func (s *session) fail(layer log.Layer, err error, context string) error {
	switch {
	case errors.Is(err, ErrNotFound):
		s.sentinel(log.SentinelNotFound, NotFoundBody)
		s.logger.Debug("response is not found marker")
		return err
	case errors.Is(err, ErrAccessBlocked):
		s.sentinel(log.SentinelAccessBlocked, AccessBlockedBody)
		s.logger.Warn("request blocked by upstream proxy")
		return err
	}
	s.log(log.Event{
		Layer:    layer,
		Category: log.CategoryError,
		Error: &log.ErrorEventData{
			Layer:   layer,
			Message: err.Error(),
			Context: context,
		},
	})
	s.logger.Debug("failed to decode response", "error", err)
	return err
}

// decodeFragments decodes every fragment of a section with decode, aborting
// on the first failure.
func decodeFragments[T any](s *session, sch *wire.Schema, index int, section, delim string, decode func(string) (T, error)) ([]T, error) {
	fragments := s.fragments(index, section, delim)
	out := make([]T, 0, len(fragments))
	for _, f := range fragments {
		v, err := decode(f)
		if err != nil {
			return nil, s.fail(log.LayerRecord, err, "decode "+sch.Name)
		}
		out = append(out, v)
	}
	return out, nil
}
