package request

import (
	"net/url"
	"strings"
	"time"

	"github.com/dash-protocol/dash-go/pkg/log"
	"github.com/dash-protocol/dash-go/pkg/wire"
)

// Request is implemented by every request record.
type Request interface {
	// Script is the server script the request is posted to, without the
	// ".php" suffix.
	Script() string

	// Record returns the request as a flat keyed record. Field names are
	// the server's form keys, base fields first.
	Record() wire.Record
}

// Body returns the form body of r: key=value pairs joined by '&' in record
// order, with values query-escaped.
func Body(r Request) (string, error) {
	var b strings.Builder
	for i, f := range r.Record().Fields {
		v, err := wire.FormatValue(f.Value)
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(f.Name)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v))
	}
	return b.String(), nil
}

// Form returns r as url.Values. Absent optional fields are sent empty.
func Form(r Request) (url.Values, error) {
	rec := r.Record()
	values := make(url.Values, len(rec.Fields))
	for _, f := range rec.Fields {
		v, err := wire.FormatValue(f.Value)
		if err != nil {
			return nil, err
		}
		values.Set(f.Name, v)
	}
	return values, nil
}

// Indexed returns r in the keyed indexed format with the given delimiter.
func Indexed(r Request, delim string) (string, error) {
	return wire.Marshal(r.Record(), delim, wire.Keyed)
}

// LogEncode returns the form body of r and reports the encoding to logger.
// A nil logger only encodes.
func LogEncode(logger log.Logger, r Request) (string, error) {
	body, err := Body(r)
	if logger == nil {
		return body, err
	}

	ev := log.Event{
		Timestamp: time.Now(),
		SessionID: log.NewSessionID(),
		Direction: log.DirectionOut,
		Endpoint:  r.Script(),
	}
	if err != nil {
		ev.Layer = log.LayerRecord
		ev.Category = log.CategoryError
		ev.Error = &log.ErrorEventData{
			Layer:   log.LayerRecord,
			Message: err.Error(),
			Context: "encode request",
		}
		logger.Log(ev)
		return "", err
	}

	rec := r.Record()
	ev.Layer = log.LayerRecord
	ev.Category = log.CategoryEncode
	ev.Record = &log.RecordEvent{Schema: rec.Name, Fields: len(rec.Fields)}
	logger.Log(ev)

	ev.Timestamp = time.Now()
	ev.Layer = log.LayerBody
	ev.Record = nil
	ev.Body = log.NewBodyEvent(body)
	logger.Log(ev)
	return body, nil
}

// stringOf is the String method shared by the request records. Request
// records hold only scalars, so encoding cannot fail.
func stringOf(r Request) string {
	s, _ := Body(r)
	return s
}

func record(name string, base BaseRequest, fields ...wire.Field) wire.Record {
	return wire.NewRecord(name, append(base.fields(), fields...)...)
}
