package wire

import (
	"encoding/base64"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	trueText  = []byte("1")
	falseText = []byte("0")
)

// Encoder writes one record in the indexed format. An Encoder is a single
// encoding session: it is created for one record and discarded afterwards.
type Encoder struct {
	w     io.Writer
	delim []byte
	mode  Mode

	// started is set once the first field has been written. It cannot be
	// derived from the output length because an absent optional in first
	// position writes nothing yet still needs a delimiter after it.
	started bool
	used    bool

	scratch []byte
}

// NewEncoder creates an encoder that writes to w, separating fields with delimiter.
func NewEncoder(w io.Writer, delimiter string, mode Mode) *Encoder {
	return &Encoder{
		w:     w,
		delim: []byte(delimiter),
		mode:  mode,
	}
}

// EncodeRecord writes r. It can be called once per Encoder.
func (e *Encoder) EncodeRecord(r Record) error {
	if e.used {
		return ErrSessionUsed
	}
	e.used = true
	return e.record(r)
}

// Marshal encodes r and returns the text.
func Marshal(r Record, delimiter string, mode Mode) (string, error) {
	var b strings.Builder
	if err := NewEncoder(&b, delimiter, mode).EncodeRecord(r); err != nil {
		return "", err
	}
	return b.String(), nil
}

// FormatValue returns the wire text of a single value. Nested records are
// flattened without separators, so callers normally pass scalars only.
func FormatValue(v Value) (string, error) {
	var b strings.Builder
	e := NewEncoder(&b, "", Positional)
	e.used = true
	if err := e.value(v); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (e *Encoder) record(r Record) error {
	for _, f := range r.Fields {
		if e.mode == Keyed {
			if err := e.append([]byte(f.Name)); err != nil {
				return err
			}
		}
		if err := e.value(f.Value); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) value(v Value) error {
	switch v.kind {
	case KindBool:
		if v.b {
			return e.append(trueText)
		}
		return e.append(falseText)

	case KindInt8, KindInt16, KindInt32, KindInt64:
		e.scratch = strconv.AppendInt(e.scratch[:0], v.i, 10)
		return e.append(e.scratch)

	case KindUint8, KindUint16, KindUint32, KindUint64:
		e.scratch = strconv.AppendUint(e.scratch[:0], v.u, 10)
		return e.append(e.scratch)

	case KindFloat32, KindFloat64:
		// 'f' with precision -1 is the shortest text that parses back to the
		// same value and never adds ".0" to integral values, which is what
		// the server emits ("11", "11.5").
		e.scratch = strconv.AppendFloat(e.scratch[:0], v.f, 'f', -1, v.kind.bitSize())
		return e.append(e.scratch)

	case KindChar:
		e.scratch = utf8.AppendRune(e.scratch[:0], v.r)
		return e.append(e.scratch)

	case KindString:
		if err := e.separate(); err != nil {
			return err
		}
		return e.writeString(v.s)

	case KindBytes:
		return e.blob(v.raw)

	case KindOptional:
		if v.inner == nil {
			return e.append(nil)
		}
		return e.value(*v.inner)

	case KindRecord:
		return e.record(*v.record)

	default:
		return &UnsupportedError{Construct: v.kind.String()}
	}
}

// separate writes the delimiter before every field but the first.
func (e *Encoder) separate() error {
	if !e.started {
		e.started = true
		return nil
	}
	return e.write(e.delim)
}

func (e *Encoder) append(p []byte) error {
	if err := e.separate(); err != nil {
		return err
	}
	return e.write(p)
}

func (e *Encoder) write(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if _, err := e.w.Write(p); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

func (e *Encoder) writeString(s string) error {
	if s == "" {
		return nil
	}
	if _, err := io.WriteString(e.w, s); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// blob streams p through a base64 encoder straight into the writer.
func (e *Encoder) blob(p []byte) error {
	if err := e.separate(); err != nil {
		return err
	}
	enc := base64.NewEncoder(base64.URLEncoding, e.w)
	if _, err := enc.Write(p); err != nil {
		return &IOError{Op: "write bytes", Err: err}
	}
	if err := enc.Close(); err != nil {
		return &IOError{Op: "flush bytes", Err: err}
	}
	return nil
}
