package wire

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingField   = errors.New("wire: missing field")
	ErrInvalidBool    = errors.New("wire: invalid bool")
	ErrInvalidInteger = errors.New("wire: invalid integer")
	ErrInvalidFloat   = errors.New("wire: invalid float")
	ErrInvalidChar    = errors.New("wire: invalid char")
	ErrEmptyValue     = errors.New("wire: empty value")
	ErrDanglingKey    = errors.New("wire: key without value")
	ErrUnexpectedKey  = errors.New("wire: unexpected key")
	ErrSessionUsed    = errors.New("wire: encoder session already used")
)

// maxErrorText bounds how much of the offending text is echoed by Error.
const maxErrorText = 64

// DecodeError reports a field that could not be parsed into its declared type.
// When a nested record fails, Err holds the nested *DecodeError.
type DecodeError struct {
	// Record is the schema name of the record being decoded.
	Record string

	// Field is the declared field name (empty for a bare scalar).
	Field string

	// Index is the field's position in the schema, or -1 if unknown.
	Index int

	// Text is the offending wire text.
	Text string

	// Err is the underlying cause.
	Err error
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("wire: decode")
	if e.Record != "" {
		b.WriteString(" ")
		b.WriteString(e.Record)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " field %q", e.Field)
		if e.Index >= 0 {
			fmt.Fprintf(&b, " (#%d)", e.Index)
		}
	}
	if e.Text != "" {
		text := e.Text
		if len(text) > maxErrorText {
			text = text[:maxErrorText] + "..."
		}
		fmt.Fprintf(&b, " from %q", text)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// KindError reports a record field read with the wrong accessor.
type KindError struct {
	Got  Kind
	Want string
}

func (e *KindError) Error() string {
	return fmt.Sprintf("wire: field is %s, not %s", e.Got, e.Want)
}

// UnsupportedError reports a value shape the indexed format cannot represent.
type UnsupportedError struct {
	Construct string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("wire: unsupported construct %s", e.Construct)
}

// IOError wraps a failure of the underlying writer.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("wire: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
