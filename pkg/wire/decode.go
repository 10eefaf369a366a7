package wire

import (
	"encoding/base64"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Decoder parses records written in the indexed format. It holds no state
// between calls and is safe for concurrent use.
type Decoder struct {
	delim string
	mode  Mode
}

// NewDecoder creates a decoder for records separated by delimiter.
func NewDecoder(delimiter string, mode Mode) *Decoder {
	return &Decoder{delim: delimiter, mode: mode}
}

// Unmarshal decodes text into a record of schema s.
func Unmarshal(s *Schema, text, delimiter string, mode Mode) (Record, error) {
	return NewDecoder(delimiter, mode).Decode(s, text)
}

// Decode parses text as one record of schema s.
//
// Positional text must contain at least as many fields as the schema;
// trailing extra fields are ignored. Keyed text may list fields in any
// order; unknown keys are ignored, a repeated key keeps its last value and a
// missing optional field decodes as absent.
func (d *Decoder) Decode(s *Schema, text string) (Record, error) {
	tokens := strings.Split(text, d.delim)
	if d.mode == Keyed {
		return decodeKeyed(s, tokens)
	}
	rec, _, err := decodePositional(s, tokens)
	return rec, err
}

func decodePositional(s *Schema, tokens []string) (Record, int, error) {
	rec := Record{Name: s.Name, Fields: make([]Field, 0, len(s.Fields))}
	pos := 0
	for i, spec := range s.Fields {
		if spec.Type.Kind == KindRecord {
			nested, used, err := decodePositional(spec.Type.Record, tokens[pos:])
			if err != nil {
				return Record{}, 0, &DecodeError{Record: s.Name, Field: spec.Name, Index: i, Err: err}
			}
			rec.Fields = append(rec.Fields, F(spec.Name, RecordValue(nested)))
			pos += used
			continue
		}
		if pos >= len(tokens) {
			return Record{}, 0, &DecodeError{Record: s.Name, Field: spec.Name, Index: i, Err: ErrMissingField}
		}
		v, err := decodeValue(spec.Type, tokens[pos])
		if err != nil {
			return Record{}, 0, &DecodeError{Record: s.Name, Field: spec.Name, Index: i, Text: tokens[pos], Err: err}
		}
		rec.Fields = append(rec.Fields, F(spec.Name, v))
		pos++
	}
	return rec, pos, nil
}

func decodeKeyed(s *Schema, tokens []string) (Record, error) {
	raw := make(map[string]string, len(s.Fields))
	nested := make(map[string]Record)

	for i := 0; i < len(tokens); {
		key := tokens[i]
		idx, known := s.field(key)
		if known && s.Fields[idx].Type.Kind == KindRecord {
			spec := s.Fields[idx]
			rec, used, err := decodeKeyedStrict(spec.Type.Record, tokens[i+1:])
			if err != nil {
				return Record{}, &DecodeError{Record: s.Name, Field: spec.Name, Index: idx, Err: err}
			}
			nested[key] = rec
			i += 1 + used
			continue
		}
		if i+1 >= len(tokens) {
			// A trailing delimiter leaves one empty token behind.
			if key == "" {
				break
			}
			return Record{}, &DecodeError{Record: s.Name, Field: key, Index: idx, Err: ErrDanglingKey}
		}
		if known {
			raw[key] = tokens[i+1]
		}
		i += 2
	}

	rec := Record{Name: s.Name, Fields: make([]Field, 0, len(s.Fields))}
	for i, spec := range s.Fields {
		if spec.Type.Kind == KindRecord {
			n, ok := nested[spec.Name]
			if !ok {
				return Record{}, &DecodeError{Record: s.Name, Field: spec.Name, Index: i, Err: ErrMissingField}
			}
			rec.Fields = append(rec.Fields, F(spec.Name, RecordValue(n)))
			continue
		}
		text, ok := raw[spec.Name]
		if !ok {
			if spec.Type.Kind == KindOptional {
				rec.Fields = append(rec.Fields, F(spec.Name, None()))
				continue
			}
			return Record{}, &DecodeError{Record: s.Name, Field: spec.Name, Index: i, Err: ErrMissingField}
		}
		v, err := decodeValue(spec.Type, text)
		if err != nil {
			return Record{}, &DecodeError{Record: s.Name, Field: spec.Name, Index: i, Text: text, Err: err}
		}
		rec.Fields = append(rec.Fields, F(spec.Name, v))
	}
	return rec, nil
}

// decodeKeyedStrict reads a nested keyed record: its name/value pairs follow
// the parent key directly, in declared order.
func decodeKeyedStrict(s *Schema, tokens []string) (Record, int, error) {
	rec := Record{Name: s.Name, Fields: make([]Field, 0, len(s.Fields))}
	pos := 0
	for i, spec := range s.Fields {
		if pos >= len(tokens) {
			return Record{}, 0, &DecodeError{Record: s.Name, Field: spec.Name, Index: i, Err: ErrMissingField}
		}
		if tokens[pos] != spec.Name {
			return Record{}, 0, &DecodeError{Record: s.Name, Field: spec.Name, Index: i, Text: tokens[pos], Err: ErrUnexpectedKey}
		}
		pos++
		if spec.Type.Kind == KindRecord {
			n, used, err := decodeKeyedStrict(spec.Type.Record, tokens[pos:])
			if err != nil {
				return Record{}, 0, &DecodeError{Record: s.Name, Field: spec.Name, Index: i, Err: err}
			}
			rec.Fields = append(rec.Fields, F(spec.Name, RecordValue(n)))
			pos += used
			continue
		}
		if pos >= len(tokens) {
			return Record{}, 0, &DecodeError{Record: s.Name, Field: spec.Name, Index: i, Err: ErrDanglingKey}
		}
		v, err := decodeValue(spec.Type, tokens[pos])
		if err != nil {
			return Record{}, 0, &DecodeError{Record: s.Name, Field: spec.Name, Index: i, Text: tokens[pos], Err: err}
		}
		rec.Fields = append(rec.Fields, F(spec.Name, v))
		pos++
	}
	return rec, pos, nil
}

// DecodeScalar parses the text of a single field of type t.
func DecodeScalar(t Type, text string) (Value, error) {
	v, err := decodeValue(t, text)
	if err != nil {
		return Value{}, &DecodeError{Index: -1, Text: text, Err: err}
	}
	return v, nil
}

func decodeValue(t Type, text string) (Value, error) {
	switch t.Kind {
	case KindOptional:
		if text == "" {
			return None(), nil
		}
		if t.Elem == nil {
			return Value{}, &UnsupportedError{Construct: "optional"}
		}
		v, err := decodeValue(*t.Elem, text)
		if err != nil {
			return Value{}, err
		}
		return Some(v), nil

	case KindBool:
		switch text {
		case "1":
			return Bool(true), nil
		case "0":
			return Bool(false), nil
		default:
			return Value{}, ErrInvalidBool
		}

	case KindInt8, KindInt16, KindInt32, KindInt64:
		if err := checkDecimal(text, true); err != nil {
			return Value{}, err
		}
		i, err := strconv.ParseInt(text, 10, t.Kind.bitSize())
		if err != nil {
			return Value{}, err
		}
		return Value{kind: t.Kind, i: i}, nil

	case KindUint8, KindUint16, KindUint32, KindUint64:
		if err := checkDecimal(text, false); err != nil {
			return Value{}, err
		}
		u, err := strconv.ParseUint(text, 10, t.Kind.bitSize())
		if err != nil {
			return Value{}, err
		}
		return Value{kind: t.Kind, u: u}, nil

	case KindFloat32, KindFloat64:
		if text == "" {
			return Value{}, ErrEmptyValue
		}
		if err := checkFloat(text); err != nil {
			return Value{}, err
		}
		f, err := strconv.ParseFloat(text, t.Kind.bitSize())
		if err != nil {
			return Value{}, err
		}
		return Value{kind: t.Kind, f: f}, nil

	case KindChar:
		r, size := utf8.DecodeRuneInString(text)
		if size == 0 || size != len(text) || (r == utf8.RuneError && size == 1) {
			return Value{}, ErrInvalidChar
		}
		return Char(r), nil

	case KindString:
		return String(text), nil

	case KindBytes:
		b, err := base64.URLEncoding.DecodeString(text)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindBytes, raw: b}, nil

	default:
		return Value{}, &UnsupportedError{Construct: t.Kind.String()}
	}
}

// checkDecimal accepts only what the encoder writes: an optional minus sign
// for signed kinds followed by digits without leading zeros. "-0" is rejected.
func checkDecimal(text string, signed bool) error {
	digits := text
	if signed && strings.HasPrefix(digits, "-") {
		digits = digits[1:]
		if digits == "0" {
			return ErrInvalidInteger
		}
	}
	if digits == "" {
		return ErrInvalidInteger
	}
	if digits[0] == '0' && len(digits) > 1 {
		return ErrInvalidInteger
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return ErrInvalidInteger
		}
	}
	return nil
}

// checkFloat accepts the forms the encoder writes: an optionally negative
// run of digits with an optional fraction, or one of NaN, +Inf and -Inf.
// Exponents, hex floats, underscores and a leading '+' are rejected.
func checkFloat(text string) error {
	switch text {
	case "NaN", "+Inf", "-Inf":
		return nil
	}
	intPart, frac, hasFrac := strings.Cut(strings.TrimPrefix(text, "-"), ".")
	if !allDigits(intPart) || (hasFrac && !allDigits(frac)) {
		return ErrInvalidFloat
	}
	return nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
