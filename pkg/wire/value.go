package wire

import (
	"bytes"
	"fmt"
	"math"
)

// Value is a single field value. It is a tagged variant: Kind selects which
// of the payload fields is meaningful. Values are immutable once built.
type Value struct {
	kind Kind

	b   bool
	i   int64
	u   uint64
	f   float64
	r   rune
	s   string
	raw []byte

	// inner is the payload of a present optional or a newtype variant.
	inner *Value

	// record is the payload of a nested record or struct variant.
	record *Record

	// items and entries back the unsupported container shapes.
	items    []Value
	entries  []Field
	stringer fmt.Stringer
}

// Bool returns a boolean value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Int8 returns a signed 8-bit value.
func Int8(v int8) Value { return Value{kind: KindInt8, i: int64(v)} }

// Int16 returns a signed 16-bit value.
func Int16(v int16) Value { return Value{kind: KindInt16, i: int64(v)} }

// Int32 returns a signed 32-bit value.
func Int32(v int32) Value { return Value{kind: KindInt32, i: int64(v)} }

// Int64 returns a signed 64-bit value.
func Int64(v int64) Value { return Value{kind: KindInt64, i: v} }

// Uint8 returns an unsigned 8-bit value.
func Uint8(v uint8) Value { return Value{kind: KindUint8, u: uint64(v)} }

// Uint16 returns an unsigned 16-bit value.
func Uint16(v uint16) Value { return Value{kind: KindUint16, u: uint64(v)} }

// Uint32 returns an unsigned 32-bit value.
func Uint32(v uint32) Value { return Value{kind: KindUint32, u: uint64(v)} }

// Uint64 returns an unsigned 64-bit value.
func Uint64(v uint64) Value { return Value{kind: KindUint64, u: v} }

// Float32 returns a 32-bit float value.
func Float32(v float32) Value { return Value{kind: KindFloat32, f: float64(v)} }

// Float64 returns a 64-bit float value.
func Float64(v float64) Value { return Value{kind: KindFloat64, f: v} }

// Char returns a single-character value.
func Char(v rune) Value { return Value{kind: KindChar, r: v} }

// String returns a string value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Bytes returns a byte blob value. The slice is copied.
func Bytes(v []byte) Value {
	return Value{kind: KindBytes, raw: bytes.Clone(v)}
}

// Some wraps v as a present optional value.
//
// Some(String("")) encodes to the same text as None() and decodes back as
// None(); the format cannot tell them apart.
func Some(v Value) Value {
	return Value{kind: KindOptional, inner: &v}
}

// None returns an absent optional value.
func None() Value {
	return Value{kind: KindOptional}
}

// Maybe returns None() for a nil pointer and Some(wrap(*p)) otherwise.
func Maybe[T any](p *T, wrap func(T) Value) Value {
	if p == nil {
		return None()
	}
	return Some(wrap(*p))
}

// RecordValue returns a nested record value.
func RecordValue(r Record) Value {
	return Value{kind: KindRecord, record: &r}
}

// Unit returns the unit shape. It cannot be encoded.
func Unit() Value { return Value{kind: KindUnit} }

// UnitVariant returns a tag-only enum variant. It cannot be encoded.
func UnitVariant(name string) Value { return Value{kind: KindUnitVariant, s: name} }

// NewtypeVariant returns an enum variant carrying one value. It cannot be encoded.
func NewtypeVariant(name string, v Value) Value {
	return Value{kind: KindNewtypeVariant, s: name, inner: &v}
}

// StructVariant returns an enum variant carrying a record. It cannot be encoded.
func StructVariant(name string, r Record) Value {
	return Value{kind: KindStructVariant, s: name, record: &r}
}

// Seq returns a sequence. It cannot be encoded.
func Seq(items ...Value) Value { return Value{kind: KindSeq, items: items} }

// Tuple returns a tuple. It cannot be encoded.
func Tuple(items ...Value) Value { return Value{kind: KindTuple, items: items} }

// Map returns a map. It cannot be encoded.
func Map(entries ...Field) Value { return Value{kind: KindMap, entries: entries} }

// Formatted returns a value whose text would be produced by v.String().
// It cannot be encoded and v is never called.
func Formatted(v fmt.Stringer) Value { return Value{kind: KindFormatted, stringer: v} }

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt returns the payload of any signed integer kind.
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind.isSigned()
}

// AsUint returns the payload of any unsigned integer kind.
func (v Value) AsUint() (uint64, bool) {
	return v.u, v.kind.isUnsigned()
}

// AsFloat returns the payload of either float kind.
func (v Value) AsFloat() (float64, bool) {
	return v.f, v.kind == KindFloat32 || v.kind == KindFloat64
}

// AsChar returns the character payload.
func (v Value) AsChar() (rune, bool) {
	return v.r, v.kind == KindChar
}

// AsString returns the string payload.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsBytes returns a copy of the byte blob payload.
func (v Value) AsBytes() ([]byte, bool) {
	if v.kind != KindBytes {
		return nil, false
	}
	return bytes.Clone(v.raw), true
}

// AsRecord returns the nested record payload.
func (v Value) AsRecord() (Record, bool) {
	if v.kind != KindRecord || v.record == nil {
		return Record{}, false
	}
	return *v.record, true
}

// Elem returns the wrapped value of a present optional.
func (v Value) Elem() (Value, bool) {
	if v.kind != KindOptional || v.inner == nil {
		return Value{}, false
	}
	return *v.inner, true
}

// IsAbsent returns true for None().
func (v Value) IsAbsent() bool {
	return v.kind == KindOptional && v.inner == nil
}

// Equal reports whether two values have the same kind and payload.
// NaN floats compare equal to each other.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return v.i == o.i
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return v.u == o.u
	case KindFloat32, KindFloat64:
		return v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f))
	case KindChar:
		return v.r == o.r
	case KindString:
		return v.s == o.s
	case KindBytes:
		return bytes.Equal(v.raw, o.raw)
	case KindOptional:
		if v.inner == nil || o.inner == nil {
			return v.inner == nil && o.inner == nil
		}
		return v.inner.Equal(*o.inner)
	case KindRecord:
		return v.record.Equal(*o.record)
	default:
		return false
	}
}

// String returns a debug representation of the value.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return fmt.Sprintf("bool(%t)", v.b)
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return fmt.Sprintf("%s(%d)", v.kind, v.i)
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return fmt.Sprintf("%s(%d)", v.kind, v.u)
	case KindFloat32, KindFloat64:
		return fmt.Sprintf("%s(%g)", v.kind, v.f)
	case KindChar:
		return fmt.Sprintf("char(%q)", v.r)
	case KindString:
		return fmt.Sprintf("string(%q)", v.s)
	case KindBytes:
		return fmt.Sprintf("bytes(%d)", len(v.raw))
	case KindOptional:
		if v.inner == nil {
			return "none"
		}
		return "some(" + v.inner.String() + ")"
	case KindRecord:
		return "record(" + v.record.Name + ")"
	default:
		return v.kind.String()
	}
}
