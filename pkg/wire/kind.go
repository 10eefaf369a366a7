package wire

// Kind identifies the shape carried by a Value or declared by a Type.
type Kind uint8

const (
	// KindInvalid is the zero Kind. Encoding it is an error.
	KindInvalid Kind = iota

	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindChar
	KindString
	KindBytes

	// KindOptional wraps a scalar that may be absent.
	KindOptional

	// KindRecord is a nested record, flattened into the parent's delimiter stream.
	KindRecord

	// The shapes below have no representation in the indexed format.
	// They exist so that the encoder can reject them by name.

	KindUnit
	KindUnitVariant
	KindNewtypeVariant
	KindStructVariant
	KindSeq
	KindTuple
	KindMap
	KindFormatted
)

// String returns the kind name. For unsupported shapes this is the
// construct name reported by UnsupportedError.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindChar:
		return "char"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindOptional:
		return "optional"
	case KindRecord:
		return "record"
	case KindUnit:
		return "unit"
	case KindUnitVariant:
		return "unit_variant"
	case KindNewtypeVariant:
		return "newtype_variant"
	case KindStructVariant:
		return "struct_variant"
	case KindSeq:
		return "seq"
	case KindTuple:
		return "tuple"
	case KindMap:
		return "map"
	case KindFormatted:
		return "collect_str"
	default:
		return "invalid"
	}
}

// IsSupported returns true if the indexed format can represent the kind.
func (k Kind) IsSupported() bool {
	return k >= KindBool && k <= KindRecord
}

// IsScalar returns true for kinds that encode to a single field slot.
func (k Kind) IsScalar() bool {
	return k >= KindBool && k <= KindBytes
}

func (k Kind) isSigned() bool {
	return k >= KindInt8 && k <= KindInt64
}

func (k Kind) isUnsigned() bool {
	return k >= KindUint8 && k <= KindUint64
}

// bitSize returns the width used by strconv for numeric kinds.
func (k Kind) bitSize() int {
	switch k {
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	default:
		return 64
	}
}

// Mode selects how a record's fields are laid out.
type Mode uint8

const (
	// Positional writes values only; field identity is the position.
	Positional Mode = 0

	// Keyed writes "name<delim>value" for every field.
	Keyed Mode = 1
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Positional:
		return "POSITIONAL"
	case Keyed:
		return "KEYED"
	default:
		return "UNKNOWN"
	}
}
