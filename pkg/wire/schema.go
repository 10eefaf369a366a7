package wire

import "fmt"

// Type declares the shape of one field.
type Type struct {
	Kind Kind

	// Elem is the wrapped type of a KindOptional field.
	Elem *Type

	// Record is the schema of a KindRecord field.
	Record *Schema
}

// FieldSpec declares a field of a record schema.
type FieldSpec struct {
	Name string
	Type Type
}

// Schema is the fixed, ordered field list of one record kind.
type Schema struct {
	Name   string
	Fields []FieldSpec
}

// Required declares a scalar field that must be present.
func Required(name string, k Kind) FieldSpec {
	return FieldSpec{Name: name, Type: Type{Kind: k}}
}

// Optional declares a scalar field that may be absent.
func Optional(name string, k Kind) FieldSpec {
	elem := Type{Kind: k}
	return FieldSpec{Name: name, Type: Type{Kind: KindOptional, Elem: &elem}}
}

// Nested declares a field holding a record of schema s.
func Nested(name string, s *Schema) FieldSpec {
	return FieldSpec{Name: name, Type: Type{Kind: KindRecord, Record: s}}
}

// NewSchema builds and validates a schema.
func NewSchema(name string, fields ...FieldSpec) (*Schema, error) {
	s := &Schema{Name: name, Fields: fields}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on an invalid declaration.
// Intended for package-level schema variables.
func MustSchema(name string, fields ...FieldSpec) *Schema {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(fmt.Sprintf("wire: invalid schema %s: %v", name, err))
	}
	return s
}

// Validate checks that every field can be encoded and decoded unambiguously:
// names are unique and non-empty, kinds are supported, optionals wrap a
// scalar, and nested records carry a valid schema.
func (s *Schema) Validate() error {
	if s == nil {
		return fmt.Errorf("wire: nil schema")
	}
	seen := make(map[string]struct{}, len(s.Fields))
	for i, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("wire: %s field %d has no name", s.Name, i)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("wire: %s field %q declared twice", s.Name, f.Name)
		}
		seen[f.Name] = struct{}{}
		if err := f.Type.validate(); err != nil {
			return fmt.Errorf("wire: %s field %q: %w", s.Name, f.Name, err)
		}
	}
	return nil
}

func (t Type) validate() error {
	switch {
	case t.Kind.IsScalar():
		return nil
	case t.Kind == KindOptional:
		if t.Elem == nil {
			return fmt.Errorf("optional without element type")
		}
		// A present nested record would occupy several slots while an absent
		// one occupies one, so positional decoding could not line up.
		if !t.Elem.Kind.IsScalar() {
			return &UnsupportedError{Construct: "optional " + t.Elem.Kind.String()}
		}
		return nil
	case t.Kind == KindRecord:
		if t.Record == nil {
			return fmt.Errorf("record without schema")
		}
		return t.Record.Validate()
	default:
		return &UnsupportedError{Construct: t.Kind.String()}
	}
}

// width is the number of positional slots a record of this schema occupies.
func (s *Schema) width() int {
	n := 0
	for _, f := range s.Fields {
		if f.Type.Kind == KindRecord {
			n += f.Type.Record.width()
			continue
		}
		n++
	}
	return n
}

func (s *Schema) field(name string) (int, bool) {
	for i, f := range s.Fields {
		if f.Name == name {
			return i, true
		}
	}
	return -1, false
}
