package wire

// Field is one named value inside a record.
type Field struct {
	Name  string
	Value Value
}

// Record is an ordered list of fields. In positional mode the order is the
// wire contract; it must match the schema the peer decodes with.
type Record struct {
	Name   string
	Fields []Field
}

// F builds a Field.
func F(name string, v Value) Field {
	return Field{Name: name, Value: v}
}

// NewRecord builds a record from fields in wire order.
func NewRecord(name string, fields ...Field) Record {
	return Record{Name: name, Fields: fields}
}

// Lookup returns the value of the first field with the given name.
func (r Record) Lookup(name string) (Value, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Equal reports whether both records have the same name and equal fields
// in the same order.
func (r Record) Equal(o Record) bool {
	if r.Name != o.Name || len(r.Fields) != len(o.Fields) {
		return false
	}
	for i := range r.Fields {
		if r.Fields[i].Name != o.Fields[i].Name || !r.Fields[i].Value.Equal(o.Fields[i].Value) {
			return false
		}
	}
	return true
}

// Reader extracts typed fields from a decoded record. The first failure is
// kept and all later calls return zero values; check Err once at the end.
type Reader struct {
	rec Record
	err error
}

// NewReader returns a Reader over rec.
func NewReader(rec Record) *Reader {
	return &Reader{rec: rec}
}

// Err returns the first error encountered, or nil.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) value(name string) (Value, bool) {
	if r.err != nil {
		return Value{}, false
	}
	v, ok := r.rec.Lookup(name)
	if !ok {
		r.err = &DecodeError{Record: r.rec.Name, Field: name, Index: -1, Err: ErrMissingField}
		return Value{}, false
	}
	return v, true
}

func (r *Reader) mismatch(name string, v Value, want string) {
	r.err = &DecodeError{
		Record: r.rec.Name,
		Field:  name,
		Index:  -1,
		Err:    &KindError{Got: v.kind, Want: want},
	}
}

// optional unwraps an optional field. present is false for None().
func (r *Reader) optional(name string) (v Value, present bool) {
	v, ok := r.value(name)
	if !ok {
		return Value{}, false
	}
	if v.kind != KindOptional {
		r.mismatch(name, v, "optional")
		return Value{}, false
	}
	return v.Elem()
}

// Bool reads a bool field.
func (r *Reader) Bool(name string) bool {
	v, ok := r.value(name)
	if !ok {
		return false
	}
	b, ok := v.AsBool()
	if !ok {
		r.mismatch(name, v, "bool")
	}
	return b
}

// Int reads any signed integer field.
func (r *Reader) Int(name string) int64 {
	v, ok := r.value(name)
	if !ok {
		return 0
	}
	i, ok := v.AsInt()
	if !ok {
		r.mismatch(name, v, "signed integer")
	}
	return i
}

// Uint reads any unsigned integer field.
func (r *Reader) Uint(name string) uint64 {
	v, ok := r.value(name)
	if !ok {
		return 0
	}
	u, ok := v.AsUint()
	if !ok {
		r.mismatch(name, v, "unsigned integer")
	}
	return u
}

// Float reads a float field.
func (r *Reader) Float(name string) float64 {
	v, ok := r.value(name)
	if !ok {
		return 0
	}
	f, ok := v.AsFloat()
	if !ok {
		r.mismatch(name, v, "float")
	}
	return f
}

// String reads a string field.
func (r *Reader) String(name string) string {
	v, ok := r.value(name)
	if !ok {
		return ""
	}
	s, ok := v.AsString()
	if !ok {
		r.mismatch(name, v, "string")
	}
	return s
}

// Bytes reads a byte blob field.
func (r *Reader) Bytes(name string) []byte {
	v, ok := r.value(name)
	if !ok {
		return nil
	}
	b, ok := v.AsBytes()
	if !ok {
		r.mismatch(name, v, "bytes")
	}
	return b
}

// Record reads a nested record field.
func (r *Reader) Record(name string) Record {
	v, ok := r.value(name)
	if !ok {
		return Record{}
	}
	rec, ok := v.AsRecord()
	if !ok {
		r.mismatch(name, v, "record")
	}
	return rec
}

// OptUint reads an optional unsigned integer field; nil when absent.
func (r *Reader) OptUint(name string) *uint64 {
	v, ok := r.optional(name)
	if !ok {
		return nil
	}
	u, ok := v.AsUint()
	if !ok {
		r.mismatch(name, v, "unsigned integer")
		return nil
	}
	return &u
}

// OptInt reads an optional signed integer field; nil when absent.
func (r *Reader) OptInt(name string) *int64 {
	v, ok := r.optional(name)
	if !ok {
		return nil
	}
	i, ok := v.AsInt()
	if !ok {
		r.mismatch(name, v, "signed integer")
		return nil
	}
	return &i
}

// OptString reads an optional string field; nil when absent.
func (r *Reader) OptString(name string) *string {
	v, ok := r.optional(name)
	if !ok {
		return nil
	}
	s, ok := v.AsString()
	if !ok {
		r.mismatch(name, v, "string")
		return nil
	}
	return &s
}

// OptBool reads an optional bool field; nil when absent.
func (r *Reader) OptBool(name string) *bool {
	v, ok := r.optional(name)
	if !ok {
		return nil
	}
	b, ok := v.AsBool()
	if !ok {
		r.mismatch(name, v, "bool")
		return nil
	}
	return &b
}
