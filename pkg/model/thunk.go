package model

import "sync"

// Thunk holds a field's wire text and decodes it on first access. The
// decoded value and error are memoised; Value is safe for concurrent use.
type Thunk[T any] struct {
	raw    string
	decode func(string) (T, error)

	once  sync.Once
	value T
	err   error
}

// NewThunk returns a thunk that decodes raw with decode on first access.
func NewThunk[T any](raw string, decode func(string) (T, error)) *Thunk[T] {
	return &Thunk[T]{raw: raw, decode: decode}
}

// evaluated returns a thunk whose value is already known.
func evaluated[T any](raw string, v T) *Thunk[T] {
	t := &Thunk[T]{raw: raw, value: v}
	t.once.Do(func() {})
	return t
}

// Raw returns the wire text.
func (t *Thunk[T]) Raw() string {
	return t.raw
}

// Value decodes the wire text once and returns the result.
func (t *Thunk[T]) Value() (T, error) {
	t.once.Do(func() {
		t.value, t.err = t.decode(t.raw)
	})
	return t.value, t.err
}

// rawOf returns a pointer to the thunk's wire text, or nil for a nil thunk.
func rawOf[T any](t *Thunk[T]) *string {
	if t == nil {
		return nil
	}
	raw := t.raw
	return &raw
}
