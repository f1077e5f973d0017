package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state wrapper distinguishing three payload shapes that a
// plain pointer cannot: the key is absent, the key is present with a JSON
// null, or the key is present with a value.
//
// The distinction matters for sparse patches: an absent key means "leave the
// stored value untouched", while an explicit null means "overwrite the stored
// value with null".
type Optional[T any] struct {
	// Set reports whether the key was present in the JSON payload at all.
	Set bool `json:"-"`

	// Valid reports whether the value is non-null. Meaningful only when
	// Set is true.
	Valid bool `json:"-"`

	// Value is the decoded value. Meaningful only when Set and Valid are
	// both true.
	Value T `json:"-"`
}

// Some returns an Optional holding the given value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null returns an Optional representing an explicit JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// Ptr returns a pointer to the held value, or nil when the Optional is
// absent or null. Convenient for handing the value to database drivers.
func (o Optional[T]) Ptr() *T {
	if !o.Set || !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

// UnmarshalJSON implements [json.Unmarshaler]. It is invoked only when the
// key is present in the payload, so Set is always true afterwards; a JSON
// null leaves Valid false.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true

	if bytes.Equal(b, []byte("null")) {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}

	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}

	o.Valid = true
	return nil
}

// MarshalJSON implements [json.Marshaler]. Absent and null states both
// serialize as JSON null: encoding/json cannot omit a struct-typed field,
// and the pull side of the wire contract treats the two states identically.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
