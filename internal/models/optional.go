package models

import (
	"bytes"
	"encoding/json"
)

// Optional tracks presence and value of a merge-patch field:
//   - Present=false: field absent, keep the stored value
//   - Present=true, Valid=false: field is JSON null, clear the stored value
//   - Present=true, Valid=true: overwrite with Value
type Optional[T any] struct {
	Present bool
	Valid   bool
	Value   T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Valid: true, Value: v}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Present: true}
}

// UnmarshalJSON is only invoked for keys present in the payload.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true

	if string(bytes.TrimSpace(data)) == "null" {
		o.Valid = false
		return nil
	}

	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}

	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// ApplyTo merges o into a nullable destination.
func (o Optional[T]) ApplyTo(dst **T) {
	if !o.Present {
		return
	}

	if !o.Valid {
		*dst = nil
		return
	}

	v := o.Value
	*dst = &v
}

// ApplyValue merges o into a non-nullable destination; null resets it to the zero value.
func (o Optional[T]) ApplyValue(dst *T) {
	if !o.Present {
		return
	}

	if !o.Valid {
		var zero T
		*dst = zero
		return
	}

	*dst = o.Value
}
