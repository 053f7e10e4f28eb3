// Package patch holds the partial-update value type shared by the resource
// patches. A field is either absent (left unchanged) or carries a value.
package patch

import "encoding/json"

type Optional[T any] struct {
	Value T
	Set   bool
}

func Of[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// IsZero reports an absent field, so `omitzero` drops it when encoding.
func (o Optional[T]) IsZero() bool {
	return !o.Set
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}

// Apply overwrites *dst when the field is present.
func (o Optional[T]) Apply(dst *T) {
	if o.Set {
		*dst = o.Value
	}
}

// FromPtr maps a decoded pointer field: nil is absent.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Optional[T]{}
	}
	return Of(*p)
}
