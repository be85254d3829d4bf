package rocresult

import (
	"errors"
	"fmt"
)

// VariantError carries an Err value that is not itself a Go error through
// Go's (value, error) convention.
type VariantError[E any] struct {
	Value E
}

func (e *VariantError[E]) Error() string {
	return fmt.Sprintf("rocresult: err variant: %v", e.Value)
}

// ToNative converts r into Go's native (value, error) form. An Err whose value
// is a non-nil error is returned as is; any other Err is wrapped in a
// *VariantError[E].
func ToNative[T, E any](r Result[T, E]) (T, error) {
	r.mustBeOpen()
	if r.tag == TagOk {
		return r.payload.ok, nil
	}
	var zero T
	if err, ok := any(r.payload.err).(error); ok && err != nil {
		if _, wrapped := err.(*VariantError[E]); !wrapped {
			return zero, err
		}
	}
	return zero, &VariantError[E]{Value: r.payload.err}
}

// FromNative is the inverse of ToNative. A nil err yields Ok(v). A non-nil err
// must carry an E, either directly or inside a *VariantError[E]; otherwise
// FromNative panics.
func FromNative[T, E any](v T, err error) Result[T, E] {
	if err == nil {
		return Ok[T, E](v)
	}
	if ve, ok := err.(*VariantError[E]); ok {
		return Err[T](ve.Value)
	}
	if e, ok := any(err).(E); ok {
		return Err[T](e)
	}
	var ve *VariantError[E]
	if errors.As(err, &ve) {
		return Err[T](ve.Value)
	}
	panic(fmt.Sprintf("rocresult: error %q does not carry a %T", err, *new(E)))
}
