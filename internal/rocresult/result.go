// Package rocresult implements a result type as an explicitly tagged union.
//
// A Result stores a one-byte tag next to a payload holding either the Ok or
// the Err arm. Only the arm selected by the tag is live: the other arm is kept
// at its zero value and is never read, cloned, encoded or closed. The ABI
// helpers in abi.go lay the same value out as {tag, raw union} bytes, the
// shape a foreign compiler emits for its own result type, so values can cross
// that boundary without a translation layer.
package rocresult

import (
	"fmt"
	"io"
)

// Tag selects the live arm of a Result.
type Tag uint8

const (
	TagOk Tag = iota
	TagErr
)

func (t Tag) String() string {
	switch t {
	case TagOk:
		return "Ok"
	case TagErr:
		return "Err"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

func (t Tag) valid() bool {
	return t == TagOk || t == TagErr
}

// union holds both arms; the tag of the owning Result says which one is live.
type union[T, E any] struct {
	ok  T
	err E
}

// Result is either Ok(T) or Err(E). The zero value is Ok with a zero T.
//
// Methods with value receivers consume nothing: Go copies the Result. Once a
// Result has been closed, using it panics.
type Result[T, E any] struct {
	tag     Tag
	payload union[T, E]
	closed  bool
}

// Ok returns a Result holding v in the Ok arm.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{tag: TagOk, payload: union[T, E]{ok: v}}
}

// Err returns a Result holding e in the Err arm.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{tag: TagErr, payload: union[T, E]{err: e}}
}

// Tag returns the discriminant.
func (r Result[T, E]) Tag() Tag {
	return r.tag
}

// IsOk reports whether r holds an Ok value.
func (r Result[T, E]) IsOk() bool {
	return r.tag == TagOk
}

// IsErr reports whether r holds an Err value.
func (r Result[T, E]) IsErr() bool {
	return r.tag == TagErr
}

// Unwrap returns the Ok value. It panics if r is an Err.
func (r Result[T, E]) Unwrap() T {
	r.mustBeOpen()
	if r.tag != TagOk {
		panic("rocresult: called Unwrap on an Err value")
	}
	return r.payload.ok
}

// UnwrapErr returns the Err value. It panics if r is an Ok.
func (r Result[T, E]) UnwrapErr() E {
	r.mustBeOpen()
	if r.tag != TagErr {
		panic("rocresult: called UnwrapErr on an Ok value")
	}
	return r.payload.err
}

// UnwrapOr returns the Ok value, or def if r is an Err.
func (r Result[T, E]) UnwrapOr(def T) T {
	r.mustBeOpen()
	if r.tag != TagOk {
		return def
	}
	return r.payload.ok
}

// Clone copies r. The live arm is cloned through its Clone method when it has
// one; otherwise it is copied by assignment. Clone panics if the live arm is
// an io.Closer without a Clone method, since both copies would own it.
func (r Result[T, E]) Clone() Result[T, E] {
	r.mustBeOpen()
	if r.tag == TagOk {
		return Ok[T, E](cloneArm(r.payload.ok))
	}
	return Err[T, E](cloneArm(r.payload.err))
}

func cloneArm[X any](x X) X {
	if c, ok := any(x).(interface{ Clone() X }); ok {
		return c.Clone()
	}
	if _, ok := any(x).(io.Closer); ok {
		panic(fmt.Sprintf("rocresult: cannot clone %T: io.Closer without a Clone method", x))
	}
	return x
}

// Close releases the live arm if it implements io.Closer. The other arm is
// never touched. Closing twice is a no-op. Copies of a Result made by
// assignment share the arm, so only one of them may be closed.
func (r *Result[T, E]) Close() error {
	if r.closed {
		return nil
	}
	var live any
	if r.tag == TagOk {
		live = r.payload.ok
	} else {
		live = r.payload.err
	}
	r.payload = union[T, E]{}
	r.closed = true
	if c, ok := live.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (r Result[T, E]) mustBeOpen() {
	if r.closed {
		panic("rocresult: use of a closed Result")
	}
}

// String formats r as Ok(v) or Err(e).
func (r Result[T, E]) String() string {
	if r.tag == TagOk {
		return fmt.Sprintf("Ok(%v)", r.payload.ok)
	}
	return fmt.Sprintf("Err(%v)", r.payload.err)
}

// Map applies f to the Ok value. An Err passes through unchanged.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	r.mustBeOpen()
	if r.tag == TagOk {
		return Ok[U, E](f(r.payload.ok))
	}
	return Err[U](r.payload.err)
}

// MapErr applies f to the Err value. An Ok passes through unchanged.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	r.mustBeOpen()
	if r.tag == TagErr {
		return Err[T, F](f(r.payload.err))
	}
	return Ok[T, F](r.payload.ok)
}
