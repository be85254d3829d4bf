package rocresult

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unsafe"
)

var (
	// ErrNotFixedSize is returned when an arm has no fixed-size binary form.
	ErrNotFixedSize = errors.New("rocresult: arm type has no fixed-size layout")

	// ErrShortBuffer is returned when decoding from fewer bytes than the layout needs.
	ErrShortBuffer = errors.New("rocresult: buffer shorter than layout")

	// ErrInvalidTag is returned when the tag byte names no arm.
	ErrInvalidTag = errors.New("rocresult: invalid tag")
)

// Layout describes the foreign representation of a Result[T, E]:
//
//	offset 0               tag (1 byte, TagOk or TagErr)
//	PayloadOffset          raw union, PayloadSize bytes
//	Size                   total, a multiple of Align
//
// The union is as large as the larger arm and aligned to the stricter arm.
// Arms are encoded little endian without interior padding; the bytes not
// covered by the live arm are zero.
type Layout struct {
	Size          int
	Align         int
	PayloadOffset int
	PayloadSize   int
}

// LayoutOf computes the Layout of Result[T, E]. Both arms must have a
// fixed-size binary form (see encoding/binary).
func LayoutOf[T, E any]() (Layout, error) {
	var ok T
	var err E
	okSize, errSize := binary.Size(ok), binary.Size(err)
	if okSize < 0 || errSize < 0 {
		return Layout{}, fmt.Errorf("%w: Result[%T, %T]", ErrNotFixedSize, ok, err)
	}
	align := max(int(unsafe.Alignof(ok)), int(unsafe.Alignof(err)), 1)
	payload := max(okSize, errSize)
	off := alignUp(1, align)
	return Layout{
		Size:          alignUp(off+payload, align),
		Align:         align,
		PayloadOffset: off,
		PayloadSize:   payload,
	}, nil
}

func alignUp(n, align int) int {
	return (n + align - 1) / align * align
}

// AppendABI appends the Layout encoding of r to dst.
func (r Result[T, E]) AppendABI(dst []byte) ([]byte, error) {
	r.mustBeOpen()
	l, err := LayoutOf[T, E]()
	if err != nil {
		return dst, err
	}
	start := len(dst)
	dst = append(dst, make([]byte, l.Size)...)
	dst[start] = byte(r.tag)
	arm := dst[start+l.PayloadOffset : start+l.PayloadOffset+l.PayloadSize]
	if r.tag == TagOk {
		_, err = binary.Encode(arm, binary.LittleEndian, r.payload.ok)
	} else {
		_, err = binary.Encode(arm, binary.LittleEndian, r.payload.err)
	}
	if err != nil {
		return dst[:start], fmt.Errorf("rocresult: encode %s arm: %w", r.tag, err)
	}
	return dst, nil
}

// DecodeABI decodes a Result from its Layout encoding. Only the arm named by
// the tag is read.
func DecodeABI[T, E any](b []byte) (Result[T, E], error) {
	var r Result[T, E]
	l, err := LayoutOf[T, E]()
	if err != nil {
		return r, err
	}
	if len(b) < l.Size {
		return r, fmt.Errorf("%w: have %d bytes, need %d", ErrShortBuffer, len(b), l.Size)
	}
	r.tag = Tag(b[0])
	if !r.tag.valid() {
		return Result[T, E]{}, fmt.Errorf("%w: %d", ErrInvalidTag, b[0])
	}
	arm := b[l.PayloadOffset : l.PayloadOffset+l.PayloadSize]
	if r.tag == TagOk {
		_, err = binary.Decode(arm, binary.LittleEndian, &r.payload.ok)
	} else {
		_, err = binary.Decode(arm, binary.LittleEndian, &r.payload.err)
	}
	if err != nil {
		return Result[T, E]{}, fmt.Errorf("rocresult: decode %s arm: %w", r.tag, err)
	}
	return r, nil
}
