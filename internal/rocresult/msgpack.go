package rocresult

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Result[int, string]{}
	_ msgpack.CustomDecoder = (*Result[int, string])(nil)
)

// EncodeMsgpack writes r as the two-element array [tag, live arm].
func (r Result[T, E]) EncodeMsgpack(enc *msgpack.Encoder) error {
	r.mustBeOpen()
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeUint8(uint8(r.tag)); err != nil {
		return err
	}
	if r.tag == TagOk {
		return enc.Encode(r.payload.ok)
	}
	return enc.Encode(r.payload.err)
}

// DecodeMsgpack reads the form written by EncodeMsgpack.
func (r *Result[T, E]) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("rocresult: expected a 2-element array, got %d", n)
	}
	raw, err := dec.DecodeUint8()
	if err != nil {
		return err
	}
	var out Result[T, E]
	out.tag = Tag(raw)
	switch out.tag {
	case TagOk:
		err = dec.Decode(&out.payload.ok)
	case TagErr:
		err = dec.Decode(&out.payload.err)
	default:
		return fmt.Errorf("%w: %d", ErrInvalidTag, raw)
	}
	if err != nil {
		return fmt.Errorf("rocresult: decode %s arm: %w", out.tag, err)
	}
	*r = out
	return nil
}
