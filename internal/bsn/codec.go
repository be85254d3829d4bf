package bsn

import (
	"encoding"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

var (
	_ json.Marshaler           = Bsn{}
	_ json.Unmarshaler         = (*Bsn)(nil)
	_ encoding.TextMarshaler   = Bsn{}
	_ encoding.TextUnmarshaler = (*Bsn)(nil)
	_ yaml.Marshaler           = Bsn{}
	_ yaml.Unmarshaler         = (*Bsn)(nil)
	_ msgpack.CustomEncoder    = Bsn{}
	_ msgpack.CustomDecoder    = (*Bsn)(nil)
)

// decode is the single entry point for every format.
func (b *Bsn) decode(s string) error {
	v, err := New(s)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (b Bsn) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.value)
}

func (b *Bsn) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("bsn: expected a JSON string: %w", err)
	}
	return b.decode(s)
}

func (b Bsn) MarshalText() ([]byte, error) {
	return []byte(b.value), nil
}

func (b *Bsn) UnmarshalText(text []byte) error {
	return b.decode(string(text))
}

func (b Bsn) MarshalYAML() (any, error) {
	// Tagged as a string so leading zeros survive.
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: b.value}, nil
}

func (b *Bsn) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("bsn: expected a scalar at line %d", node.Line)
	}
	return b.decode(node.Value)
}

func (b Bsn) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(b.value)
}

func (b *Bsn) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return b.decode(s)
}
