package config

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// JSON decodes and encodes Config as a JSON object.
type JSON struct{}

var errTrailingData = errors.New("trailing data after config")

func (JSON) Deserialize(contents string) (*Config, error) {
	dec := json.NewDecoder(strings.NewReader(contents))
	var r raw
	if err := dec.Decode(&r); err != nil {
		return nil, &Error{Format: FormatJSON, Err: err}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		return nil, &Error{Format: FormatJSON, Err: err}
	}
	cfg, err := r.config()
	if err != nil {
		return nil, &Error{Format: FormatJSON, Err: err}
	}
	return cfg, nil
}

func (JSON) Serialize(cfg *Config) (string, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", &Error{Format: FormatJSON, Err: err}
	}
	return string(data) + "\n", nil
}
