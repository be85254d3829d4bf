package config

import (
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAML decodes and encodes Config as a YAML mapping.
type YAML struct{}

var (
	errEmptyDocument     = errors.New("empty document")
	errMultipleDocuments = errors.New("expected a single document")
)

func (YAML) Deserialize(contents string) (*Config, error) {
	dec := yaml.NewDecoder(strings.NewReader(contents))
	var r raw
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			err = errEmptyDocument
		}
		return nil, &Error{Format: FormatYAML, Err: err}
	}
	if r == (raw{}) {
		return nil, &Error{Format: FormatYAML, Err: errEmptyDocument}
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errMultipleDocuments
		}
		return nil, &Error{Format: FormatYAML, Err: err}
	}
	cfg, err := r.config()
	if err != nil {
		return nil, &Error{Format: FormatYAML, Err: err}
	}
	return cfg, nil
}

func (YAML) Serialize(cfg *Config) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", &Error{Format: FormatYAML, Err: err}
	}
	return string(data), nil
}
