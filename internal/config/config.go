// Package config reads the service configuration record from JSON or YAML.
// The codec is chosen from the file extension; each codec is a Deserializer
// strategy so callers can also decode raw text directly.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/nativemen/teach-rs-xw/internal/logging"
)

// Config is the service configuration.
type Config struct {
	Port        uint16 `json:"port" yaml:"port"`
	BaseURL     string `json:"base_url" yaml:"base_url"`
	S3Path      string `json:"s3_path" yaml:"s3_path"`
	DatabaseURL string `json:"database_url" yaml:"database_url"`
}

// String renders the config the way the configreader binary prints it.
func (c Config) String() string {
	return fmt.Sprintf("Config { port: %d, base_url: %q, s3_path: %q, database_url: %q }",
		c.Port, c.BaseURL, c.S3Path, c.DatabaseURL)
}

// Deserializer decodes a Config from the full contents of a file.
type Deserializer interface {
	Deserialize(contents string) (*Config, error)
}

// Serializer is implemented by the strategies that can also write a Config.
type Serializer interface {
	Serialize(cfg *Config) (string, error)
}

// Codec is a strategy that reads and writes one format.
type Codec interface {
	Deserializer
	Serializer
}

// Format names the codec that produced an Error.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Error is returned by every strategy. Format tells which codec failed and
// Err carries the detail.
type Error struct {
	Format Format
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %v", e.Format, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrUnsupportedExtension is returned by ForPath for unknown extensions.
var ErrUnsupportedExtension = errors.New("unsupported config file extension")

// raw mirrors Config with pointer fields so missing keys can be detected.
type raw struct {
	Port        *int64  `json:"port" yaml:"port"`
	BaseURL     *string `json:"base_url" yaml:"base_url"`
	S3Path      *string `json:"s3_path" yaml:"s3_path"`
	DatabaseURL *string `json:"database_url" yaml:"database_url"`
}

func (r *raw) config() (*Config, error) {
	var missing []string
	if r.Port == nil {
		missing = append(missing, "port")
	}
	if r.BaseURL == nil {
		missing = append(missing, "base_url")
	}
	if r.S3Path == nil {
		missing = append(missing, "s3_path")
	}
	if r.DatabaseURL == nil {
		missing = append(missing, "database_url")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing field(s): %s", strings.Join(missing, ", "))
	}
	if *r.Port < 0 || *r.Port > math.MaxUint16 {
		return nil, fmt.Errorf("port %d out of range [0, %d]", *r.Port, math.MaxUint16)
	}
	return &Config{
		Port:        uint16(*r.Port),
		BaseURL:     *r.BaseURL,
		S3Path:      *r.S3Path,
		DatabaseURL: *r.DatabaseURL,
	}, nil
}

// ForPath picks the codec for path by its extension.
func ForPath(path string) (Codec, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return JSON{}, nil
	case ".yml", ".yaml":
		return YAML{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}
}

// Load reads path and decodes it with the codec chosen by ForPath.
func Load(path string) (*Config, error) {
	log := logging.Get(logging.CategoryConfig)

	codec, err := ForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := codec.Deserialize(string(data))
	if err != nil {
		log.Debug("config decode failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	log.Debug("config loaded", zap.String("path", path), zap.Uint16("port", cfg.Port))
	return cfg, nil
}

// Save writes cfg to path using the codec chosen by ForPath.
func Save(cfg *Config, path string) error {
	codec, err := ForPath(path)
	if err != nil {
		return err
	}

	out, err := codec.Serialize(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
