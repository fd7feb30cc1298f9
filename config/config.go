// Package config holds the packinfo configuration: a YAML file merged over
// defaults, then validated.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/packvar/pack"
)

// Output formats of the variable table.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Log modes understood by internal/logger.
const (
	LogDev  = "dev"
	LogProd = "prod"
	LogNone = "none"
)

var (
	// ErrNoDatabase indicates an empty database path.
	ErrNoDatabase = errors.New("config: database path is required")

	// ErrParentNode indicates a negative parent node id.
	ErrParentNode = errors.New("config: parent_node must be non-negative")

	// ErrFormat indicates an unknown output format.
	ErrFormat = errors.New("config: format must be text, json or yaml")

	// ErrLogMode indicates an unknown log mode.
	ErrLogMode = errors.New("config: log_mode must be dev, prod or none")

	// ErrPolicy indicates an unknown mulstd policy.
	ErrPolicy = errors.New("config: mulstd_policy must be fixed or compact")
)

// Config is the packinfo configuration.
type Config struct {
	Database     string `yaml:"database"`
	ParentNode   *int   `yaml:"parent_node"` // nil: read the option table
	MulstdPolicy string `yaml:"mulstd_policy"`
	Format       string `yaml:"format"`
	LogMode      string `yaml:"log_mode"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		MulstdPolicy: pack.DefaultMulstdPolicy.String(),
		Format:       FormatText,
		LogMode:      LogProd,
	}
}

// Load reads a YAML file over Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes over Default. An empty document yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Normalize()

	return cfg, nil
}

// Normalize lower-cases and trims the enumerated fields.
func (c *Config) Normalize() {
	c.MulstdPolicy = strings.ToLower(strings.TrimSpace(c.MulstdPolicy))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.LogMode = strings.ToLower(strings.TrimSpace(c.LogMode))
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Database) == "" {
		return ErrNoDatabase
	}
	if c.ParentNode != nil && *c.ParentNode < 0 {
		return fmt.Errorf("parent_node=%d: %w", *c.ParentNode, ErrParentNode)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("format %q: %w", c.Format, ErrFormat)
	}
	switch c.LogMode {
	case LogDev, LogProd, LogNone:
	default:
		return fmt.Errorf("log_mode %q: %w", c.LogMode, ErrLogMode)
	}
	if _, err := c.Policy(); err != nil {
		return err
	}

	return nil
}

// Policy maps MulstdPolicy to a pack policy.
func (c Config) Policy() (pack.MulstdPolicy, error) {
	p, err := pack.ParseMulstdPolicy(c.MulstdPolicy)
	if err != nil {
		return 0, fmt.Errorf("mulstd_policy %q: %w", c.MulstdPolicy, ErrPolicy)
	}

	return p, nil
}
