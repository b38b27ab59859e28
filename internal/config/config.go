// Package config loads the localfs CLI configuration.
//
// Values are layered: built-in defaults, then the YAML file, then the
// environment (optionally seeded from a dotenv file), then command-line flags.
package config

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/localfs/errors"
	"github.com/jmgilman/localfs/fs/local"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvUseMmap  = "LOCALFS_USE_MMAP"
	EnvLogLevel = "LOCALFS_LOG_LEVEL"
)

// DefaultLogLevel is used when no level is configured.
const DefaultLogLevel = "warn"

// Perm is an octal permission value. In YAML it may be written as a quoted
// string ("0755", "0o755") or a bare integer, which is read as octal digits.
type Perm fs.FileMode

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Perm) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParsePerm(node.Value)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p Perm) MarshalYAML() (interface{}, error) {
	return fmt.Sprintf("%#o", uint32(p)), nil
}

// ParsePerm parses an octal permission string.
func ParsePerm(s string) (Perm, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0o"), "0O")
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, errors.WithContext(
			errors.Wrapf(err, errors.CodeInvalidConfig, "invalid permission %q", s),
			"value", s,
		)
	}
	return Perm(v), nil
}

// Config is the CLI configuration. Zero values mean "use the library default".
type Config struct {
	UseMmap         *bool  `yaml:"use_mmap,omitempty"`
	DirPerm         Perm   `yaml:"dir_perm,omitempty"`
	FilePerm        Perm   `yaml:"file_perm,omitempty"`
	CopyChunkSize   int    `yaml:"copy_chunk_size,omitempty"`
	WriteBufferSize int    `yaml:"write_buffer_size,omitempty"`
	LogLevel        string `yaml:"log_level,omitempty"`
}

// Load reads the YAML configuration at path. An empty path yields an empty
// configuration.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithContext(
			errors.Wrap(err, errors.CodeInvalidConfig, "failed to read config file"),
			"path", path,
		)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.WithContext(
			errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse config file"),
			"path", path,
		)
	}
	return cfg, nil
}

// LoadEnvFile loads KEY=VALUE pairs from a dotenv file into the process
// environment. Variables already set are not overridden.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.WithContext(
			errors.Wrap(err, errors.CodeInvalidConfig, "failed to load env file"),
			"path", path,
		)
	}
	return nil
}

// ApplyEnv overrides fields from the environment using lookup, which has the
// signature of os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvUseMmap); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.WithContext(
				errors.Wrapf(err, errors.CodeInvalidConfig, "invalid boolean %q", v),
				"env", EnvUseMmap,
			)
		}
		c.UseMmap = &b
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() (zapcore.Level, error) {
	s := c.LogLevel
	if s == "" {
		s = DefaultLogLevel
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return lvl, errors.WithContext(
			errors.Wrapf(err, errors.CodeInvalidConfig, "invalid log level %q", s),
			"field", "log_level",
		)
	}
	return lvl, nil
}

// Options converts the configuration to local.Options, starting from the
// library defaults.
func (c *Config) Options() local.Options {
	o := local.DefaultOptions()
	if c.UseMmap != nil {
		o.UseMmap = *c.UseMmap
	}
	if c.DirPerm != 0 {
		o.DirPerm = fs.FileMode(c.DirPerm)
	}
	if c.FilePerm != 0 {
		o.FilePerm = fs.FileMode(c.FilePerm)
	}
	if c.CopyChunkSize != 0 {
		o.CopyChunkSize = c.CopyChunkSize
	}
	if c.WriteBufferSize != 0 {
		o.WriteBufferSize = c.WriteBufferSize
	}
	return o
}

// Validate checks the configuration without building a filesystem.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	return c.Options().Validate()
}
