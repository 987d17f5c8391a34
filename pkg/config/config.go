package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/macropower/starship-profiles/pkg/pattern"
	"github.com/macropower/starship-profiles/pkg/profile"
	"github.com/macropower/starship-profiles/pkg/schema"
)

var (
	// ErrConfigParse is returned when the profiles file exists but cannot be
	// read or does not conform to the schema.
	ErrConfigParse = errors.New("invalid profiles config")

	// DefaultValidator validates profiles files against the JSON schema
	// reflected from [Config].
	DefaultValidator = schema.MustNewValidatorFor(&Config{})
)

//go:generate go run ../../internal/schemagen/main.go -o profiles.schema.json

// Config is an ordered set of profiles.
type Config struct {
	// Profiles are tried in order; the first matching profile is selected.
	Profiles []*profile.Profile `json:"profile,omitempty" jsonschema:"title=Profiles" toml:"profile"`
}

// New creates a [Config] from profiles.
func New(ps ...*profile.Profile) *Config {
	return &Config{Profiles: ps}
}

// Load reads and parses the profiles file at path.
//
// A missing file is not an error: Load returns a nil [*Config], meaning no
// configuration. Any other read failure, as well as invalid content, is
// reported as [ErrConfigParse].
func Load(path string) (*Config, error) {
	data, err := readFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil //nolint:nilnil // A missing file means no configuration.
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}

	c, err := LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// LoadBytes parses profiles configuration data.
func LoadBytes(data []byte) (*Config, error) {
	var doc map[string]any

	err := toml.Unmarshal(data, &doc)
	if err != nil {
		return nil, wrapDecodeError(err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	// Round-trip through JSON so that TOML-specific types (dates, int64) reach
	// the validator as plain JSON values.
	js, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}

	err = DefaultValidator.ValidateJSON(js)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}

	c := &Config{}

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()

	err = dec.Decode(c)
	if err != nil {
		return nil, wrapDecodeError(err)
	}

	for i, p := range c.Profiles {
		err = p.Validate()
		if err != nil {
			return nil, fmt.Errorf("%w: profile[%d]: %w", ErrConfigParse, i, err)
		}
	}

	return c, nil
}

func wrapDecodeError(err error) error {
	var de *toml.DecodeError
	if errors.As(err, &de) {
		row, col := de.Position()

		return fmt.Errorf("%w: line %d, column %d: %w", ErrConfigParse, row, col, err)
	}

	var se *toml.StrictMissingError
	if errors.As(err, &se) {
		return fmt.Errorf("%w: %s", ErrConfigParse, se.String())
	}

	return fmt.Errorf("%w: %w", ErrConfigParse, err)
}

// Compile compiles every profile's patterns for home. The first invalid
// pattern anywhere in the configuration is returned as an error.
func (c *Config) Compile(home string) error {
	cache := pattern.NewCache()

	for _, p := range c.Profiles {
		err := p.Compile(home, cache)
		if err != nil {
			return err //nolint:wrapcheck // Includes the profile name.
		}
	}

	slog.Debug("compiled profile patterns", slog.Int("count", cache.Len()))

	return nil
}

// MatchingProfile returns the name of the first profile, in file order, with
// a pattern matching dir. Placeholders in dir are expanded once, by
// [profile.Profile.Matches]. The boolean is false when no profile matches.
func (c *Config) MatchingProfile(dir, home string) (string, bool, error) {
	err := c.Compile(home)
	if err != nil {
		return "", false, err
	}

	for _, p := range c.Profiles {
		ok, err := p.Matches(dir, home)
		if err != nil {
			return "", false, err //nolint:wrapcheck // Includes the profile name.
		}
		if ok {
			return p.Name, true, nil
		}
	}

	slog.Debug("no profile matching directory", slog.String("dir", dir))

	return "", false, nil
}

// Names returns the profile names in file order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Profiles))
	for _, p := range c.Profiles {
		names = append(names, p.Name)
	}

	return names
}

// MarshalTOML serializes the config to TOML.
func (c *Config) MarshalTOML() ([]byte, error) {
	b := &bytes.Buffer{}

	enc := toml.NewEncoder(b)
	enc.SetArraysMultiline(false)

	err := enc.Encode(c)
	if err != nil {
		return nil, fmt.Errorf("marshal toml: %w", err)
	}

	return b.Bytes(), nil
}

// LogValue implements [slog.LogValuer].
func (c *Config) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(c.Profiles))
	for _, p := range c.Profiles {
		attrs = append(attrs, slog.Any(p.Name, p.Patterns))
	}

	return slog.GroupValue(attrs...)
}

// readFile reads a regular file from disk.
func readFile(path string) ([]byte, error) {
	pathInfo, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}
	if pathInfo.IsDir() {
		return nil, fmt.Errorf("%s: path is a directory", path)
	}
	if !pathInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: unknown file state", path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: Potential file inclusion via variable.
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}
