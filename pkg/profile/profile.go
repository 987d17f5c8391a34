package profile

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/macropower/starship-profiles/pkg/pattern"
)

// ErrEmptyName is returned when a profile has no name.
var ErrEmptyName = errors.New("profile name is empty")

// Profile is a named, ordered list of directory patterns.
type Profile struct {
	compiled []*pattern.Pattern
	home     string

	// Name identifies the profile. It is also the base name of the profile's
	// configuration file, e.g. "work" selects "profiles/work.toml".
	Name string `json:"name" jsonschema:"title=Name,minLength=1" toml:"name"`

	// Patterns are regular expressions matched against the working directory.
	// A leading (or any) "~" is replaced with the home directory. A profile
	// without patterns is only used when selected explicitly.
	Patterns []string `json:"patterns,omitempty" jsonschema:"title=Patterns" toml:"patterns,omitempty"`
}

// New creates a new profile with the given name and patterns.
func New(name string, patterns ...string) (*Profile, error) {
	p := &Profile{
		Name:     name,
		Patterns: patterns,
	}

	err := p.Validate()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// MustNew creates a new profile and panics if there's an error.
func MustNew(name string, patterns ...string) *Profile {
	p, err := New(name, patterns...)
	if err != nil {
		panic(err)
	}

	return p
}

// Validate checks the profile's fields.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}

	return nil
}

// Compile compiles all patterns for the given home directory, stopping at the
// first invalid pattern. A nil cache compiles every pattern directly.
func (p *Profile) Compile(home string, c *pattern.Cache) error {
	if p.compiled != nil && p.home == home {
		return nil
	}

	compiled := make([]*pattern.Pattern, 0, len(p.Patterns))
	for _, raw := range p.Patterns {
		var (
			pt  *pattern.Pattern
			err error
		)
		if c != nil {
			pt, err = c.Pattern(raw, home)
		} else {
			pt, err = pattern.New(raw, home)
		}
		if err != nil {
			return fmt.Errorf("profile %q: %w", p.Name, err)
		}

		compiled = append(compiled, pt)
	}

	p.compiled = compiled
	p.home = home

	return nil
}

// Matches reports whether any of the profile's patterns matches dir, after
// placeholders in dir are expanded with home. Patterns are tried in order and
// evaluation stops at the first match.
func (p *Profile) Matches(dir, home string) (bool, error) {
	err := p.Compile(home, nil)
	if err != nil {
		return false, err
	}

	dir = pattern.Expand(dir, home)

	for _, pt := range p.compiled {
		if pt.MatchString(dir) {
			slog.Debug("pattern matched",
				slog.String("profile", p.Name),
				slog.String("pattern", pt.String()),
				slog.String("expanded", pt.Expanded()),
			)

			return true, nil
		}
	}

	return false, nil
}

func (p *Profile) String() string {
	if len(p.Patterns) == 0 {
		return p.Name
	}

	return fmt.Sprintf("%s: %s", p.Name, strings.Join(p.Patterns, ", "))
}
