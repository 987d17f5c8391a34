package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Placeholder is replaced with the home directory in patterns and directories.
const Placeholder = "~"

// ErrInvalidPattern is returned when a pattern does not compile.
var ErrInvalidPattern = errors.New("invalid pattern")

// Expand replaces every occurrence of [Placeholder] in s with home.
//
// The replacement is literal text substitution, it is not path-aware.
func Expand(s, home string) string {
	return strings.ReplaceAll(s, Placeholder, home)
}

// Pattern is a compiled directory pattern.
type Pattern struct {
	re       *regexp.Regexp
	raw      string
	expanded string
}

// New expands raw using home and compiles the result.
func New(raw, home string) (*Pattern, error) {
	return compile(raw, home, nil)
}

// MustNew creates a new [Pattern] and panics if there's an error.
func MustNew(raw, home string) *Pattern {
	p, err := New(raw, home)
	if err != nil {
		panic(err)
	}

	return p
}

func compile(raw, home string, c *Cache) (*Pattern, error) {
	expanded := Expand(raw, home)

	var (
		re  *regexp.Regexp
		err error
	)
	if c != nil {
		re, err = c.Compile(expanded)
	} else {
		re, err = regexp.Compile(expanded)
	}
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, raw, err)
	}

	return &Pattern{
		re:       re,
		raw:      raw,
		expanded: expanded,
	}, nil
}

// MatchString reports whether the pattern matches any part of dir. The
// directory is matched as given; expand it with [Expand] first if it may
// contain the placeholder.
func (p *Pattern) MatchString(dir string) bool {
	return p.re.MatchString(dir)
}

// Expanded returns the pattern text after placeholder substitution.
func (p *Pattern) Expanded() string {
	return p.expanded
}

func (p *Pattern) String() string {
	return p.raw
}

// Match compiles raw and tests it against dir in one step.
func Match(raw, dir, home string) (bool, error) {
	p, err := New(raw, home)
	if err != nil {
		return false, err
	}

	return p.MatchString(Expand(dir, home)), nil
}
