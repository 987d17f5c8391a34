package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "https://raw.githubusercontent.com/macropower/starship-profiles/refs/heads/main/profiles.schema.json"

// ValidationError represents a validation error from JSON schema validation.
type ValidationError struct {
	Err    error  // Underlying error.
	Path   string // JSONPath-like location of the error, e.g. "$.profile[0].name".
	Detail string // Detailed error message.
}

func (e ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("error at %s: %s", e.Path, e.Detail)
	}

	return "validation error: " + e.Detail
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// Validator validates data against a JSON schema.
// Uses [github.com/santhosh-tekuri/jsonschema/v6].
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator creates a new [Validator] with the provided JSON schema data.
func NewValidator(schemaData []byte) (*Validator, error) {
	var schema any
	if err := json.Unmarshal(schemaData, &schema); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, schema); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	jss, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &Validator{schema: jss}, nil
}

// NewValidatorFor reflects a schema from v and compiles it.
func NewValidatorFor(v any) (*Validator, error) {
	b, err := Generate(v)
	if err != nil {
		return nil, err
	}

	return NewValidator(b)
}

// MustNewValidatorFor is like [NewValidatorFor] but panics on error.
func MustNewValidatorFor(v any) *Validator {
	s, err := NewValidatorFor(v)
	if err != nil {
		panic(fmt.Errorf("create validator: %w", err))
	}

	return s
}

// Validate validates the given data against the schema.
// Data must consist of JSON-compatible values.
func (s *Validator) Validate(data any) error {
	err := s.schema.Validate(data)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf("schema validation: %w", err)
	}

	return &ValidationError{
		Path:   buildPath(findMostSpecificLocation(validationErr)),
		Err:    errors.New("schema validation"),
		Detail: validationErr.Error(),
	}
}

// ValidateJSON decodes JSON data and validates it.
func (s *Validator) ValidateJSON(data []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	return s.Validate(doc)
}

// findMostSpecificLocation recursively searches through all causes to find the
// one with the longest InstanceLocation.
func findMostSpecificLocation(err *jsonschema.ValidationError) []string {
	longest := err.InstanceLocation

	for _, cause := range err.Causes {
		candidateLocation := findMostSpecificLocation(cause)
		if len(candidateLocation) > len(longest) {
			longest = candidateLocation
		}
	}

	return longest
}

// buildPath converts an InstanceLocation slice to a path string.
func buildPath(location []string) string {
	var sb strings.Builder

	sb.WriteString("$")

	for _, part := range location {
		if _, err := strconv.ParseUint(part, 10, 64); err == nil {
			sb.WriteString("[" + part + "]")

			continue
		}

		sb.WriteString("." + part)
	}

	return sb.String()
}
