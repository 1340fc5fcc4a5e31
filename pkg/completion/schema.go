package completion

import (
	"fmt"

	"github.com/Ramsey-B/rose/pkg/errors"
	"github.com/Ramsey-B/rose/pkg/utils"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// Schema describes the JSON object a structured completion must return.
// It is generated from a Go type so the decoded value and the wire schema cannot drift.
type Schema struct {
	Name       string
	definition *jsonschema.Definition
}

func NewSchema(name string, v any) (*Schema, error) {
	def, err := jsonschema.GenerateSchemaForType(v)
	if err != nil {
		return nil, fmt.Errorf("generating schema %s: %w", name, err)
	}
	return &Schema{Name: name, definition: def}, nil
}

// MustSchema is NewSchema for package-level schemas built from static types.
func MustSchema(name string, v any) *Schema {
	s, err := NewSchema(name, v)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) responseFormat() *openai.ChatCompletionResponseFormat {
	return &openai.ChatCompletionResponseFormat{
		Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
		JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
			Name:   s.Name,
			Schema: s.definition,
			Strict: true,
		},
	}
}

// Decode checks content against the schema, unmarshals it into out and then runs
// struct validation so empty strings are rejected too.
func (s *Schema) Decode(content string, out any) error {
	if err := s.definition.Unmarshal(content, out); err != nil {
		return errors.NewCompletionFormatError(fmt.Errorf("%s: %w", s.Name, err))
	}
	if _, err := utils.Validate(out); err != nil {
		return errors.NewCompletionFormatError(fmt.Errorf("%s: %w", s.Name, err))
	}
	return nil
}
