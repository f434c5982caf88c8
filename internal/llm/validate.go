package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema names the JSON shape a generation must produce. Definition is
// a JSON Schema document as a Go map; providers hand it to their
// native structured-output modes, and Check is the backstop for models
// that ignore the hint. Compiled lazily on first Check, so a Schema is
// always passed by pointer.
type Schema struct {
	// Name identifies the schema to the provider (tool name for
	// Anthropic, schema name for OpenAI). Kebab-case, e.g. "quiz-batch".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document.
	Definition map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// Check validates raw model output against the schema. Violations and
// malformed JSON come back as a BadOutputError.
func (s *Schema) Check(raw json.RawMessage) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &BadOutputError{Raw: raw, Err: fmt.Errorf("not valid JSON: %w", err)}
	}

	s.once.Do(func() {
		s.compiled, s.err = compileSchema(s.Name, s.Definition)
	})
	if s.err != nil {
		return fmt.Errorf("compile schema %q: %w", s.Name, s.err)
	}

	if err := s.compiled.Validate(doc); err != nil {
		return &BadOutputError{Raw: raw, Err: err}
	}
	return nil
}

func compileSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	// The compiler wants a plain decoded document; a marshal round-trip
	// normalizes whatever Go values the definition map holds.
	b, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("mem://%s.json", name)
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	return c.Compile(url)
}
