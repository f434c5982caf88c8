package questions

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// wireSchemaJSON accepts the known field-name variants the backend has
// shipped over time: question/text, options/answers and
// correctAnswer/correct. Stricter shape checks (option count, index
// range) happen in Normalize.
const wireSchemaJSON = `{
	"type": "object",
	"allOf": [
		{"anyOf": [{"required": ["question"]}, {"required": ["text"]}]},
		{"anyOf": [{"required": ["options"]}, {"required": ["answers"]}]},
		{"anyOf": [{"required": ["correctAnswer"]}, {"required": ["correct"]}]}
	]
}`

var compileWireSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var parsed any
	if err := json.Unmarshal([]byte(wireSchemaJSON), &parsed); err != nil {
		return nil, fmt.Errorf("parse wire schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://question-wire.json", parsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile("schema://question-wire.json")
})

// validateWireItem checks one remote question payload against the wire
// schema before normalization.
func validateWireItem(raw json.RawMessage) error {
	compiled, err := compileWireSchema()
	if err != nil {
		return err
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("wire schema: %w", err)
	}
	return nil
}
