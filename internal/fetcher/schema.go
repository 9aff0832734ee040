package fetcher

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// responseSchema describes the wire shape of a recommendation list.
// Every payload crossing the fetch boundary is checked against it.
const responseSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "title": {"type": "string", "minLength": 1},
      "description": {"type": "string"},
      "type": {"type": "string", "minLength": 1},
      "duration": {"type": "string"},
      "link": {"type": "string", "minLength": 1}
    },
    "required": ["title", "description", "type", "duration", "link"],
    "additionalProperties": false
  }
}`

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validatePayload checks raw JSON against the response schema.
func validatePayload(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiledOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(responseSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://content-response.json"
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	if compileErr != nil {
		return fmt.Errorf("compile schema: %w", compileErr)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
