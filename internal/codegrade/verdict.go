package codegrade

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// verdictSchemaName identifies the verdict schema to providers that take
// a named structured-output schema.
const verdictSchemaName = "code-grade-verdict"

// verdictSchemaDef is the JSON Schema every provider's response must
// conform to before it is trusted as a verdict.
var verdictSchemaDef = map[string]any{
	"type":                 "object",
	"required":             []any{"correct"},
	"additionalProperties": false,
	"properties": map[string]any{
		"correct":  map[string]any{"type": "boolean"},
		"feedback": map[string]any{"type": "string"},
	},
}

var (
	verdictSchemaOnce sync.Once
	verdictSchema     *jsonschema.Schema
	verdictSchemaErr  error
)

// parseVerdict validates raw model output against the verdict schema and
// decodes it. Returns *ErrInvalidVerdict on any mismatch.
func parseVerdict(raw json.RawMessage) (*Verdict, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidVerdict{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledVerdictSchema()
	if err != nil {
		return nil, &ErrInvalidVerdict{Content: raw, Err: err}
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrInvalidVerdict{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var v Verdict
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, &ErrInvalidVerdict{Content: raw, Err: err}
	}
	return &v, nil
}

// compiledVerdictSchema compiles the verdict schema once.
func compiledVerdictSchema() (*jsonschema.Schema, error) {
	verdictSchemaOnce.Do(func() {
		b, err := json.Marshal(verdictSchemaDef)
		if err != nil {
			verdictSchemaErr = fmt.Errorf("marshal verdict schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(b, &def); err != nil {
			verdictSchemaErr = fmt.Errorf("parse verdict schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		url := fmt.Sprintf("schema://%s.json", verdictSchemaName)
		if err := c.AddResource(url, def); err != nil {
			verdictSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		verdictSchema, verdictSchemaErr = c.Compile(url)
	})
	return verdictSchema, verdictSchemaErr
}
