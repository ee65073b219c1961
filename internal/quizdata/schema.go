package quizdata

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://quizview-questions.json"

// questionsSchema describes the question document: a JSON array of
// question objects.
var questionsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_number": map[string]any{
				"type":        []any{"integer", "string"},
				"description": "Display label for the question",
			},
			"question_text": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"question_image": map[string]any{
				"type": []any{"string", "null"},
			},
			"options": map[string]any{
				"type":                 "object",
				"minProperties":        1,
				"additionalProperties": map[string]any{"type": "string"},
				"description":          "Option key to option text, in display order",
			},
			"correct_answer": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"explanation": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"correct": map[string]any{"type": "string"},
					"incorrect": map[string]any{
						"type":                 []any{"object", "null"},
						"additionalProperties": map[string]any{"type": "string"},
					},
					"explanation_image": map[string]any{
						"type": []any{"string", "null"},
					},
				},
				"required": []any{"correct"},
			},
		},
		"required": []any{"question_number", "question_text", "options", "correct_answer", "explanation"},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles questionsSchema once per process.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a plain decoded JSON value.
		defBytes, err := json.Marshal(questionsSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validate checks raw against the question document schema.
func validate(raw []byte) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ValidationError{Index: -1, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return &ValidationError{Index: -1, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}
