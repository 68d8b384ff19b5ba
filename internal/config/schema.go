package config

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://config.json"

// payloadSchema only pins the overall shape. Fields are untyped: a
// wrong-typed field falls back to its default instead of rejecting the
// whole payload.
var payloadSchema = map[string]any{
	"type":        "object",
	"description": "Exercise configuration",
	"properties": map[string]any{
		"min_integer":            map[string]any{"description": "Smallest operand, 0-100"},
		"max_integer":            map[string]any{"description": "Largest operand, 1-1000"},
		"maximum_sum":            map[string]any{"description": "Upper bound on x + y, 2-1000"},
		"minimum_difference":     map[string]any{"description": "Lower bound on x - y, 0-100"},
		"maximum_product":        map[string]any{"description": "Upper bound on x * y, 1-10000"},
		"minimum_quotient":       map[string]any{"description": "Lower bound on x / y, 1-100"},
		"addition_allowed":       map[string]any{"description": "Enable + problems"},
		"subtraction_allowed":    map[string]any{"description": "Enable - problems"},
		"multiplication_allowed": map[string]any{"description": "Enable * problems"},
		"division_allowed":       map[string]any{"description": "Enable / problems"},
		"comparison_allowed":     map[string]any{"description": "Enable = > < problems"},
		"dictation_lines":        map[string]any{"description": "Sentences per dictation, 1-20"},
		"math_problem_count":     map[string]any{"description": "Problems per batch, 1-50"},
		"prefer_sentences_with":  map[string]any{"description": "Substrings favoured by the dictation selector"},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, payloadSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// checkShape validates a decoded JSON document against payloadSchema.
func checkShape(doc any) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
