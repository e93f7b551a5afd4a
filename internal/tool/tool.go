// Package tool packages the validator as a function tool that an agent
// framework can register and call with JSON arguments.
package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/eykd/mdvet-go/internal/checker"
	"github.com/eykd/mdvet-go/internal/domain"
	"github.com/eykd/mdvet-go/internal/textenc"
	"github.com/eykd/mdvet-go/internal/validator"
)

// Name is the function name the tool registers under.
const Name = "validate_markdown"

const description = "Validate Markdown content for structural and formatting problems. " +
	"Returns the issues found with line numbers, severity, and suggested fixes."

const argsSchema = `{
  "type": "object",
  "properties": {
    "content": {
      "type": "string",
      "description": "The Markdown content to validate"
    },
    "file_name": {
      "type": "string",
      "description": "Optional file name echoed back in the report"
    }
  },
  "required": ["content"],
  "additionalProperties": false
}`

var compiledArgs = jsonschema.MustCompileString("args.json", argsSchema)

// Spec describes the tool to a function-calling framework.
type Spec struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

// Definition returns the tool's callable description.
func Definition() Spec {
	return Spec{
		Name:        Name,
		Description: description,
		Parameters:  json.RawMessage(argsSchema),
	}
}

type arguments struct {
	Content  string `json:"content"`
	FileName string `json:"file_name"`
}

// Invoke checks raw JSON arguments against the schema, runs the validator,
// and returns the report JSON. Malformed arguments and non-text content fail
// with errors wrapping domain.ErrInvalidInput; document defects are part of
// the report, never errors.
func Invoke(ctx context.Context, raw json.RawMessage) (json.RawMessage, error) {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("arguments are not valid JSON: %w", domain.ErrInvalidInput)
	}
	if err := compiledArgs.Validate(decoded); err != nil {
		return nil, fmt.Errorf("arguments do not match schema: %v: %w", err, domain.ErrInvalidInput)
	}

	var args arguments
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decoding arguments: %w", domain.ErrInvalidInput)
	}

	text, err := textenc.Normalize([]byte(args.Content))
	if err != nil {
		return nil, err
	}

	report := checker.BuildReport(args.FileName, validator.Validate(text))
	out, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}
	return out, nil
}
