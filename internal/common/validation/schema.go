package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ticketRecordSchema is the schema every ticket record must satisfy before
// scoring is attempted. Scoring itself is total over strings, so this is
// the only fail-fast surface in the system.
var ticketRecordSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"id", "subject", "body"},
	"properties": map[string]interface{}{
		"id": map[string]interface{}{
			"type":    "integer",
			"minimum": 1,
		},
		"subject": map[string]interface{}{
			"type": "string",
		},
		"body": map[string]interface{}{
			"type": "string",
		},
	},
	"additionalProperties": false,
}

// ValidateTicketRecord validates a single decoded ticket record against the
// ticket schema with detailed errors.
func ValidateTicketRecord(record map[string]interface{}) *ValidationResult {
	schemaLoader := gojsonschema.NewGoLoader(ticketRecordSchema)
	documentLoader := gojsonschema.NewGoLoader(record)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &ValidationResult{
			Valid: false,
			Errors: []ValidationError{{
				Field:   "",
				Message: fmt.Sprintf("schema validation error: %v", err),
				Code:    "SCHEMA_ERROR",
			}},
		}
	}

	if result.Valid() {
		return &ValidationResult{Valid: true}
	}

	errs := make([]ValidationError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		errs = append(errs, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
			Code:    desc.Type(),
		})
	}
	return &ValidationResult{Valid: false, Errors: errs}
}

// FormatErrors flattens a validation result into a single message string.
func FormatErrors(result *ValidationResult) string {
	if result.Valid {
		return ""
	}
	msg := ""
	for i, e := range result.Errors {
		if i > 0 {
			msg += "; "
		}
		if e.Field != "" && e.Field != "(root)" {
			msg += e.Field + ": "
		}
		msg += e.Message
	}
	return msg
}
