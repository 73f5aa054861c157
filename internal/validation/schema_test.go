package validation

import (
	"errors"
	"testing"
)

var wrapperSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"wrapper_element": map[string]any{"type": "string", "minLength": 1},
		"wrapper_classes": map[string]any{"type": "string"},
	},
	"required":             []any{"wrapper_element"},
	"additionalProperties": false,
}

func TestValidateSchemaAcceptsValidSchema(t *testing.T) {
	if err := ValidateSchema(wrapperSchema); err != nil {
		t.Fatalf("ValidateSchema returned error: %v", err)
	}
	if err := ValidateSchema(nil); err != nil {
		t.Fatalf("expected nil schema to be valid, got %v", err)
	}
}

func TestValidateSchemaRejectsBrokenSchema(t *testing.T) {
	err := ValidateSchema(map[string]any{"type": 12})
	if !errors.Is(err, ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid, got %v", err)
	}
}

func TestValidatePayloadReportsIssues(t *testing.T) {
	err := ValidatePayload(wrapperSchema, map[string]any{
		"wrapper_element": "",
		"unknown":         true,
	})
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}
	if issues := Issues(err); len(issues) == 0 {
		t.Fatalf("expected issues to be collected")
	}
}

func TestValidatePayloadNormalisesGoTypes(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"extensions": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"depth":      map[string]any{"type": "integer"},
		},
	}
	err := ValidatePayload(schema, map[string]any{
		"extensions": []string{"gfm"},
		"depth":      3,
	})
	if err != nil {
		t.Fatalf("expected typed payload to validate, got %v", err)
	}
}

func TestIssuesFallsBackToMessage(t *testing.T) {
	issues := Issues(errors.New("boom"))
	if len(issues) != 1 || issues[0].Message != "boom" {
		t.Fatalf("unexpected issues %v", issues)
	}
}
