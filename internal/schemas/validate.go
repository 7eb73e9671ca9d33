// Package schemas provides JSON Schema validation for pipeline inputs and artifacts.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// searchDepth bounds how many parent directories ResolveSchemaPath walks
// when the process runs below the repo root, as package tests do.
const searchDepth = 2

// ResolveSchemaPath locates a schema file relative to the working directory,
// walking up at most searchDepth parent directories. It returns the absolute
// path of the first hit, or "" when nothing matches.
func ResolveSchemaPath(relativePath string) string {
	candidate := relativePath
	for i := 0; i <= searchDepth; i++ {
		if abs, err := filepath.Abs(candidate); err == nil {
			if _, statErr := os.Stat(abs); statErr == nil {
				return abs
			}
		}
		candidate = filepath.Join("..", candidate)
	}
	return ""
}

// FieldError is a single schema violation at one field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every violation found in one document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, fe := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// SchemaLoadError reports a schema that could not be loaded or compiled, as
// opposed to a document that failed validation.
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	msg := fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateJSON checks a JSON document file against a schema file.
func ValidateJSON(schemaPath, jsonPath string) error {
	schemaAbs, err := absExisting(schemaPath, "schema file")
	if err != nil {
		return err
	}
	jsonAbs, err := absExisting(jsonPath, "JSON file")
	if err != nil {
		return err
	}
	return runValidation(schemaAbs, gojsonschema.NewReferenceLoader("file://"+jsonAbs))
}

// ValidateBytes checks in-memory JSON content against a schema file. Loaders
// use it to vet parsed input before it reaches the pipeline.
func ValidateBytes(schemaPath string, data []byte) error {
	schemaAbs, err := absExisting(schemaPath, "schema file")
	if err != nil {
		return err
	}
	return runValidation(schemaAbs, gojsonschema.NewStringLoader(string(data)))
}

// absExisting resolves a path and confirms the file exists.
func absExisting(path, kind string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s path: %w", kind, err)
	}
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		return "", fmt.Errorf("%s not found: %s", kind, abs)
	}
	return abs, nil
}

// runValidation executes the schema check and maps the outcome onto the
// package error types. gojsonschema reports malformed documents through its
// error return, so those surface as SchemaLoadError and callers decide how
// hard to fail.
func runValidation(schemaAbs string, document gojsonschema.JSONLoader) error {
	schema := gojsonschema.NewReferenceLoader("file://" + schemaAbs)
	result, err := gojsonschema.Validate(schema, document)
	if err != nil {
		return &SchemaLoadError{
			Path:    schemaAbs,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}
