package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidSchema indicates a schema definition error.
	ErrInvalidSchema = errors.New("conjen: invalid schema")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("conjen: missing configuration")
	// ErrUnresolvedReference indicates a reference to an undefined type.
	ErrUnresolvedReference = errors.New("conjen: unresolved type reference")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("conjen: code generation failed")
)

// SchemaError reports a definition the generator cannot accept: duplicate
// or malformed names, unions where a Go type is needed, and unmappable
// field types.
type SchemaError struct {
	Type    string // Definition name
	Field   string // Field or enum value (if applicable)
	Message string
	Cause   error
}

// Error renders the failing definition as a dotted path:
//
//	conjen: invalid product.Widget.b: duplicate field name
func (e *SchemaError) Error() string {
	subject := e.Type
	if e.Field != "" {
		subject += "." + e.Field
	}
	return describe("invalid "+subject, e.Message, e.Cause)
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(typeName, fieldName, message string, cause error) *SchemaError {
	return &SchemaError{
		Type:    typeName,
		Field:   fieldName,
		Message: message,
		Cause:   cause,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("conjen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("conjen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// UnresolvedTypeReferenceError is reported when a field of Type refers to a
// name the registry does not hold. It fails only the enclosing definition.
type UnresolvedTypeReferenceError struct {
	Type      string
	Field     string
	Reference string
}

// Error implements the error interface.
func (e *UnresolvedTypeReferenceError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("conjen: %s refers to unknown type %s", e.Type, e.Reference)
	}
	return fmt.Sprintf("conjen: field %s.%s refers to unknown type %s", e.Type, e.Field, e.Reference)
}

// Is reports whether the target matches the sentinel error for
// UnresolvedTypeReferenceError.
func (e *UnresolvedTypeReferenceError) Is(target error) bool {
	return target == ErrUnresolvedReference
}

// NewUnresolvedTypeReferenceError creates a new UnresolvedTypeReferenceError.
func NewUnresolvedTypeReferenceError(typeName, fieldName, reference string) *UnresolvedTypeReferenceError {
	return &UnresolvedTypeReferenceError{
		Type:      typeName,
		Field:     fieldName,
		Reference: reference,
	}
}

// GenerationError reports a failure to render or write a file. Unlike
// SchemaError it is not attributed to one definition and stops the run.
type GenerationError struct {
	Phase   string // "object", "enum", "alias", "write"
	File    string
	Message string
	Cause   error
}

// Error names the phase and, when known, the file:
//
//	conjen: write product/widget.go: disk full
func (e *GenerationError) Error() string {
	subject := e.Phase
	if e.File != "" {
		subject += " " + e.File
	}
	return describe(subject, e.Message, e.Cause)
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// describe joins the non-empty parts of an error message with ": ".
func describe(subject, message string, cause error) string {
	parts := []string{"conjen"}
	for _, p := range []string{strings.TrimSpace(subject), message} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if cause != nil {
		parts = append(parts, cause.Error())
	}
	return strings.Join(parts, ": ")
}

// IsSchemaError reports whether the error is a SchemaError.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsUnresolvedReference reports whether the error is an
// UnresolvedTypeReferenceError.
func IsUnresolvedReference(err error) bool {
	var refErr *UnresolvedTypeReferenceError
	return errors.As(err, &refErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
