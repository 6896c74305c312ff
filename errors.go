package conjen

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors returned by generated builders and codecs.
var (
	// ErrMissingRequiredField is returned by Build when one or more required
	// fields were never set.
	ErrMissingRequiredField = errors.New("conjen: missing required field")

	// ErrNullFields is returned by Build when fields without an empty value
	// are still nil.
	ErrNullFields = errors.New("conjen: null fields")

	// ErrNullArgument is recorded when a setter receives a nil value for a
	// field that does not accept one.
	ErrNullArgument = errors.New("conjen: null argument")

	// ErrIllegalBuilderReuse is returned when a builder is used after a
	// successful Build.
	ErrIllegalBuilderReuse = errors.New("conjen: build has already been called")

	// ErrDecode is returned when a wire value cannot be decoded.
	ErrDecode = errors.New("conjen: decode failed")

	// ErrUnknownField is returned by strict decoders for unrecognized keys.
	ErrUnknownField = errors.New("conjen: unknown field")
)

// MissingRequiredFieldError lists every required field of a type that was
// not set before Build.
type MissingRequiredFieldError struct {
	Type   string
	Fields []string
}

// Error returns the error string.
func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("conjen: some required fields have not been set on %s: [%s]",
		e.Type, strings.Join(e.Fields, ", "))
}

// Is reports whether the target error matches MissingRequiredFieldError.
func (e *MissingRequiredFieldError) Is(err error) bool {
	return err == ErrMissingRequiredField
}

// NewMissingRequiredFieldError returns a new MissingRequiredFieldError.
func NewMissingRequiredFieldError(typ string, fields []string) *MissingRequiredFieldError {
	return &MissingRequiredFieldError{Type: typ, Fields: fields}
}

// IsMissingRequiredField returns true if the error is a MissingRequiredFieldError.
func IsMissingRequiredField(err error) bool {
	if err == nil {
		return false
	}
	var e *MissingRequiredFieldError
	return errors.As(err, &e)
}

// NullFieldsError lists the fields of a value that Build found still nil
// (or, for enums, still the zero value). It is only reported once every
// required primitive has been set.
type NullFieldsError struct {
	Type   string
	Fields []string
}

// Error returns the error string.
func (e *NullFieldsError) Error() string {
	return fmt.Sprintf("conjen: %s has null fields: [%s]", e.Type, strings.Join(e.Fields, ", "))
}

// Is reports whether the target error matches NullFieldsError.
func (e *NullFieldsError) Is(err error) bool {
	return err == ErrNullFields
}

// NewNullFieldsError returns a new NullFieldsError.
func NewNullFieldsError(typ string, fields []string) *NullFieldsError {
	return &NullFieldsError{Type: typ, Fields: fields}
}

// IsNullFields returns true if the error is a NullFieldsError.
func IsNullFields(err error) bool {
	if err == nil {
		return false
	}
	var e *NullFieldsError
	return errors.As(err, &e)
}

// NullArgumentError represents a nil value passed where one is not accepted.
type NullArgumentError struct {
	Type  string
	Field string
}

// Error returns the error string.
func (e *NullArgumentError) Error() string {
	return fmt.Sprintf("conjen: %s.%s cannot be null", e.Type, e.Field)
}

// Is reports whether the target error matches NullArgumentError.
func (e *NullArgumentError) Is(err error) bool {
	return err == ErrNullArgument
}

// NewNullArgumentError returns a new NullArgumentError for the given field.
func NewNullArgumentError(typ, field string) *NullArgumentError {
	return &NullArgumentError{Type: typ, Field: field}
}

// IsNullArgument returns true if the error is a NullArgumentError.
func IsNullArgument(err error) bool {
	if err == nil {
		return false
	}
	var e *NullArgumentError
	return errors.As(err, &e)
}

// IllegalBuilderReuseError is returned when a built builder is touched again.
type IllegalBuilderReuseError struct {
	Type   string
	Method string
}

// Error returns the error string.
func (e *IllegalBuilderReuseError) Error() string {
	return fmt.Sprintf("conjen: %s builder: build has already been called (in %s)", e.Type, e.Method)
}

// Is reports whether the target error matches IllegalBuilderReuseError.
func (e *IllegalBuilderReuseError) Is(err error) bool {
	return err == ErrIllegalBuilderReuse
}

// NewIllegalBuilderReuseError returns a new IllegalBuilderReuseError.
func NewIllegalBuilderReuseError(typ, method string) *IllegalBuilderReuseError {
	return &IllegalBuilderReuseError{Type: typ, Method: method}
}

// IsIllegalBuilderReuse returns true if the error is an IllegalBuilderReuseError.
func IsIllegalBuilderReuse(err error) bool {
	if err == nil {
		return false
	}
	var e *IllegalBuilderReuseError
	return errors.As(err, &e)
}

// DecodeError wraps a failure to decode a field (or a whole value when Field
// is empty) from the wire.
type DecodeError struct {
	Type  string
	Field string
	Err   error
}

// Error returns the error string.
func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("conjen: cannot decode %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("conjen: cannot decode %s.%s: %v", e.Type, e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether the target error matches DecodeError.
func (e *DecodeError) Is(err error) bool {
	return err == ErrDecode
}

// NewDecodeError returns a new DecodeError.
func NewDecodeError(typ, field string, err error) *DecodeError {
	return &DecodeError{Type: typ, Field: field, Err: err}
}

// UnknownFieldError is returned by strict decoders when the wire carries a
// key the type does not declare.
type UnknownFieldError struct {
	Type  string
	Field string
}

// Error returns the error string.
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("conjen: unknown field %q on %s", e.Field, e.Type)
}

// Is reports whether the target error matches UnknownFieldError.
func (e *UnknownFieldError) Is(err error) bool {
	return err == ErrUnknownField
}

// NewUnknownFieldError returns a new UnknownFieldError.
func NewUnknownFieldError(typ, field string) *UnknownFieldError {
	return &UnknownFieldError{Type: typ, Field: field}
}
