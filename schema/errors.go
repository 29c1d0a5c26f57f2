package schema

import "fmt"

// Code is a machine-readable schema-definition error code.
type Code string

const (
	CodeInvalidDocument    Code = "INVALID_DOCUMENT"
	CodeMissingFields      Code = "MISSING_FIELDS"
	CodeEmptyFields        Code = "EMPTY_FIELDS"
	CodeInvalidFieldName   Code = "INVALID_FIELD_NAME"
	CodeInvalidDefinition  Code = "INVALID_DEFINITION"
	CodeMissingType        Code = "MISSING_TYPE"
	CodeUnknownType        Code = "UNKNOWN_TYPE"
	CodeInvalidOptional    Code = "INVALID_OPTIONAL"
	CodeInvalidDescription Code = "INVALID_DESCRIPTION"
	CodeInvalidRange       Code = "INVALID_RANGE"
	CodeIllegalConstraint  Code = "ILLEGAL_CONSTRAINT"
	CodeInvalidPattern     Code = "INVALID_PATTERN"
	CodeInvalidEnum        Code = "INVALID_ENUM"
	CodeInvalidCheck       Code = "INVALID_CHECK"
	CodeMissingItems       Code = "MISSING_ITEMS"
	CodeInvalidItems       Code = "INVALID_ITEMS"
	CodeMissingProperties  Code = "MISSING_PROPERTIES"
	CodeInvalidMetadata    Code = "INVALID_METADATA"
	CodeInvalidConfidence  Code = "INVALID_CONFIDENCE"
)

// SchemaError reports the first violation found while validating a schema
// document. It is a configuration-time error: the schema author has to fix
// the document before any data can be processed against it.
type SchemaError struct {
	// Code is the machine-readable violation class.
	Code Code

	// Message is a human-readable description of the violation.
	Message string

	// Field is the dot-qualified path of the offending field definition,
	// empty for whole-document violations.
	Field string

	// Details carries structured context useful for fixing the schema,
	// such as the list of valid types or the conflicting min/max pair.
	Details map[string]any
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("schema: %s", e.Message)
	}
	return fmt.Sprintf("schema: field %q: %s", e.Field, e.Message)
}

func schemaErr(code Code, field, format string, args ...any) *SchemaError {
	return &SchemaError{
		Code:    code,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *SchemaError) withDetails(details map[string]any) *SchemaError {
	e.Details = details
	return e
}
