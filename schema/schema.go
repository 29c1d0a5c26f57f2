package schema

import "regexp"

// Kind identifies the declared type of a field definition.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
)

// Kinds returns the set of valid field type names in a stable order.
// Used in schema-definition error messages.
func Kinds() []string {
	return []string{"string", "number", "integer", "boolean", "array", "object"}
}

// String formats: values coercion and validation understand on string fields.
const (
	FormatDate     = "date"
	FormatDateTime = "date-time"
)

// FieldDef is the variant payload of a field definition. Exactly one of
// StringField, NumberField, IntegerField, BooleanField, ArrayField or
// ObjectField implements it.
type FieldDef interface {
	Kind() Kind
}

// Field is a named field definition within a schema. Optional and
// Description are common to every variant; the type-specific constraints
// live in Def.
type Field struct {
	Name        string
	Description string
	Optional    bool
	Def         FieldDef
}

// StringField constrains a string value. Enum, Pattern, Format and Check
// are each optional; an empty Enum means any string is allowed.
type StringField struct {
	// Enum is a closed set of allowed values. Non-empty when present,
	// members unique, and unambiguous under coercion normalization.
	Enum []string

	// Pattern is the compiled pattern constraint, compiled once at schema
	// construction time.
	Pattern *regexp.Regexp

	// Format tags the string with a value format such as FormatDate.
	// Formats drive coercion only; they are not validated constraints.
	Format string

	// Check is an optional compiled constraint expression over the value.
	Check *Check
}

func (StringField) Kind() Kind { return KindString }

// NumberField constrains a floating-point value.
type NumberField struct {
	Min   *float64
	Max   *float64
	Check *Check
}

func (NumberField) Kind() Kind { return KindNumber }

// IntegerField constrains an integral value.
type IntegerField struct {
	Min   *float64
	Max   *float64
	Check *Check
}

func (IntegerField) Kind() Kind { return KindInteger }

// BooleanField accepts true or false.
type BooleanField struct{}

func (BooleanField) Kind() Kind { return KindBoolean }

// ArrayField accepts an array whose elements are objects described by
// Items. Items always has at least one property.
type ArrayField struct {
	Items []Field
}

func (ArrayField) Kind() Kind { return KindArray }

// ObjectField accepts a nested mapping described by Properties.
// Properties always has at least one entry.
type ObjectField struct {
	Properties []Field
}

func (ObjectField) Kind() Kind { return KindObject }

// Metadata carries informational schema identification.
type Metadata struct {
	Name        string
	Version     string
	Description string
}

// ConfidenceConfig is the confidence gate configuration carried by a
// schema. The gate itself is applied by the caller; this core only
// transports the settings.
type ConfidenceConfig struct {
	// Threshold is the minimum acceptable confidence, 0-100.
	Threshold float64

	// FailOnLowConfidence marks whether a sub-threshold confidence should
	// reject the extraction outright.
	FailOnLowConfidence bool
}

// Schema is an ordered set of field definitions plus optional metadata and
// confidence configuration. Declaration order determines the order of
// validation errors and coercion warnings.
type Schema struct {
	Fields     []Field
	Metadata   *Metadata
	Confidence *ConfidenceConfig
}

// New builds a schema from programmatically constructed fields.
func New(fields ...Field) *Schema {
	return &Schema{Fields: fields}
}

// Field returns the definition for name and whether it exists.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Fluent constructors for programmatic schema construction.

// String creates a string field.
func String(name, desc string) Field {
	return Field{Name: name, Description: desc, Def: StringField{}}
}

// Number creates a number field.
func Number(name, desc string) Field {
	return Field{Name: name, Description: desc, Def: NumberField{}}
}

// Integer creates an integer field.
func Integer(name, desc string) Field {
	return Field{Name: name, Description: desc, Def: IntegerField{}}
}

// Boolean creates a boolean field.
func Boolean(name, desc string) Field {
	return Field{Name: name, Description: desc, Def: BooleanField{}}
}

// Array creates an array field whose elements are objects with the given
// properties.
func Array(name, desc string, items ...Field) Field {
	return Field{Name: name, Description: desc, Def: ArrayField{Items: items}}
}

// Object creates an object field with the given properties.
func Object(name, desc string, props ...Field) Field {
	return Field{Name: name, Description: desc, Def: ObjectField{Properties: props}}
}

// AsOptional marks the field optional.
func (f Field) AsOptional() Field {
	f.Optional = true
	return f
}

// WithEnum sets the allowed values on a string field. No effect on other
// variants.
func (f Field) WithEnum(values ...string) Field {
	if def, ok := f.Def.(StringField); ok {
		def.Enum = values
		f.Def = def
	}
	return f
}

// WithPattern sets a compiled pattern constraint on a string field.
func (f Field) WithPattern(re *regexp.Regexp) Field {
	if def, ok := f.Def.(StringField); ok {
		def.Pattern = re
		f.Def = def
	}
	return f
}

// WithFormat tags a string field with a value format such as FormatDate.
func (f Field) WithFormat(format string) Field {
	if def, ok := f.Def.(StringField); ok {
		def.Format = format
		f.Def = def
	}
	return f
}

// WithMin sets the lower bound on a number or integer field.
func (f Field) WithMin(min float64) Field {
	switch def := f.Def.(type) {
	case NumberField:
		def.Min = &min
		f.Def = def
	case IntegerField:
		def.Min = &min
		f.Def = def
	}
	return f
}

// WithMax sets the upper bound on a number or integer field.
func (f Field) WithMax(max float64) Field {
	switch def := f.Def.(type) {
	case NumberField:
		def.Max = &max
		f.Def = def
	case IntegerField:
		def.Max = &max
		f.Def = def
	}
	return f
}

// WithCheck attaches a compiled check expression to a scalar field.
func (f Field) WithCheck(c *Check) Field {
	switch def := f.Def.(type) {
	case StringField:
		def.Check = c
		f.Def = def
	case NumberField:
		def.Check = c
		f.Def = def
	case IntegerField:
		def.Check = c
		f.Def = def
	}
	return f
}
