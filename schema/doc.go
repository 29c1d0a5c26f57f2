// Package schema defines the declarative field schema used to validate and
// coerce data extracted by a language model.
//
// A Schema is an ordered list of named field definitions. Each definition is
// a typed variant (string, number, integer, boolean, array, object) carrying
// the constraints legal for that type: enums, patterns and formats for
// strings, min/max bounds for numerics, item and property schemas for
// containers. Structural invariants such as "array fields always carry an
// object item schema" are encoded in the variant types rather than checked
// at validation time.
//
// Schemas are built either programmatically with the fluent constructors:
//
//	s := schema.New(
//		schema.String("company", "Company name"),
//		schema.Number("amount", "Deal size in USD").WithMin(0),
//		schema.String("stage", "Funding stage").WithEnum("seed", "series_a"),
//	)
//
// or parsed from an untrusted schema document with Parse or ParseBytes. The
// parsing path runs the full definition validator: it fails fast on the
// first violation and returns a *SchemaError carrying a machine-readable
// code, the offending field path, and structured details.
//
// Once constructed a Schema is immutable and safe for concurrent use.
// Pattern constraints and check expressions are compiled exactly once, at
// construction time.
package schema
