// Package validate checks (typically coerced) data against a field schema
// and reports every conformance failure it finds.
//
// Apply is a pure function: it walks the schema's fields in declaration
// order, accumulates a complete list of typed, path-qualified errors, and
// never short-circuits on the first failure. Data-level problems are
// values in the result, never Go errors; the caller decides how to react.
// The schema is assumed to have passed schema.Parse already — feeding an
// inconsistent hand-built schema here is a caller bug, not a data error.
package validate
