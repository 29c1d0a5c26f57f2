// Package fieldgate reconciles untrusted, loosely-typed data produced by a
// generative text model against a declarative field schema.
//
// The engine guarantees that anything it returns either exactly matches
// the schema's type and constraint contract or is reported as a precise,
// path-qualified set of failures. It absorbs representation-level
// unreliability — wrong primitive types, inconsistent casing, alternate
// date formats, stringified booleans and numbers — without ever silently
// accepting a semantically wrong value.
//
// # Packages
//
//   - schema: the declarative field schema and its definition validator
//   - coerce: best-effort, warning-producing normalization toward the schema
//   - validate: pure conformance checking with a complete error list
//   - report: confidence-gated grading of one extraction's outcome
//   - parser: locating the JSON payload inside raw model output
//   - input: typed accessors over validated records
//
// # Usage
//
// Load and validate the schema once, then process each extraction:
//
//	s, err := schema.ParseBytes(schemaDoc)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	data, err := parser.Decode(modelOutput)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	coerced, rep := fieldgate.Process(s, data, confidence)
//	if !rep.Accepted {
//		// retry, reject, or flag for review — the caller's call
//	}
//
// Every operation is a pure function over immutable inputs; concurrent
// calls against independent data are safe without locking.
package fieldgate
