// Package coerce performs best-effort normalization of untrusted,
// loosely-typed data toward its declared field schema.
//
// Model output is representationally unreliable: numbers arrive as
// strings, booleans as "yes"/"no", dates in half a dozen layouts, enum
// members with inconsistent casing. Apply walks the declared fields and
// nudges each present value toward its target type, recording every change
// as a Warning. Nothing is ever altered silently and nothing ever fails:
// a value that cannot be coerced is passed through unchanged for the
// validation engine to report.
//
// Apply never mutates its input and allocates a fresh warning list per
// call, so concurrent coercion against a shared schema is safe.
package coerce
