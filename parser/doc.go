// Package parser extracts the structured payload from raw model output.
//
// Models rarely reply with bare JSON: the payload is usually wrapped in
// prose, markdown fences, or both. ExtractJSON locates the payload and
// Decode unmarshals it into the map form the coercion and validation
// engines consume.
package parser
