// Package input provides typed accessors over coerced, validated
// extraction records.
//
// Once a record has passed through coercion and validation its values have
// known types, so these accessors are strict: a type mismatch yields the
// default rather than a second round of coercion. Lookup resolves the same
// dot/bracket field paths the engines emit in errors and warnings, e.g.
// "items[2].price".
package input
