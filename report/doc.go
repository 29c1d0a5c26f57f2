// Package report packages a validation result, coercion warnings and an
// externally supplied confidence score into a single graded extraction
// report.
//
// The report carries everything a pipeline needs to decide what to do with
// an extraction — accept it, retry it, or flag it for review — without
// making that decision itself. Build is pure and performs no I/O; the only
// nondeterminism is the generated report ID.
package report
