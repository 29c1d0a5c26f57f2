package report

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/fieldgate/sdk/coerce"
	"github.com/fieldgate/sdk/schema"
	"github.com/fieldgate/sdk/validate"
)

// Quality grades how trustworthy an extraction is.
type Quality string

const (
	// QualityFull marks a clean extraction: valid, no coercion needed.
	QualityFull Quality = "full"

	// QualityPartial marks a valid extraction that required coercion.
	QualityPartial Quality = "partial"

	// QualitySuspect marks a valid extraction whose confidence fell below
	// the schema's threshold.
	QualitySuspect Quality = "suspect"

	// QualityRejected marks an extraction with validation errors.
	QualityRejected Quality = "rejected"
)

// Report is the combined outcome of coercing and validating one
// extraction, plus the confidence gate decision inputs.
type Report struct {
	ID         string           `json:"id"`
	Valid      bool             `json:"valid"`
	Accepted   bool             `json:"accepted"`
	Quality    Quality          `json:"quality"`
	Confidence float64          `json:"confidence"`
	Threshold  float64          `json:"threshold"`
	Errors     []validate.Error `json:"errors,omitempty"`
	Warnings   []coerce.Warning `json:"warnings,omitempty"`
	Reasons    []string         `json:"reasons,omitempty"`
}

// Build assembles a report from a validation result, the coercion warnings
// produced for the same data, the externally supplied confidence score
// (0-100), and the schema's confidence configuration (may be nil, which
// disables the gate).
//
// Accepted is true when the data is valid and the confidence gate passes.
// A sub-threshold confidence only rejects when the schema asks for it via
// failOnLowConfidence; otherwise it downgrades quality to suspect.
func Build(result validate.Result, warnings []coerce.Warning, confidence float64, cfg *schema.ConfidenceConfig) *Report {
	r := &Report{
		ID:         uuid.New().String(),
		Valid:      result.Valid,
		Confidence: confidence,
		Errors:     result.Errors,
		Warnings:   warnings,
	}

	lowConfidence := false
	if cfg != nil {
		r.Threshold = cfg.Threshold
		lowConfidence = confidence < cfg.Threshold
	}

	r.Accepted = result.Valid && !(lowConfidence && cfg != nil && cfg.FailOnLowConfidence)

	switch {
	case !result.Valid:
		r.Quality = QualityRejected
	case lowConfidence:
		r.Quality = QualitySuspect
	case len(warnings) > 0:
		r.Quality = QualityPartial
	default:
		r.Quality = QualityFull
	}

	if n := len(result.Errors); n > 0 {
		r.Reasons = append(r.Reasons, fmt.Sprintf("%d validation error(s)", n))
	}
	if n := len(warnings); n > 0 {
		r.Reasons = append(r.Reasons, fmt.Sprintf("%d value(s) coerced", n))
	}
	if lowConfidence {
		r.Reasons = append(r.Reasons, fmt.Sprintf("confidence %.1f below threshold %.1f", confidence, cfg.Threshold))
	}

	return r
}
