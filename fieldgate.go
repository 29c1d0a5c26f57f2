package fieldgate

import (
	"github.com/fieldgate/sdk/coerce"
	"github.com/fieldgate/sdk/report"
	"github.com/fieldgate/sdk/schema"
	"github.com/fieldgate/sdk/validate"
)

// Process runs one extraction through the engine: coerce the data toward
// the schema, validate the result, and grade it against the externally
// supplied confidence score (0-100). It returns the coerced data and the
// combined report.
//
// The schema must have been constructed via schema.Parse, schema.ParseBytes
// or the schema constructors. Process never mutates data.
func Process(s *schema.Schema, data map[string]any, confidence float64, opts ...Option) (map[string]any, *report.Report) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	coerced := data
	var warnings []coerce.Warning
	if !cfg.skipCoercion {
		coerced, warnings = coerce.Apply(data, s.Fields)
	}

	result := validate.Apply(coerced, s)
	rep := report.Build(result, warnings, confidence, s.Confidence)

	if cfg.logger != nil {
		cfg.logger.Debug("extraction processed",
			"report_id", rep.ID,
			"valid", result.Valid,
			"accepted", rep.Accepted,
			"quality", string(rep.Quality),
			"errors", len(result.Errors),
			"warnings", len(warnings),
		)
	}

	return coerced, rep
}
