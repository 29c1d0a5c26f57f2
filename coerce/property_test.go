package coerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/fieldgate/sdk/schema"
)

// Coercing a value twice must be a fixed point: the second pass changes
// nothing and produces zero warnings.
func TestProperty_CoercionIdempotent(t *testing.T) {
	fields := []schema.Field{
		schema.Number("amount", ""),
		schema.Integer("count", ""),
		schema.Boolean("active", ""),
		schema.String("label", ""),
		schema.String("closed", "").WithFormat(schema.FormatDate),
		schema.String("stage", "").WithEnum("seed", "series_a", "series_b"),
	}

	rapid.Check(t, func(rt *rapid.T) {
		data := map[string]any{
			"amount": rapid.OneOf(
				rapid.Float64Range(-1e9, 1e9).AsAny(),
				rapid.StringMatching(`-?\d{1,9}(\.\d{1,4})?`).AsAny(),
				rapid.Bool().AsAny(),
			).Draw(rt, "amount"),
			"count": rapid.OneOf(
				rapid.Float64Range(-1e6, 1e6).AsAny(),
				rapid.IntRange(-1000, 1000).AsAny(),
			).Draw(rt, "count"),
			"active": rapid.SampledFrom([]any{
				true, false, "yes", "NO", "true", "0", "maybe", 1, 0.0,
			}).Draw(rt, "active"),
			"label": rapid.OneOf(
				rapid.String().AsAny(),
				rapid.Float64Range(-1e6, 1e6).AsAny(),
				rapid.Bool().AsAny(),
			).Draw(rt, "label"),
			"closed": rapid.SampledFrom([]any{
				"2024-11-20", "11/20/2024", "11/20/24", "January 15, 2024",
				"13/45/2024", "garbage",
			}).Draw(rt, "closed"),
			"stage": rapid.SampledFrom([]any{
				"seed", "Seed", "SERIES-A", "series b", "unknown stage",
			}).Draw(rt, "stage"),
		}

		once, _ := Apply(data, fields)
		twice, ws := Apply(once, fields)

		require.Empty(rt, ws, "second pass must be warning-free")
		assert.Equal(rt, once, twice, "second pass must change nothing")
	})
}

// Correctly-typed values never produce warnings.
func TestProperty_WellTypedDataUntouched(t *testing.T) {
	fields := []schema.Field{
		schema.Number("amount", ""),
		schema.Boolean("active", ""),
		schema.String("label", ""),
	}

	rapid.Check(t, func(rt *rapid.T) {
		data := map[string]any{
			"amount": rapid.Float64Range(-1e9, 1e9).Draw(rt, "amount"),
			"active": rapid.Bool().Draw(rt, "active"),
			"label":  rapid.StringMatching(`[a-z]{1,20}`).Draw(rt, "label"),
		}

		out, ws := Apply(data, fields)
		assert.Empty(rt, ws)
		assert.Equal(rt, data, out)
	})
}
