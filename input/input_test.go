package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	record := map[string]any{"name": "Acme", "count": 5}

	assert.Equal(t, "Acme", GetString(record, "name", "fallback"))
	assert.Equal(t, "fallback", GetString(record, "missing", "fallback"))
	assert.Equal(t, "fallback", GetString(record, "count", "fallback"))
}

func TestGetFloat(t *testing.T) {
	record := map[string]any{"f": 1.5, "i": 7, "s": "1.5"}

	assert.Equal(t, 1.5, GetFloat(record, "f", 0))
	assert.Equal(t, 7.0, GetFloat(record, "i", 0))
	assert.Equal(t, 9.9, GetFloat(record, "s", 9.9), "strings are not parsed")
	assert.Equal(t, 9.9, GetFloat(record, "missing", 9.9))
}

func TestGetInt(t *testing.T) {
	record := map[string]any{"whole": 42.0, "frac": 42.7, "i": 7}

	assert.Equal(t, 42, GetInt(record, "whole", 0))
	assert.Equal(t, 7, GetInt(record, "i", 0))
	assert.Equal(t, -1, GetInt(record, "frac", -1), "fractional values fall back")
	assert.Equal(t, -1, GetInt(record, "missing", -1))
}

func TestGetBool(t *testing.T) {
	record := map[string]any{"on": true, "s": "true"}

	assert.True(t, GetBool(record, "on", false))
	assert.False(t, GetBool(record, "s", false), "strings are not parsed")
	assert.True(t, GetBool(record, "missing", true))
}

func TestGetStringSlice(t *testing.T) {
	record := map[string]any{
		"typed": []string{"a", "b"},
		"mixed": []any{"a", 1, "b", nil},
		"notit": "a,b",
	}

	assert.Equal(t, []string{"a", "b"}, GetStringSlice(record, "typed"))
	assert.Equal(t, []string{"a", "b"}, GetStringSlice(record, "mixed"))
	assert.Nil(t, GetStringSlice(record, "notit"))
	assert.Nil(t, GetStringSlice(record, "missing"))
}

func TestGetMap(t *testing.T) {
	record := map[string]any{"obj": map[string]any{"k": "v"}, "s": "x"}

	assert.Equal(t, map[string]any{"k": "v"}, GetMap(record, "obj"))
	assert.Nil(t, GetMap(record, "s"))
	assert.Nil(t, GetMap(record, "missing"))
}

func TestLookup(t *testing.T) {
	record := map[string]any{
		"company": "Acme",
		"address": map[string]any{"city": "Berlin"},
		"items": []any{
			map[string]any{"price": 9.99},
			map[string]any{"price": 19.99},
		},
	}

	tests := []struct {
		path string
		want any
		ok   bool
	}{
		{path: "company", want: "Acme", ok: true},
		{path: "address.city", want: "Berlin", ok: true},
		{path: "items[0].price", want: 9.99, ok: true},
		{path: "items[1].price", want: 19.99, ok: true},
		{path: "items[2].price", ok: false},
		{path: "address.zip", ok: false},
		{path: "company.sub", ok: false},
		{path: "items[0].missing", ok: false},
		{path: "missing", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := Lookup(record, tt.path)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
