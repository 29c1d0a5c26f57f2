package input

import (
	"math"
	"strconv"
	"strings"
)

// GetString extracts a string value with a default fallback.
func GetString(record map[string]any, key, defaultVal string) string {
	if v, ok := record[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return defaultVal
}

// GetFloat extracts a numeric value as float64 with a default fallback.
func GetFloat(record map[string]any, key string, defaultVal float64) float64 {
	if v, ok := record[key]; ok {
		if f, ok := toFloat(v); ok {
			return f
		}
	}
	return defaultVal
}

// GetInt extracts an integral numeric value with a default fallback.
// Fractional numbers fall back to the default rather than truncating;
// truncation is coercion's job and is always warned about there.
func GetInt(record map[string]any, key string, defaultVal int) int {
	if v, ok := record[key]; ok {
		if f, ok := toFloat(v); ok && f == math.Trunc(f) {
			return int(f)
		}
	}
	return defaultVal
}

// GetBool extracts a boolean value with a default fallback.
func GetBool(record map[string]any, key string, defaultVal bool) bool {
	if v, ok := record[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

// GetStringSlice extracts a []string value. Elements of a []any that are
// not strings are skipped. Returns nil when the key is absent or not a
// slice.
func GetStringSlice(record map[string]any, key string) []string {
	v, ok := record[key]
	if !ok {
		return nil
	}
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			if str, ok := e.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// GetMap extracts a nested object with a nil fallback.
func GetMap(record map[string]any, key string) map[string]any {
	if v, ok := record[key]; ok {
		if m, ok := v.(map[string]any); ok {
			return m
		}
	}
	return nil
}

// Lookup resolves a dot/bracket field path such as "items[2].price"
// against a record. It returns the value and whether the full path
// resolved.
func Lookup(record map[string]any, path string) (any, bool) {
	var current any = record
	for _, seg := range splitPath(path) {
		if seg.index >= 0 {
			arr, ok := current.([]any)
			if !ok || seg.index >= len(arr) {
				return nil, false
			}
			current = arr[seg.index]
			continue
		}
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[seg.key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

type segment struct {
	key   string
	index int // -1 for key segments
}

func splitPath(path string) []segment {
	var segs []segment
	for _, part := range strings.Split(path, ".") {
		for {
			open := strings.IndexByte(part, '[')
			if open < 0 {
				if part != "" {
					segs = append(segs, segment{key: part, index: -1})
				}
				break
			}
			if open > 0 {
				segs = append(segs, segment{key: part[:open], index: -1})
			}
			closing := strings.IndexByte(part, ']')
			if closing < open {
				// Malformed bracket; treat the rest as a literal key.
				segs = append(segs, segment{key: part[open:], index: -1})
				break
			}
			idx, err := strconv.Atoi(part[open+1 : closing])
			if err != nil || idx < 0 {
				segs = append(segs, segment{key: part[open : closing+1], index: -1})
			} else {
				segs = append(segs, segment{index: idx})
			}
			part = part[closing+1:]
			if part == "" {
				break
			}
		}
	}
	return segs
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
