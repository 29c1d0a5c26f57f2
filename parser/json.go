package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoJSON indicates no JSON payload could be located in the raw text.
var ErrNoJSON = errors.New("no JSON payload found in model output")

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(.*?)```")

// ExtractJSON returns the JSON payload embedded in raw model output.
// Fenced code blocks are preferred; failing that, the first balanced
// top-level object or array is returned.
func ExtractJSON(raw string) (string, error) {
	for _, m := range fenceRe.FindAllStringSubmatch(raw, -1) {
		body := strings.TrimSpace(m[1])
		if strings.HasPrefix(body, "{") || strings.HasPrefix(body, "[") {
			return body, nil
		}
	}

	if payload, ok := firstBalanced(raw); ok {
		return payload, nil
	}
	return "", ErrNoJSON
}

// Decode extracts and unmarshals the payload as an object.
func Decode(raw string) (map[string]any, error) {
	payload, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, fmt.Errorf("failed to parse extracted JSON: %w", err)
	}
	return data, nil
}

// ParseJSON parses a JSON document into a typed value using generics.
func ParseJSON[T any](data []byte) (*T, error) {
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &result, nil
}

// firstBalanced scans for the first '{' or '[' and returns the substring
// up to its matching close, honoring strings and escapes.
func firstBalanced(raw string) (string, bool) {
	start := strings.IndexAny(raw, "{[")
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{' || c == '[':
			depth++
		case c == '}' || c == ']':
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		}
	}
	return "", false
}
