package schema

import (
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var fieldNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var enumSeparatorRe = regexp.MustCompile(`[\s-]+`)

// NormalizeEnumToken reduces a string to the canonical form used for
// case- and separator-insensitive enum matching: trimmed, lowercased, with
// runs of spaces and hyphens collapsed into a single underscore. The same
// normalization is applied at definition time to reject ambiguous enums
// and at coercion time to match candidate values.
func NormalizeEnumToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return enumSeparatorRe.ReplaceAllString(s, "_")
}

// mapping is an ordered view over a decoded document mapping. Documents
// parsed from text keep their declaration order; mappings supplied as Go
// maps are iterated in sorted key order since Go maps are unordered.
type mapping struct {
	keys []string
	vals map[string]any
}

func asMapping(v any) (*mapping, bool) {
	switch m := v.(type) {
	case *mapping:
		return m, true
	case map[string]any:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return &mapping{keys: keys, vals: m}, true
	}
	return nil, false
}

func (m *mapping) get(key string) (any, bool) {
	v, ok := m.vals[key]
	return v, ok
}

func (m *mapping) len() int { return len(m.keys) }

// nodeToValue converts a decoded yaml.Node tree into plain values,
// preserving mapping key order via *mapping.
func nodeToValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeToValue(n.Content[0])
	case yaml.MappingNode:
		m := &mapping{vals: make(map[string]any, len(n.Content)/2)}
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				return nil, err
			}
			val, err := nodeToValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			if _, dup := m.vals[key]; !dup {
				m.keys = append(m.keys, key)
			}
			m.vals[key] = val
		}
		return m, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			val, err := nodeToValue(c)
			if err != nil {
				return nil, err
			}
			out = append(out, val)
		}
		return out, nil
	case yaml.AliasNode:
		return nodeToValue(n.Alias)
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Parse validates a schema document and returns the typed, immutable
// Schema. It fails fast: the returned error is the first violation found,
// always a *SchemaError. Field iteration order for map input is sorted
// field name; use ParseBytes to preserve document declaration order.
func Parse(doc map[string]any) (*Schema, error) {
	s, serr := parse(doc)
	if serr != nil {
		return nil, serr
	}
	return s, nil
}

// ParseBytes decodes a YAML or JSON schema document and validates it.
// Field declaration order in the document is preserved and determines
// error and warning ordering downstream.
func ParseBytes(data []byte) (*Schema, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, schemaErr(CodeInvalidDocument, "", "schema document does not parse: %v", err)
	}
	doc, err := nodeToValue(&root)
	if err != nil {
		return nil, schemaErr(CodeInvalidDocument, "", "schema document does not parse: %v", err)
	}
	s, serr := parse(doc)
	if serr != nil {
		return nil, serr
	}
	return s, nil
}

func parse(doc any) (*Schema, *SchemaError) {
	m, ok := asMapping(doc)
	if !ok {
		return nil, schemaErr(CodeInvalidDocument, "", "schema document must be a mapping")
	}

	fv, ok := m.get("fields")
	fm, isMap := asMapping(fv)
	if !ok || !isMap {
		return nil, schemaErr(CodeMissingFields, "", "schema document must contain a fields mapping")
	}
	if fm.len() == 0 {
		return nil, schemaErr(CodeEmptyFields, "", "fields must declare at least one field")
	}

	fields, serr := parseFields("", fm)
	if serr != nil {
		return nil, serr
	}

	s := &Schema{Fields: fields}

	if mv, ok := m.get("metadata"); ok {
		md, serr := parseMetadata(mv)
		if serr != nil {
			return nil, serr
		}
		s.Metadata = md
	}

	if cv, ok := m.get("confidence"); ok {
		cc, serr := parseConfidence(cv)
		if serr != nil {
			return nil, serr
		}
		s.Confidence = cc
	}

	return s, nil
}

// parseFields validates every entry of a fields/properties mapping in
// declaration order. prefix already carries its trailing separator, e.g.
// "items.items." or "address.".
func parseFields(prefix string, fm *mapping) ([]Field, *SchemaError) {
	fields := make([]Field, 0, fm.len())
	for _, name := range fm.keys {
		path := prefix + name
		if !fieldNameRe.MatchString(name) {
			return nil, schemaErr(CodeInvalidFieldName, path,
				"field name %q must match %s", name, fieldNameRe.String())
		}
		dv, _ := fm.get(name)
		dm, ok := asMapping(dv)
		if !ok {
			return nil, schemaErr(CodeInvalidDefinition, path, "field definition must be a mapping")
		}
		f, serr := parseField(path, name, dm)
		if serr != nil {
			return nil, serr
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func parseField(path, name string, dm *mapping) (Field, *SchemaError) {
	tv, hasType := dm.get("type")
	ts, isStr := tv.(string)
	if !hasType || !isStr {
		return Field{}, schemaErr(CodeMissingType, path, "field must declare a string type")
	}

	kind := Kind(ts)
	switch kind {
	case KindString, KindNumber, KindInteger, KindBoolean, KindArray, KindObject:
	default:
		return Field{}, schemaErr(CodeUnknownType, path,
			"unknown type %q, valid types are %s", ts, strings.Join(Kinds(), ", ")).
			withDetails(map[string]any{"valid": Kinds()})
	}

	f := Field{Name: name}
	if ov, ok := dm.get("optional"); ok {
		b, ok := ov.(bool)
		if !ok {
			return Field{}, schemaErr(CodeInvalidOptional, path, "optional must be a boolean")
		}
		f.Optional = b
	}
	if desc, ok := dm.get("description"); ok {
		s, ok := desc.(string)
		if !ok {
			return Field{}, schemaErr(CodeInvalidDescription, path, "description must be a string")
		}
		f.Description = s
	}

	switch kind {
	case KindNumber, KindInteger:
		def, serr := parseNumeric(path, kind, dm)
		if serr != nil {
			return Field{}, serr
		}
		f.Def = def
	case KindString:
		def, serr := parseString(path, dm)
		if serr != nil {
			return Field{}, serr
		}
		f.Def = def
	case KindBoolean:
		f.Def = BooleanField{}
	case KindArray:
		def, serr := parseArray(path, dm)
		if serr != nil {
			return Field{}, serr
		}
		f.Def = def
	case KindObject:
		def, serr := parseObject(path, dm)
		if serr != nil {
			return Field{}, serr
		}
		f.Def = def
	}

	return f, nil
}

func parseNumeric(path string, kind Kind, dm *mapping) (FieldDef, *SchemaError) {
	var min, max *float64
	for _, key := range []string{"min", "max"} {
		v, ok := dm.get(key)
		if !ok {
			continue
		}
		n, ok := toFloat(v)
		if !ok {
			return nil, schemaErr(CodeInvalidRange, path, "%s must be a number", key)
		}
		if key == "min" {
			min = &n
		} else {
			max = &n
		}
	}
	if min != nil && max != nil && *min > *max {
		return nil, schemaErr(CodeInvalidRange, path, "min %v is greater than max %v", *min, *max).
			withDetails(map[string]any{"min": *min, "max": *max})
	}
	if _, ok := dm.get("enum"); ok {
		return nil, schemaErr(CodeIllegalConstraint, path, "enum is not allowed on %s fields", kind)
	}
	check, serr := parseCheck(path, dm)
	if serr != nil {
		return nil, serr
	}

	if kind == KindInteger {
		return IntegerField{Min: min, Max: max, Check: check}, nil
	}
	return NumberField{Min: min, Max: max, Check: check}, nil
}

func parseString(path string, dm *mapping) (FieldDef, *SchemaError) {
	def := StringField{}

	if _, ok := dm.get("min"); ok {
		return nil, schemaErr(CodeIllegalConstraint, path, "min is not allowed on string fields")
	}
	if _, ok := dm.get("max"); ok {
		return nil, schemaErr(CodeIllegalConstraint, path, "max is not allowed on string fields")
	}

	if pv, ok := dm.get("pattern"); ok {
		src, ok := pv.(string)
		if !ok {
			return nil, schemaErr(CodeInvalidPattern, path, "pattern must be a string")
		}
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, schemaErr(CodeInvalidPattern, path, "pattern does not compile: %v", err).
				withDetails(map[string]any{"pattern": src})
		}
		def.Pattern = re
	}

	if fv, ok := dm.get("format"); ok {
		s, ok := fv.(string)
		if !ok {
			return nil, schemaErr(CodeInvalidDefinition, path, "format must be a string")
		}
		def.Format = s
	}

	if ev, ok := dm.get("enum"); ok {
		enum, serr := parseEnum(path, ev)
		if serr != nil {
			return nil, serr
		}
		def.Enum = enum
	}

	check, serr := parseCheck(path, dm)
	if serr != nil {
		return nil, serr
	}
	def.Check = check

	return def, nil
}

func parseEnum(path string, ev any) ([]string, *SchemaError) {
	raw, ok := ev.([]any)
	if !ok || len(raw) == 0 {
		return nil, schemaErr(CodeInvalidEnum, path, "enum must be a non-empty array of strings")
	}
	enum := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	normalized := make(map[string]string, len(raw))
	for i, e := range raw {
		s, ok := e.(string)
		if !ok {
			return nil, schemaErr(CodeInvalidEnum, path, "enum entry %d is not a string", i).
				withDetails(map[string]any{"index": i})
		}
		if seen[s] {
			return nil, schemaErr(CodeInvalidEnum, path, "enum entry %q is duplicated", s).
				withDetails(map[string]any{"value": s})
		}
		seen[s] = true

		// Two members that normalize to the same token would make enum
		// coercion ambiguous, so the schema is rejected up front.
		norm := NormalizeEnumToken(s)
		if prev, collides := normalized[norm]; collides {
			return nil, schemaErr(CodeInvalidEnum, path,
				"enum entries %q and %q are ambiguous under normalization", prev, s).
				withDetails(map[string]any{"values": []string{prev, s}})
		}
		normalized[norm] = s

		enum = append(enum, s)
	}
	return enum, nil
}

func parseArray(path string, dm *mapping) (FieldDef, *SchemaError) {
	iv, ok := dm.get("items")
	if !ok {
		return nil, schemaErr(CodeMissingItems, path, "array fields must declare items")
	}
	im, ok := asMapping(iv)
	if !ok {
		return nil, schemaErr(CodeInvalidItems, path, "items must be a mapping")
	}
	tv, _ := im.get("type")
	if ts, ok := tv.(string); !ok || ts != string(KindObject) {
		return nil, schemaErr(CodeInvalidItems, path, "items.type must be %q", KindObject)
	}
	pv, ok := im.get("properties")
	pm, isMap := asMapping(pv)
	if !ok || !isMap || pm.len() == 0 {
		return nil, schemaErr(CodeInvalidItems, path, "items.properties must be a non-empty mapping")
	}
	props, serr := parseFields(path+".items.", pm)
	if serr != nil {
		return nil, serr
	}
	return ArrayField{Items: props}, nil
}

func parseObject(path string, dm *mapping) (FieldDef, *SchemaError) {
	pv, ok := dm.get("properties")
	pm, isMap := asMapping(pv)
	if !ok || !isMap || pm.len() == 0 {
		return nil, schemaErr(CodeMissingProperties, path,
			"object fields must declare a non-empty properties mapping")
	}
	props, serr := parseFields(path+".", pm)
	if serr != nil {
		return nil, serr
	}
	return ObjectField{Properties: props}, nil
}

func parseCheck(path string, dm *mapping) (*Check, *SchemaError) {
	v, ok := dm.get("check")
	if !ok {
		return nil, nil
	}
	src, ok := v.(string)
	if !ok {
		return nil, schemaErr(CodeInvalidCheck, path, "check must be a string expression")
	}
	c, err := CompileCheck(src)
	if err != nil {
		return nil, schemaErr(CodeInvalidCheck, path, "%v", err).
			withDetails(map[string]any{"expression": src})
	}
	return c, nil
}

func parseMetadata(mv any) (*Metadata, *SchemaError) {
	mm, ok := asMapping(mv)
	if !ok {
		return nil, schemaErr(CodeInvalidMetadata, "", "metadata must be a mapping")
	}
	md := &Metadata{}
	for key, dst := range map[string]*string{
		"name":        &md.Name,
		"version":     &md.Version,
		"description": &md.Description,
	} {
		v, ok := mm.get(key)
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, schemaErr(CodeInvalidMetadata, "", "metadata %s must be a string", key)
		}
		*dst = s
	}
	return md, nil
}

func parseConfidence(cv any) (*ConfidenceConfig, *SchemaError) {
	cm, ok := asMapping(cv)
	if !ok {
		return nil, schemaErr(CodeInvalidConfidence, "", "confidence must be a mapping")
	}
	tv, ok := cm.get("threshold")
	if !ok {
		return nil, schemaErr(CodeInvalidConfidence, "", "confidence requires a threshold")
	}
	threshold, ok := toFloat(tv)
	if !ok || threshold < 0 || threshold > 100 {
		return nil, schemaErr(CodeInvalidConfidence, "", "threshold must be a number between 0 and 100")
	}
	fv, ok := cm.get("failOnLowConfidence")
	if !ok {
		return nil, schemaErr(CodeInvalidConfidence, "", "confidence requires failOnLowConfidence")
	}
	fail, ok := fv.(bool)
	if !ok {
		return nil, schemaErr(CodeInvalidConfidence, "", "failOnLowConfidence must be a boolean")
	}
	return &ConfidenceConfig{Threshold: threshold, FailOnLowConfidence: fail}, nil
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
