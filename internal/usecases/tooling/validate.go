package tooling

import (
	"fmt"
	"regexp"
)

var patternCache = map[string]*regexp.Regexp{}

func init() {
	for _, s := range schemas {
		for _, f := range s.Fields {
			if f.Pattern != "" {
				patternCache[f.Pattern] = regexp.MustCompile(f.Pattern)
			}
		}
	}
}

// Validate checks args against the tool schema and returns a copy with
// declared defaults applied. Unknown keys pass through untouched so the
// model can forward Graph API parameters the schema does not enumerate.
func Validate(schema ToolSchema, args map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(args)+1)
	for k, v := range args {
		out[k] = v
	}

	for _, name := range schema.Required {
		v, ok := out[name]
		if !ok || v == nil {
			return nil, &ValidationError{Field: name, Constraint: "is required"}
		}
		if s, isStr := v.(string); isStr && s == "" {
			return nil, &ValidationError{Field: name, Constraint: "must not be empty"}
		}
	}

	for name, field := range schema.Fields {
		v, ok := out[name]
		if !ok || v == nil {
			if field.Default != nil {
				out[name] = field.Default
			}
			// nil stays nil when the union allows it (time_increment)
			continue
		}

		if err := checkType(name, field, v); err != nil {
			return nil, err
		}

		if field.Pattern != "" {
			s, _ := v.(string)
			if !patternCache[field.Pattern].MatchString(s) {
				return nil, &ValidationError{
					Field:      name,
					Constraint: fmt.Sprintf("must match pattern %s", field.Pattern),
				}
			}
		}

		if len(field.Enum) > 0 {
			s, _ := v.(string)
			if !contains(field.Enum, s) {
				return nil, &ValidationError{
					Field:      name,
					Constraint: fmt.Sprintf("must be one of %v", field.Enum),
				}
			}
		}

		if field.MinItems > 0 {
			arr, _ := v.([]any)
			if len(arr) < field.MinItems {
				return nil, &ValidationError{Field: name, Constraint: "must not be empty"}
			}
		}

		if field.Maximum > 0 {
			if n, isNum := asNumber(v); isNum && n > field.Maximum {
				return nil, &ValidationError{
					Field:      name,
					Constraint: fmt.Sprintf("must be at most %v", field.Maximum),
				}
			}
		}
	}

	return out, nil
}

func checkType(name string, field FieldSpec, v any) error {
	types := field.Types
	if len(types) == 0 {
		types = []string{field.Type}
	}

	for _, t := range types {
		if matchesType(t, v) {
			return nil
		}
	}

	return &ValidationError{
		Field:      name,
		Constraint: fmt.Sprintf("must be of type %v", types),
	}
}

func matchesType(t string, v any) bool {
	switch t {
	case "string":
		_, ok := v.(string)
		return ok
	case "number":
		_, ok := asNumber(v)
		return ok
	case "array":
		_, ok := v.([]any)
		return ok
	case "object":
		_, ok := v.(map[string]any)
		return ok
	case "null":
		return v == nil
	}
	return false
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
