package tooling

import (
	"github.com/tenxer/meta-ads-gateway/pkg/utils"
)

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

func intArg(args map[string]any, key string, fallback int) int {
	v, ok := args[key]
	if !ok || v == nil {
		return fallback
	}
	n, ok := asNumber(v)
	if !ok {
		return fallback
	}
	return int(n)
}

// fieldsArg returns the requested field names, falling back to the
// schema's documented default when absent.
func fieldsArg(args map[string]any, field FieldSpec) []string {
	raw, ok := args["fields"]
	if !ok || raw == nil {
		if defaults, ok := field.DocDefault.([]string); ok {
			return defaults
		}
		return nil
	}

	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// rawAppendix renders the full upstream payload as a fenced JSON block.
// It is appended to every Graph-backed tool response so the exact
// upstream data stays inspectable next to the formatted report.
func rawAppendix(raw []byte) string {
	return "\n\n**Raw API Response:**\n```json\n" + utils.PrettyJson(raw) + "\n```"
}

// debugAppendix renders the field-rewrite trace of an insights call
func debugAppendix(debug DebugTrace) string {
	return "\n\n**Debug Info:**\n```json\n" + utils.PrettyJson(debug) + "\n```"
}
