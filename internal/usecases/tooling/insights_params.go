package tooling

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/tenxer/meta-ads-gateway/pkg/utils"
)

// InsightsArgs is the typed view of the facebook_get_adaccount_insights
// arguments. Keys the struct does not name land in Other and are
// forwarded to the Graph API untouched.
type InsightsArgs struct {
	ActID         string            `mapstructure:"act_id"`
	Fields        []string          `mapstructure:"fields"`
	Level         string            `mapstructure:"level"`
	DatePreset    string            `mapstructure:"date_preset"`
	TimeRange     map[string]string `mapstructure:"time_range"`
	TimeIncrement any               `mapstructure:"time_increment"`
	Breakdowns    []string          `mapstructure:"breakdowns"`
	Filtering     []any             `mapstructure:"filtering"`
	Period        string            `mapstructure:"period"`

	Other map[string]any `mapstructure:",remain"`
}

// DebugTrace records how the requested field set was rewritten. It is
// appended to every insights response so mismatches between what the
// model asked for and what was fetched stay diagnosable.
type DebugTrace struct {
	OriginalFields      []string `json:"originalFields"`
	IncludesActions     bool     `json:"includesActions"`
	IncludesConversions bool     `json:"includesConversions"`
	AddedConversions    bool     `json:"addedConversions"`
}

// ResolvedTimeIncrement is the outcome of collapsing the legacy period
// parameter and the string|number|null time_increment into one value.
type ResolvedTimeIncrement struct {
	Value   string
	Monthly bool
}

// BuildResult carries the assembled query parameters plus what the
// formatter needs downstream.
type BuildResult struct {
	ActID     string
	Params    url.Values
	Increment ResolvedTimeIncrement
	Debug     DebugTrace
}

// DecodeInsightsArgs converts validated raw arguments into InsightsArgs
func DecodeInsightsArgs(raw map[string]any) (*InsightsArgs, error) {
	var args InsightsArgs

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &args,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "building insights args decoder")
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, &ValidationError{Field: "arguments", Constraint: err.Error()}
	}

	return &args, nil
}

// BuildInsightsParams assembles the Graph API query for an insights
// call: it enhances the field list, resolves the time bucketing and
// encodes every remaining argument into query string form.
func BuildInsightsParams(raw map[string]any) (*BuildResult, error) {
	args, err := DecodeInsightsArgs(raw)
	if err != nil {
		return nil, err
	}

	fields, debug := enhanceFields(args.Fields)
	increment := ResolveTimeIncrement(args.Period, args.TimeIncrement)

	level := args.Level
	if level == "" {
		level = "account"
	}

	params := url.Values{}
	params.Set("fields", strings.Join(fields, ","))
	params.Set("level", level)
	if args.DatePreset != "" {
		params.Set("date_preset", args.DatePreset)
	}
	if len(args.TimeRange) > 0 {
		params.Set("time_range", utils.CompactJson(args.TimeRange))
	}
	if increment.Value != "" {
		params.Set("time_increment", increment.Value)
	}
	if len(args.Breakdowns) > 0 {
		params.Set("breakdowns", strings.Join(args.Breakdowns, ","))
	}
	if len(args.Filtering) > 0 {
		params.Set("filtering", utils.CompactJson(args.Filtering))
	}

	for key, value := range args.Other {
		encoded, ok := encodeParamValue(value)
		if !ok {
			continue
		}
		params.Set(key, encoded)
	}

	return &BuildResult{
		ActID:     args.ActID,
		Params:    params,
		Increment: increment,
		Debug:     debug,
	}, nil
}

// enhanceFields appends conversions whenever actions are requested
// without it, so the formatter can always prefer conversion counts
// over raw action counts in summaries.
func enhanceFields(fields []string) ([]string, DebugTrace) {
	debug := DebugTrace{
		OriginalFields:      fields,
		IncludesActions:     containsField(fields, "actions"),
		IncludesConversions: containsField(fields, "conversions"),
	}

	out := make([]string, len(fields), len(fields)+1)
	copy(out, fields)

	if debug.IncludesActions && !debug.IncludesConversions {
		out = append(out, "conversions")
		debug.AddedConversions = true
	}

	return out, debug
}

// ResolveTimeIncrement collapses the legacy period parameter and the
// loosely typed time_increment into one Graph API value. Only null and
// an absent key default to monthly buckets; an explicit empty string or
// zero stays empty and the parameter is dropped from the request.
func ResolveTimeIncrement(period string, increment any) ResolvedTimeIncrement {
	// earlier clients sent period=month instead of time_increment
	if period == "month" && isEmptyIncrement(increment) {
		return ResolvedTimeIncrement{Value: "monthly", Monthly: true}
	}

	switch v := increment.(type) {
	case nil:
		return ResolvedTimeIncrement{Value: "monthly", Monthly: true}
	case string:
		if v == "monthly" {
			return ResolvedTimeIncrement{Value: "monthly", Monthly: true}
		}
		return ResolvedTimeIncrement{Value: v}
	case float64:
		if v == 0 {
			return ResolvedTimeIncrement{}
		}
		return ResolvedTimeIncrement{Value: strconv.Itoa(int(v))}
	case int:
		if v == 0 {
			return ResolvedTimeIncrement{}
		}
		return ResolvedTimeIncrement{Value: strconv.Itoa(v)}
	default:
		return ResolvedTimeIncrement{Value: "monthly", Monthly: true}
	}
}

func isEmptyIncrement(increment any) bool {
	switch v := increment.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case float64:
		return v == 0
	case int:
		return v == 0
	}
	return false
}

// encodeParamValue renders a passthrough argument as a query string
// value. Nils are dropped, string arrays join with commas and anything
// structured is JSON-encoded.
func encodeParamValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return utils.FormatDecimal(v), true
	case int:
		return strconv.Itoa(v), true
	case []string:
		return strings.Join(v, ","), true
	case []any:
		parts := make([]string, 0, len(v))
		allStrings := true
		for _, item := range v {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
				continue
			}
			allStrings = false
			break
		}
		if allStrings {
			return strings.Join(parts, ","), true
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return "", false
		}
		return string(raw), true
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return "", false
		}
		return string(raw), true
	}
}

func containsField(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}
