package tooling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsightsParams_BasicTimeRange(t *testing.T) {
	args := map[string]any{
		"act_id": "act_51760926",
		"fields": []any{"spend"},
		"time_range": map[string]any{
			"since": "2025-05-01",
			"until": "2025-09-30",
		},
		"time_increment": nil,
	}

	built, err := BuildInsightsParams(args)
	require.NoError(t, err)

	assert.Equal(t, "act_51760926", built.ActID)
	assert.Equal(t, "spend", built.Params.Get("fields"))
	assert.Equal(t, "account", built.Params.Get("level"))
	assert.Equal(t, "monthly", built.Params.Get("time_increment"))
	assert.Equal(t, `{"since":"2025-05-01","until":"2025-09-30"}`, built.Params.Get("time_range"))
	assert.True(t, built.Increment.Monthly)

	assert.False(t, built.Params.Has("date_preset"))
	assert.False(t, built.Params.Has("breakdowns"))
	assert.False(t, built.Params.Has("filtering"))
}

func TestBuildInsightsParams_TimeIncrementDefaulting(t *testing.T) {
	base := func() map[string]any {
		return map[string]any{
			"act_id": "act_123",
			"fields": []any{"spend"},
		}
	}

	absent := base()

	explicitNull := base()
	explicitNull["time_increment"] = nil

	legacyPeriod := base()
	legacyPeriod["period"] = "month"

	for name, args := range map[string]map[string]any{
		"absent":        absent,
		"explicit null": explicitNull,
		"legacy period": legacyPeriod,
	} {
		t.Run(name, func(t *testing.T) {
			built, err := BuildInsightsParams(args)
			require.NoError(t, err)

			assert.Equal(t, "monthly", built.Params.Get("time_increment"))
			assert.True(t, built.Increment.Monthly)
		})
	}

	// all three must produce an identical parameter map
	builtAbsent, err := BuildInsightsParams(absent)
	require.NoError(t, err)
	builtNull, err := BuildInsightsParams(explicitNull)
	require.NoError(t, err)
	assert.Equal(t, builtAbsent.Params, builtNull.Params)
}

func TestBuildInsightsParams_ExplicitTimeIncrement(t *testing.T) {
	tests := []struct {
		name      string
		increment any
		expected  string
		monthly   bool
	}{
		{name: "monthly string", increment: "monthly", expected: "monthly", monthly: true},
		{name: "all_days", increment: "all_days", expected: "all_days"},
		{name: "daily number", increment: float64(1), expected: "1"},
		{name: "weekly number", increment: 7, expected: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			built, err := BuildInsightsParams(map[string]any{
				"act_id":         "act_123",
				"fields":         []any{"spend"},
				"time_increment": tt.increment,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.expected, built.Params.Get("time_increment"))
			assert.Equal(t, tt.monthly, built.Increment.Monthly)
		})
	}
}

func TestBuildInsightsParams_EmptyTimeIncrementOmitted(t *testing.T) {
	for name, increment := range map[string]any{
		"empty string": "",
		"zero":         float64(0),
	} {
		t.Run(name, func(t *testing.T) {
			built, err := BuildInsightsParams(map[string]any{
				"act_id":         "act_123",
				"fields":         []any{"spend"},
				"time_increment": increment,
			})
			require.NoError(t, err)

			assert.False(t, built.Params.Has("time_increment"),
				"an explicitly empty time_increment must not reach the request")
			assert.False(t, built.Increment.Monthly)
		})
	}

	// the legacy period parameter still promotes those inputs to monthly
	built, err := BuildInsightsParams(map[string]any{
		"act_id":         "act_123",
		"fields":         []any{"spend"},
		"time_increment": "",
		"period":         "month",
	})
	require.NoError(t, err)
	assert.Equal(t, "monthly", built.Params.Get("time_increment"))
	assert.True(t, built.Increment.Monthly)
}

func TestBuildInsightsParams_ConversionsAutoAppended(t *testing.T) {
	built, err := BuildInsightsParams(map[string]any{
		"act_id": "act_123",
		"fields": []any{"spend", "actions"},
	})
	require.NoError(t, err)

	assert.Equal(t, "spend,actions,conversions", built.Params.Get("fields"))
	assert.Equal(t, []string{"spend", "actions"}, built.Debug.OriginalFields)
	assert.True(t, built.Debug.IncludesActions)
	assert.False(t, built.Debug.IncludesConversions)
	assert.True(t, built.Debug.AddedConversions)
}

func TestBuildInsightsParams_ConversionsNotDuplicated(t *testing.T) {
	built, err := BuildInsightsParams(map[string]any{
		"act_id": "act_123",
		"fields": []any{"actions", "conversions"},
	})
	require.NoError(t, err)

	assert.Equal(t, "actions,conversions", built.Params.Get("fields"))
	assert.False(t, built.Debug.AddedConversions)
	assert.True(t, built.Debug.IncludesConversions)
}

func TestBuildInsightsParams_ArraysAndPassthrough(t *testing.T) {
	built, err := BuildInsightsParams(map[string]any{
		"act_id":      "act_123",
		"fields":      []any{"impressions", "clicks"},
		"level":       "campaign",
		"date_preset": "last_7d",
		"breakdowns":  []any{"age", "gender"},
		"filtering": []any{
			map[string]any{"field": "spend", "operator": "GREATER_THAN", "value": "0"},
		},
		"sort":        []any{"spend_descending"},
		"limit":       float64(50),
		"null_param":  nil,
		"action_type": "purchase",
	})
	require.NoError(t, err)

	assert.Equal(t, "campaign", built.Params.Get("level"))
	assert.Equal(t, "last_7d", built.Params.Get("date_preset"))
	assert.Equal(t, "age,gender", built.Params.Get("breakdowns"))
	assert.Equal(t, `[{"field":"spend","operator":"GREATER_THAN","value":"0"}]`, built.Params.Get("filtering"))
	assert.Equal(t, "spend_descending", built.Params.Get("sort"))
	assert.Equal(t, "50", built.Params.Get("limit"))
	assert.Equal(t, "purchase", built.Params.Get("action_type"))
	assert.False(t, built.Params.Has("null_param"))

	// every value is a flat string, never a JSON-array leak of Go types
	for key, values := range built.Params {
		assert.Len(t, values, 1, "parameter %s should have exactly one value", key)
	}
}

func TestResolveTimeIncrement(t *testing.T) {
	tests := []struct {
		name      string
		period    string
		increment any
		expected  ResolvedTimeIncrement
	}{
		{
			name:      "nil resolves monthly",
			increment: nil,
			expected:  ResolvedTimeIncrement{Value: "monthly", Monthly: true},
		},
		{
			name:      "legacy period month",
			period:    "month",
			increment: nil,
			expected:  ResolvedTimeIncrement{Value: "monthly", Monthly: true},
		},
		{
			name:      "empty string stays empty",
			increment: "",
			expected:  ResolvedTimeIncrement{},
		},
		{
			name:      "zero stays empty",
			increment: float64(0),
			expected:  ResolvedTimeIncrement{},
		},
		{
			name:      "legacy period promotes empty string",
			period:    "month",
			increment: "",
			expected:  ResolvedTimeIncrement{Value: "monthly", Monthly: true},
		},
		{
			name:      "legacy period promotes zero",
			period:    "month",
			increment: float64(0),
			expected:  ResolvedTimeIncrement{Value: "monthly", Monthly: true},
		},
		{
			name:      "explicit monthly",
			increment: "monthly",
			expected:  ResolvedTimeIncrement{Value: "monthly", Monthly: true},
		},
		{
			name:      "all_days passes through",
			increment: "all_days",
			expected:  ResolvedTimeIncrement{Value: "all_days"},
		},
		{
			name:      "number formats as integer",
			increment: float64(30),
			expected:  ResolvedTimeIncrement{Value: "30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveTimeIncrement(tt.period, tt.increment))
		})
	}
}

func TestDecodeInsightsArgs_RemainderCollected(t *testing.T) {
	args, err := DecodeInsightsArgs(map[string]any{
		"act_id":       "act_9",
		"fields":       []any{"spend"},
		"period":       "month",
		"custom_param": "value",
		"another":      float64(3),
	})
	require.NoError(t, err)

	assert.Equal(t, "act_9", args.ActID)
	assert.Equal(t, []string{"spend"}, args.Fields)
	assert.Equal(t, "month", args.Period)
	assert.Equal(t, map[string]any{"custom_param": "value", "another": float64(3)}, args.Other)
}
