package tooling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insightsSchema(t *testing.T) ToolSchema {
	t.Helper()
	schema, ok := SchemaFor("facebook_get_adaccount_insights")
	require.True(t, ok)
	return schema
}

func TestValidate_RequiredFields(t *testing.T) {
	schema := insightsSchema(t)

	tests := []struct {
		name  string
		args  map[string]any
		field string
	}{
		{
			name:  "missing act_id",
			args:  map[string]any{"fields": []any{"spend"}},
			field: "act_id",
		},
		{
			name:  "missing fields",
			args:  map[string]any{"act_id": "act_123"},
			field: "fields",
		},
		{
			name:  "empty act_id",
			args:  map[string]any{"act_id": "", "fields": []any{"spend"}},
			field: "act_id",
		},
		{
			name:  "null fields",
			args:  map[string]any{"act_id": "act_123", "fields": nil},
			field: "fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(schema, tt.args)
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestValidate_AccountIDPattern(t *testing.T) {
	schema := insightsSchema(t)

	_, err := Validate(schema, map[string]any{
		"act_id": "123456",
		"fields": []any{"spend"},
	})
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "act_id", validationErr.Field)

	_, err = Validate(schema, map[string]any{
		"act_id": "act_123456",
		"fields": []any{"spend"},
	})
	assert.NoError(t, err)
}

func TestValidate_EmptyFieldsRejected(t *testing.T) {
	schema := insightsSchema(t)

	_, err := Validate(schema, map[string]any{
		"act_id": "act_123",
		"fields": []any{},
	})
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "fields", validationErr.Field)
}

func TestValidate_LevelEnumAndDefault(t *testing.T) {
	schema := insightsSchema(t)

	out, err := Validate(schema, map[string]any{
		"act_id": "act_123",
		"fields": []any{"spend"},
	})
	require.NoError(t, err)
	assert.Equal(t, "account", out["level"])

	out, err = Validate(schema, map[string]any{
		"act_id": "act_123",
		"fields": []any{"spend"},
		"level":  "campaign",
	})
	require.NoError(t, err)
	assert.Equal(t, "campaign", out["level"])

	_, err = Validate(schema, map[string]any{
		"act_id": "act_123",
		"fields": []any{"spend"},
		"level":  "keyword",
	})
	require.Error(t, err)
}

func TestValidate_DatePresetHasNoAppliedDefault(t *testing.T) {
	schema := insightsSchema(t)

	out, err := Validate(schema, map[string]any{
		"act_id": "act_123",
		"fields": []any{"spend"},
	})
	require.NoError(t, err)

	_, present := out["date_preset"]
	assert.False(t, present, "date_preset is advertised with a default but must stay absent")
}

func TestValidate_TimeIncrementUnion(t *testing.T) {
	schema := insightsSchema(t)

	for name, value := range map[string]any{
		"string": "monthly",
		"number": float64(7),
		"null":   nil,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Validate(schema, map[string]any{
				"act_id":         "act_123",
				"fields":         []any{"spend"},
				"time_increment": value,
			})
			assert.NoError(t, err)
		})
	}

	_, err := Validate(schema, map[string]any{
		"act_id":         "act_123",
		"fields":         []any{"spend"},
		"time_increment": []any{"monthly"},
	})
	assert.Error(t, err)
}

func TestValidate_UnknownKeysPassThrough(t *testing.T) {
	schema := insightsSchema(t)

	out, err := Validate(schema, map[string]any{
		"act_id": "act_123",
		"fields": []any{"spend"},
		"use_unified_attribution_setting": true,
		"sort":                            []any{"spend_descending"},
	})
	require.NoError(t, err)

	assert.Equal(t, true, out["use_unified_attribution_setting"])
	assert.Equal(t, []any{"spend_descending"}, out["sort"])
}

func TestValidate_LimitMaximum(t *testing.T) {
	schema, ok := SchemaFor("facebook_get_ad_creatives")
	require.True(t, ok)

	_, err := Validate(schema, map[string]any{
		"act_id": "act_123",
		"limit":  float64(250),
	})
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "limit", validationErr.Field)

	_, err = Validate(schema, map[string]any{
		"act_id": "act_123",
		"limit":  float64(100),
	})
	assert.NoError(t, err)
}

func TestValidate_InputNotMutated(t *testing.T) {
	schema := insightsSchema(t)

	args := map[string]any{
		"act_id": "act_123",
		"fields": []any{"spend"},
	}

	out, err := Validate(schema, args)
	require.NoError(t, err)

	assert.NotContains(t, args, "level")
	assert.Contains(t, out, "level")
}
