package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumeric(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
		ok       bool
	}{
		{name: "string metric", input: "123.45", expected: 123.45, ok: true},
		{name: "float", input: 42.5, expected: 42.5, ok: true},
		{name: "int", input: 7, expected: 7, ok: true},
		{name: "garbage string", input: "n/a", ok: false},
		{name: "nil", input: nil, ok: false},
		{name: "map", input: map[string]any{}, ok: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := Numeric(test.input)
			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.expected, got)
		})
	}
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{1234567, "1,234,567"},
		{-12345, "-12,345"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, FormatThousands(test.input))
	}
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "3", FormatDecimal(3))
	assert.Equal(t, "3.5", FormatDecimal(3.5))
	assert.Equal(t, "0.07", FormatDecimal(0.07))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.2345))
	assert.Equal(t, 1.24, RoundWithTwoDecimalPlace(1.235))
	assert.Equal(t, float64(0), RoundWithTwoDecimalPlace(0))
}
