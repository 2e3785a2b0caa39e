package groupby

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{"42", 42, true},
		{"  -17abc", -17, true},
		{"\t\n 9", 9, true},
		{"+5", 5, true},
		{"3.9", 3, true},
		{"1e3", 1, true},
		{"0x1F", 31, true},
		{"-0x10", -16, true},
		{"007", 7, true},
		{"0x", 0, false},
		{"- 5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{1.9, 1, true},
		{-2.5, -2, true},
		{1e21, 1, true},
		{1e-7, 1, true},
		{7, 7, true},
		{int64(-3), -3, true},
		{json.Number("8"), 8, true},
		{[]any{"12", "3"}, 12, true},
		{true, 0, false},
		{nil, 0, false},
		{Missing, 0, false},
		{math.NaN(), 0, false},
		{Record{"a": 1}, 0, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%T(%v)", tt.in, tt.in), func(t *testing.T) {
			got, ok := ParseLeadingInt(tt.in)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.True(t, math.IsNaN(got))
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "100", formatNumber(100))
	assert.Equal(t, "123.5", formatNumber(123.5))
	assert.Equal(t, "0", formatNumber(0))
	assert.Equal(t, "1e+21", formatNumber(1e21))
	assert.Equal(t, "1e-7", formatNumber(1e-7))
	assert.Equal(t, "-1.5e-7", formatNumber(-1.5e-7))
	assert.Equal(t, "NaN", formatNumber(math.NaN()))
	assert.Equal(t, "-Infinity", formatNumber(math.Inf(-1)))
}
