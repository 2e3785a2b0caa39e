package groupby

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordMarshalJSON(t *testing.T) {
	r := Record{"a": Missing, "b": math.NaN(), "c": "x", "d": 3.0, "e": nil}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"b":null,"c":"x","d":3,"e":null}`, string(data))
}

func TestRecordLookup(t *testing.T) {
	r := Record{"a": nil}
	assert.Nil(t, r.Lookup("a"))
	assert.Equal(t, Missing, r.Lookup("b"))
}

func TestSameValue(t *testing.T) {
	slice := []any{1}
	m := map[string]any{}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"equal strings", "a", "a", true},
		{"different strings", "a", "b", false},
		{"int and float", 1, 1.0, true},
		{"number and numeric string", 1, "1", false},
		{"nil and nil", nil, nil, true},
		{"missing and missing", Missing, Missing, true},
		{"missing and nil", Missing, nil, false},
		{"bools", true, true, true},
		{"same map", m, m, true},
		{"equal maps", map[string]any{}, map[string]any{}, false},
		{"same slice", slice, slice, true},
		{"NaN", math.NaN(), math.NaN(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sameValue(tt.a, tt.b))
		})
	}
}
