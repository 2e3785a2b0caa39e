package groupby

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var builtinAggregations = map[string]AggregationFunc{
	"sum":         DefaultAggregation,
	"decimal_sum": DecimalSum,
	"max":         Max,
	"min":         Min,
	"first":       First,
	"last":        Last,
	"concat":      Concat,
}

// AggregationByName returns the builtin aggregator called name.
func AggregationByName(name string) (AggregationFunc, error) {
	fn, ok := builtinAggregations[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownAggregation, name)
	}
	return fn, nil
}

// AggregationNames lists the builtin aggregators.
func AggregationNames() []string {
	names := make([]string, 0, len(builtinAggregations))
	for name := range builtinAggregations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultAggregation parses both operands with ParseLeadingInt and adds them.
// If either does not parse the result is NaN, and NaN stays NaN through every
// later addition.
func DefaultAggregation(acc, incoming any) (any, error) {
	a, _ := ParseLeadingInt(acc)
	b, _ := ParseLeadingInt(incoming)
	return a + b, nil
}

// DecimalSum adds numbers and numeric strings exactly and returns the sum in
// decimal text form. A non-numeric operand makes the result NaN.
func DecimalSum(acc, incoming any) (any, error) {
	a, ok := toDecimal(acc)
	if !ok {
		return math.NaN(), nil
	}
	b, ok := toDecimal(incoming)
	if !ok {
		return math.NaN(), nil
	}
	return a.Add(b).String(), nil
}

// Max keeps the larger numeric operand. A non-numeric operand makes the result NaN.
func Max(acc, incoming any) (any, error) {
	a, b, ok := numericOperands(acc, incoming)
	if !ok {
		return math.NaN(), nil
	}
	return math.Max(a, b), nil
}

// Min keeps the smaller numeric operand. A non-numeric operand makes the result NaN.
func Min(acc, incoming any) (any, error) {
	a, b, ok := numericOperands(acc, incoming)
	if !ok {
		return math.NaN(), nil
	}
	return math.Min(a, b), nil
}

// First keeps the value of the group's first record.
func First(acc, _ any) (any, error) {
	return acc, nil
}

// Last keeps the value of the group's latest record.
func Last(_, incoming any) (any, error) {
	return incoming, nil
}

// Concat joins the textual values of the group with commas, skipping missing ones.
func Concat(acc, incoming any) (any, error) {
	switch {
	case incoming == Missing:
		return acc, nil
	case acc == Missing:
		return textOf(incoming), nil
	}
	return textOf(acc) + "," + textOf(incoming), nil
}

func numericOperands(acc, incoming any) (float64, float64, bool) {
	a, ok := toFloat(acc)
	if !ok {
		return 0, 0, false
	}
	b, ok := toFloat(incoming)
	if !ok {
		return 0, 0, false
	}
	return a, b, true
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		return d, err == nil
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		return d, err == nil
	}
	f, ok := asNumber(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(f), true
}
