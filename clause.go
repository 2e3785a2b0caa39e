package groupby

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/oliveagle/jsonpath"
)

// Clause represents a single comparison inside a simple condition.
// Parameters are literals, or objects {"jsonPath": "$.field"} resolved
// against the record being filtered.
type Clause struct {
	Operator   string        `json:"operator"`
	Parameters []interface{} `json:"parameters"`
}

func (c Clause) String() string {
	return fmt.Sprintf("Clause{Operator: %s, Parameters: %v}", c.Operator, c.Parameters)
}

// arity returns how many parameters the operator reads, or 0 if unsupported.
func (c Clause) arity() int {
	switch c.Operator {
	case "exists", "not_exists":
		return 1
	case "equals", "not_equals", "same",
		"greater_than", "greater_than_eq", "less_than", "less_than_eq",
		"in", "not_in":
		return 2
	}
	return 0
}

// validate checks the operator, the parameter count and every jsonPath.
func (c Clause) validate() error {
	n := c.arity()
	if n == 0 {
		return fmt.Errorf("%w: unsupported operator %q", ErrInvalidFilter, c.Operator)
	}
	if len(c.Parameters) < n {
		return fmt.Errorf("%w: expected at least %d parameters for operator %s", ErrInvalidFilter, n, c.Operator)
	}
	for _, p := range c.Parameters {
		jp, ok := jsonPathOf(p)
		if !ok {
			continue
		}
		if _, err := jsonpath.Compile(jp); err != nil {
			return fmt.Errorf("%w: jsonPath %q: %v", ErrInvalidFilter, jp, err)
		}
	}
	return nil
}

// Evaluate applies the clause's operator to its evaluated parameters.
func (c Clause) Evaluate(record Record) (bool, error) {
	n := c.arity()
	if n == 0 {
		return false, fmt.Errorf("unsupported operator: %s", c.Operator)
	}
	if len(c.Parameters) < n {
		return false, fmt.Errorf("expected at least %d parameters for operator %s", n, c.Operator)
	}

	left := evaluateParameter(c.Parameters[0], record)
	switch c.Operator {
	case "exists":
		return left != Missing, nil
	case "not_exists":
		return left == Missing, nil
	}
	right := evaluateParameter(c.Parameters[1], record)
	return c.execute(left, right)
}

// execute applies the specified operator to the left and right values.
func (c Clause) execute(left, right interface{}) (bool, error) {
	switch c.Operator {
	case "equals", "same":
		return isEqual(left, right), nil
	case "not_equals":
		return !isEqual(left, right), nil
	case "greater_than", "greater_than_eq", "less_than", "less_than_eq":
		leftFloat, ok1 := toFloat(left)
		rightFloat, ok2 := toFloat(right)
		if !ok1 || !ok2 {
			return false, fmt.Errorf("cannot convert values to float for operator %s", c.Operator)
		}
		switch c.Operator {
		case "greater_than":
			return leftFloat > rightFloat, nil
		case "greater_than_eq":
			return leftFloat >= rightFloat, nil
		case "less_than":
			return leftFloat < rightFloat, nil
		default:
			return leftFloat <= rightFloat, nil
		}
	case "in", "not_in":
		slice, ok := right.([]interface{})
		if !ok {
			return false, fmt.Errorf("operator '%s' expects an array for the right-hand parameter", c.Operator)
		}
		found := false
		for _, item := range slice {
			if isEqual(left, item) {
				found = true
				break
			}
		}
		return found == (c.Operator == "in"), nil
	}
	return false, fmt.Errorf("unsupported operator: %s", c.Operator)
}

// evaluateParameter resolves a jsonPath parameter against the record, or
// returns the literal. Paths that match nothing resolve to Missing.
func evaluateParameter(param interface{}, record Record) interface{} {
	jp, ok := jsonPathOf(param)
	if !ok {
		return param
	}
	res, err := jsonpath.JsonPathLookup(map[string]interface{}(record), jp)
	if err != nil {
		return Missing
	}
	return res
}

func jsonPathOf(param interface{}) (string, bool) {
	m, ok := param.(map[string]interface{})
	if !ok {
		return "", false
	}
	jp, ok := m["jsonPath"].(string)
	return jp, ok
}

// isEqual compares two values by their string form. Missing only equals Missing.
func isEqual(a, b interface{}) bool {
	if a == Missing || b == Missing {
		return a == b
	}
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}

// toFloat converts numbers and numeric strings to a float64.
func toFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return asNumber(val)
}
