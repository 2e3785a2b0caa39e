package groupby

import "fmt"

// ListBoolExpr holds nested expressions evaluated with OR logic.
type ListBoolExpr struct {
	Type       string              `json:"type"`
	Conditions []BooleanExpression `json:"conditions"`
}

func (c ListBoolExpr) String() string {
	return fmt.Sprintf("ListBoolExpr{Type: %s, Conditions: %v}", c.Type, c.Conditions)
}

// EvaluateAnyCondition is true when at least one nested expression holds.
// Expressions that fail to evaluate count as false.
func EvaluateAnyCondition(condition ListBoolExpr, record Record) (bool, error) {
	var firstErr error
	for _, expr := range condition.Conditions {
		ok, err := expr.Evaluate(record)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if ok {
			return true, nil
		}
	}
	return false, firstErr
}
