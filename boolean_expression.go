package groupby

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	simpleConditionType = "simple_condition"
	anyConditionType    = "any_condition"
)

// BooleanExpression represents either a SimpleBoolExpr or a ListBoolExpr.
type BooleanExpression struct {
	Simple *SimpleBoolExpr
	Any    *ListBoolExpr
}

func (t BooleanExpression) Evaluate(record Record) (bool, error) {
	if t.Simple != nil {
		return EvaluateSimpleCondition(*t.Simple, record)
	} else if t.Any != nil {
		return EvaluateAnyCondition(*t.Any, record)
	}
	return false, errors.New("unknown condition type")
}

func (t BooleanExpression) validate() error {
	switch {
	case t.Simple != nil:
		for _, clause := range t.Simple.Clauses {
			if err := clause.validate(); err != nil {
				return err
			}
		}
		return nil
	case t.Any != nil:
		for _, expr := range t.Any.Conditions {
			if err := expr.validate(); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: empty boolean expression", ErrInvalidFilter)
}

func (t BooleanExpression) String() string {
	if t.Simple != nil {
		return t.Simple.String()
	} else if t.Any != nil {
		return t.Any.String()
	}
	return "BooleanExpression{}"
}

// UnmarshalJSON decodes the expression variant named by its type field.
func (t *BooleanExpression) UnmarshalJSON(data []byte) error {
	var temp map[string]interface{}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	condType, ok := temp["type"].(string)
	if !ok {
		return errors.New("missing type field in boolean expression")
	}

	switch condType {
	case simpleConditionType:
		var simple SimpleBoolExpr
		if err := json.Unmarshal(data, &simple); err != nil {
			return err
		}
		t.Simple = &simple
	case anyConditionType:
		var list ListBoolExpr
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		t.Any = &list
	default:
		return errors.New("unknown condition type " + condType)
	}

	return nil
}

// MarshalJSON encodes the populated variant, filling in its type.
func (t BooleanExpression) MarshalJSON() ([]byte, error) {
	if t.Simple != nil {
		simple := *t.Simple
		simple.Type = simpleConditionType
		return json.Marshal(simple)
	} else if t.Any != nil {
		list := *t.Any
		list.Type = anyConditionType
		return json.Marshal(list)
	}
	return nil, errors.New("unknown condition type")
}
