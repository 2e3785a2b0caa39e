package groupby

import (
	"fmt"
	"sort"
)

// AggregationFunc combines the value accumulated so far in a group with the
// value of the record joining it. Errors are returned to the caller of
// Aggregate unchanged.
type AggregationFunc func(acc, incoming any) (any, error)

// Aggregations binds aggregated fields to their functions, in insertion order.
type Aggregations struct {
	fields []string
	funcs  map[string]AggregationFunc
}

func NewAggregations() *Aggregations {
	return &Aggregations{funcs: make(map[string]AggregationFunc)}
}

// SumFields binds each field to DefaultAggregation.
func SumFields(fields ...string) *Aggregations {
	a := NewAggregations()
	for _, f := range fields {
		a.Add(f, DefaultAggregation)
	}
	return a
}

// Add binds fn to field. Adding a field twice replaces its function and keeps
// its original position.
func (a *Aggregations) Add(field string, fn AggregationFunc) *Aggregations {
	if a.funcs == nil {
		a.funcs = make(map[string]AggregationFunc)
	}
	if _, exists := a.funcs[field]; !exists {
		a.fields = append(a.fields, field)
	}
	a.funcs[field] = fn
	return a
}

// Fields returns the aggregated field names in order.
func (a *Aggregations) Fields() []string {
	return append([]string(nil), a.fields...)
}

func (a *Aggregations) Len() int {
	return len(a.fields)
}

func (a *Aggregations) String() string {
	return fmt.Sprintf("Aggregations%v", a.fields)
}

// resolveAggregations normalizes every accepted form of aggregatedFields.
// The form is checked once for the whole argument; forms cannot be mixed.
func resolveAggregations(aggregatedFields any) (*Aggregations, error) {
	switch spec := aggregatedFields.(type) {
	case nil:
		return NewAggregations(), nil
	case []string:
		return SumFields(spec...), nil
	case *Aggregations:
		if spec == nil {
			return nil, ErrInvalidAggregationSpec
		}
		return spec, nil
	case Aggregations:
		return &spec, nil
	case map[string]AggregationFunc:
		if spec == nil {
			return nil, ErrInvalidAggregationSpec
		}
		names := make([]string, 0, len(spec))
		for name := range spec {
			names = append(names, name)
		}
		sort.Strings(names)
		a := NewAggregations()
		for _, name := range names {
			a.Add(name, spec[name])
		}
		return a, nil
	}
	return nil, fmt.Errorf("%w: got %T", ErrInvalidAggregationSpec, aggregatedFields)
}
