package groupby

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AggregateParams is a JSON request carrying the arguments of Aggregate.
// AggregatedFields is either a list of fields to sum or an object mapping
// each field to the name of a builtin aggregator.
type AggregateParams struct {
	Input            json.RawMessage `json:"input"`
	GroupBy          []string        `json:"groupings,omitempty"`
	AggregatedFields json.RawMessage `json:"aggregatedFields,omitempty"`
	Filter           Filter          `json:"filter,omitempty"`
}

func (a AggregateParams) String() string {
	return fmt.Sprintf("AggregateParams{GroupBy: %v, AggregatedFields: %s, Filter: %v}", a.GroupBy, a.AggregatedFields, a.Filter)
}

// ParseAggregateParams validates the request against its schema, and if
// valid, unmarshals it.
func ParseAggregateParams(requestJSON []byte) (*AggregateParams, error) {
	if err := ValidateRequestJSON(requestJSON); err != nil {
		return nil, err
	}

	var params AggregateParams
	if err := json.Unmarshal(requestJSON, &params); err != nil {
		return nil, fmt.Errorf("%w: error unmarshalling request JSON: %v", ErrInvalidRequest, err)
	}
	return &params, nil
}

// Aggregations decodes AggregatedFields into a form Aggregate accepts.
// Object keys keep their document order.
func (a *AggregateParams) Aggregations() (any, error) {
	raw := bytes.TrimSpace(a.AggregatedFields)
	if len(raw) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	switch tok {
	case json.Delim('['):
		var fields []string
		for dec.More() {
			var v any
			if err := dec.Decode(&v); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
			}
			fields = append(fields, textOf(v))
		}
		if fields == nil {
			fields = []string{}
		}
		return fields, nil
	case json.Delim('{'):
		spec := NewAggregations()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
			}
			field := keyTok.(string)
			var name any
			if err := dec.Decode(&name); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
			}
			s, ok := name.(string)
			if !ok {
				return nil, fmt.Errorf("%w: aggregator of field %q must be a name, got %v", ErrInvalidAggregationSpec, field, name)
			}
			fn, err := AggregationByName(s)
			if err != nil {
				return nil, err
			}
			spec.Add(field, fn)
		}
		return spec, nil
	case nil:
		return nil, fmt.Errorf("%w: got null", ErrInvalidAggregationSpec)
	}
	// Scalars are handed on as they are and rejected by Aggregate.
	return tok, nil
}

// Run compiles the filter and aggregates the input.
func (a *AggregateParams) Run() ([]Record, error) {
	var input any
	if len(a.Input) > 0 {
		if err := json.Unmarshal(a.Input, &input); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
	}
	aggregated, err := a.Aggregations()
	if err != nil {
		return nil, err
	}
	filter, err := a.Filter.Compile()
	if err != nil {
		return nil, err
	}
	return Aggregate(input, a.GroupBy, aggregated, filter)
}
