package groupby

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when the input is not a sequence, or when
	// an element kept by the filter is not a record.
	ErrInvalidInput = errors.New("input must be an array of JSON objects")

	// ErrInvalidAggregationSpec is returned when the aggregated fields are
	// neither a list of field names nor a field to function mapping.
	ErrInvalidAggregationSpec = errors.New("aggregatedFields must be either an array of fields to sum up, or a map of pairs fieldName: aggregationFunction")

	// ErrUnknownAggregation is returned when an aggregator name has no builtin.
	ErrUnknownAggregation = fmt.Errorf("%w: unknown aggregation", ErrInvalidAggregationSpec)

	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidFilter  = errors.New("invalid filter")
)
