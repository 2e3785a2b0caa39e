// Package groupby groups and filters sequences of JSON-like records.
//
// Aggregate takes the input records, the fields to group by, the fields to
// aggregate and an optional filter. Records sharing the same grouping values
// collapse into one group record, in the order the groups were first seen:
//
//	out, err := groupby.Aggregate(records, []string{"cat"}, []string{"n"}, nil)
//
// The aggregated fields are either a list of names, summed with
// DefaultAggregation, or an Aggregations value binding each field to its own
// AggregationFunc:
//
//	spec := groupby.NewAggregations().
//		Add("amount", groupby.DefaultAggregation).
//		Add("peak", groupby.Max)
//
// The first record of a group seeds every aggregated field with its own value;
// aggregation functions only run for the records that join an existing group.
//
// Requests can also be described as JSON documents (see ParseAggregateParams),
// with aggregators picked by name and filters written as declarative clauses.
package groupby
