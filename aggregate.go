package groupby

import "fmt"

// FilterFunc reports whether an input element should be kept. It runs before
// elements are checked to be records, so it may receive anything.
type FilterFunc func(v any) bool

// KeepAll is the default filter.
func KeepAll(any) bool { return true }

// Aggregate groups the records of input by the groupings fields and aggregates
// the aggregatedFields within each group, after dropping the elements filter
// rejects. A nil filter keeps everything.
//
// aggregatedFields is nil, a []string (each field summed with
// DefaultAggregation), an *Aggregations, or a map[string]AggregationFunc
// (applied in sorted field order).
//
// The output holds one record per distinct combination of grouping values, in
// the order those combinations were first seen. Each group record carries the
// grouping fields and the aggregated fields of its first record; the following
// records of the group fold their values in through the aggregation functions.
func Aggregate(input any, groupings []string, aggregatedFields any, filter FilterFunc) ([]Record, error) {
	elements, ok := asSequence(input)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidInput, input)
	}
	spec, err := resolveAggregations(aggregatedFields)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		filter = KeepAll
	}

	kept := make([]any, 0, len(elements))
	for _, e := range elements {
		if filter(e) {
			kept = append(kept, e)
		}
	}

	groups := make([]Record, 0)
	for i, e := range kept {
		record, ok := asRecord(e)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %T", ErrInvalidInput, i, e)
		}

		group := findGroup(groups, groupings, record)
		if group == nil {
			groups = append(groups, seedGroup(groupings, spec, record))
			continue
		}
		for _, field := range spec.fields {
			next, err := spec.funcs[field](group[field], record.Lookup(field))
			if err != nil {
				return nil, err
			}
			group[field] = next
		}
	}
	return groups, nil
}

// findGroup returns the first group whose grouping values all equal the record's.
func findGroup(groups []Record, groupings []string, record Record) Record {
	for _, g := range groups {
		match := true
		for _, field := range groupings {
			if !sameValue(g.Lookup(field), record.Lookup(field)) {
				match = false
				break
			}
		}
		if match {
			return g
		}
	}
	return nil
}

// seedGroup copies the grouping fields, then the aggregated fields verbatim.
func seedGroup(groupings []string, spec *Aggregations, record Record) Record {
	g := make(Record, len(groupings)+len(spec.fields))
	for _, field := range groupings {
		g[field] = record.Lookup(field)
	}
	for _, field := range spec.fields {
		g[field] = record.Lookup(field)
	}
	return g
}
