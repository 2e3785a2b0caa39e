package groupby

// Filter keeps the records for which every expression holds.
type Filter []BooleanExpression

// Compile validates every clause and returns the filter as a FilterFunc.
// Elements that are not records are kept so that Aggregate rejects them.
// An expression that fails to evaluate rejects the record.
func (f Filter) Compile() (FilterFunc, error) {
	for _, expr := range f {
		if err := expr.validate(); err != nil {
			return nil, err
		}
	}
	if len(f) == 0 {
		return KeepAll, nil
	}

	return func(v any) bool {
		record, ok := asRecord(v)
		if !ok {
			return true
		}
		for _, expr := range f {
			ok, err := expr.Evaluate(record)
			if err != nil || !ok {
				return false
			}
		}
		return true
	}, nil
}
