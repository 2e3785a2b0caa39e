package groupby

import (
	"encoding/json"
	"math"
	"reflect"
)

// Record is a single input or output element: a flat JSON object.
type Record map[string]any

type missing struct{}

func (missing) String() string { return "undefined" }

// Missing stands for a field a record does not have. Group records hold it
// for grouping or aggregated fields their seed record lacked, and aggregation
// functions receive it when the incoming record lacks the field.
var Missing any = missing{}

// Lookup returns the value of field, or Missing if the record has none.
func (r Record) Lookup(field string) any {
	v, ok := r[field]
	if !ok {
		return Missing
	}
	return v
}

// MarshalJSON drops Missing fields and encodes non-finite numbers as null,
// the way a JSON encoder in a dynamic runtime prints them.
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r))
	for k, v := range r {
		if v == Missing {
			continue
		}
		if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			out[k] = nil
			continue
		}
		out[k] = v
	}
	return json.Marshal(out)
}

// asSequence returns the elements of input if it is a slice or an array.
func asSequence(input any) ([]any, bool) {
	switch s := input.(type) {
	case []any:
		return s, true
	case []Record:
		out := make([]any, len(s))
		for i, r := range s {
			out[i] = r
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(s))
		for i, r := range s {
			out[i] = r
		}
		return out, true
	case nil:
		return nil, false
	}

	v := reflect.ValueOf(input)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, v.Len())
	for i := range out {
		out[i] = v.Index(i).Interface()
	}
	return out, true
}

// asRecord accepts any non-nil map keyed by strings. Maps other than Record
// and map[string]any are copied.
func asRecord(v any) (Record, bool) {
	switch r := v.(type) {
	case Record:
		return r, r != nil
	case map[string]any:
		return Record(r), r != nil
	case nil:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil, false
	}
	out := make(Record, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// sameValue reports strict equality: numbers compare by value whatever their
// Go type, maps and slices by identity, NaN equals nothing.
func sameValue(a, b any) bool {
	if fa, ok := asNumber(a); ok {
		fb, ok := asNumber(b)
		return ok && fa == fb
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return !va.IsValid() && !vb.IsValid()
	}
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	if !va.Comparable() {
		return false
	}
	return a == b
}

// asNumber converts Go numeric kinds to float64.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
