// Package record defines the generic record model returned by the inventory,
// compute and monitoring collaborators, plus the per-kind display profiles
// used to project records into output columns.
package record

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Record is a loosely-typed row returned by a collaborator API. Values are
// strings, numbers or nil; callers only touch the fields they ask for.
type Record map[string]any

// Has reports whether the field is present with a non-nil value.
func (r Record) Has(field string) bool {
	v, ok := r[field]
	return ok && v != nil
}

// String renders a single field as display text. Absent or nil fields render
// as the empty string, never an error.
func (r Record) String(field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}

	switch t := v.(type) {
	case string:
		return t
	case float64:
		// JSON numbers decode as float64; render integral values without
		// a fractional part. Values outside int64 range must not take the
		// FormatInt path, the conversion overflows.
		if t == math.Trunc(t) && math.Abs(t) < 1<<63 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// PresentFields returns the sorted names of all non-nil fields.
func (r Record) PresentFields() []string {
	fields := make([]string, 0, len(r))
	for k, v := range r {
		if v != nil {
			fields = append(fields, k)
		}
	}
	sort.Strings(fields)
	return fields
}
