package assessment

import (
	"sort"
	"time"
)

// Dated is implemented by every effective-dated rate record.
type Dated interface {
	EffectiveDate() time.Time
	CreatedDate() time.Time
}

// Resolve orders candidate rows newest effective date first, ties broken by
// newest creation time. Rows that tie on both keep their input order.
//
// With a nil asOf every row is returned, so a future-dated row is already
// "current". With a non-nil asOf, rows effective after asOf are dropped.
func Resolve[T Dated](rows []T, asOf *time.Time) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if asOf != nil && r.EffectiveDate().After(*asOf) {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ei, ej := out[i].EffectiveDate(), out[j].EffectiveDate()
		if !ei.Equal(ej) {
			return ei.After(ej)
		}
		return out[i].CreatedDate().After(out[j].CreatedDate())
	})
	return out
}

// Index builds a first-wins lookup over resolved rows so that each key maps
// to its newest applicable record. Keys are compared exactly; renaming a rate
// key orphans any property line still carrying the old text.
func Index[T Dated](resolved []T, keyOf func(T) string) map[string]T {
	idx := make(map[string]T, len(resolved))
	for _, r := range resolved {
		k := keyOf(r)
		if _, seen := idx[k]; seen {
			continue
		}
		idx[k] = r
	}
	return idx
}
