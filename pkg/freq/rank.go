package freq

import (
	"cmp"
	"slices"
)

// DefaultLimit is the number of entries kept for the chart.
const DefaultLimit = 200

// Rank returns a new table with the min(limit, t.Len()) highest entries of t,
// ordered by descending value. Entries with equal values keep their relative
// order from t. A limit of zero or less yields an empty table. t is not modified.
func Rank(t *Table, limit int) *Table {
	if limit <= 0 || t.Len() == 0 {
		return &Table{}
	}

	entries := t.Entries()
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Value, a.Value)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return New(entries...)
}
