package dataset

import "sort"

// OtherBucket is the synthetic category holding the summed counts of every
// category beyond the top-K cut.
const OtherBucket = "Other"

// Count is one entry of a category frequency table.
type Count struct {
	Value string
	N     int
}

// Counts is a category frequency table, ordered descending by count.
type Counts []Count

// Counts tallies the non-missing values of the column and returns them
// sorted by descending count. Ties keep first-appearance order, so the
// result is deterministic for a given column.
func (c Column) Counts() Counts {
	tally := make(map[string]int)
	var order []string
	for _, v := range c.Values {
		if missing(v) {
			continue
		}
		if _, seen := tally[v]; !seen {
			order = append(order, v)
		}
		tally[v]++
	}

	out := make(Counts, len(order))
	for i, v := range order {
		out[i] = Count{Value: v, N: tally[v]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].N > out[j].N
	})
	return out
}

// TopK keeps the limit highest-frequency entries. When more categories exist
// than limit, the remainder is summed into a trailing [OtherBucket] entry.
// A non-positive limit returns the table unchanged.
func (cs Counts) TopK(limit int) Counts {
	if limit <= 0 || len(cs) <= limit {
		return cs
	}
	top := append(Counts(nil), cs[:limit]...)

	other := 0
	for _, c := range cs[limit:] {
		other += c.N
	}
	return append(top, Count{Value: OtherBucket, N: other})
}

// Total returns the sum of all counts in the table.
func (cs Counts) Total() int {
	total := 0
	for _, c := range cs {
		total += c.N
	}
	return total
}
