package chart

import "github.com/Evgya/anime-analysis/pkg/dataset"

// Donut slice labels, in fixed order.
const (
	LabelMissing = "Missing"
	LabelPresent = "Present"
)

// MissingValueDonut builds a two-slice ring chart of missing vs present
// cells in col. The missing slice comes first and is drawn exploded for
// emphasis. The figure title is the column name.
func MissingValueDonut(col dataset.Column) DonutFigure {
	missingCount, present := col.Missing()
	total := missingCount + present

	pct := func(n int) float64 {
		if total == 0 {
			return 0
		}
		return float64(n) / float64(total) * 100
	}

	return DonutFigure{
		Title: col.Name,
		Slices: []Slice{
			{Label: LabelMissing, Value: missingCount, Pct: pct(missingCount), Fill: fillMissing, Exploded: true},
			{Label: LabelPresent, Value: present, Pct: pct(present), Fill: fillPresent},
		},
	}
}
