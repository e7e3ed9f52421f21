package chart

import "github.com/Evgya/anime-analysis/pkg/dataset"

// DefaultLimit is the number of categories kept before collapsing the rest
// into the Other bucket.
const DefaultLimit = 10

// CategoryBar builds a vertical bar chart of the top-limit categories in
// col, with the remainder collapsed into an Other bar. A non-positive limit
// falls back to [DefaultLimit]. Percentages are shares of the displayed
// total, i.e. kept categories plus Other, not the full column count.
func CategoryBar(col dataset.Column, title string, limit int) BarFigure {
	return barFigure(col, title, limit, false)
}

// CategoryBarH builds the horizontal variant of [CategoryBar].
func CategoryBarH(col dataset.Column, title string, limit int) BarFigure {
	return barFigure(col, title, limit, true)
}

func barFigure(col dataset.Column, title string, limit int, horizontal bool) BarFigure {
	if limit <= 0 {
		limit = DefaultLimit
	}
	counts := col.Counts().TopK(limit)
	total := counts.Total()

	fills := Blues(len(counts))
	bars := make([]Bar, len(counts))
	for i, c := range counts {
		bars[i] = Bar{
			Label: c.Value,
			Value: c.N,
			Pct:   float64(c.N) / float64(total) * 100,
			Fill:  fills[i],
		}
	}
	return BarFigure{Title: title, Bars: bars, Horizontal: horizontal}
}
