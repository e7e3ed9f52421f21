package chart

import "github.com/Evgya/anime-analysis/pkg/dataset"

// CorrelationHeatmap builds an annotated Pearson correlation heatmap over
// all numeric columns of d. A dataset without numeric columns yields a
// figure with no cells.
func CorrelationHeatmap(d *dataset.Dataset, title string) HeatmapFigure {
	m := dataset.CorrelationMatrix(d)
	return HeatmapFigure{
		Title:  title,
		Labels: m.Labels,
		Values: m.Values,
	}
}
