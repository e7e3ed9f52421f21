package chart

import "github.com/Evgya/anime-analysis/pkg/dataset"

// Word cloud canvas dimensions.
const (
	WordCloudWidth  = 800
	WordCloudHeight = 400
)

// WordCloud builds a frequency-weighted word cloud from the distinct values
// of col. Words keep the descending frequency order of the column's counts.
func WordCloud(col dataset.Column, title string) WordCloudFigure {
	counts := col.Counts()
	words := make([]Word, len(counts))
	for i, c := range counts {
		words[i] = Word{Text: c.Value, Weight: c.N}
	}
	return WordCloudFigure{
		Title:  title,
		Width:  WordCloudWidth,
		Height: WordCloudHeight,
		Words:  words,
	}
}
