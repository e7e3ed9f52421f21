// Package chart builds renderable figure descriptions from dataset columns.
//
// Figures are plain values holding everything a renderer needs: slice or bar
// geometry inputs, precomputed percentages, labels, and fill colors. They
// carry no drawing state, so callers decide how to materialize them — see
// the sink subpackage for SVG and PNG output.
//
// All constructors tolerate degenerate input (empty columns, datasets
// without numeric columns) and produce empty figures rather than failing.
package chart

// Kind identifies a figure type for renderers.
type Kind string

const (
	KindDonut     Kind = "donut"
	KindBar       Kind = "bar"
	KindHeatmap   Kind = "heatmap"
	KindWordCloud Kind = "wordcloud"
)

// Figure is a renderable chart description.
type Figure interface {
	Kind() Kind
	// Title returns the figure heading.
	FigureTitle() string
}

// Slice is one ring segment of a donut figure.
type Slice struct {
	Label    string
	Value    int
	Pct      float64 // share of the slice total, 0-100
	Fill     string  // hex fill color
	Exploded bool    // drawn offset from the ring center
}

// DonutFigure is a two-slice ring chart of missing vs present values.
type DonutFigure struct {
	Title  string
	Slices []Slice
}

func (DonutFigure) Kind() Kind            { return KindDonut }
func (f DonutFigure) FigureTitle() string { return f.Title }

// Bar is one bar of a category frequency chart.
type Bar struct {
	Label string
	Value int
	Pct   float64 // share of the displayed total, 0-100
	Fill  string  // hex fill color
}

// BarFigure is a top-K category frequency chart, vertical or horizontal.
type BarFigure struct {
	Title      string
	Bars       []Bar
	Horizontal bool
}

func (BarFigure) Kind() Kind            { return KindBar }
func (f BarFigure) FigureTitle() string { return f.Title }

// MaxValue returns the largest bar value, or 0 for an empty figure.
func (f BarFigure) MaxValue() int {
	maxVal := 0
	for _, b := range f.Bars {
		if b.Value > maxVal {
			maxVal = b.Value
		}
	}
	return maxVal
}

// HeatmapFigure is an annotated correlation matrix.
type HeatmapFigure struct {
	Title  string
	Labels []string
	// Values[i][j] is the correlation of Labels[i] with Labels[j].
	// NaN cells render blank.
	Values [][]float64
}

func (HeatmapFigure) Kind() Kind            { return KindHeatmap }
func (f HeatmapFigure) FigureTitle() string { return f.Title }

// Word is one entry of a word cloud, weighted by frequency.
type Word struct {
	Text   string
	Weight int
}

// WordCloudFigure is a frequency-weighted word cloud on a fixed canvas.
type WordCloudFigure struct {
	Title         string
	Width, Height int
	Words         []Word
}

func (WordCloudFigure) Kind() Kind            { return KindWordCloud }
func (f WordCloudFigure) FigureTitle() string { return f.Title }
