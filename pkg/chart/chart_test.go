package chart

import (
	"math"
	"testing"

	"github.com/Evgya/anime-analysis/pkg/dataset"
)

func TestMissingValueDonut(t *testing.T) {
	col := dataset.Column{
		Name:   "episodes",
		Values: []string{"26", "", "12", "24", "", "13", "1", "", "51", "64"},
	}

	f := MissingValueDonut(col)
	if f.Title != "episodes" {
		t.Errorf("Title = %q, want column name", f.Title)
	}
	if len(f.Slices) != 2 {
		t.Fatalf("got %d slices, want 2", len(f.Slices))
	}

	missing, present := f.Slices[0], f.Slices[1]
	if missing.Label != LabelMissing || missing.Value != 3 {
		t.Errorf("missing slice = %+v, want value 3", missing)
	}
	if present.Label != LabelPresent || present.Value != 7 {
		t.Errorf("present slice = %+v, want value 7", present)
	}
	if !missing.Exploded || present.Exploded {
		t.Error("only the missing slice should be exploded")
	}
	if math.Abs(missing.Pct-30.0) > 1e-9 || math.Abs(present.Pct-70.0) > 1e-9 {
		t.Errorf("percentages = %.1f / %.1f, want 30 / 70", missing.Pct, present.Pct)
	}
}

func TestMissingValueDonut_EmptyColumn(t *testing.T) {
	f := MissingValueDonut(dataset.Column{Name: "empty"})
	if len(f.Slices) != 2 {
		t.Fatalf("got %d slices, want 2", len(f.Slices))
	}
	for _, s := range f.Slices {
		if s.Value != 0 || s.Pct != 0 {
			t.Errorf("slice %+v should be zero-valued", s)
		}
	}
}

func categoryColumn() dataset.Column {
	var values []string
	for _, freq := range []struct {
		v string
		n int
	}{{"a", 50}, {"b", 30}, {"c", 20}, {"d", 10}, {"e", 5}} {
		for i := 0; i < freq.n; i++ {
			values = append(values, freq.v)
		}
	}
	return dataset.Column{Name: "genre", Values: values}
}

func TestCategoryBar_TopKCollapse(t *testing.T) {
	f := CategoryBar(categoryColumn(), "Top genres", 3)

	if f.Horizontal {
		t.Error("CategoryBar must be vertical")
	}
	if len(f.Bars) != 4 {
		t.Fatalf("got %d bars, want 4 (3 kept + Other)", len(f.Bars))
	}

	last := f.Bars[3]
	if last.Label != dataset.OtherBucket || last.Value != 15 {
		t.Errorf("last bar = %+v, want Other with 15", last)
	}

	pctSum := 0.0
	for _, b := range f.Bars {
		pctSum += b.Pct
	}
	if math.Abs(pctSum-100.0) > 0.01 {
		t.Errorf("percentages sum to %.2f, want 100", pctSum)
	}
	// 50 of a displayed total of 115.
	if math.Abs(f.Bars[0].Pct-50.0/115.0*100) > 1e-9 {
		t.Errorf("first bar pct = %.2f, want share of displayed total", f.Bars[0].Pct)
	}
}

func TestCategoryBar_SaturationFollowsRank(t *testing.T) {
	f := CategoryBar(categoryColumn(), "", 3)

	for i := 1; i < len(f.Bars); i++ {
		if f.Bars[i].Fill == f.Bars[i-1].Fill {
			t.Errorf("bars %d and %d share fill %s", i-1, i, f.Bars[i].Fill)
		}
	}
	fills := Blues(len(f.Bars))
	for i, b := range f.Bars {
		if b.Fill != fills[i] {
			t.Errorf("bar %d fill = %s, want %s", i, b.Fill, fills[i])
		}
	}
}

func TestCategoryBarH(t *testing.T) {
	f := CategoryBarH(categoryColumn(), "Top genres", 2)
	if !f.Horizontal {
		t.Error("CategoryBarH must set Horizontal")
	}
	if len(f.Bars) != 3 {
		t.Errorf("got %d bars, want 3", len(f.Bars))
	}
}

func TestCategoryBar_DefaultLimit(t *testing.T) {
	f := CategoryBar(categoryColumn(), "", 0)
	// Five distinct categories fit inside the default limit of ten.
	if len(f.Bars) != 5 {
		t.Errorf("got %d bars, want 5 without collapsing", len(f.Bars))
	}
}

func TestCategoryBar_EmptyColumn(t *testing.T) {
	f := CategoryBar(dataset.Column{Name: "empty"}, "", 5)
	if len(f.Bars) != 0 {
		t.Errorf("expected zero bars, got %v", f.Bars)
	}
	if f.MaxValue() != 0 {
		t.Errorf("MaxValue() = %d, want 0", f.MaxValue())
	}
}

func TestCorrelationHeatmap(t *testing.T) {
	d := dataset.New(
		[]string{"up", "down"},
		[][]string{{"1", "4"}, {"2", "3"}, {"3", "2"}, {"4", "1"}},
	)

	f := CorrelationHeatmap(d, "Correlations")
	if f.Title != "Correlations" {
		t.Errorf("Title = %q", f.Title)
	}
	if len(f.Labels) != 2 {
		t.Fatalf("Labels = %v, want 2", f.Labels)
	}
	if math.Abs(f.Values[0][1]-(-1.0)) > 1e-9 {
		t.Errorf("off-diagonal = %v, want -1.00", f.Values[0][1])
	}
	if math.Abs(f.Values[1][1]-1.0) > 1e-9 {
		t.Errorf("diagonal = %v, want 1.00", f.Values[1][1])
	}
}

func TestCorrelationHeatmap_NonNumeric(t *testing.T) {
	d := dataset.New([]string{"title"}, [][]string{{"Bebop"}, {"Eva"}})

	f := CorrelationHeatmap(d, "")
	if len(f.Labels) != 0 {
		t.Errorf("expected degenerate empty heatmap, got %v", f.Labels)
	}
}

func TestWordCloud(t *testing.T) {
	col := dataset.Column{Name: "studio", Values: []string{"bones", "bones", "madhouse", "", "bones", "madhouse", "ghibli"}}

	f := WordCloud(col, "Studios")
	if f.Width != 800 || f.Height != 400 {
		t.Errorf("canvas = %dx%d, want 800x400", f.Width, f.Height)
	}
	if len(f.Words) != 3 {
		t.Fatalf("got %d words, want 3", len(f.Words))
	}
	if f.Words[0].Text != "bones" || f.Words[0].Weight != 3 {
		t.Errorf("heaviest word = %+v, want bones:3", f.Words[0])
	}
}

func TestBlues(t *testing.T) {
	colors := Blues(5)
	if len(colors) != 5 {
		t.Fatalf("got %d colors", len(colors))
	}
	seen := map[string]bool{}
	for _, c := range colors {
		if seen[c] {
			t.Errorf("duplicate color %s", c)
		}
		seen[c] = true
	}
	if colors[0] != "#08306b" {
		t.Errorf("first color = %s, want the darkest blue", colors[0])
	}
	if Blues(0) != nil {
		t.Error("Blues(0) should be nil")
	}
}
