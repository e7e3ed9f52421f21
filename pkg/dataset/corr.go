package dataset

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Matrix is a symmetric correlation matrix over a set of named columns.
// Values[i][j] is the Pearson correlation between Labels[i] and Labels[j].
// Cells that cannot be computed (fewer than two shared observations, zero
// variance) are NaN.
type Matrix struct {
	Labels []string
	Values [][]float64
}

// Empty reports whether the matrix has no columns.
func (m Matrix) Empty() bool { return len(m.Labels) == 0 }

// CorrelationMatrix computes pairwise Pearson correlations across all
// numeric columns of d. Rows missing a value in either column of a pair are
// excluded pairwise. A dataset with no numeric columns yields an empty
// matrix.
func CorrelationMatrix(d *Dataset) Matrix {
	labels := d.NumericColumns()
	n := len(labels)

	values := make([][]float64, n)
	parsed := make([][]float64, n)
	masks := make([][]bool, n)
	for i, name := range labels {
		col, _ := d.Column(name)
		parsed[i], masks[i] = col.Floats()
	}

	for i := range labels {
		values[i] = make([]float64, n)
		for j := range labels {
			if j < i {
				values[i][j] = values[j][i]
				continue
			}
			if j == i {
				values[i][j] = 1.0
				continue
			}
			values[i][j] = pearson(parsed[i], masks[i], parsed[j], masks[j])
		}
	}
	return Matrix{Labels: labels, Values: values}
}

// pearson correlates the rows where both columns hold a usable number.
func pearson(x []float64, xok []bool, y []float64, yok []bool) float64 {
	var xs, ys []float64
	for i := range x {
		if xok[i] && yok[i] {
			xs = append(xs, x[i])
			ys = append(ys, y[i])
		}
	}
	if len(xs) < 2 || constant(xs) || constant(ys) {
		return math.NaN()
	}
	r, err := stats.Pearson(xs, ys)
	if err != nil {
		return math.NaN()
	}
	return r
}

func constant(vs []float64) bool {
	for _, v := range vs[1:] {
		if v != vs[0] {
			return false
		}
	}
	return true
}
