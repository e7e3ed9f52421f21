// Package dataset provides an in-memory tabular dataset for chart building.
//
// A [Dataset] is a read-only table of named columns over string cells, loaded
// from CSV. Cells that are empty after trimming whitespace count as missing.
// Columns expose the derived views the chart figures need: missing/present
// counts, descending category frequencies with top-K collapsing, and numeric
// extraction for correlation.
package dataset

import (
	"strconv"
	"strings"
)

// Dataset is an immutable table of rows by named columns.
// Column order follows the source header.
type Dataset struct {
	names []string
	cols  map[string]Column
}

// Column is a single named column of string cells.
type Column struct {
	Name   string
	Values []string
}

// New builds a Dataset from a header and row-major records.
// Rows shorter than the header are padded with missing cells; longer rows
// are truncated.
func New(header []string, rows [][]string) *Dataset {
	d := &Dataset{
		names: append([]string(nil), header...),
		cols:  make(map[string]Column, len(header)),
	}
	for i, name := range header {
		values := make([]string, len(rows))
		for j, row := range rows {
			if i < len(row) {
				values[j] = row[i]
			}
		}
		d.cols[name] = Column{Name: name, Values: values}
	}
	return d
}

// Columns returns the column names in source order.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.names...)
}

// Column returns the named column. ok is false if no such column exists.
func (d *Dataset) Column(name string) (Column, bool) {
	c, ok := d.cols[name]
	return c, ok
}

// NumRows returns the number of rows in the dataset.
func (d *Dataset) NumRows() int {
	if len(d.names) == 0 {
		return 0
	}
	return len(d.cols[d.names[0]].Values)
}

// NumericColumns returns the names of all numeric columns in source order.
// A column is numeric when it has at least one non-missing cell and every
// non-missing cell parses as a float.
func (d *Dataset) NumericColumns() []string {
	var out []string
	for _, name := range d.names {
		if d.cols[name].IsNumeric() {
			out = append(out, name)
		}
	}
	return out
}

// missing reports whether a cell counts as a missing value.
func missing(cell string) bool {
	return strings.TrimSpace(cell) == ""
}

// Missing returns the number of missing and present cells in the column.
func (c Column) Missing() (missingCount, present int) {
	for _, v := range c.Values {
		if missing(v) {
			missingCount++
		} else {
			present++
		}
	}
	return missingCount, present
}

// IsNumeric reports whether every non-missing cell parses as a float and at
// least one such cell exists.
func (c Column) IsNumeric() bool {
	seen := false
	for _, v := range c.Values {
		if missing(v) {
			continue
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
			return false
		}
		seen = true
	}
	return seen
}

// Floats returns the parsed cell values row-aligned with c.Values, and a
// parallel mask marking which rows hold a usable number. Missing and
// unparseable cells are masked out.
func (c Column) Floats() (values []float64, valid []bool) {
	values = make([]float64, len(c.Values))
	valid = make([]bool, len(c.Values))
	for i, v := range c.Values {
		if missing(v) {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			continue
		}
		values[i] = f
		valid[i] = true
	}
	return values, valid
}
