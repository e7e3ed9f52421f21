package sink

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Evgya/anime-analysis/pkg/chart"
)

// ErrRasterOnly is returned when a figure kind has no vector rendering.
var ErrRasterOnly = errors.New("figure kind requires raster output")

const fontFamily = "Helvetica, Arial, sans-serif"

// Donut geometry.
const (
	donutSize        = 520.0
	donutOuterRadius = 150.0
	donutRingWidth   = 0.3  // fraction of the outer radius
	donutExplode     = 0.1  // explode offset as a fraction of the outer radius
	donutPctRadius   = 0.85 // annotation distance as a fraction of the outer radius
)

// Bar chart geometry.
const (
	barFrameWidth  = 800.0
	barFrameHeight = 500.0
	barMarginTop   = 70.0
	barMarginSide  = 40.0
	barLabelBand   = 90.0 // room for category labels
	barGapFraction = 0.25
	rowHeight      = 36.0 // horizontal variant
)

// Heatmap geometry.
const (
	heatCellSize   = 70.0
	heatMarginLeft = 130.0
	heatMarginTop  = 60.0
	heatLabelBand  = 90.0
)

// RenderSVG renders a figure as standalone SVG markup.
func RenderSVG(f chart.Figure) ([]byte, error) {
	switch fig := f.(type) {
	case chart.DonutFigure:
		return donutSVG(fig), nil
	case chart.BarFigure:
		if fig.Horizontal {
			return hbarSVG(fig), nil
		}
		return barSVG(fig), nil
	case chart.HeatmapFigure:
		return heatmapSVG(fig), nil
	case chart.WordCloudFigure:
		return nil, fmt.Errorf("%w: %s", ErrRasterOnly, f.Kind())
	default:
		return nil, fmt.Errorf("unknown figure kind %q", f.Kind())
	}
}

func openSVG(buf *bytes.Buffer, w, h float64) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n", w, h, w, h)
}

func closeSVG(buf *bytes.Buffer) {
	buf.WriteString("</svg>\n")
}

func renderTitle(buf *bytes.Buffer, title string, cx, y float64) {
	if title == "" {
		return
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="%s" font-size="20" font-weight="bold">%s</text>`+"\n",
		cx, y, fontFamily, escapeXML(title))
}

// donutPoint maps a clockwise-from-top angle (degrees) to canvas coordinates.
func donutPoint(cx, cy, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Sin(rad), cy - r*math.Cos(rad)
}

func donutSVG(f chart.DonutFigure) []byte {
	var buf bytes.Buffer
	openSVG(&buf, donutSize, donutSize)
	renderTitle(&buf, f.Title, donutSize/2, 34)

	cx, cy := donutSize/2, donutSize/2+16
	outer := donutOuterRadius
	inner := outer * (1 - donutRingWidth)

	total := 0
	for _, s := range f.Slices {
		total += s.Value
	}

	angle := 0.0
	for _, s := range f.Slices {
		if total == 0 || s.Value == 0 {
			continue
		}
		span := float64(s.Value) / float64(total) * 360
		mid := angle + span/2

		scx, scy := cx, cy
		if s.Exploded {
			dx, dy := donutPoint(0, 0, outer*donutExplode, mid)
			scx += dx
			scy += dy
		}

		renderDonutSlice(&buf, scx, scy, outer, inner, angle, angle+span, s.Fill)

		// Label outside the ring, percentage and count inside it.
		lx, ly := donutPoint(scx, scy, outer*1.22, mid)
		anchor := "start"
		if lx < cx {
			anchor = "end"
		}
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="%s" font-family="%s" font-size="15">%s</text>`+"\n",
			lx, ly, anchor, fontFamily, escapeXML(s.Label))

		px, py := donutPoint(scx, scy, outer*donutPctRadius, mid)
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="%s" font-size="14">`+
			`<tspan x="%.1f" dy="-0.2em">%.0f%%</tspan><tspan x="%.1f" dy="1.2em">(%d)</tspan></text>`+"\n",
			px, py, fontFamily, px, s.Pct, px, s.Value)

		angle += span
	}

	closeSVG(&buf)
	return buf.Bytes()
}

// renderDonutSlice draws one annulus sector from deg1 to deg2, clockwise
// from twelve o'clock.
func renderDonutSlice(buf *bytes.Buffer, cx, cy, outer, inner, deg1, deg2 float64, fill string) {
	largeArc := 0
	if deg2-deg1 > 180 {
		largeArc = 1
	}

	ox1, oy1 := donutPoint(cx, cy, outer, deg1)
	ox2, oy2 := donutPoint(cx, cy, outer, deg2)
	ix1, iy1 := donutPoint(cx, cy, inner, deg1)
	ix2, iy2 := donutPoint(cx, cy, inner, deg2)

	fmt.Fprintf(buf,
		`  <path d="M %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 0 %.2f %.2f Z" fill="%s" stroke="white" stroke-width="1.5"/>`+"\n",
		ox1, oy1, outer, outer, largeArc, ox2, oy2,
		ix2, iy2, inner, inner, largeArc, ix1, iy1, fill)
}

func barSVG(f chart.BarFigure) []byte {
	var buf bytes.Buffer
	openSVG(&buf, barFrameWidth, barFrameHeight)
	renderTitle(&buf, f.Title, barFrameWidth/2, 34)

	plotW := barFrameWidth - 2*barMarginSide
	plotH := barFrameHeight - barMarginTop - barLabelBand
	baseline := barMarginTop + plotH

	n := len(f.Bars)
	if n > 0 {
		// Headroom above the tallest bar keeps its annotation inside the frame.
		maxVal := float64(f.MaxValue()) * 1.15
		slot := plotW / float64(n)
		barW := slot * (1 - barGapFraction)

		for i, b := range f.Bars {
			h := 0.0
			if maxVal > 0 {
				h = float64(b.Value) / maxVal * plotH
			}
			x := barMarginSide + float64(i)*slot + (slot-barW)/2
			y := baseline - h

			fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
				x, y, barW, h, b.Fill)
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="%s" font-size="13">%.0f%%</text>`+"\n",
				x+barW/2, y-6, fontFamily, b.Pct)

			// Category label, tilted to survive long names.
			lx, ly := x+barW/2, baseline+16
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="end" font-family="%s" font-size="13" transform="rotate(-45 %.1f %.1f)">%s</text>`+"\n",
				lx, ly, fontFamily, lx, ly, escapeXML(b.Label))
		}
	}

	// Only the category-axis spine is drawn; the count axis stays bare.
	fmt.Fprintf(&buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="black" stroke-width="1"/>`+"\n",
		barMarginSide, baseline, barFrameWidth-barMarginSide, baseline)

	closeSVG(&buf)
	return buf.Bytes()
}

func hbarSVG(f chart.BarFigure) []byte {
	n := len(f.Bars)
	frameH := barMarginTop + float64(n)*rowHeight + 40

	var buf bytes.Buffer
	openSVG(&buf, barFrameWidth, frameH)
	renderTitle(&buf, f.Title, barFrameWidth/2, 34)

	left := barMarginSide + 140.0 // room for category labels
	plotW := barFrameWidth - left - 80

	if n > 0 {
		maxVal := float64(f.MaxValue()) * 1.15
		barH := rowHeight * (1 - barGapFraction)

		for i, b := range f.Bars {
			w := 0.0
			if maxVal > 0 {
				w = float64(b.Value) / maxVal * plotW
			}
			y := barMarginTop + float64(i)*rowHeight + (rowHeight-barH)/2

			fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
				left, y, w, barH, b.Fill)
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="end" font-family="%s" font-size="13">%s</text>`+"\n",
				left-8, y+barH/2+4, fontFamily, escapeXML(b.Label))
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="start" font-family="%s" font-size="13">%.0f%%</text>`+"\n",
				left+w+6, y+barH/2+4, fontFamily, b.Pct)
		}
	}

	fmt.Fprintf(&buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="black" stroke-width="1"/>`+"\n",
		left, barMarginTop, left, barMarginTop+float64(n)*rowHeight)

	closeSVG(&buf)
	return buf.Bytes()
}

func heatmapSVG(f chart.HeatmapFigure) []byte {
	n := len(f.Labels)
	w := heatMarginLeft + float64(n)*heatCellSize + 40
	h := heatMarginTop + float64(n)*heatCellSize + heatLabelBand

	var buf bytes.Buffer
	openSVG(&buf, w, h)
	renderTitle(&buf, f.Title, w/2, 34)

	for i := range f.Labels {
		for j := range f.Labels {
			x := heatMarginLeft + float64(j)*heatCellSize
			y := heatMarginTop + float64(i)*heatCellSize
			v := f.Values[i][j]

			fill, textColor := heatCellColors(v)
			fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="white" stroke-width="1"/>`+"\n",
				x, y, heatCellSize, heatCellSize, fill)
			if !math.IsNaN(v) {
				fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="%s" font-size="14" fill="%s">%.2f</text>`+"\n",
					x+heatCellSize/2, y+heatCellSize/2+5, fontFamily, textColor, v)
			}
		}
	}

	for i, label := range f.Labels {
		// Row labels left of the grid, column labels beneath it.
		ry := heatMarginTop + float64(i)*heatCellSize + heatCellSize/2 + 5
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="end" font-family="%s" font-size="13">%s</text>`+"\n",
			heatMarginLeft-10, ry, fontFamily, escapeXML(label))

		cx := heatMarginLeft + float64(i)*heatCellSize + heatCellSize/2
		cy := heatMarginTop + float64(n)*heatCellSize + 18
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="end" font-family="%s" font-size="13" transform="rotate(-45 %.1f %.1f)">%s</text>`+"\n",
			cx, cy, fontFamily, cx, cy, escapeXML(label))
	}

	closeSVG(&buf)
	return buf.Bytes()
}

// heatCellColors maps a correlation in [-1, 1] onto the blues ramp and picks
// a readable annotation color. NaN cells render white and unannotated.
// Both colors are hex strings; the PNG sink feeds them to gg.SetHexColor,
// which does not understand CSS color names.
func heatCellColors(v float64) (fill, text string) {
	if math.IsNaN(v) {
		return "#ffffff", "#000000"
	}
	t := (v + 1) / 2
	fill = chart.BluesScale(t)
	if t > 0.6 {
		return fill, "#ffffff"
	}
	return fill, "#000000"
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
