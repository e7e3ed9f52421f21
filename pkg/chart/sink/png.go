package sink

import (
	"bytes"
	"fmt"
	"image/png"
	"math"

	"github.com/fogleman/gg"

	"github.com/Evgya/anime-analysis/pkg/chart"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the raster scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes a figure to PNG bytes.
func RenderPNG(f chart.Figure, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}

	switch fig := f.(type) {
	case chart.DonutFigure:
		return encodePNG(donutPNG(fig, r.scale))
	case chart.BarFigure:
		if fig.Horizontal {
			return encodePNG(hbarPNG(fig, r.scale))
		}
		return encodePNG(barPNG(fig, r.scale))
	case chart.HeatmapFigure:
		return encodePNG(heatmapPNG(fig, r.scale))
	case chart.WordCloudFigure:
		return wordcloudPNG(fig, r.scale)
	default:
		return nil, fmt.Errorf("unknown figure kind %q", f.Kind())
	}
}

func encodePNG(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// newCanvas creates a white canvas of w by h logical pixels at the given
// scale factor.
func newCanvas(w, h, scale float64) *gg.Context {
	dc := gg.NewContext(int(w*scale), int(h*scale))
	dc.Scale(scale, scale)
	dc.SetHexColor("#ffffff")
	dc.Clear()
	dc.SetHexColor("#000000")
	return dc
}

func drawTitle(dc *gg.Context, title string, cx, y float64) {
	if title == "" {
		return
	}
	dc.SetFontFace(boldFace(20))
	dc.SetHexColor("#000000")
	dc.DrawStringAnchored(title, cx, y, 0.5, 0.5)
}

// toRad converts a clockwise-from-top angle in degrees to the canvas angle
// convention (radians, zero at three o'clock, y axis down).
func toRad(deg float64) float64 {
	return deg*math.Pi/180 - math.Pi/2
}

func donutPNG(f chart.DonutFigure, scale float64) *gg.Context {
	dc := newCanvas(donutSize, donutSize, scale)
	drawTitle(dc, f.Title, donutSize/2, 28)

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
			scx += outer * donutExplode * math.Sin(mid*math.Pi/180)
			scy -= outer * donutExplode * math.Cos(mid*math.Pi/180)
		}

		dc.NewSubPath()
		dc.DrawArc(scx, scy, outer, toRad(angle), toRad(angle+span))
		dc.DrawArc(scx, scy, inner, toRad(angle+span), toRad(angle))
		dc.ClosePath()
		dc.SetHexColor(s.Fill)
		dc.FillPreserve()
		dc.SetHexColor("#ffffff")
		dc.SetLineWidth(1.5)
		dc.Stroke()

		lx := scx + outer*1.22*math.Sin(mid*math.Pi/180)
		ly := scy - outer*1.22*math.Cos(mid*math.Pi/180)
		dc.SetFontFace(regularFace(15))
		dc.SetHexColor("#000000")
		ax := 0.0
		if lx < cx {
			ax = 1.0
		}
		dc.DrawStringAnchored(s.Label, lx, ly, ax, 0.5)

		px := scx + outer*donutPctRadius*math.Sin(mid*math.Pi/180)
		py := scy - outer*donutPctRadius*math.Cos(mid*math.Pi/180)
		dc.SetFontFace(regularFace(14))
		dc.DrawStringAnchored(fmt.Sprintf("%.0f%%", s.Pct), px, py-8, 0.5, 0.5)
		dc.DrawStringAnchored(fmt.Sprintf("(%d)", s.Value), px, py+8, 0.5, 0.5)

		angle += span
	}
	return dc
}

func barPNG(f chart.BarFigure, scale float64) *gg.Context {
	dc := newCanvas(barFrameWidth, barFrameHeight, scale)
	drawTitle(dc, f.Title, barFrameWidth/2, 28)

	plotW := barFrameWidth - 2*barMarginSide
	plotH := barFrameHeight - barMarginTop - barLabelBand
	baseline := barMarginTop + plotH

	if n := len(f.Bars); n > 0 {
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

			dc.SetHexColor(b.Fill)
			dc.DrawRectangle(x, y, barW, h)
			dc.Fill()

			dc.SetHexColor("#000000")
			dc.SetFontFace(regularFace(13))
			dc.DrawStringAnchored(fmt.Sprintf("%.0f%%", b.Pct), x+barW/2, y-12, 0.5, 0.5)

			lx, ly := x+barW/2, baseline+16
			dc.Push()
			dc.RotateAbout(gg.Radians(-45), lx, ly)
			dc.DrawStringAnchored(b.Label, lx, ly, 1.0, 0.5)
			dc.Pop()
		}
	}

	dc.SetHexColor("#000000")
	dc.SetLineWidth(1)
	dc.DrawLine(barMarginSide, baseline, barFrameWidth-barMarginSide, baseline)
	dc.Stroke()
	return dc
}

func hbarPNG(f chart.BarFigure, scale float64) *gg.Context {
	n := len(f.Bars)
	frameH := barMarginTop + float64(n)*rowHeight + 40

	dc := newCanvas(barFrameWidth, frameH, scale)
	drawTitle(dc, f.Title, barFrameWidth/2, 28)

	left := barMarginSide + 140.0
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

			dc.SetHexColor(b.Fill)
			dc.DrawRectangle(left, y, w, barH)
			dc.Fill()

			dc.SetHexColor("#000000")
			dc.SetFontFace(regularFace(13))
			dc.DrawStringAnchored(b.Label, left-8, y+barH/2, 1.0, 0.5)
			dc.DrawStringAnchored(fmt.Sprintf("%.0f%%", b.Pct), left+w+6, y+barH/2, 0.0, 0.5)
		}
	}

	dc.SetHexColor("#000000")
	dc.SetLineWidth(1)
	dc.DrawLine(left, barMarginTop, left, barMarginTop+float64(n)*rowHeight)
	dc.Stroke()
	return dc
}

func heatmapPNG(f chart.HeatmapFigure, scale float64) *gg.Context {
	n := len(f.Labels)
	w := heatMarginLeft + float64(n)*heatCellSize + 40
	h := heatMarginTop + float64(n)*heatCellSize + heatLabelBand

	dc := newCanvas(w, h, scale)
	drawTitle(dc, f.Title, w/2, 28)

	for i := range f.Labels {
		for j := range f.Labels {
			x := heatMarginLeft + float64(j)*heatCellSize
			y := heatMarginTop + float64(i)*heatCellSize
			v := f.Values[i][j]

			fill, textColor := heatCellColors(v)
			dc.SetHexColor(fill)
			dc.DrawRectangle(x, y, heatCellSize, heatCellSize)
			dc.FillPreserve()
			dc.SetHexColor("#ffffff")
			dc.SetLineWidth(1)
			dc.Stroke()

			if !math.IsNaN(v) {
				dc.SetHexColor(textColor)
				dc.SetFontFace(regularFace(14))
				dc.DrawStringAnchored(fmt.Sprintf("%.2f", v), x+heatCellSize/2, y+heatCellSize/2, 0.5, 0.5)
			}
		}
	}

	dc.SetHexColor("#000000")
	dc.SetFontFace(regularFace(13))
	for i, label := range f.Labels {
		ry := heatMarginTop + float64(i)*heatCellSize + heatCellSize/2
		dc.DrawStringAnchored(label, heatMarginLeft-10, ry, 1.0, 0.5)

		cx := heatMarginLeft + float64(i)*heatCellSize + heatCellSize/2
		cy := heatMarginTop + float64(n)*heatCellSize + 18
		dc.Push()
		dc.RotateAbout(gg.Radians(-45), cx, cy)
		dc.DrawStringAnchored(label, cx, cy, 1.0, 0.5)
		dc.Pop()
	}
	return dc
}
