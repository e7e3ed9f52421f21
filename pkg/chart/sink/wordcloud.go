package sink

import (
	"image"
	"image/color"

	"github.com/psykhi/wordclouds"

	"github.com/Evgya/anime-analysis/pkg/chart"
)

const wordCloudTitleBand = 44.0

// cloudColors is the word palette, saturated blues over a white background.
var cloudColors = []color.Color{
	color.RGBA{0x08, 0x30, 0x6b, 0xff},
	color.RGBA{0x21, 0x71, 0xb5, 0xff},
	color.RGBA{0x42, 0x92, 0xc6, 0xff},
	color.RGBA{0x6b, 0xae, 0xd6, 0xff},
}

// wordcloudPNG places the figure's words with the wordclouds engine and
// composes the result under an optional title band.
func wordcloudPNG(f chart.WordCloudFigure, scale float64) ([]byte, error) {
	w := float64(f.Width)
	h := float64(f.Height)
	titleBand := 0.0
	if f.Title != "" {
		titleBand = wordCloudTitleBand
	}

	dc := newCanvas(w, h+titleBand, scale)
	drawTitle(dc, f.Title, w/2, titleBand/2)

	if len(f.Words) > 0 {
		img, err := placeWords(f, scale)
		if err != nil {
			return nil, err
		}
		// The cloud image is already at raster resolution; bypass the
		// logical-pixel transform when compositing it.
		dc.Push()
		dc.Identity()
		dc.DrawImage(img, 0, int(titleBand*scale))
		dc.Pop()
	}
	return encodePNG(dc)
}

func placeWords(f chart.WordCloudFigure, scale float64) (image.Image, error) {
	// The placement engine only loads fonts from disk.
	fontPath, cleanup, err := tempFontFile()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	freqs := make(map[string]int, len(f.Words))
	for _, w := range f.Words {
		freqs[w.Text] = w.Weight
	}

	cloud := wordclouds.NewWordcloud(freqs,
		wordclouds.FontFile(fontPath),
		wordclouds.Width(int(float64(f.Width)*scale)),
		wordclouds.Height(int(float64(f.Height)*scale)),
		wordclouds.BackgroundColor(color.White),
		wordclouds.Colors(cloudColors),
		wordclouds.FontMaxSize(int(96*scale)),
		wordclouds.FontMinSize(int(14*scale)),
		wordclouds.RandomPlacement(false),
	)
	return cloud.Draw(), nil
}
