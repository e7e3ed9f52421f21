package sink

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// The Go fonts ship embedded with the x/image module, so raster output
// needs no font files installed on the host.
var (
	regularFont = mustParseFont(goregular.TTF)
	boldFont    = mustParseFont(gobold.TTF)
)

func mustParseFont(ttf []byte) *truetype.Font {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	return f
}

func regularFace(size float64) font.Face {
	return truetype.NewFace(regularFont, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
}

func boldFace(size float64) font.Face {
	return truetype.NewFace(boldFont, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
}

// tempFontFile writes the regular font to a temp file for libraries that
// only accept font paths. The caller must invoke cleanup.
func tempFontFile() (path string, cleanup func(), err error) {
	f, err := os.CreateTemp("", "chartfont-*.ttf")
	if err != nil {
		return "", func() {}, err
	}
	if _, err := f.Write(goregular.TTF); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", func() {}, err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", func() {}, err
	}
	return f.Name(), func() { os.Remove(f.Name()) }, nil
}
