package summary

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"time"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Image geometry.
const (
	Width  = 800
	Height = 600

	marginLeft = 50
)

var (
	background = color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}
	foreground = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	accent     = color.RGBA{R: 0x16, G: 0xc7, B: 0x84, A: 0xff}
	muted      = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}

	usd = message.NewPrinter(language.AmericanEnglish)
)

// FormatUSD formats an amount as US dollars with grouping, e.g. "$1,234.50".
func FormatUSD(amount float64) string {
	return usd.Sprintf("$%v", number.Decimal(amount, number.Scale(2)))
}

// Render draws the summary as an 800x600 PNG.
func Render(w io.Writer, rec Record) error {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, xdraw.Src)

	drawText(img, "Country Data Summary", marginLeft, 60, foreground, 3)
	drawText(img, fmt.Sprintf("Total Countries: %d", rec.TotalCountries), marginLeft, 120, foreground, 2)
	drawText(img, "Top 5 Countries by GDP", marginLeft, 180, accent, 2)

	for i, entry := range rec.Top {
		line := fmt.Sprintf("%d. %s: %s", i+1, entry.Name, FormatUSD(entry.EstimatedGDP))
		drawText(img, line, marginLeft, 230+i*40, foreground, 2)
	}

	drawText(img, "Last Updated: "+rec.GeneratedAt.UTC().Format(time.RFC3339), marginLeft, 520, muted, 2)

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode summary image: %w", err)
	}
	return nil
}

// drawText writes text with its baseline at (x, baseline), enlarged by scale.
func drawText(dst *image.RGBA, text string, x, baseline int, col color.Color, scale int) {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()

	width := font.MeasureString(face, text).Ceil()
	height := metrics.Height.Ceil()
	if width == 0 || height == 0 {
		return
	}

	glyphs := image.NewRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(text)

	top := baseline - ascent*scale
	target := image.Rect(x, top, x+width*scale, top+height*scale)
	xdraw.NearestNeighbor.Scale(dst, target, glyphs, glyphs.Bounds(), xdraw.Over, nil)
}
