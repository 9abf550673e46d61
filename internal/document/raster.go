package document

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	rasterWidth = 794 // A4 width at 96 DPI

	lineHeight    = 22
	sectionGap    = 18
	headingHeight = 40
	padX          = 36
)

var (
	inkColor    = color.RGBA{33, 33, 33, 255}
	ruleColor   = color.RGBA{200, 200, 200, 255}
	titleColor  = color.RGBA{0, 77, 128, 255}
	paperColor  = color.RGBA{255, 255, 255, 255}
	shadedColor = color.RGBA{244, 247, 250, 255}
)

// Rasterize draws the template into a single tall image containing every
// section it was given; the paginator later slices the result into pages.
// Capture decides which sections are present by hiding them on the surface
// before the snapshot.
func Rasterize(t Template) *image.RGBA {
	height := measure(t)
	img := image.NewRGBA(image.Rect(0, 0, rasterWidth, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{paperColor}, image.Point{}, draw.Src)

	y := headingHeight
	drawText(img, padX, y, t.Heading, titleColor)
	y += lineHeight
	drawText(img, padX, y, t.Subheading, inkColor)
	y += sectionGap + lineHeight

	for _, sec := range t.Sections {
		fillRect(img, padX, y-14, rasterWidth-padX, y+4, shadedColor)
		drawText(img, padX+4, y, sec.Title, titleColor)
		y += lineHeight

		for _, row := range sec.Rows {
			drawText(img, padX+12, y, row.Left, inkColor)
			drawTextRight(img, rasterWidth-padX-12, y, row.Right, inkColor)
			if row.Bold {
				// basicfont has no bold face; re-draw shifted one pixel
				// to thicken the strokes.
				drawText(img, padX+13, y, row.Left, inkColor)
				drawTextRight(img, rasterWidth-padX-11, y, row.Right, inkColor)
			}
			y += lineHeight
		}

		hLine(img, padX, rasterWidth-padX, y-10, ruleColor)
		y += sectionGap
	}

	return img
}

func measure(t Template) int {
	h := headingHeight + lineHeight + sectionGap + lineHeight
	for _, sec := range t.Sections {
		h += lineHeight + len(sec.Rows)*lineHeight + sectionGap
	}
	return h + headingHeight
}

func drawText(img *image.RGBA, x, y int, s string, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func drawTextRight(img *image.RGBA, rightX, y int, s string, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
	}
	width := d.MeasureString(s)
	d.Dot = fixed.P(rightX, y)
	d.Dot.X -= width
	d.DrawString(s)
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	draw.Draw(img, image.Rect(x0, y0, x1, y1), &image.Uniform{c}, image.Point{}, draw.Src)
}

func hLine(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	for x := x0; x < x1; x++ {
		img.SetRGBA(x, y, c)
	}
}
