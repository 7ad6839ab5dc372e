package animation

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

var (
	Off = color.RGBA{}
	On  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Canvas is a framebuffer surface. Nothing drawn on it is visible until the owner flushes it.
type Canvas interface {
	drivers.Displayer
	Fill(c color.RGBA)
	FillRect(x, y, w, h int16, c color.RGBA) error
	Rect(x, y, w, h int16, c color.RGBA) error
}

type Animation interface {
	// Activate is called when the animation is being started on the canvas.
	// An animation may be re-used so this should be able to be called more than once.
	Activate(Canvas) error
	// DrawFrame draws the given frame of the animation. The frame number is provided so animations can be keyed
	// off it without keeping track of it themselves.
	DrawFrame(c Canvas, frame uint64) error
}

// DrawImage draws the image on the display at the given coordinates, clipping anything off-screen.
// The panel is monochrome, so each pixel is lit if its luminance is at least half of full scale.
func DrawImage(disp drivers.Displayer, offX, offY int16, img image.Image) {
	w, h := disp.Size()
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		xx := int16(x-b.Min.X) + offX
		if xx < 0 || xx >= w {
			continue
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			yy := int16(y-b.Min.Y) + offY
			if yy < 0 || yy >= h {
				continue
			}
			if Lit(img.At(x, y)) {
				disp.SetPixel(xx, yy, On)
			} else {
				disp.SetPixel(xx, yy, Off)
			}
		}
	}
}

// Lit reports whether c should be drawn as a lit pixel.
func Lit(c color.Color) bool {
	g := color.GrayModel.Convert(c).(color.Gray)
	return g.Y >= 0x80
}
