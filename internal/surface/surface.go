// Package surface wraps a display driver's framebuffer with the drawing primitives the demo needs.
package surface

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
)

var (
	Off = color.RGBA{}
	On  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Surface is a framebuffer surface. Drawing only touches the display's buffer; nothing reaches the panel until Show.
type Surface struct {
	d    drivers.Displayer
	w, h int16
}

func New(d drivers.Displayer) *Surface {
	w, h := d.Size()
	return &Surface{
		d: d,
		w: w,
		h: h,
	}
}

func (s *Surface) Size() (x, y int16) {
	return s.w, s.h
}

func (s *Surface) SetPixel(x, y int16, c color.RGBA) {
	s.d.SetPixel(x, y, c)
}

// Display is Show, so a Surface can itself be handed to anything that wants a drivers.Displayer.
func (s *Surface) Display() error {
	return s.d.Display()
}

// Fill sets the whole surface to c.
func (s *Surface) Fill(c color.RGBA) {
	for x := int16(0); x < s.w; x++ {
		for y := int16(0); y < s.h; y++ {
			s.d.SetPixel(x, y, c)
		}
	}
}

// FillRect fills a w*h rectangle at x, y. An empty rectangle draws nothing. Pixels outside the surface are clipped.
func (s *Surface) FillRect(x, y, w, h int16, c color.RGBA) error {
	x, y, w, h = s.clip(x, y, w, h)
	if w <= 0 || h <= 0 {
		return nil
	}
	return tinydraw.FilledRectangle(s.d, x, y, w, h, c)
}

// Rect strokes a one pixel border around a w*h rectangle at x, y.
func (s *Surface) Rect(x, y, w, h int16, c color.RGBA) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	return tinydraw.Rectangle(s.d, x, y, w, h, c)
}

// Show flushes the framebuffer to the panel.
func (s *Surface) Show() error {
	return s.d.Display()
}

func (s *Surface) clip(x, y, w, h int16) (int16, int16, int16, int16) {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > s.w {
		w = s.w - x
	}
	if y+h > s.h {
		h = s.h - y
	}
	return x, y, w, h
}
