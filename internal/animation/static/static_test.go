package static

import (
	"image/color"
	"testing"

	"github.com/ajanata/progbar/internal/animation"
	"github.com/ajanata/progbar/internal/media"
)

type canvas struct {
	w, h int16
	px   map[[2]int16]color.RGBA
}

func (c *canvas) Size() (int16, int16) { return c.w, c.h }

func (c *canvas) SetPixel(x, y int16, col color.RGBA) { c.px[[2]int16{x, y}] = col }

func (c *canvas) Display() error { return nil }

func (c *canvas) Fill(col color.RGBA) {
	for x := int16(0); x < c.w; x++ {
		for y := int16(0); y < c.h; y++ {
			c.px[[2]int16{x, y}] = col
		}
	}
}

func (c *canvas) FillRect(int16, int16, int16, int16, color.RGBA) error { return nil }

func (c *canvas) Rect(int16, int16, int16, int16, color.RGBA) error { return nil }

func TestSplashCentered(t *testing.T) {
	a, err := New(media.TypeSplash, "default")
	if err != nil {
		t.Fatal(err)
	}
	c := &canvas{w: 128, h: 64, px: map[[2]int16]color.RGBA{}}
	c.Fill(animation.On)
	if err := a.Activate(c); err != nil {
		t.Fatal(err)
	}
	// the splash border starts at (32, 16) on a 128x64 panel
	if c.px[[2]int16{32, 16}] != animation.On {
		t.Errorf("splash corner not lit")
	}
	if c.px[[2]int16{31, 16}] != animation.Off || c.px[[2]int16{0, 0}] != animation.Off {
		t.Errorf("pixels outside the splash were not cleared")
	}
	if err := a.DrawFrame(c, 42); err != nil {
		t.Errorf("DrawFrame: %v", err)
	}
}
