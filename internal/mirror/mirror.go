// Package mirror flips a display for panels mounted upside down or viewed from behind.
package mirror

import (
	"image/color"

	"tinygo.org/x/drivers"
)

type Axes uint8

const (
	Horizontal Axes = 1 << iota
	Vertical

	None Axes = 0
	// Both is a 180 degree rotation.
	Both = Horizontal | Vertical
)

type Mirror struct {
	d    drivers.Displayer
	axes Axes
	w, h int16
}

// New wraps d. With None the wrapper passes pixels through unchanged.
func New(d drivers.Displayer, axes Axes) *Mirror {
	w, h := d.Size()
	return &Mirror{
		d:    d,
		axes: axes,
		w:    w,
		h:    h,
	}
}

func (m *Mirror) Size() (x, y int16) {
	return m.w, m.h
}

func (m *Mirror) SetPixel(x, y int16, c color.RGBA) {
	if m.axes&Horizontal != 0 {
		x = m.w - x - 1
	}
	if m.axes&Vertical != 0 {
		y = m.h - y - 1
	}
	m.d.SetPixel(x, y, c)
}

func (m *Mirror) Display() error {
	return m.d.Display()
}
