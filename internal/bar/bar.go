// Package bar renders a horizontal progress bar onto a framebuffer surface.
package bar

import (
	"errors"
	"image/color"
	"math"
)

// On is the foreground color of a monochrome panel.
var On = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// FramesPerCycle is the number of frames it takes the bar to go from empty to nearly full.
const FramesPerCycle = 100

// Target is the part of a framebuffer surface the bar draws with.
type Target interface {
	FillRect(x, y, w, h int16, c color.RGBA) error
}

// Outliner is implemented by targets that can stroke an unfilled rectangle.
type Outliner interface {
	Rect(x, y, w, h int16, c color.RGBA) error
}

// Bar is a fixed-position progress bar. It is immutable after New.
type Bar struct {
	x, y      int16
	length    int16
	thickness int16
}

func New(x, y, length, thickness int16) (*Bar, error) {
	if length <= 0 {
		return nil, errors.New("bar length must be positive")
	}
	if thickness <= 0 {
		return nil, errors.New("bar thickness must be positive")
	}
	return &Bar{
		x:         x,
		y:         y,
		length:    length,
		thickness: thickness,
	}, nil
}

// Origin returns the top-left corner of the bar.
func (b *Bar) Origin() (x, y int16) { return b.x, b.y }

// Size returns the full length and thickness of the bar.
func (b *Bar) Size() (length, thickness int16) { return b.length, b.thickness }

// FillWidth returns floor(length * ratio). Ratios outside [0, 1] are clamped and NaN counts as 0, so the result is
// always in [0, length].
func (b *Bar) FillWidth(ratio float64) int16 {
	if math.IsNaN(ratio) || ratio <= 0 {
		return 0
	}
	if ratio >= 1 {
		return b.length
	}
	return int16(math.Floor(float64(b.length) * ratio))
}

// Draw issues exactly one filled rectangle at the bar origin, FillWidth(ratio) wide and thickness tall. Bounds
// checking is left to the target.
func (b *Bar) Draw(ratio float64, target Target) error {
	return target.FillRect(b.x, b.y, b.FillWidth(ratio), b.thickness, On)
}

// DrawOutline strokes the full extent of the bar.
func (b *Bar) DrawOutline(target Outliner) error {
	return target.Rect(b.x, b.y, b.length, b.thickness, On)
}

// Ratio converts a frame counter to a fill ratio in [0, 0.99].
func Ratio(counter uint64) float64 {
	return float64(counter%FramesPerCycle) / FramesPerCycle
}

// Cycles returns how many times the bar has filled for the given frame counter.
func Cycles(counter uint64) uint64 {
	return counter / FramesPerCycle
}
