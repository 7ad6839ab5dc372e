// Package progress is the looping progress bar animation.
package progress

import (
	"strconv"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/ajanata/progbar/internal/animation"
	"github.com/ajanata/progbar/internal/bar"
)

var font = &proggy.TinySZ8pt7b

type Options struct {
	// Outline strokes the full extent of the bar behind the fill.
	Outline bool
	// CyclesBaseline prints the number of completed fills centered on this baseline. Zero hides it.
	CyclesBaseline int16
}

type Anim struct {
	bar  *bar.Bar
	opts Options
}

func New(b *bar.Bar, opts Options) *Anim {
	return &Anim{
		bar:  b,
		opts: opts,
	}
}

func (a *Anim) Activate(c animation.Canvas) error {
	c.Fill(animation.Off)
	return nil
}

// DrawFrame clears the canvas and draws the bar filled to Ratio(frame).
func (a *Anim) DrawFrame(c animation.Canvas, frame uint64) error {
	c.Fill(animation.Off)

	if a.opts.CyclesBaseline > 0 {
		s := strconv.FormatUint(bar.Cycles(frame), 10)
		w, _ := c.Size()
		_, lw := tinyfont.LineWidth(font, s)
		tinyfont.WriteLine(c, font, (w-int16(lw))/2, a.opts.CyclesBaseline, s, animation.On)
	}

	if a.opts.Outline {
		if err := a.bar.DrawOutline(c); err != nil {
			return err
		}
	}
	return a.bar.Draw(bar.Ratio(frame), c)
}
