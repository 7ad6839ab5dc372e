package progbar

import (
	"errors"
	"strconv"
	"time"

	"github.com/ajanata/progbar/internal/input"
	"github.com/ajanata/progbar/internal/mirror"
)

type Config struct {
	// BarX and BarY are the top-left corner of the bar.
	BarX, BarY   int16
	BarLength    int16
	BarThickness int16
	// Outline strokes the full bar extent so the empty part is visible.
	Outline bool
	// CyclesBaseline is the text baseline of the completed-fills counter. Zero hides the counter.
	CyclesBaseline int16

	Input input.Config

	// Flip mirrors everything drawn, for panels that are mounted upside down.
	Flip mirror.Axes

	// Splash is how long the boot log, and then the splash image, stay on screen during Init. Zero skips the splash.
	Splash time.Duration
}

// DefaultConfig is the layout of the original demo board: a 108x10 bar at (10, 35) on a 128x64 panel, advancing on
// every poll that sees the button held.
func DefaultConfig() Config {
	return Config{
		BarX:           10,
		BarY:           35,
		BarLength:      108,
		BarThickness:   10,
		Outline:        true,
		CyclesBaseline: 15,
		Input: input.Config{
			Mode:         input.ModeHold,
			PollInterval: time.Millisecond,
		},
		Splash: time.Second,
	}
}

// Validate checks the config against a w*h display.
func (c Config) Validate(w, h int16) error {
	if c.BarLength <= 0 || c.BarThickness <= 0 {
		return errors.New("bar must have positive length and thickness")
	}
	if c.BarX < 0 || c.BarY < 0 ||
		int(c.BarX)+int(c.BarLength) > int(w) || int(c.BarY)+int(c.BarThickness) > int(h) {
		return errors.New("bar does not fit on a " + strconv.Itoa(int(w)) + "x" + strconv.Itoa(int(h)) + " display")
	}
	if c.CyclesBaseline < 0 || c.CyclesBaseline >= h {
		return errors.New("cycle counter is off screen")
	}
	if c.Input.Mode != input.ModeHold && c.Input.Mode != input.ModePress {
		return errors.New("unknown input mode")
	}
	if c.Flip&^mirror.Both != 0 {
		return errors.New("unknown flip axes")
	}
	if c.Splash < 0 {
		return errors.New("negative splash time")
	}
	return nil
}
