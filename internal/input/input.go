// Package input turns a digital input pin into frame advance triggers.
package input

import (
	"errors"
	"runtime"
	"time"
)

// Pin is a digital input. machine.Pin satisfies it.
type Pin interface {
	Get() bool
}

type Mode uint8

const (
	// ModeHold fires on every poll that reads the pin active, so holding the button keeps advancing.
	ModeHold Mode = iota
	// ModePress fires once when the pin becomes active and not again until it has been released.
	ModePress
)

func (m Mode) String() string {
	switch m {
	case ModeHold:
		return "hold"
	case ModePress:
		return "press"
	default:
		return "INVALID"
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "hold":
		return ModeHold, nil
	case "press":
		return ModePress, nil
	default:
		return 0, errors.New("unknown input mode " + s)
	}
}

type Config struct {
	Mode Mode
	// ActiveLow inverts the pin, for buttons wired to ground with a pull-up.
	ActiveLow bool
	// PollInterval is how long Wait sleeps between reads. Zero yields to the scheduler instead of sleeping.
	PollInterval time.Duration
	// Debounce is how long a new level must be stable before ModePress believes it. Ignored by ModeHold.
	Debounce time.Duration
}

type Trigger struct {
	pin Pin
	cfg Config

	raw     bool
	stable  bool
	changed time.Time

	// swapped out by tests
	sleep func(time.Duration)
	now   func() time.Time
}

func New(pin Pin, cfg Config) (*Trigger, error) {
	if pin == nil {
		return nil, errors.New("must provide input pin")
	}
	if cfg.Mode > ModePress {
		return nil, errors.New("invalid input mode")
	}
	if cfg.PollInterval < 0 || cfg.Debounce < 0 {
		return nil, errors.New("negative input timing")
	}
	return &Trigger{
		pin:   pin,
		cfg:   cfg,
		sleep: time.Sleep,
		now:   time.Now,
	}, nil
}

// Active reports the current logical level of the pin.
func (t *Trigger) Active() bool {
	return t.pin.Get() != t.cfg.ActiveLow
}

// Poll reads the pin once and reports whether a frame should advance. It never blocks.
func (t *Trigger) Poll() bool {
	level := t.Active()
	if t.cfg.Mode == ModeHold {
		return level
	}

	now := t.now()
	if level != t.raw {
		t.raw = level
		t.changed = now
	}
	if t.raw == t.stable || now.Sub(t.changed) < t.cfg.Debounce {
		return false
	}
	t.stable = t.raw
	return t.stable
}

// Wait blocks until Poll fires, sleeping PollInterval between reads.
func (t *Trigger) Wait() {
	t.WaitUntil(nil)
}

// WaitUntil is Wait that also returns, reporting false, once stop is closed. A nil stop never closes.
func (t *Trigger) WaitUntil(stop <-chan struct{}) bool {
	for {
		select {
		case <-stop:
			return false
		default:
		}
		if t.Poll() {
			return true
		}
		if t.cfg.PollInterval == 0 {
			runtime.Gosched()
			continue
		}
		t.sleep(t.cfg.PollInterval)
	}
}
