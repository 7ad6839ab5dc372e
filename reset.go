package progbar

import (
	"time"
)

// OutputPin is a digital output. machine.Pin satisfies it once configured as an output.
type OutputPin interface {
	Low()
	High()
}

// DisplayResetHold is how long the display controller's reset line is held low.
const DisplayResetHold = 10 * time.Millisecond

// PulseReset runs a display controller reset sequence on pin: released, asserted low for hold, then released again.
// sleep is normally time.Sleep.
func PulseReset(pin OutputPin, hold time.Duration, sleep func(time.Duration)) {
	pin.High()
	pin.Low()
	sleep(hold)
	pin.High()
}
