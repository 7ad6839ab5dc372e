package progbar

import (
	"errors"
	"runtime"
	"strconv"
	"time"

	"github.com/ajanata/textbuf"
	"tinygo.org/x/drivers"

	"github.com/ajanata/progbar/internal/animation"
	"github.com/ajanata/progbar/internal/animation/progress"
	"github.com/ajanata/progbar/internal/animation/static"
	"github.com/ajanata/progbar/internal/bar"
	"github.com/ajanata/progbar/internal/input"
	"github.com/ajanata/progbar/internal/media"
	"github.com/ajanata/progbar/internal/mirror"
	"github.com/ajanata/progbar/internal/surface"
)

type Demo struct {
	cfg     Config
	surface *surface.Surface
	trigger *input.Trigger
	status  Blinker
	log     Logger
	fatal   func(error)

	bootText *textbuf.Buffer
	splash   animation.Animation
	anim     animation.Animation

	init    bool
	start   time.Time
	state   State
	counter uint64

	sleep func(time.Duration)
}

type Blinker interface {
	Low()
	High()
}

// New binds the demo to its hardware. display must already be configured; button is read by the input trigger and
// status may be nil if the board has no spare LED.
func New(cfg Config, display drivers.Displayer, button input.Pin, status Blinker) (*Demo, error) {
	if display == nil {
		return nil, errors.New("must provide display")
	}
	if button == nil {
		return nil, errors.New("must provide button")
	}
	w, h := display.Size()
	if err := cfg.Validate(w, h); err != nil {
		return nil, errors.New("config: " + err.Error())
	}

	trig, err := input.New(button, cfg.Input)
	if err != nil {
		return nil, errors.New("input: " + err.Error())
	}
	b, err := bar.New(cfg.BarX, cfg.BarY, cfg.BarLength, cfg.BarThickness)
	if err != nil {
		return nil, errors.New("bar: " + err.Error())
	}

	if cfg.Flip != mirror.None {
		display = mirror.New(display, cfg.Flip)
	}

	d := &Demo{
		cfg:     cfg,
		surface: surface.New(display),
		trigger: trig,
		status:  status,
		log:     NewPrintLogger(false),
		anim: progress.New(b, progress.Options{
			Outline:        cfg.Outline,
			CyclesBaseline: cfg.CyclesBaseline,
		}),
		start: time.Now(),
		sleep: time.Sleep,
	}
	d.fatal = d.halt
	return d, nil
}

// SetLogger replaces the default println logger.
func (d *Demo) SetLogger(l Logger) {
	if l != nil {
		d.log = l
	}
}

// SetFatalHandler replaces what Run does with an error from RunTick. The default prints the error and blinks the
// status LED forever. The handler is not expected to return; if it does, Run carries on with the next frame.
func (d *Demo) SetFatalHandler(f func(error)) {
	if f != nil {
		d.fatal = f
	}
}

func (d *Demo) Init() error {
	if d.init {
		return errors.New("already initialized")
	}
	d.log.Info("starting init")
	d.blink()

	var err error
	d.bootText, err = textbuf.New(d.surface, textbuf.FontSize6x8)
	if err != nil {
		return errors.New("init boot text: " + err.Error())
	}

	w, h := d.bootText.Size()
	if w < 15 || h < 4 {
		return errors.New("unusably small display")
	}

	err = d.bootText.SetLineInverse(0, "PROGBAR BOOTING")
	if err != nil {
		return errors.New("boot msg: " + err.Error())
	}
	// we already validated it has at least 4 lines
	_ = d.bootText.SetY(1)
	_ = d.bootText.Println("Input: " + d.cfg.Input.Mode.String())
	mem := runtime.MemStats{}
	runtime.ReadMemStats(&mem)
	_ = d.bootText.Println(strconv.Itoa(int(mem.HeapSys/1024)) + "k RAM, " + strconv.Itoa(int(mem.HeapIdle/1024)) + "k free")
	_ = d.bootText.Println("Booted in " + time.Since(d.start).Round(100*time.Millisecond).String())
	d.log.Debug("boot log written")

	if d.cfg.Splash > 0 {
		d.splash, err = static.New(media.TypeSplash, "default")
		if err != nil {
			_ = d.bootText.PrintlnInverse(err.Error())
			return errors.New("load splash: " + err.Error())
		}
		d.sleep(d.cfg.Splash)
		if err = d.splash.Activate(d.surface); err != nil {
			return errors.New("splash: " + err.Error())
		}
		if err = d.surface.Show(); err != nil {
			return errors.New("show splash: " + err.Error())
		}
		d.sleep(d.cfg.Splash)
	}

	if err = d.anim.Activate(d.surface); err != nil {
		return errors.New("activate: " + err.Error())
	}
	if err = d.surface.Show(); err != nil {
		return errors.New("clear: " + err.Error())
	}

	d.blink()
	d.init = true
	d.state = StateWaitingForInput
	d.log.Infof("init complete in %s", time.Since(d.start).Round(100*time.Millisecond).String())
	return nil
}

// Run does not return. It alternates between waiting for the button and rendering one frame.
func (d *Demo) Run() {
	d.RunUntil(nil)
}

// RunUntil is Run for hosts that need to stop the loop: it returns once stop is closed. A nil stop never closes.
func (d *Demo) RunUntil(stop <-chan struct{}) {
	for d.WaitUntil(stop) {
		if err := d.RunTick(); err != nil {
			d.fatal(err)
		}
	}
}

// Wait blocks until the button says the next frame should be drawn.
func (d *Demo) Wait() {
	d.WaitUntil(nil)
}

// WaitUntil is Wait that gives up when stop is closed. It reports whether the button fired.
func (d *Demo) WaitUntil(stop <-chan struct{}) bool {
	d.state = StateWaitingForInput
	d.statusOff()
	return d.trigger.WaitUntil(stop)
}

// RunTick draws and flushes a single frame, advancing the counter first.
func (d *Demo) RunTick() error {
	if !d.init {
		return errors.New("not initialized")
	}

	d.state = StateRendering
	d.statusOn()
	d.counter++

	if err := d.anim.DrawFrame(d.surface, d.counter); err != nil {
		return errors.New("draw: " + err.Error())
	}
	if err := d.surface.Show(); err != nil {
		return errors.New("show: " + err.Error())
	}

	d.log.Debugf("frame %d at %d%%", d.counter, d.counter%bar.FramesPerCycle)
	if d.counter%bar.FramesPerCycle == 0 {
		d.log.Infof("cycle %d complete", bar.Cycles(d.counter))
	}
	return nil
}

// Counter returns the number of frames rendered so far.
func (d *Demo) Counter() uint64 { return d.counter }

func (d *Demo) State() State { return d.state }

// unfortunately you can't recover runtime panics in tinygo, so this is just going to be used for things we detect
// that are fatal
func (d *Demo) halt(err error) {
	for {
		d.haltStep(err)
	}
}

// haltStep is one round of halt. Boards without a status LED still wait out a blink so the console is not flooded.
func (d *Demo) haltStep(err error) {
	println(err.Error())
	if d.status == nil {
		d.sleep(200 * time.Millisecond)
		return
	}
	d.blink()
}

func (d *Demo) blink() {
	if d.status == nil {
		return
	}
	d.statusOn()
	d.sleep(100 * time.Millisecond)
	d.statusOff()
	d.sleep(100 * time.Millisecond)
}

func (d *Demo) statusOn() {
	if d.status != nil {
		d.status.High()
	}
}

func (d *Demo) statusOff() {
	if d.status != nil {
		d.status.Low()
	}
}
