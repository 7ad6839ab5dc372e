// progbar-sim runs the progress bar demo against a terminal instead of a panel. Space presses the button, q or Esc
// quits.
package main

import (
	"errors"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/ajanata/progbar"
	"github.com/ajanata/progbar/internal/input"
	"github.com/ajanata/progbar/internal/mirror"
)

var (
	mode      string
	poll      time.Duration
	debounce  time.Duration
	holdFor   time.Duration
	noOutline bool
	noCycles  bool
	splash    time.Duration
	flip      bool
)

var rootCmd = &cobra.Command{
	Use:   "progbar-sim",
	Short: "Run the progress bar demo in a terminal",
	Args:  cobra.NoArgs,
	RunE:  runSim,
}

func init() {
	def := progbar.DefaultConfig()
	rootCmd.Flags().StringVarP(&mode, "mode", "m", def.Input.Mode.String(), "button mode: hold or press")
	rootCmd.Flags().DurationVar(&poll, "poll", def.Input.PollInterval, "button poll interval")
	rootCmd.Flags().DurationVar(&debounce, "debounce", def.Input.Debounce, "press mode debounce time")
	rootCmd.Flags().DurationVar(&holdFor, "hold", 150*time.Millisecond, "how long each key press holds the button down")
	rootCmd.Flags().BoolVar(&noOutline, "no-outline", false, "do not outline the bar")
	rootCmd.Flags().BoolVar(&noCycles, "no-cycles", false, "do not show the completed cycle counter")
	rootCmd.Flags().BoolVar(&flip, "upside-down", false, "rotate the panel 180 degrees")
	rootCmd.Flags().DurationVar(&splash, "splash", def.Splash, "how long to show the boot log and splash")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func configFromFlags() (progbar.Config, error) {
	cfg := progbar.DefaultConfig()
	m, err := input.ParseMode(mode)
	if err != nil {
		return cfg, err
	}
	cfg.Input.Mode = m
	cfg.Input.PollInterval = poll
	cfg.Input.Debounce = debounce
	cfg.Outline = !noOutline
	if noCycles {
		cfg.CyclesBaseline = 0
	}
	cfg.Splash = splash
	if flip {
		cfg.Flip = mirror.Both
	}
	return cfg, nil
}

func runSim(_ *cobra.Command, _ []string) error {
	cfg, err := configFromFlags()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.New("open terminal: " + err.Error())
	}
	if err := screen.Init(); err != nil {
		return errors.New("init terminal: " + err.Error())
	}
	defer screen.Fini()

	s, err := newSim(screen, cfg, holdFor)
	if err != nil {
		return err
	}
	return s.run()
}

// sim owns one demo bound to a terminal.
type sim struct {
	screen tcell.Screen
	panel  *terminalPanel
	button *virtualButton
	demo   *progbar.Demo
	stop   chan struct{}
}

func newSim(screen tcell.Screen, cfg progbar.Config, hold time.Duration) (*sim, error) {
	s := &sim{
		screen: screen,
		panel:  newTerminalPanel(screen),
		button: &virtualButton{hold: hold},
		stop:   make(chan struct{}),
	}
	d, err := progbar.New(cfg, s.panel, s.button, nil)
	if err != nil {
		return nil, err
	}
	d.SetLogger(progbar.NopLogger{})
	d.SetFatalHandler(func(err error) {
		_ = screen.PostEvent(tcell.NewEventInterrupt(err))
		<-s.stop
	})
	if err := d.Init(); err != nil {
		return nil, err
	}
	s.demo = d
	return s, nil
}

// run drives the demo until the user quits or a frame fails. The demo loop has stopped by the time run returns.
func (s *sim) run() error {
	looped := make(chan struct{})
	go func() {
		s.demo.RunUntil(s.stop)
		close(looped)
	}()
	defer func() {
		close(s.stop)
		<-looped
	}()

	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventInterrupt:
			if err, ok := ev.Data().(error); ok {
				return err
			}
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				return nil
			case ev.Rune() == ' ':
				s.button.press(time.Now())
			}
		}
	}
}
