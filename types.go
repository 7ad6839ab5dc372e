package progbar

// State is what the main loop is doing right now.
type State uint8

const (
	StateWaitingForInput State = iota
	StateRendering
)

func (s State) String() string {
	switch s {
	case StateWaitingForInput:
		return "waiting"
	case StateRendering:
		return "rendering"
	default:
		return "INVALID"
	}
}
