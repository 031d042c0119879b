package core

// EventKind identifies an inbound event from a presenter.
type EventKind int

const (
	EventNone        EventKind = iota
	EventPointerMove           // Pointer moved; X holds the field x-coordinate
	EventClick                 // Primary button pressed
	EventTick                  // Fixed simulation step elapsed
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventPointerMove:
		return "PointerMove"
	case EventClick:
		return "Click"
	case EventTick:
		return "Tick"
	default:
		return "Unknown"
	}
}

// Event is one input delivered to the game, already translated into field units.
// Presenters build these from mouse, keyboard and timer messages.
type Event struct {
	Kind EventKind
	X    float64
}

// PointerMove builds a pointer-move event at field x-coordinate x.
func PointerMove(x float64) Event {
	return Event{Kind: EventPointerMove, X: x}
}

// Click builds a click event.
func Click() Event {
	return Event{Kind: EventClick}
}

// Tick builds a tick event.
func Tick() Event {
	return Event{Kind: EventTick}
}
