package memory

import "github.com/vovakirdan/tui-memory/internal/core"

// CellID identifies one clickable cell in the grid (0..N-1).
type CellID int

// NoCell marks the absence of a highlighted cell.
const NoCell CellID = -1

// Option is a menu choice carried by a Select event.
type Option string

// Menu choices. Difficulty choices use the difficulty name as their option.
const (
	OptionStart   Option = "start"
	OptionRestart Option = "restart"
	OptionNormal  Option = Option(Normal)
	OptionFast    Option = Option(Fast)
)

// EventKind distinguishes input events.
type EventKind int

const (
	EventQuit EventKind = iota
	EventClick
	EventSelect
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "Quit"
	case EventClick:
		return "Click"
	case EventSelect:
		return "Select"
	default:
		return "Unknown"
	}
}

// Event is a single input event produced by an InputSource.
type Event struct {
	Kind   EventKind
	Point  core.Point // Canvas position for EventClick
	Option Option     // Menu choice for EventSelect
}

// QuitEvent requests termination of the whole process.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// ClickEvent reports a click at canvas position p.
func ClickEvent(p core.Point) Event {
	return Event{Kind: EventClick, Point: p}
}

// SelectEvent reports a menu choice made without pointing at a button.
func SelectEvent(o Option) Event {
	return Event{Kind: EventSelect, Option: o}
}

// Renderer draws the game. Calls are side-effect only; the machine issues a
// full set of draw calls once per tick.
type Renderer interface {
	// DrawGrid draws every cell. highlighted is NoCell when nothing is lit.
	DrawGrid(cells []Cell, highlighted CellID)
	DrawScore(score int)
	DrawMenu(menu Menu)
}

// InputSource is polled once per tick. Poll never blocks; it returns false
// when no event is pending.
type InputSource interface {
	Poll() (Event, bool)
}

// Sound plays feedback effects. It is optional: a nil Sound is silent.
type Sound interface {
	Click()
	GameOver()
}

type nopSound struct{}

func (nopSound) Click()    {}
func (nopSound) GameOver() {}

// EventQueue is a FIFO InputSource for hosts that receive input on the same
// goroutine that ticks the machine. A quit request skips ahead of pending
// events so the next poll always sees it.
type EventQueue struct {
	events []Event
}

// Push appends an event to the queue. Quit events go to the front.
func (q *EventQueue) Push(ev Event) {
	if ev.Kind == EventQuit {
		q.events = append([]Event{ev}, q.events...)
		return
	}
	q.events = append(q.events, ev)
}

// Poll removes and returns the oldest pending event.
func (q *EventQueue) Poll() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
