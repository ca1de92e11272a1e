package sprout

// EventSink is the interface for optional outside observers of the state
// machine. When set on a Machine, lifecycle events are forwarded to it.
// The sprout/ecs package provides a Donburi-backed implementation.
type EventSink interface {
	EmitEvent(event Event)
}

// EventType identifies a kind of lifecycle event.
type EventType uint8

const (
	EventStateExit  EventType = iota // fires after a state's Cleanup
	EventStateEnter                  // fires after a state's Initialize
	EventQuit                        // fires when Quit is requested
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventStateExit:
		return "state-exit"
	case EventStateEnter:
		return "state-enter"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event carries lifecycle data for an EventSink.
type Event struct {
	Type  EventType
	State int    // index of the state exited or entered
	Frame uint64 // frame counter when the event fired
}
