package choreo

// EventType identifies a kind of lifecycle event.
type EventType uint8

const (
	EventStepStarted       EventType = iota // fires when the driver begins a step
	EventStepCompleted                      // fires when a step's completion signal arrives
	EventLoopRestarted                      // fires when a loop resets the state and schedules a restart
	EventSequenceCompleted                  // fires when the driver runs past the last step
)

var eventNames = [...]string{"step-started", "step-completed", "loop-restarted", "sequence-completed"}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// EventSink is the interface for optional event forwarding, for example into
// an ECS world. When set on an Animator, lifecycle events are emitted to it
// synchronously from inside Play and Update.
type EventSink interface {
	EmitEvent(event Event)
}

// Event carries lifecycle data for an EventSink.
type Event struct {
	Type EventType
	// Index is the step slot the event concerns; for EventSequenceCompleted
	// it is the number of steps.
	Index int
	// Kind is the step's kind. Only meaningful for step and loop events.
	Kind      StepKind
	Iteration int
	Time      float64 // timeline seconds
}

// EventSinkFunc adapts a plain function to the EventSink interface.
type EventSinkFunc func(Event)

// EmitEvent calls f(event).
func (f EventSinkFunc) EmitEvent(event Event) { f(event) }
