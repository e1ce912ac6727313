package agent

// Event represents an agent lifecycle event.
type Event struct {
	Name string
	From Mood
	To   Mood
}

// EventStateChanged is published after every successful ChangeState.
const EventStateChanged = "state_changed"

// EventPublisher receives events from the agent. Implementations should be
// lightweight and non-blocking; Publish must not panic.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}

// PublisherFunc adapts a function to EventPublisher.
type PublisherFunc func(Event)

func (f PublisherFunc) Publish(e Event) { f(e) }
