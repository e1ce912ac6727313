// Package agent implements an entity whose reply to Think depends on a
// replaceable mood. Callers never need to know which mood is active.
package agent

import (
	"sync"

	"github.com/rs/zerolog"
)

// Agent holds the current mood and delegates Think to it.
type Agent struct {
	mu    sync.RWMutex
	state Mood
	pub   EventPublisher
	log   zerolog.Logger
}

// Option configures an Agent at construction time.
type Option func(*Agent) error

// WithInitialMood starts the agent in m instead of DefaultMood.
func WithInitialMood(m Mood) Option {
	return func(a *Agent) error {
		if !m.Valid() {
			return invalidArgument("unknown initial mood " + string(m))
		}
		a.state = m
		return nil
	}
}

// WithLogger installs a structured logger for state transitions.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Agent) error {
		a.log = l
		return nil
	}
}

// New constructs an Agent in DefaultMood unless overridden by an option.
func New(opts ...Option) (*Agent, error) {
	a := &Agent{state: DefaultMood, pub: noopPublisher{}, log: zerolog.Nop()}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// SetEventPublisher installs p; nil restores the default no-op publisher.
func (a *Agent) SetEventPublisher(p EventPublisher) {
	if p == nil {
		p = noopPublisher{}
	}
	a.mu.Lock()
	a.pub = p
	a.mu.Unlock()
}

// State returns the current mood.
func (a *Agent) State() Mood {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// Think returns the current mood's thought. It does not change the agent.
func (a *Agent) Think() string {
	return a.State().Think()
}

// ChangeState replaces the current mood with m. Any mood may follow any other,
// including itself. Moods outside the closed set are rejected and leave the
// agent untouched.
func (a *Agent) ChangeState(m Mood) error {
	if !m.Valid() {
		return invalidArgument("unknown mood " + string(m))
	}
	a.mu.Lock()
	from := a.state
	a.state = m
	pub := a.pub
	a.mu.Unlock()

	a.log.Debug().Str("from", string(from)).Str("to", string(m)).Msg("agent state changed")
	pub.Publish(Event{Name: EventStateChanged, From: from, To: m})
	return nil
}
