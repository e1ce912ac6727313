// Package daemon wires one Notifier, one Agent and one House together and
// exposes them to the HTTP layer. Instances are constructed explicitly by
// cmd/patternd and passed down; nothing here is process-global.
package daemon

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"patternd/internal/agent"
	"patternd/internal/config"
	"patternd/internal/house"
	"patternd/internal/observer"
	"patternd/pkg/types"
)

// Daemon owns the process's domain objects.
type Daemon struct {
	notifier *observer.Notifier[string]
	history  *observer.Recorder[string]
	agent    *agent.Agent
	house    *house.House
	log      zerolog.Logger

	// historySub is the recorder's entry; ready tracks whether it is live.
	historySub observer.Subscription
	ready      atomic.Bool
}

// New builds a Daemon from cfg. Agent mood changes and house steps are
// broadcast through the notifier, and every broadcast is kept in a bounded
// history for GET /events.
func New(cfg config.Config, log zerolog.Logger) (*Daemon, error) {
	cfg = cfg.WithDefaults()
	mood, err := agent.ParseMood(cfg.DefaultMood)
	if err != nil {
		return nil, fmt.Errorf("default_mood: %w", err)
	}
	a, err := agent.New(agent.WithInitialMood(mood), agent.WithLogger(log.With().Str("component", "agent").Logger()))
	if err != nil {
		return nil, err
	}
	h, err := house.New(house.Config{PowerW: cfg.House.PowerW, PressurePSI: cfg.House.PressurePSI},
		log.With().Str("component", "house").Logger())
	if err != nil {
		return nil, err
	}
	d := &Daemon{
		notifier: observer.New[string](
			observer.WithLogger(log.With().Str("component", "notifier").Logger()),
			observer.WithOnChange(func(n int) { notifySubscribers.Set(float64(n)) }),
		),
		history: observer.NewRecorder[string](cfg.EventHistory),
		agent:   a,
		house:   h,
		log:     log,
	}
	sub, err := d.notifier.Subscribe(d.history)
	if err != nil {
		return nil, err
	}
	d.historySub = sub
	a.SetEventPublisher(agent.PublisherFunc(d.publishAgentEvent))
	h.SetPublisher(housePublisher{d})
	d.ready.Store(true)
	return d, nil
}

func (d *Daemon) publishAgentEvent(e agent.Event) {
	agentTransitionsTotal.WithLabelValues(string(e.From), string(e.To)).Inc()
	_ = d.Notify(context.Background(), fmt.Sprintf("agent %s: %s -> %s", e.Name, e.From, e.To))
}

type housePublisher struct{ d *Daemon }

func (p housePublisher) Publish(msg string) {
	_ = p.d.Notify(context.Background(), "house: "+msg)
}

// Notifier exposes the underlying notifier for in-process subscribers.
func (d *Daemon) Notifier() *observer.Notifier[string] { return d.notifier }

// Notify broadcasts msg and records delivery metrics.
func (d *Daemon) Notify(ctx context.Context, msg string) observer.Report {
	rep := d.notifier.Broadcast(ctx, msg)
	notifyBroadcastsTotal.Inc()
	notifyDeliveriesTotal.WithLabelValues("ok").Add(float64(rep.Attempted - len(rep.Failures)))
	notifyDeliveriesTotal.WithLabelValues("failed").Add(float64(len(rep.Failures)))
	if err := rep.Err(); err != nil {
		d.log.Warn().Err(err).Msg("broadcast had failing subscribers")
	}
	return rep
}

// Subscribe registers fn until the returned subscription is canceled.
func (d *Daemon) Subscribe(fn func(ctx context.Context, msg string) error) (observer.Subscription, error) {
	return d.notifier.SubscribeFunc(fn)
}

// Events returns the recent broadcast history, oldest first.
func (d *Daemon) Events() []string { return d.history.Values() }

func (d *Daemon) Agent() types.AgentResponse {
	m := d.agent.State()
	return types.AgentResponse{State: string(m), Thought: m.Think()}
}

// ChangeState parses state and applies it to the agent.
func (d *Daemon) ChangeState(state string) (types.AgentResponse, error) {
	m, err := agent.ParseMood(state)
	if err != nil {
		return types.AgentResponse{}, err
	}
	if err := d.agent.ChangeState(m); err != nil {
		return types.AgentResponse{}, err
	}
	return d.Agent(), nil
}

func (d *Daemon) House() types.HouseResponse { return houseResponse(d.house.Status()) }

func (d *Daemon) HouseOn() types.HouseResponse {
	d.house.TurnOnSystems()
	return d.House()
}

func (d *Daemon) HouseOff() types.HouseResponse {
	d.house.TurnOffSystems()
	return d.House()
}

// Ready reports whether broadcasts are being recorded. It turns true once New
// has wired everything and false again after Close.
func (d *Daemon) Ready() bool { return d.ready.Load() }

// Close stops recording history and marks the daemon not ready. Stream
// subscribers are left to their own contexts.
func (d *Daemon) Close() {
	d.ready.Store(false)
	d.historySub.Unsubscribe()
}

func houseResponse(s house.Status) types.HouseResponse {
	return types.HouseResponse{
		Electric: types.ElectricStatus{On: s.Electric.On, PowerW: s.Electric.PowerW},
		Plumbing: types.PlumbingStatus{On: s.Plumbing.On, PressurePSI: s.Plumbing.PressurePSI},
	}
}
