// Package house fronts two building subsystems, plumbing and electric, with a
// single House type that switches them on and off in a fixed order.
package house

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Defaults applied by TurnOnSystems when Config fields are unset.
const (
	defaultPowerW      = 100
	defaultPressurePSI = 300
)

// ErrInvalidArgument is wrapped by errors for negative levels.
var ErrInvalidArgument = errors.New("invalid argument")

// IsInvalidArgument reports whether err was caused by bad input.
func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }

// Publisher receives one human-readable line per subsystem step.
type Publisher interface {
	Publish(msg string)
}

type noopPublisher struct{}

func (noopPublisher) Publish(string) {}

// PlumbingSystem tracks water pressure in psi.
type PlumbingSystem struct {
	on       bool
	pressure int
}

// ElectricSystem tracks supplied power in watts.
type ElectricSystem struct {
	on    bool
	power int
}

// Config sets the levels used by TurnOnSystems. Zero values mean defaults.
type Config struct {
	PowerW      int
	PressurePSI int
}

// Status is a read-only projection of the house.
type Status struct {
	Electric ElectricStatus `json:"electric"`
	Plumbing PlumbingStatus `json:"plumbing"`
}

type ElectricStatus struct {
	On     bool `json:"on"`
	PowerW int  `json:"power_w"`
}

type PlumbingStatus struct {
	On          bool `json:"on"`
	PressurePSI int  `json:"pressure_psi"`
}

// House owns one plumbing and one electric system.
type House struct {
	mu       sync.Mutex
	cfg      Config
	plumbing PlumbingSystem
	electric ElectricSystem
	pub      Publisher
	log      zerolog.Logger
}

// New constructs a House with all systems off.
func New(cfg Config, log zerolog.Logger) (*House, error) {
	if cfg.PowerW < 0 || cfg.PressurePSI < 0 {
		return nil, fmt.Errorf("house: negative level in config %+v: %w", cfg, ErrInvalidArgument)
	}
	if cfg.PowerW == 0 {
		cfg.PowerW = defaultPowerW
	}
	if cfg.PressurePSI == 0 {
		cfg.PressurePSI = defaultPressurePSI
	}
	return &House{cfg: cfg, pub: noopPublisher{}, log: log}, nil
}

// SetPublisher installs p; nil restores the default no-op publisher.
func (h *House) SetPublisher(p Publisher) {
	if p == nil {
		p = noopPublisher{}
	}
	h.mu.Lock()
	h.pub = p
	h.mu.Unlock()
}

// TurnOnSystems powers the electric system, then pressurizes plumbing.
func (h *House) TurnOnSystems() {
	h.mu.Lock()
	steps := []string{
		h.electric.setPower(h.cfg.PowerW),
		h.electric.turnOn(),
		h.plumbing.setPressure(h.cfg.PressurePSI),
		h.plumbing.turnOn(),
	}
	pub := h.pub
	h.mu.Unlock()
	h.report(pub, steps...)
}

// TurnOffSystems shuts electric down, then plumbing. Both reset to zero.
func (h *House) TurnOffSystems() {
	h.mu.Lock()
	steps := []string{h.electric.turnOff(), h.plumbing.turnOff()}
	pub := h.pub
	h.mu.Unlock()
	h.report(pub, steps...)
}

// SetPower overrides the electric level directly.
func (h *House) SetPower(watts int) error {
	if watts < 0 {
		return fmt.Errorf("house: power %d W: %w", watts, ErrInvalidArgument)
	}
	h.mu.Lock()
	msg := h.electric.setPower(watts)
	pub := h.pub
	h.mu.Unlock()
	h.report(pub, msg)
	return nil
}

// SetPressure overrides the plumbing level directly.
func (h *House) SetPressure(psi int) error {
	if psi < 0 {
		return fmt.Errorf("house: pressure %d psi: %w", psi, ErrInvalidArgument)
	}
	h.mu.Lock()
	msg := h.plumbing.setPressure(psi)
	pub := h.pub
	h.mu.Unlock()
	h.report(pub, msg)
	return nil
}

func (h *House) Status() Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Status{
		Electric: ElectricStatus{On: h.electric.on, PowerW: h.electric.power},
		Plumbing: PlumbingStatus{On: h.plumbing.on, PressurePSI: h.plumbing.pressure},
	}
}

// report runs without h.mu so publishers may read Status.
func (h *House) report(pub Publisher, steps ...string) {
	for _, msg := range steps {
		h.log.Info().Msg(msg)
		pub.Publish(msg)
	}
}

func (p *PlumbingSystem) setPressure(psi int) string {
	p.pressure = psi
	return fmt.Sprintf("Pressure set to %d", psi)
}

func (p *PlumbingSystem) turnOn() string {
	p.on = true
	return fmt.Sprintf("Plumbing system turned on with pressure %d psi", p.pressure)
}

func (p *PlumbingSystem) turnOff() string {
	p.on = false
	p.pressure = 0
	return "Plumbing system turned off"
}

func (e *ElectricSystem) setPower(watts int) string {
	e.power = watts
	return fmt.Sprintf("Power set to %d", watts)
}

func (e *ElectricSystem) turnOn() string {
	e.on = true
	return fmt.Sprintf("Electric system turned on with power %d W", e.power)
}

func (e *ElectricSystem) turnOff() string {
	e.on = false
	e.power = 0
	return "Electric system turned off"
}
