package house

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type linePublisher struct{ lines []string }

func (p *linePublisher) Publish(msg string) { p.lines = append(p.lines, msg) }

func TestHouse_OnOffSequence(t *testing.T) {
	var logBuf bytes.Buffer
	h, err := New(Config{}, zerolog.New(&logBuf))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	pub := &linePublisher{}
	h.SetPublisher(pub)

	h.TurnOnSystems()
	st := h.Status()
	if !st.Electric.On || st.Electric.PowerW != 100 || !st.Plumbing.On || st.Plumbing.PressurePSI != 300 {
		t.Fatalf("status after on = %+v", st)
	}
	h.TurnOffSystems()
	st = h.Status()
	if st.Electric.On || st.Electric.PowerW != 0 || st.Plumbing.On || st.Plumbing.PressurePSI != 0 {
		t.Fatalf("status after off = %+v", st)
	}

	want := []string{
		"Power set to 100",
		"Electric system turned on with power 100 W",
		"Pressure set to 300",
		"Plumbing system turned on with pressure 300 psi",
		"Electric system turned off",
		"Plumbing system turned off",
	}
	if strings.Join(pub.lines, "|") != strings.Join(want, "|") {
		t.Fatalf("steps = %q\nwant  %q", pub.lines, want)
	}
	if !strings.Contains(logBuf.String(), "Plumbing system turned off") {
		t.Fatalf("steps not logged: %s", logBuf.String())
	}
}

func TestHouse_CustomLevels(t *testing.T) {
	h, err := New(Config{PowerW: 220, PressurePSI: 45}, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.TurnOnSystems()
	st := h.Status()
	if st.Electric.PowerW != 220 || st.Plumbing.PressurePSI != 45 {
		t.Fatalf("status = %+v", st)
	}
	if err := h.SetPower(50); err != nil {
		t.Fatalf("SetPower: %v", err)
	}
	if h.Status().Electric.PowerW != 50 {
		t.Fatalf("SetPower not applied")
	}
}

func TestHouse_RejectsNegativeLevels(t *testing.T) {
	if _, err := New(Config{PowerW: -1}, zerolog.Nop()); !IsInvalidArgument(err) {
		t.Fatalf("New err = %v", err)
	}
	h, _ := New(Config{}, zerolog.Nop())
	if err := h.SetPower(-5); !IsInvalidArgument(err) {
		t.Fatalf("SetPower err = %v", err)
	}
	if err := h.SetPressure(-5); !IsInvalidArgument(err) {
		t.Fatalf("SetPressure err = %v", err)
	}
}
