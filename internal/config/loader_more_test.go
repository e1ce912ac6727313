package config

import (
	"strings"
	"testing"

	"patternd/internal/agent"
)

func TestLoad_ParseFailuresPerFormat(t *testing.T) {
	d := t.TempDir()
	files := map[string]string{
		"bad.yaml": "house:\n  power_w: [1, 2\n",
		"bad.json": `{"house": {"power_w": "lots"}}`,
		"bad.toml": "default_mood = sad\n",
	}
	for name, body := range files {
		p := writeTempFile(t, d, name, body)
		if _, err := Load(p); err == nil || !strings.Contains(err.Error(), "parse") {
			t.Fatalf("%s: err = %v, want parse error", name, err)
		}
	}
	if _, err := Load(d + "/missing.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoad_RejectsUnknownMood(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", "default_mood = \"grumpy\"\n")
	_, err := Load(p)
	if !agent.IsInvalidArgument(err) || !strings.Contains(err.Error(), "default_mood") {
		t.Fatalf("err = %v", err)
	}
	p = writeTempFile(t, d, "ok.yaml", "default_mood: \" SAD \"\n")
	if _, err := Load(p); err != nil {
		t.Fatalf("mood should be normalized by the agent parser: %v", err)
	}
}

func TestLoad_RejectsNegativeLevels(t *testing.T) {
	d := t.TempDir()
	cases := map[string]string{
		"power.yaml":    "house:\n  power_w: -5\n",
		"pressure.json": `{"house": {"pressure_psi": -1}}`,
		"history.toml":  "event_history = -3\n",
		"body.yaml":     "max_body_bytes: -1\n",
	}
	for name, body := range cases {
		p := writeTempFile(t, d, name, body)
		if _, err := Load(p); err == nil || !strings.Contains(err.Error(), "must not be negative") {
			t.Fatalf("%s: err = %v", name, err)
		}
	}
}

func TestLoad_TraceToggle(t *testing.T) {
	d := t.TempDir()
	cfg, err := Load(writeTempFile(t, d, "cfg.toml", "trace = true\n[house]\npressure_psi = 0\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Trace || cfg.House.PressurePSI != 0 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if Default().Trace {
		t.Fatalf("tracing should be off by default")
	}
}
