package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", home)
	}
	return home
}

func TestExpandHome(t *testing.T) {
	home := withHome(t)
	if got, err := ExpandHome("/tmp"); err != nil || got != "/tmp" {
		t.Fatalf("got %q err=%v", got, err)
	}
	if got, err := ExpandHome(""); err != nil || got != "" {
		t.Fatalf("got %q err=%v", got, err)
	}
	if p, err := ExpandHome("~"); err != nil || p != home {
		t.Fatalf("ExpandHome(~) = %q, %v; want %q", p, err, home)
	}
	exp, err := ExpandHome("~/cfg.yaml")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if filepath.Base(exp) != "cfg.yaml" || filepath.Dir(exp) != home {
		t.Fatalf("unexpected expanded path: %q", exp)
	}
}

func TestFirstExisting(t *testing.T) {
	home := withHome(t)
	p := filepath.Join(home, "present.yaml")
	if err := os.WriteFile(p, []byte("addr: :1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := FirstExisting("", "~/missing.yaml", "~/present.yaml"); got != p {
		t.Fatalf("FirstExisting = %q, want %q", got, p)
	}
	if got := FirstExisting("~/missing.yaml"); got != "" {
		t.Fatalf("FirstExisting = %q, want empty", got)
	}
	if !PathExists(home) || PathExists(filepath.Join(home, "nope")) {
		t.Fatalf("PathExists mismatch")
	}
}
