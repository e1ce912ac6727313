package proxy

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newPerson(t *testing.T, buf *bytes.Buffer) (*Guard, *Record) {
	t.Helper()
	rec := NewRecord(map[string]any{"name": "Yiannis Doe", "age": 30, "nationality": "Greek"})
	g, err := New(rec, zerolog.New(buf))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g, rec
}

func TestGuard_ReadsKnownAndRejectsUnknown(t *testing.T) {
	var buf bytes.Buffer
	g, _ := newPerson(t, &buf)
	v, err := g.Get("name")
	if err != nil || v != "Yiannis Doe" {
		t.Fatalf("Get(name) = %v, %v", v, err)
	}
	if !strings.Contains(buf.String(), `"message":"reading property"`) || !strings.Contains(buf.String(), `"property":"name"`) {
		t.Fatalf("read not logged: %s", buf.String())
	}
	if _, err := g.Get("email"); !IsInvalidArgument(err) || !strings.Contains(err.Error(), "email") {
		t.Fatalf("Get(email) err = %v", err)
	}
}

func TestGuard_AgeMustBeNumeric(t *testing.T) {
	var buf bytes.Buffer
	g, rec := newPerson(t, &buf)
	if err := g.Set("age", 31); err != nil {
		t.Fatalf("Set(age, 31): %v", err)
	}
	if err := g.Set("age", 31.5); err != nil {
		t.Fatalf("Set(age, 31.5): %v", err)
	}
	for _, bad := range []any{"31", nil, true} {
		if err := g.Set("age", bad); !IsInvalidArgument(err) {
			t.Fatalf("Set(age, %v) err = %v", bad, err)
		}
	}
	if v, _ := rec.Get("age"); v != 31.5 {
		t.Fatalf("rejected write reached the store: age=%v", v)
	}
}

func TestGuard_NameNeedsThreeCharacters(t *testing.T) {
	var buf bytes.Buffer
	g, rec := newPerson(t, &buf)
	if err := g.Set("name", "jo"); !IsInvalidArgument(err) {
		t.Fatalf("Set(name, jo) err = %v", err)
	}
	if err := g.Set("name", 42); !IsInvalidArgument(err) {
		t.Fatalf("Set(name, 42) err = %v", err)
	}
	if v, _ := rec.Get("name"); v != "Yiannis Doe" {
		t.Fatalf("rejected write reached the store: name=%v", v)
	}
	// counted in characters, not bytes
	if err := g.Set("name", "Żoë"); err != nil {
		t.Fatalf("Set(name, Żoë): %v", err)
	}
	if !strings.Contains(buf.String(), `"message":"write rejected"`) || !strings.Contains(buf.String(), `"message":"setting property"`) {
		t.Fatalf("writes not logged: %s", buf.String())
	}
}

func TestGuard_OtherWritesPassThrough(t *testing.T) {
	g, rec := newPerson(t, &bytes.Buffer{})
	if err := g.Set("email", "y@doe.example"); err != nil {
		t.Fatalf("Set(email): %v", err)
	}
	if v, err := g.Get("email"); err != nil || v != "y@doe.example" {
		t.Fatalf("Get(email) = %v, %v", v, err)
	}
	if got := strings.Join(rec.Keys(), ","); got != "age,email,name,nationality" {
		t.Fatalf("Keys = %s", got)
	}
}

type brokenStore struct{ err error }

func (b brokenStore) Get(string) (any, error) { return nil, b.err }
func (b brokenStore) Set(string, any) error   { return b.err }

func TestGuard_PassesStoreErrorsThrough(t *testing.T) {
	boom := errors.New("disk gone")
	g, err := New(brokenStore{err: boom}, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := g.Get("name"); !errors.Is(err, boom) || IsInvalidArgument(err) {
		t.Fatalf("Get err = %v", err)
	}
	if err := g.Set("nationality", "Greek"); !errors.Is(err, boom) {
		t.Fatalf("Set err = %v", err)
	}
	if _, err := New(nil, zerolog.Nop()); !IsInvalidArgument(err) {
		t.Fatalf("New(nil) err = %v", err)
	}
}

func TestNewRecord_CopiesInput(t *testing.T) {
	fields := map[string]any{"name": "Ada"}
	rec := NewRecord(fields)
	fields["name"] = "changed"
	if v, _ := rec.Get("name"); v != "Ada" {
		t.Fatalf("record aliased caller map: %v", v)
	}
}
