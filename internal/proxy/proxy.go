// Package proxy guards access to a property store. Guard implements the same
// Store interface as the value it wraps, so callers cannot tell them apart.
package proxy

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// ErrInvalidArgument is wrapped by errors for unknown properties and values
// that fail validation.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotFound is returned by Record.Get for properties it does not hold.
var ErrNotFound = errors.New("not found")

// IsInvalidArgument reports whether err was caused by bad input.
func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }

const minNameLen = 3

// Store reads and writes named properties.
type Store interface {
	Get(prop string) (any, error)
	Set(prop string, value any) error
}

// Record is an in-memory Store.
type Record struct {
	mu     sync.RWMutex
	fields map[string]any
}

// NewRecord returns a Record holding a copy of fields.
func NewRecord(fields map[string]any) *Record {
	r := &Record{fields: make(map[string]any, len(fields))}
	for k, v := range fields {
		r.fields[k] = v
	}
	return r
}

func (r *Record) Get(prop string) (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.fields[prop]
	if !ok {
		return nil, fmt.Errorf("property %q: %w", prop, ErrNotFound)
	}
	return v, nil
}

func (r *Record) Set(prop string, value any) error {
	r.mu.Lock()
	r.fields[prop] = value
	r.mu.Unlock()
	return nil
}

// Keys returns the property names in sorted order.
func (r *Record) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.fields))
	for k := range r.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Guard validates and logs every access before delegating to the wrapped Store.
//
// Reads of a missing property fail. Writes to "age" must be numeric and
// writes to "name" must be a string of at least three characters.
type Guard struct {
	next Store
	log  zerolog.Logger
}

// New wraps next. A nil next is rejected.
func New(next Store, log zerolog.Logger) (*Guard, error) {
	if next == nil {
		return nil, fmt.Errorf("proxy: nil store: %w", ErrInvalidArgument)
	}
	return &Guard{next: next, log: log}, nil
}

func (g *Guard) Get(prop string) (any, error) {
	v, err := g.next.Get(prop)
	if errors.Is(err, ErrNotFound) {
		g.log.Warn().Str("property", prop).Msg("read of unknown property")
		return nil, fmt.Errorf("proxy: property %q does not exist: %w", prop, ErrInvalidArgument)
	}
	if err != nil {
		return nil, err
	}
	g.log.Info().Str("property", prop).Interface("value", v).Msg("reading property")
	return v, nil
}

func (g *Guard) Set(prop string, value any) error {
	if err := validate(prop, value); err != nil {
		g.log.Warn().Str("property", prop).Interface("value", value).Err(err).Msg("write rejected")
		return err
	}
	g.log.Info().Str("property", prop).Interface("value", value).Msg("setting property")
	return g.next.Set(prop, value)
}

func validate(prop string, value any) error {
	switch prop {
	case "age":
		if !isNumber(value) {
			return fmt.Errorf("proxy: age must be a number, got %T: %w", value, ErrInvalidArgument)
		}
	case "name":
		s, ok := value.(string)
		if !ok || utf8.RuneCountInString(s) < minNameLen {
			return fmt.Errorf("proxy: name must be at least %d characters long: %w", minNameLen, ErrInvalidArgument)
		}
	}
	return nil
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
