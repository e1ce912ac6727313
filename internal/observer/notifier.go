package observer

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "patternd/observer"

// Observer receives values broadcast by a Notifier.
type Observer[T any] interface {
	OnNotify(ctx context.Context, value T) error
}

// funcObserver adapts a plain function. It is always stored by pointer so each
// SubscribeFunc call yields a distinct, comparable entry.
type funcObserver[T any] struct {
	fn func(context.Context, T) error
}

func (f *funcObserver[T]) OnNotify(ctx context.Context, v T) error { return f.fn(ctx, v) }

type entry[T any] struct {
	id  uuid.UUID
	obs Observer[T]
}

// Subscription identifies one entry in a Notifier's subscriber list.
type Subscription struct {
	ID     uuid.UUID
	remove func(uuid.UUID) bool
}

// Unsubscribe removes the entry created by the Subscribe call that returned s.
// It reports whether an entry was removed; calling it again is a no-op.
func (s Subscription) Unsubscribe() bool {
	if s.remove == nil {
		return false
	}
	return s.remove(s.ID)
}

// Option configures a Notifier.
type Option func(*options)

type options struct {
	log      zerolog.Logger
	tracer   trace.Tracer
	onChange func(subscribers int)
}

// WithLogger installs a logger used to report failing observers.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithOnChange registers fn to run after every change to the subscriber list
// with the new length. fn runs without the Notifier's lock held.
func WithOnChange(fn func(subscribers int)) Option {
	return func(o *options) { o.onChange = fn }
}

// WithTracer overrides the tracer used for broadcast spans.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		if t != nil {
			o.tracer = t
		}
	}
}

// Notifier broadcasts values of type T to an ordered set of observers.
type Notifier[T any] struct {
	mu   sync.RWMutex
	subs []entry[T]
	opts options
}

// New returns an empty Notifier.
func New[T any](opts ...Option) *Notifier[T] {
	o := options{log: zerolog.Nop(), tracer: otel.Tracer(tracerName)}
	for _, opt := range opts {
		opt(&o)
	}
	return &Notifier[T]{opts: o}
}

// Subscribe appends o to the subscriber list. The same observer may be
// subscribed more than once; each call adds a separate entry.
func (n *Notifier[T]) Subscribe(o Observer[T]) (Subscription, error) {
	if isNil(o) {
		return Subscription{}, invalidArgument("nil observer")
	}
	id := uuid.New()
	n.mu.Lock()
	n.subs = append(n.subs, entry[T]{id: id, obs: o})
	size := len(n.subs)
	n.mu.Unlock()
	n.changed(size)
	return Subscription{ID: id, remove: n.removeID}, nil
}

// SubscribeFunc subscribes a plain function. Functions cannot be compared, so
// the returned Subscription is the only way to remove it.
func (n *Notifier[T]) SubscribeFunc(fn func(context.Context, T) error) (Subscription, error) {
	if fn == nil {
		return Subscription{}, invalidArgument("nil observer func")
	}
	return n.Subscribe(&funcObserver[T]{fn: fn})
}

// Unsubscribe removes every entry equal to o and returns how many were
// removed. An observer that was never subscribed is a no-op.
func (n *Notifier[T]) Unsubscribe(o Observer[T]) (int, error) {
	if isNil(o) {
		return 0, invalidArgument("nil observer")
	}
	if !reflect.TypeOf(o).Comparable() {
		return 0, invalidArgument("observer of type %T is not comparable; use Subscription.Unsubscribe", o)
	}
	n.mu.Lock()
	kept := n.subs[:0]
	removed := 0
	for _, e := range n.subs {
		if equal(e.obs, o) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	clear(n.subs[len(kept):])
	n.subs = kept
	size := len(n.subs)
	n.mu.Unlock()
	if removed > 0 {
		n.changed(size)
	}
	return removed, nil
}

func (n *Notifier[T]) removeID(id uuid.UUID) bool {
	n.mu.Lock()
	found := false
	for i, e := range n.subs {
		if e.id == id {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			found = true
			break
		}
	}
	size := len(n.subs)
	n.mu.Unlock()
	if found {
		n.changed(size)
	}
	return found
}

func (n *Notifier[T]) changed(size int) {
	if n.opts.onChange != nil {
		n.opts.onChange(size)
	}
}

// Len returns the current number of subscriber entries.
func (n *Notifier[T]) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs)
}

// Report summarizes one broadcast.
type Report struct {
	Attempted int
	Failures  []Failure
}

// Err returns a *DeliveryError when any observer failed, nil otherwise.
func (r Report) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	return &DeliveryError{Attempted: r.Attempted, Failures: r.Failures}
}

// Notify delivers value to every observer subscribed at the moment of the
// call, in subscription order. See Broadcast for the failure policy.
func (n *Notifier[T]) Notify(ctx context.Context, value T) error {
	return n.Broadcast(ctx, value).Err()
}

// Broadcast is Notify returning the full delivery report.
func (n *Notifier[T]) Broadcast(ctx context.Context, value T) Report {
	n.mu.RLock()
	snapshot := make([]entry[T], len(n.subs))
	copy(snapshot, n.subs)
	n.mu.RUnlock()

	ctx, span := n.opts.tracer.Start(ctx, "Notifier.Notify",
		trace.WithAttributes(attribute.Int("observer.subscribers", len(snapshot))))
	defer span.End()

	rep := Report{Attempted: len(snapshot)}
	for i, e := range snapshot {
		if err := deliver(ctx, e.obs, value); err != nil {
			rep.Failures = append(rep.Failures, Failure{Index: i, ID: e.id, Err: err})
			n.opts.log.Warn().Err(err).Int("index", i).Str("subscription", e.id.String()).Msg("observer failed")
		}
	}
	if len(rep.Failures) > 0 {
		span.SetAttributes(attribute.Int("observer.failures", len(rep.Failures)))
		span.SetStatus(codes.Error, fmt.Sprintf("%d observers failed", len(rep.Failures)))
	}
	return rep
}

func deliver[T any](ctx context.Context, o Observer[T], v T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError{v: r}
		}
	}()
	return o.OnNotify(ctx, v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// equal compares two observers; a comparable type may still hold an
// uncomparable value (e.g. a struct with a func in an interface field).
func equal[T any](a, b Observer[T]) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}
