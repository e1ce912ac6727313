package observer

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestBroadcast_RecordsSpan(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	n := New[string](WithTracer(tp.Tracer("test")))
	_, _ = n.SubscribeFunc(func(context.Context, string) error { return nil })
	_, _ = n.SubscribeFunc(func(context.Context, string) error { return errors.New("nope") })

	_ = n.Notify(context.Background(), "ok")

	spans := rec.Ended()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	s := spans[0]
	if s.Name() != "Notifier.Notify" {
		t.Fatalf("span name = %q", s.Name())
	}
	if s.Status().Code != codes.Error {
		t.Fatalf("span status = %v, want Error", s.Status())
	}
	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range s.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	if attrs["observer.subscribers"].AsInt64() != 2 || attrs["observer.failures"].AsInt64() != 1 {
		t.Fatalf("attributes = %v", s.Attributes())
	}
}

func TestBroadcast_SpanIsParentOfObserverContext(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer func() { _ = tp.Shutdown(context.Background()) }()
	tracer := tp.Tracer("test")

	n := New[int](WithTracer(tracer))
	_, _ = n.SubscribeFunc(func(ctx context.Context, _ int) error {
		_, child := tracer.Start(ctx, "observer")
		child.End()
		return nil
	})
	_ = n.Notify(context.Background(), 1)

	spans := rec.Ended()
	if len(spans) != 2 {
		t.Fatalf("spans = %d, want 2", len(spans))
	}
	child, parent := spans[0], spans[1]
	if child.Parent().SpanID() != parent.SpanContext().SpanID() {
		t.Fatalf("observer span not parented to broadcast span")
	}
}
