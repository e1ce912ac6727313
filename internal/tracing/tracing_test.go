package tracing

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"

	"patternd/internal/observer"
)

func TestInit_ExportsNotifierSpans(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	shutdown, err := Init(context.Background(), Config{Stdout: true, Writer: &buf})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	// New picks up the global provider installed above.
	n := observer.New[string]()
	_, _ = n.SubscribeFunc(func(context.Context, string) error { return nil })
	if err := n.Notify(context.Background(), "hello"); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"Name":"Notifier.Notify"`) || !strings.Contains(out, "patternd") {
		t.Fatalf("exported spans = %q", out)
	}
}

func TestInit_WithoutExporter(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	shutdown, err := Init(context.Background(), Config{ServiceName: "svc"})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	_, span := otel.Tracer("test").Start(context.Background(), "op")
	if !span.SpanContext().IsValid() {
		t.Fatalf("sdk provider should produce recording spans")
	}
	span.End()
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
