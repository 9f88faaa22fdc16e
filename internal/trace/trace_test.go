package trace

import (
	"context"
	"testing"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	env := func(string) string { return "" }
	p, err := Setup(context.Background(), true, env)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if p.Enabled() {
		t.Error("expected no-op provider without OTEL_EXPORTER_OTLP_ENDPOINT")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestSetup_DisabledByFlag(t *testing.T) {
	env := func(k string) string {
		if k == "OTEL_EXPORTER_OTLP_ENDPOINT" {
			return "localhost:4318"
		}
		return ""
	}
	p, err := Setup(context.Background(), false, env)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if p.Enabled() {
		t.Error("tracing disabled by configuration must not export")
	}
}

func TestStartTransition_RecordsAttributes(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	p := FromSDK(tp)

	span := StartTransition(context.Background(), p.Tracer(), "push", "settings", "fade", 1)
	FrameOverrun(span, 7, 3*time.Millisecond)
	span.End()

	ended := rec.Ended()
	if len(ended) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(ended))
	}
	s := ended[0]
	if s.Name() != "push" {
		t.Errorf("name = %q, want push", s.Name())
	}
	attrs := map[string]string{}
	for _, kv := range s.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	if attrs[string(KeyView)] != "settings" || attrs[string(KeyAnimation)] != "fade" {
		t.Errorf("attributes = %v", attrs)
	}
	if len(s.Events()) != 1 || s.Events()[0].Name != "frame.overrun" {
		t.Errorf("events = %v, want one frame.overrun", s.Events())
	}
}

func TestNilProviderTracer(t *testing.T) {
	var p *Provider
	span := StartTransition(context.Background(), p.Tracer(), "pop", "x", "none", 0)
	span.End()
	if p.Enabled() {
		t.Error("nil provider reports enabled")
	}
}
