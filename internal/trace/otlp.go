// Package trace sets up OpenTelemetry tracing for view transitions.
//
// Export needs two things: tracing switched on in the configuration (the
// --trace flag, STACKUI_TRACE or logging.trace) and OTEL_EXPORTER_OTLP_ENDPOINT
// set. Without either, every span goes to a no-op tracer.
package trace

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InstrumentationName names the tracer transitions are recorded with.
const InstrumentationName = "stackui/ui"

// Provider owns the tracer provider for the process.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// Setup creates an OTLP HTTP exporter when enabled and the endpoint variable
// is set. In every other case the returned provider hands out a no-op tracer.
func Setup(ctx context.Context, enabled bool, environ func(string) string) (*Provider, error) {
	if environ == nil {
		environ = os.Getenv
	}
	endpoint := environ("OTEL_EXPORTER_OTLP_ENDPOINT")
	if !enabled || endpoint == "" {
		return Noop(), nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	serviceName := environ("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "stackui"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Provider{provider: provider, tracer: provider.Tracer(InstrumentationName)}, nil
}

// Noop returns a provider that records nothing.
func Noop() *Provider {
	return &Provider{tracer: noop.NewTracerProvider().Tracer(InstrumentationName)}
}

// FromSDK wraps an existing SDK provider, for tests that record spans.
func FromSDK(tp *sdktrace.TracerProvider) *Provider {
	return &Provider{provider: tp, tracer: tp.Tracer(InstrumentationName)}
}

// Tracer returns the tracer to start spans with.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(InstrumentationName)
	}
	return p.tracer
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.provider != nil
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.provider == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
