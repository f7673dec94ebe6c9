// Package tracing wraps an OpenTelemetry tracer provider for the HTTP API.
package tracing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Tracer starts spans and propagates trace context over HTTP headers.
type Tracer interface {
	// Start a new span.
	Start(ctx context.Context, spanName string) (context.Context, oteltrace.Span)
	StartSpanFromHeader(ctx context.Context, h http.Header, spanName string) (context.Context, oteltrace.Span)
	InjectHTTP(ctx context.Context, h http.Header)
	// Flush exports every finished span still buffered.
	Flush(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// tracer to implement Tracer.
type tracer struct {
	tracer oteltrace.Tracer
	tp     *trace.TracerProvider
}

// NewTracer creates a tracer for serviceName that batches spans into exporter.
func NewTracer(serviceName string, exporter trace.SpanExporter) Tracer {
	tp := newTraceProvider(serviceName, exporter)

	return tracer{
		tracer: tp.Tracer(serviceName),
		tp:     tp,
	}
}

// NewStdoutTracer creates a tracer that pretty-prints finished spans to w.
func NewStdoutTracer(serviceName string, w io.Writer) (Tracer, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout trace exporter: %w", err)
	}
	return NewTracer(serviceName, exporter), nil
}

// NewNoopTracer returns a tracer whose spans are never recorded.
func NewNoopTracer() Tracer {
	return noopTracer{tracer: noop.NewTracerProvider().Tracer("")}
}

func (t tracer) Start(ctx context.Context, spanName string) (context.Context, oteltrace.Span) {
	return t.tracer.Start(ctx, spanName)
}

func (t tracer) StartSpanFromHeader(ctx context.Context, h http.Header, spanName string) (context.Context, oteltrace.Span) {
	return t.Start(constructContextFromHeader(ctx, h), spanName)
}

func (t tracer) InjectHTTP(ctx context.Context, h http.Header) {
	propagation.TraceContext{}.Inject(ctx, propagation.HeaderCarrier(h))
}

func (t tracer) Flush(ctx context.Context) error {
	return t.tp.ForceFlush(ctx)
}

// Shutdown flushes pending spans and stops the provider. The exporter is
// shut down with it.
func (t tracer) Shutdown(ctx context.Context) error {
	return errors.Join(t.tp.ForceFlush(ctx), t.tp.Shutdown(ctx))
}

type noopTracer struct {
	tracer oteltrace.Tracer
}

func (t noopTracer) Start(ctx context.Context, spanName string) (context.Context, oteltrace.Span) {
	return t.tracer.Start(ctx, spanName)
}

func (t noopTracer) StartSpanFromHeader(ctx context.Context, h http.Header, spanName string) (context.Context, oteltrace.Span) {
	return t.Start(constructContextFromHeader(ctx, h), spanName)
}

func (t noopTracer) InjectHTTP(context.Context, http.Header) {}

func (t noopTracer) Flush(context.Context) error { return nil }

func (t noopTracer) Shutdown(context.Context) error { return nil }

func constructContextFromHeader(ctx context.Context, h http.Header) context.Context {
	return propagation.TraceContext{}.Extract(ctx, propagation.HeaderCarrier(h))
}

func newTraceProvider(serviceName string, exporter trace.SpanExporter) *trace.TracerProvider {
	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		)),
	)

	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{}),
	)

	otel.SetTracerProvider(tp)

	return tp
}
