// Package telemetry configures OpenTelemetry tracing for the listparse CLI.
package telemetry

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const serviceName = "listparse"

// Config holds the configuration for telemetry
type Config struct {
	Enabled  bool
	Endpoint string // OTLP/HTTP collector endpoint, host:port
}

// Provider manages the tracer provider lifecycle. A disabled provider hands
// out no-op tracers, so call sites never have to branch.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// NewProvider creates a new telemetry provider
func NewProvider(ctx context.Context, config Config) (*Provider, error) {
	if !config.Enabled {
		log.Printf("Telemetry disabled")
		return &Provider{}, nil
	}

	var opts []otlptracehttp.Option
	if config.Endpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpoint(config.Endpoint), otlptracehttp.WithInsecure())
	}
	exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient(opts...))
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to build telemetry resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	log.Printf("Telemetry enabled, exporting to %q", config.Endpoint)
	return &Provider{tp: tp}, nil
}

// Tracer returns the tracer spans should be started from.
func (p *Provider) Tracer() trace.Tracer {
	if p.tp == nil {
		return noop.NewTracerProvider().Tracer(serviceName)
	}
	return p.tp.Tracer(serviceName)
}

// Shutdown flushes pending spans and shuts down the tracer provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.tp == nil {
		return nil
	}
	return p.tp.Shutdown(ctx)
}

// NewOperationID generates a unique ID for one listing operation
func NewOperationID() string {
	return uuid.New().String()
}
