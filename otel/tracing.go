package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// TracingConfig configures the OTLP/HTTP trace export pipeline.
type TracingConfig struct {
	// ServiceName identifies this process in trace backends. Defaults to
	// "solkit".
	ServiceName string
	// Endpoint is the OTLP/HTTP collector endpoint, host:port. Empty uses
	// the exporter's default resolution (OTEL_EXPORTER_OTLP_ENDPOINT).
	Endpoint string
	// Insecure disables TLS on the exporter connection.
	Insecure bool
	// SampleRate is the trace sampling ratio in [0, 1]. Values >= 1 sample
	// everything.
	SampleRate float64
}

// SetupTracing builds an OTLP/HTTP trace provider, installs it as the global
// provider, and returns a shutdown function that flushes pending spans.
func SetupTracing(ctx context.Context, cfg TracingConfig) (func(context.Context) error, error) {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "solkit"
	}

	opts := []otlptracehttp.Option{}
	if cfg.Endpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpoint(cfg.Endpoint))
	}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient(opts...))
	if err != nil {
		return nil, fmt.Errorf("otel: create exporter: %w", err)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(cfg.ServiceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("otel: create resource: %w", err)
	}

	var sampler sdktrace.Sampler
	switch {
	case cfg.SampleRate >= 1 || cfg.SampleRate == 0:
		sampler = sdktrace.AlwaysSample()
	case cfg.SampleRate < 0:
		sampler = sdktrace.NeverSample()
	default:
		sampler = sdktrace.TraceIDRatioBased(cfg.SampleRate)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	)
	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}
