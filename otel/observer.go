// Package otel provides OpenTelemetry integration for solkit tool
// invocations.
package otel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/solkit-labs/solkit/tool"
)

// ToolObserver records invocation observations into OpenTelemetry.
type ToolObserver struct {
	tracer trace.Tracer

	invocations metric.Int64Counter
	failures    metric.Int64Counter
	latency     metric.Float64Histogram
}

// NewToolObserver creates a tool observer bound to the provided meter and
// tracer. A nil tracer disables spans and keeps metrics only.
func NewToolObserver(meter metric.Meter, tracer trace.Tracer) (*ToolObserver, error) {
	invocations, err := meter.Int64Counter(
		"solkit.tool.invocations",
		metric.WithDescription("Number of tool invocations"),
	)
	if err != nil {
		return nil, err
	}
	failures, err := meter.Int64Counter(
		"solkit.tool.failures",
		metric.WithDescription("Number of failed tool invocations"),
	)
	if err != nil {
		return nil, err
	}
	latency, err := meter.Float64Histogram(
		"solkit.tool.latency",
		metric.WithDescription("Tool invocation latency in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &ToolObserver{
		tracer:      tracer,
		invocations: invocations,
		failures:    failures,
		latency:     latency,
	}, nil
}

// ObserveInvoke records one invocation result.
func (o *ToolObserver) ObserveInvoke(observation tool.InvokeObservation) {
	if o == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("tool_name", observation.Tool),
		attribute.Bool("success", observation.Success),
	}
	if observation.ErrorCode != "" {
		attrs = append(attrs, attribute.String("error_code", observation.ErrorCode))
	}

	ctx := context.Background()
	options := metric.WithAttributes(attrs...)
	o.invocations.Add(ctx, 1, options)
	if !observation.Success {
		o.failures.Add(ctx, 1, options)
	}
	o.latency.Record(ctx, float64(time.Duration(observation.DurationMS)*time.Millisecond)/float64(time.Second), options)

	if o.tracer == nil {
		return
	}
	_, span := o.tracer.Start(ctx, "tool.call", trace.WithAttributes(attrs...))
	if !observation.Success {
		span.SetStatus(codes.Error, observation.ErrorCode)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

var _ tool.Observer = (*ToolObserver)(nil)
