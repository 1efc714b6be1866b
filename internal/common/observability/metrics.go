package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Observability struct {
	meterProvider   *metric.MeterProvider
	meter           otelmetric.Meter
	requestCounter  otelmetric.Int64Counter
	requestDuration otelmetric.Float64Histogram
	upstreamCounter otelmetric.Int64Counter
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	return newWithProvider(serviceName, provider)
}

// NewWithReader builds an Observability over the given reader instead of
// the Prometheus exporter. Used by tests to inspect recorded metrics.
func NewWithReader(serviceName string, reader metric.Reader) *Observability {
	return newWithProvider(serviceName, metric.NewMeterProvider(metric.WithReader(reader)))
}

func newWithProvider(serviceName string, provider *metric.MeterProvider) *Observability {
	meter := provider.Meter(serviceName)

	requestCounter, _ := meter.Int64Counter(
		"requests.processed",
		otelmetric.WithDescription("Number of search requests processed"),
	)

	requestDuration, _ := meter.Float64Histogram(
		"requests.duration",
		otelmetric.WithDescription("Search request duration"),
		otelmetric.WithUnit("ms"),
	)

	upstreamCounter, _ := meter.Int64Counter(
		"upstream.calls",
		otelmetric.WithDescription("External API calls by source and outcome"),
	)

	return &Observability{
		meterProvider:   provider,
		meter:           meter,
		requestCounter:  requestCounter,
		requestDuration: requestDuration,
		upstreamCounter: upstreamCounter,
	}
}

func (o *Observability) RecordRequest(ctx context.Context, route, status string) {
	if o != nil && o.requestCounter != nil {
		o.requestCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("route", route),
			attribute.String("status", status),
		))
	}
}

func (o *Observability) RecordDuration(ctx context.Context, route string, duration time.Duration) {
	if o != nil && o.requestDuration != nil {
		o.requestDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("route", route),
		))
	}
}

func (o *Observability) RecordUpstreamCall(ctx context.Context, source, outcome string) {
	if o != nil && o.upstreamCounter != nil {
		o.upstreamCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("source", source),
			attribute.String("outcome", outcome),
		))
	}
}

func (o *Observability) Shutdown() {
	if o != nil && o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
