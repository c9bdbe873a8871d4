package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const defaultServiceName = "nba-highlights-service"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx                  context.Context
	requests             metric.Int64Counter
	requestLatencyMs     metric.Float64Histogram
	upstreamCalls        metric.Int64Counter
	upstreamErrors       metric.Int64Counter
	upstreamLatencyMs    metric.Float64Histogram
	rateLimitHits        metric.Int64Counter
	retryAfterMs         metric.Float64Histogram
	aggregations         metric.Int64Counter
	aggregationEvents    metric.Int64Histogram
	aggregationClutch    metric.Int64Histogram
	aggregationLatencyMs metric.Float64Histogram
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(defaultServiceName)
	inst := &otelInstruments{ctx: context.Background()}

	var err error
	if inst.requests, err = meter.Int64Counter("http_requests_total"); err != nil {
		return nil, err
	}
	if inst.requestLatencyMs, err = meter.Float64Histogram("http_request_duration_ms"); err != nil {
		return nil, err
	}
	if inst.upstreamCalls, err = meter.Int64Counter("upstream_calls_total"); err != nil {
		return nil, err
	}
	if inst.upstreamErrors, err = meter.Int64Counter("upstream_errors_total"); err != nil {
		return nil, err
	}
	if inst.upstreamLatencyMs, err = meter.Float64Histogram("upstream_duration_ms"); err != nil {
		return nil, err
	}
	if inst.rateLimitHits, err = meter.Int64Counter("upstream_rate_limit_hits_total"); err != nil {
		return nil, err
	}
	if inst.retryAfterMs, err = meter.Float64Histogram("upstream_retry_after_ms"); err != nil {
		return nil, err
	}
	if inst.aggregations, err = meter.Int64Counter("aggregations_total"); err != nil {
		return nil, err
	}
	if inst.aggregationEvents, err = meter.Int64Histogram("aggregation_events"); err != nil {
		return nil, err
	}
	if inst.aggregationClutch, err = meter.Int64Histogram("aggregation_clutch_events"); err != nil {
		return nil, err
	}
	if inst.aggregationLatencyMs, err = meter.Float64Histogram("aggregation_duration_ms"); err != nil {
		return nil, err
	}
	return inst, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	}
	o.recordCounter(o.requests, 1, attrs...)
	o.recordHistogram(o.requestLatencyMs, float64(duration.Milliseconds()), attrs...)
}

func (o *otelInstruments) recordUpstreamCall(feed string, duration time.Duration, outcome string) {
	if o == nil {
		return
	}
	feedAttr := attribute.String(AttrFeed, feed)
	o.recordCounter(o.upstreamCalls, 1, feedAttr, attribute.String(AttrOutcome, outcome))
	o.recordHistogram(o.upstreamLatencyMs, float64(duration.Milliseconds()), feedAttr)
	if outcome != OutcomeOK {
		o.recordCounter(o.upstreamErrors, 1, feedAttr, attribute.String(AttrOutcome, outcome))
	}
}

func (o *otelInstruments) recordRateLimit(feed string, retryAfter time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrFeed, feed)}
	o.recordCounter(o.rateLimitHits, 1, attrs...)
	if retryAfter > 0 {
		o.recordHistogram(o.retryAfterMs, float64(retryAfter.Milliseconds()), attrs...)
	}
}

func (o *otelInstruments) recordAggregation(duration time.Duration, events, clutchEvents, upstreamErrors int) {
	if o == nil {
		return
	}
	degraded := attribute.Bool("degraded", upstreamErrors > 0)
	o.recordCounter(o.aggregations, 1, degraded)
	o.aggregationEvents.Record(o.ctx, int64(events))
	o.aggregationClutch.Record(o.ctx, int64(clutchEvents))
	o.recordHistogram(o.aggregationLatencyMs, float64(duration.Milliseconds()), degraded)
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
