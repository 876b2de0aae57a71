// Package telemetry provides helpers to initialize OpenTelemetry logging,
// metrics, and tracing. Signals can be exported with OTLP over gRPC and
// metrics can additionally be exposed to Prometheus scrapers. It creates a
// unified Resource for the service, registers global providers, and exposes a
// ShutdownFunc to cleanly flush and stop all telemetry pipelines.
package telemetry

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

var (
	// loggerProvider is the LoggerProvider registered by Init, if any.
	loggerProvider *sdklog.LoggerProvider

	// loggerProviderMu guards loggerProvider.
	loggerProviderMu sync.RWMutex
)

// LoggerProvider returns the LoggerProvider registered by Init, or nil when
// OTLP export is disabled or Init has not been called.
func LoggerProvider() *sdklog.LoggerProvider {
	loggerProviderMu.RLock()
	defer loggerProviderMu.RUnlock()

	return loggerProvider
}

func setLoggerProvider(lp *sdklog.LoggerProvider) {
	loggerProviderMu.Lock()
	defer loggerProviderMu.Unlock()

	loggerProvider = lp
}

// initMeterProvider sets up a MeterProvider with the given readers and
// Resource. It also registers the provider as the global MeterProvider.
func initMeterProvider(res *sdkresource.Resource, readers ...sdkmetric.Reader) *sdkmetric.MeterProvider {
	opts := []sdkmetric.Option{sdkmetric.WithResource(res)}
	for _, r := range readers {
		opts = append(opts, sdkmetric.WithReader(r))
	}

	mp := sdkmetric.NewMeterProvider(opts...)

	otel.SetMeterProvider(mp)
	return mp
}

// initTracerProvider sets up an OTLP gRPC TracerProvider using a
// batched exporter and the given Resource. It also registers the
// provider as the global TracerProvider.
func initTracerProvider(ctx context.Context, res *sdkresource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	return tp, nil
}

// initLoggerProvider sets up an OTLP gRPC LoggerProvider using a batch
// processor and the given Resource. It registers the provider globally and
// makes it available through LoggerProvider.
func initLoggerProvider(ctx context.Context, res *sdkresource.Resource) (*sdklog.LoggerProvider, error) {
	exporter, err := otlploggrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)

	global.SetLoggerProvider(lp)
	setLoggerProvider(lp)
	return lp, nil
}

// newResource constructs an OpenTelemetry Resource by merging the default
// system resource with a ServiceName attribute for the given service.
func newResource(serviceName string) (*sdkresource.Resource, error) {
	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

// ShutdownFunc defines a callback to flush and stop all telemetry providers.
// Call this function at application shutdown to ensure all telemetry is sent.
type ShutdownFunc func(ctx context.Context) error

// config holds the signals enabled by Init.
type config struct {
	otlp       bool // export traces, metrics and logs with OTLP over gRPC
	prometheus bool // expose metrics through the Prometheus default registry
}

// Option configures Init.
type Option func(*config)

// WithOTLP enables OTLP gRPC exporters for traces, metrics and logs. The
// exporters read their endpoint from the standard OTEL_EXPORTER_OTLP_*
// environment variables.
func WithOTLP() Option {
	return func(c *config) {
		c.otlp = true
	}
}

// WithPrometheus registers a Prometheus metric reader on the default
// registry. Use ServeMetrics to expose it over HTTP.
func WithPrometheus() Option {
	return func(c *config) {
		c.prometheus = true
	}
}

// Init configures OpenTelemetry for the signals enabled by opts. With no
// options nothing is registered and the global no-op providers stay in place.
//
// The returned ShutdownFunc flushes and stops every provider created here.
func Init(ctx context.Context, serviceName string, opts ...Option) (ShutdownFunc, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.otlp && !cfg.prometheus {
		return func(context.Context) error { return nil }, nil
	}

	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	var (
		shutdowns []ShutdownFunc
		readers   []sdkmetric.Reader
	)

	shutdown := func(ctx context.Context) error {
		errs := make([]error, 0, len(shutdowns))
		for _, fn := range shutdowns {
			errs = append(errs, fn(ctx))
		}
		return errors.Join(errs...)
	}

	if cfg.prometheus {
		exporter, err := prometheus.New()
		if err != nil {
			return nil, err
		}
		readers = append(readers, exporter)
	}

	if cfg.otlp {
		exporter, err := otlpmetricgrpc.New(ctx)
		if err != nil {
			return nil, err
		}
		readers = append(readers, sdkmetric.NewPeriodicReader(exporter))

		tp, err := initTracerProvider(ctx, res)
		if err != nil {
			return nil, errors.Join(err, shutdown(ctx))
		}
		shutdowns = append(shutdowns, tp.Shutdown)

		lp, err := initLoggerProvider(ctx, res)
		if err != nil {
			return nil, errors.Join(err, shutdown(ctx))
		}
		shutdowns = append(shutdowns, lp.Shutdown)
	}

	mp := initMeterProvider(res, readers...)
	shutdowns = append(shutdowns, mp.Shutdown)

	return shutdown, nil
}
