// Package telemetry provides OpenTelemetry instruments and OTLP export for test runs.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// DefaultExportInterval is how often metrics are pushed while a suite runs.
const DefaultExportInterval = 10 * time.Second

// Config holds telemetry configuration.
type Config struct {
	Enabled   bool   `mapstructure:"enabled"`
	Endpoint  string `mapstructure:"endpoint"`   // OTLP HTTP endpoint, e.g. "http://localhost:4318"
	AuthToken string `mapstructure:"auth_token"` // base64 user:pass sent as Basic auth
	Traces    bool   `mapstructure:"traces"`
	Metrics   bool   `mapstructure:"metrics"`
	// ExportInterval is the metric push period. Remaining data is flushed on shutdown.
	ExportInterval time.Duration `mapstructure:"export_interval"`
}

// Provider holds the SDK providers installed as the OTel globals.
type Provider struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	// RunID identifies this process in exported resources.
	RunID string

	shutdowns []func(context.Context) error
}

// ShutdownFunc flushes and stops the providers.
type ShutdownFunc func(context.Context) error

type endpoint struct {
	host     string
	basePath string
	insecure bool
	headers  map[string]string
}

// NewProvider installs OTLP tracer and meter providers as configured. When
// telemetry is disabled it installs nothing, and the OTel globals keep
// handing out noop instruments.
func NewProvider(ctx context.Context, cfg Config, serviceName, version string) (*Provider, ShutdownFunc, error) {
	p := &Provider{RunID: uuid.NewString()}
	if !cfg.Enabled || cfg.Endpoint == "" {
		return p, p.Shutdown, nil
	}

	ep, err := parseEndpoint(cfg)
	if err != nil {
		return nil, nil, err
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
			attribute.String("testnet.run.id", p.RunID),
		),
		resource.WithHost(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create resource: %w", err)
	}

	if cfg.Traces {
		if err := p.installTracer(ctx, ep, res); err != nil {
			_ = p.Shutdown(ctx)
			return nil, nil, err
		}
	}
	if cfg.Metrics {
		interval := cfg.ExportInterval
		if interval <= 0 {
			interval = DefaultExportInterval
		}
		if err := p.installMeter(ctx, ep, res, interval); err != nil {
			_ = p.Shutdown(ctx)
			return nil, nil, err
		}
	}
	return p, p.Shutdown, nil
}

// Shutdown flushes pending spans and metrics, then stops every provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(p.shutdowns) - 1; i >= 0; i-- {
		errs = append(errs, p.shutdowns[i](ctx))
	}
	p.shutdowns = nil
	return errors.Join(errs...)
}

func parseEndpoint(cfg Config) (*endpoint, error) {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint URL: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("endpoint %q has no host", cfg.Endpoint)
	}

	ep := &endpoint{
		host:     u.Host,
		basePath: strings.TrimSuffix(u.Path, "/"),
		insecure: u.Scheme == "http",
		headers:  map[string]string{},
	}
	if cfg.AuthToken != "" {
		ep.headers["Authorization"] = "Basic " + cfg.AuthToken
	}
	return ep, nil
}

func (p *Provider) installTracer(ctx context.Context, ep *endpoint, res *resource.Resource) error {
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(ep.host), otlptracehttp.WithHeaders(ep.headers)}
	if ep.basePath != "" {
		opts = append(opts, otlptracehttp.WithURLPath(ep.basePath+"/v1/traces"))
	}
	if ep.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("create trace exporter: %w", err)
	}
	p.TracerProvider = sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter), sdktrace.WithResource(res))
	otel.SetTracerProvider(p.TracerProvider)
	p.shutdowns = append(p.shutdowns, p.TracerProvider.Shutdown)
	return nil
}

func (p *Provider) installMeter(ctx context.Context, ep *endpoint, res *resource.Resource, interval time.Duration) error {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(ep.host), otlpmetrichttp.WithHeaders(ep.headers)}
	if ep.basePath != "" {
		opts = append(opts, otlpmetrichttp.WithURLPath(ep.basePath+"/v1/metrics"))
	}
	if ep.insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("create metric exporter: %w", err)
	}
	p.MeterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval))),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(p.MeterProvider)
	p.shutdowns = append(p.shutdowns, p.MeterProvider.Shutdown)
	return nil
}
