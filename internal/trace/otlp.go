package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// DefaultServiceName is reported when no service name is configured.
const DefaultServiceName = "gridedit"

// Config selects where transition spans go.
type Config struct {
	Endpoint    string // host:port of an OTLP/HTTP collector; empty falls back to OTEL_EXPORTER_OTLP_ENDPOINT
	ServiceName string
	Insecure    bool
}

// NewOTLPRecorder creates a recorder exporting over OTLP/HTTP.
// Returns nil if no endpoint is configured (disabled); a nil *Recorder is safe to use.
func NewOTLPRecorder(ctx context.Context, cfg Config) (*Recorder, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	}
	if endpoint == "" {
		return nil, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = os.Getenv("OTEL_SERVICE_NAME")
	}
	if serviceName == "" {
		serviceName = DefaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	r := NewRecorder(provider)
	r.provider = provider
	return r, nil
}
