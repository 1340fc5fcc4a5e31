package tracing

import (
	"context"
	"fmt"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/rose/pkg/tracing/exporters"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type ProviderConfig struct {
	ServiceName    string
	ServiceVersion string
	OTLPEnabled    bool
	OTLP           exporters.OTLPConfig
}

// NewProvider builds the global tracer provider. Spans go to the OTLP collector when
// enabled and are dropped otherwise, so span helpers stay usable in every environment.
func NewProvider(ctx context.Context, cfg ProviderConfig, logger ectologger.Logger) (*sdktrace.TracerProvider, error) {
	var exporter sdktrace.SpanExporter = &exporters.DiscardExporter{}
	if cfg.OTLPEnabled {
		otlpExporter, err := exporters.NewOTLPExporter(ctx, cfg.OTLP)
		if err != nil {
			return nil, fmt.Errorf("creating OTLP exporter: %w", err)
		}
		exporter = otlpExporter
		logger.WithFields(map[string]any{
			"endpoint": cfg.OTLP.Endpoint,
			"protocol": cfg.OTLP.Protocol,
		}).Info("Exporting traces via OTLP")
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", cfg.ServiceVersion),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	SetTracer(tp.Tracer(cfg.ServiceName))

	return tp, nil
}
