// Package telemetry installs the global OpenTelemetry tracer provider.
package telemetry

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type Shutdown func(ctx context.Context) error

// ConsoleExporter writes finished spans to w as JSON, one object per span.
func ConsoleExporter(w io.Writer) (sdktrace.SpanExporter, error) {
	exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, errors.Wrap(err, "stdout trace exporter")
	}
	return exp, nil
}

// Setup makes spans (including the HTTP server spans from otelhttp) go to w.
// Spans are exported synchronously; nothing is lost when the process ends
// right after an interrupt, as long as Shutdown runs.
func Setup(w io.Writer) (Shutdown, error) {
	exp, err := ConsoleExporter(w)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
