// Package trace emits an OpenTelemetry span for every focus transition of the
// grid editor.
package trace

import (
	"context"

	"gridedit/internal/grid"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const instrumentationName = "gridedit/focus"

// Recorder turns grid transitions into spans.
type Recorder struct {
	provider *sdktrace.TracerProvider // owned provider, shut down by Shutdown
	tracer   oteltrace.Tracer
}

// NewRecorder records through tp. The caller keeps ownership of tp.
func NewRecorder(tp oteltrace.TracerProvider) *Recorder {
	return &Recorder{tracer: tp.Tracer(instrumentationName)}
}

// Record emits one span for t. g is consulted for the row IDs of both ends.
func (r *Recorder) Record(ctx context.Context, g *grid.Grid, t grid.Transition) {
	if r == nil {
		return
	}
	_, span := r.tracer.Start(ctx, "gridedit.focus."+t.Cause.String())
	defer span.End()

	attrs := []attribute.KeyValue{
		attribute.String("gridedit.focus.cause", t.Cause.String()),
		attribute.String("gridedit.focus.key", t.Key.String()),
		attribute.Int("gridedit.focus.from.row", t.From.Row),
		attribute.Int("gridedit.focus.from.col", t.From.Col),
		attribute.Int("gridedit.focus.to.row", t.To.Row),
		attribute.Int("gridedit.focus.to.col", t.To.Col),
		attribute.Int("gridedit.grid.rows", g.Len()),
	}
	if row, ok := g.Row(t.From.Row); ok {
		attrs = append(attrs, attribute.String("gridedit.focus.from.row_id", row.ID.String()))
	}
	if row, ok := g.Row(t.To.Row); ok {
		attrs = append(attrs, attribute.String("gridedit.focus.to.row_id", row.ID.String()))
	}
	span.SetAttributes(attrs...)
}

// Hook adapts the recorder to grid.Controller.OnChange.
func (r *Recorder) Hook(ctx context.Context, g *grid.Grid) func(grid.Transition) {
	return func(t grid.Transition) {
		r.Record(ctx, g, t)
	}
}

// Shutdown flushes and closes an owned provider.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil || r.provider == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
