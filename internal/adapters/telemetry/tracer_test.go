package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/volthaus/meshsweep/internal/adapters/telemetry"
)

// recordingTracer installs a span recorder as the global provider so spans
// created through the adapter can be inspected.
func recordingTracer(t *testing.T) (*telemetry.OTelTracer, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	return telemetry.NewOTelTracer("test"), recorder
}

func TestOTelTracer_SpanRecorded(t *testing.T) {
	tracer, recorder := recordingTracer(t)

	_, span := tracer.Start(context.Background(), "neg=8,pos=8,sep=4")
	span.SetAttribute("samples", 120)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "neg=8,pos=8,sep=4", ended[0].Name())

	attrs := ended[0].Attributes()
	require.Len(t, attrs, 1)
	assert.Equal(t, "samples", string(attrs[0].Key))
	assert.Equal(t, int64(120), attrs[0].Value.AsInt64())
}

func TestOTelTracer_EmitPlan(t *testing.T) {
	tracer, recorder := recordingTracer(t)

	ctx, span := tracer.Start(context.Background(), "sweep")
	tracer.EmitPlan(ctx, []string{"neg=4,pos=4,sep=2", "neg=8,pos=8,sep=4"})
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	events := ended[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "plan_emitted", events[0].Name)
}

func TestOTelTracer_EmitPlanWithoutSpan(_ *testing.T) {
	// Without a recording span in context this must be a silent no-op.
	tracer := telemetry.NewOTelTracer("test")
	tracer.EmitPlan(context.Background(), []string{"neg=4,pos=4,sep=2"})
}

func TestOTelSpan_RecordError(t *testing.T) {
	tracer, recorder := recordingTracer(t)

	_, span := tracer.Start(context.Background(), "failing-run")
	span.RecordError(errors.New("solver diverged"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "solver diverged", ended[0].Status().Description)
}

func TestOTelSpan_Attributes(t *testing.T) {
	tracer, recorder := recordingTracer(t)

	_, span := tracer.Start(context.Background(), "attrs")
	span.SetAttribute("string", "val")
	span.SetAttribute("int", 123)
	span.SetAttribute("int64", int64(456))
	span.SetAttribute("float64", 12.34)
	span.SetAttribute("bool", true)
	span.SetAttribute("slice", []string{"a", "b"})
	span.SetAttribute("other", complex(1, 1))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Len(t, ended[0].Attributes(), 7)
}
