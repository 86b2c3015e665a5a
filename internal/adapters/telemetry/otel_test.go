package telemetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/vitelink/internal/adapters/telemetry"
)

func TestOTelTracer_RecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracerWithProvider(tp)

	ctx, span := tracer.Start(t.Context(), "resolve")
	span.SetAttribute("entries", 2)
	span.SetAttribute("base", "/assets/")
	span.End()

	require.NotNil(t, ctx)
	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "resolve", spans[0].Name())

	attrs := spans[0].Attributes()
	require.Len(t, attrs, 2)
	assert.Equal(t, "entries", string(attrs[0].Key))
	assert.Equal(t, int64(2), attrs[0].Value.AsInt64())
	assert.Equal(t, "/assets/", attrs[1].Value.AsString())
}

func TestOTelTracer_RecordError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracerWithProvider(tp)

	_, span := tracer.Start(t.Context(), "manifest.load")
	span.RecordError(errors.New("manifest unreadable"))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestOTelTracer_NilErrorIgnored(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracerWithProvider(tp)

	_, span := tracer.Start(t.Context(), "noop")
	span.RecordError(nil)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Empty(t, spans[0].Events())
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx, span := tracer.Start(t.Context(), "anything")
	assert.Equal(t, t.Context(), ctx)

	// All span operations are safe no-ops.
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}
