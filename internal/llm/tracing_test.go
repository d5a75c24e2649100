package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/davetashner/gptresearch/internal/llm"
)

func newRecordedTracer(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, tp
}

func attrMap(kvs []attribute.KeyValue) map[string]attribute.Value {
	m := make(map[string]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[string(kv.Key)] = kv.Value
	}
	return m
}

func TestTracingProvider_PassesThroughAndRecordsSpan(t *testing.T) {
	want := &llm.Response{
		ID:         "resp_1",
		Model:      "gpt-5.1",
		OutputText: "answer",
		Output:     []llm.OutputItem{llm.OtherItem{Type: "web_search_call"}},
		Usage:      llm.Usage{InputTokens: 7, OutputTokens: 2},
	}
	mock := llm.NewMockProvider(llm.MockResponse{Response: want})
	sr, tp := newRecordedTracer(t)

	p := llm.NewTracingProvider(mock, tp)
	req := llm.Request{
		Model: "gpt-5.1",
		Tools: []llm.WebSearchTool{{SearchContextSize: llm.SearchContextHigh}},
		Input: "query text",
		ID:    "req-1",
	}
	got, err := p.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, want, got, "decorator must not alter the response")
	assert.Equal(t, []llm.Request{req}, mock.Calls(), "decorator must not alter the request")

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, llm.SpanName, span.Name())
	assert.Equal(t, trace.SpanKindClient, span.SpanKind())
	assert.Equal(t, codes.Ok, span.Status().Code)

	attrs := attrMap(span.Attributes())
	assert.Equal(t, "openai", attrs["gen_ai.system"].AsString())
	assert.Equal(t, "gpt-5.1", attrs["gen_ai.request.model"].AsString())
	assert.Equal(t, "resp_1", attrs["gen_ai.response.id"].AsString())
	assert.Equal(t, int64(7), attrs["gen_ai.usage.input_tokens"].AsInt64())
	assert.Equal(t, int64(2), attrs["gen_ai.usage.output_tokens"].AsInt64())
	assert.Equal(t, "query text", attrs["langfuse.observation.input"].AsString())
	assert.Equal(t, "answer", attrs["langfuse.observation.output"].AsString())
	assert.Equal(t, "req-1", attrs["gptresearch.request_id"].AsString())
	assert.Equal(t, "high", attrs["gptresearch.search_context_size"].AsString())
}

func TestTracingProvider_RecordsErrorAndReturnsItUnchanged(t *testing.T) {
	sentinel := errors.New("quota exceeded")
	mock := llm.NewMockProvider(llm.MockResponse{Err: sentinel})
	sr, tp := newRecordedTracer(t)

	resp, err := llm.NewTracingProvider(mock, tp).Create(context.Background(), llm.Request{Input: "q"})
	assert.Nil(t, resp)
	assert.Same(t, sentinel, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "quota exceeded", spans[0].Status().Description)

	var sawException bool
	for _, ev := range spans[0].Events() {
		if ev.Name == "exception" {
			sawException = true
		}
	}
	assert.True(t, sawException, "error should be recorded as an exception event")
}

func TestTracingProvider_Unwrap(t *testing.T) {
	mock := llm.NewMockProvider()
	_, tp := newRecordedTracer(t)
	p := llm.NewTracingProvider(mock, tp)
	assert.Same(t, mock, p.Unwrap())
}
