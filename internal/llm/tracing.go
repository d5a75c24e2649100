// Copyright 2026 The gptresearch Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/davetashner/gptresearch/internal/llm"

	// SpanName is the name of the span recorded around each create call.
	SpanName = "openai.responses.create"

	// langfuseOTLPPath is Langfuse's OTLP/HTTP trace ingestion path.
	langfuseOTLPPath = "/api/public/otel/v1/traces"
)

// TracingProvider decorates a Provider and records one client span per
// call. It never alters the request, the response, or the error.
type TracingProvider struct {
	next   Provider
	tracer trace.Tracer
}

// Compile-time check that TracingProvider satisfies the Provider interface.
var _ Provider = (*TracingProvider)(nil)

// NewTracingProvider wraps next with spans from tp.
func NewTracingProvider(next Provider, tp trace.TracerProvider) *TracingProvider {
	return &TracingProvider{
		next:   next,
		tracer: tp.Tracer(tracerName),
	}
}

// Create forwards to the wrapped provider inside a span.
func (t *TracingProvider) Create(ctx context.Context, req Request) (*Response, error) {
	attrs := []attribute.KeyValue{
		attribute.String("gen_ai.system", "openai"),
		attribute.String("gen_ai.request.model", req.Model),
		attribute.String("langfuse.observation.input", req.Input),
	}
	if req.ID != "" {
		attrs = append(attrs, attribute.String("gptresearch.request_id", req.ID))
	}
	if len(req.Tools) > 0 {
		attrs = append(attrs, attribute.String("gptresearch.search_context_size", string(req.Tools[0].SearchContextSize)))
	}

	ctx, span := t.tracer.Start(ctx, SpanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	resp, err := t.next.Create(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return resp, err
	}

	if resp != nil {
		span.SetAttributes(
			attribute.String("gen_ai.response.id", resp.ID),
			attribute.String("gen_ai.response.model", resp.Model),
			attribute.Int("gen_ai.usage.input_tokens", resp.Usage.InputTokens),
			attribute.Int("gen_ai.usage.output_tokens", resp.Usage.OutputTokens),
			attribute.String("langfuse.observation.output", resp.OutputText),
		)
	}
	span.SetStatus(codes.Ok, "")
	return resp, nil
}

// Unwrap returns the decorated provider.
func (t *TracingProvider) Unwrap() Provider {
	return t.next
}

// LangfuseConfig holds the connection settings for the Langfuse collector.
type LangfuseConfig struct {
	PublicKey string
	SecretKey string
	Host      string
}

// NewLangfuseTracerProvider builds a tracer provider that batches spans to
// Langfuse's OTLP endpoint using basic auth from the key pair. The caller
// owns the returned provider and must call Shutdown to flush.
func NewLangfuseTracerProvider(ctx context.Context, cfg LangfuseConfig, serviceVersion string) (*sdktrace.TracerProvider, error) {
	endpoint := strings.TrimRight(cfg.Host, "/") + langfuseOTLPPath
	auth := base64.StdEncoding.EncodeToString([]byte(cfg.PublicKey + ":" + cfg.SecretKey))

	exp, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(endpoint),
		otlptracehttp.WithHeaders(map[string]string{
			"Authorization": "Basic " + auth,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("llm: create trace exporter: %w", err)
	}

	res := resource.NewSchemaless(
		semconv.ServiceName("gptresearch"),
		semconv.ServiceVersion(serviceVersion),
	)

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	), nil
}
