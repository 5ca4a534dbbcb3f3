package usecases

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Generation paths used as metric attributes.
const (
	generationPathDirect    = "direct"
	generationPathStreaming = "streaming"
	generationPathFallback  = "fallback"
)

var (
	meter                     = otel.Meter("usecases")
	LLMTokensUsed             metric.Int64Counter
	ContentGenerations        metric.Int64Counter
	ContentGenerationDuration metric.Float64Histogram
	StreamingDowngrades       metric.Int64Counter
)

func init() {
	var err error
	// Tokens reported by the generation backend
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	ContentGenerations, err = meter.Int64Counter(
		"content_generations_total",
		metric.WithDescription("Completed content generations by path"),
	)
	if err != nil {
		panic(err)
	}

	ContentGenerationDuration, err = meter.Float64Histogram(
		"content_generation_duration_seconds",
		metric.WithDescription("Client-side latency of content generation calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}

	StreamingDowngrades, err = meter.Int64Counter(
		"streaming_downgrades_total",
		metric.WithDescription("Times streaming generation was disabled for a client instance"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordContentGeneration records a completed generation call on the given path.
func RecordContentGeneration(ctx context.Context, path string, elapsed time.Duration, tokensUsed int) {
	attrs := metric.WithAttributes(attribute.String("path", path))
	ContentGenerations.Add(ctx, 1, attrs)
	ContentGenerationDuration.Record(ctx, elapsed.Seconds(), attrs)
	LLMTokensUsed.Add(ctx, int64(tokensUsed), metric.WithAttributes(
		attribute.String("token_type", "generation"),
	))
}

// RecordStreamingDowngrade records the one-way switch to the fallback path.
func RecordStreamingDowngrade(ctx context.Context) {
	StreamingDowngrades.Add(ctx, 1)
}
