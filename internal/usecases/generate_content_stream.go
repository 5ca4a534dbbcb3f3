package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/common"
	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/domain"
	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// GenerateContentStream is the use case interface for a generation that prefers
// the streaming backend and falls back to the standard one when streaming is
// not available.
type GenerateContentStream interface {
	// Execute runs the generation. Business errors from the streaming attempt
	// are returned unchanged; capability errors are turned into a fallback.
	Execute(ctx context.Context, req domain.GenerationRequest) (domain.GenerationOutcome, error)
}

// GenerateContentStreamImpl is the implementation of the GenerateContentStream use case.
type GenerateContentStreamImpl struct {
	client       domain.GraphQLInvoker
	capability   *StreamingCapability
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
}

// NewGenerateContentStreamImpl creates a new instance of GenerateContentStreamImpl.
func NewGenerateContentStreamImpl(
	c domain.GraphQLInvoker,
	sc *StreamingCapability,
	tp domain.CurrentTimeProvider,
	l *log.Logger,
) GenerateContentStreamImpl {
	return GenerateContentStreamImpl{
		client:       c,
		capability:   sc,
		timeProvider: tp,
		logger:       l,
	}
}

// Execute runs the generation on the streaming path when it is supported.
func (gs GenerateContentStreamImpl) Execute(ctx context.Context, req domain.GenerationRequest) (domain.GenerationOutcome, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := req.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.GenerationOutcome{}, err
	}

	if !gs.capability.IsStreamingSupported() {
		span.SetAttributes(attribute.String("generation.path", generationPathFallback))
		outcome, err := gs.fallback(spanCtx, req)
		telemetry.RecordErrorAndStatus(span, err)
		return outcome, err
	}

	started := gs.timeProvider.Now()
	result, err := invokeGeneration(spanCtx, gs.client, domain.OperationGenerateContentStream, req)
	if err == nil {
		span.SetAttributes(attribute.String("generation.path", generationPathStreaming))
		telemetry.RecordErrorAndStatus(span, nil)
		recordGeneration(spanCtx, generationPathStreaming, gs.timeProvider.Now().Sub(started), result)
		return domain.GenerationOutcome{
			Result:        result,
			UsedStreaming: true,
		}, nil
	}

	if !IsStreamingUnsupportedError(err) {
		telemetry.RecordErrorAndStatus(span, err)
		return domain.GenerationOutcome{}, err
	}

	if gs.capability.MarkUnsupported(spanCtx, ExtractStreamingFallbackReason(err)) && gs.logger != nil {
		gs.logger.Printf("GenerateContentStream: snippet %s switched to standard generation", req.SnippetID)
	}

	span.SetAttributes(attribute.String("generation.path", generationPathFallback))
	outcome, err := gs.fallback(spanCtx, req)
	telemetry.RecordErrorAndStatus(span, err)
	return outcome, err
}

// fallback runs the non-streaming generation. Its errors are not classified.
func (gs GenerateContentStreamImpl) fallback(ctx context.Context, req domain.GenerationRequest) (domain.GenerationOutcome, error) {
	started := gs.timeProvider.Now()
	result, err := invokeGeneration(ctx, gs.client, domain.OperationGenerateContent, req)
	if err != nil {
		return domain.GenerationOutcome{}, err
	}
	recordGeneration(ctx, generationPathFallback, gs.timeProvider.Now().Sub(started), result)

	reason := gs.capability.StreamingFallbackReason()
	if reason == nil {
		reason = common.Ptr(StreamingUnavailableMessage)
	}

	return domain.GenerationOutcome{
		Result:         result,
		UsedStreaming:  false,
		FallbackReason: reason,
	}, nil
}

// InitGenerateContentStream initializes the GenerateContentStream use case.
type InitGenerateContentStream struct {
	Client       domain.GraphQLInvoker      `resolve:""`
	Capability   *StreamingCapability       `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
}

// Initialize registers the GenerateContentStream use case implementation.
func (igcs InitGenerateContentStream) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GenerateContentStream](NewGenerateContentStreamImpl(
		igcs.Client, igcs.Capability, igcs.TimeProvider, igcs.Logger,
	))
	return ctx, nil
}
