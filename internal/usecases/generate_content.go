package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/domain"
	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// GenerateContent is the use case interface for a plain, non-streaming generation.
type GenerateContent interface {
	// Execute runs the generation and returns its result. A nil result means
	// the backend returned no data.
	Execute(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)
}

// GenerateContentImpl is the implementation of the GenerateContent use case.
// It never consults the streaming capability.
type GenerateContentImpl struct {
	client       domain.GraphQLInvoker
	timeProvider domain.CurrentTimeProvider
}

// NewGenerateContentImpl creates a new instance of GenerateContentImpl.
func NewGenerateContentImpl(c domain.GraphQLInvoker, tp domain.CurrentTimeProvider) GenerateContentImpl {
	return GenerateContentImpl{
		client:       c,
		timeProvider: tp,
	}
}

// Execute runs the generateContent mutation.
func (gc GenerateContentImpl) Execute(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := req.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	started := gc.timeProvider.Now()
	result, err := invokeGeneration(spanCtx, gc.client, domain.OperationGenerateContent, req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	recordGeneration(spanCtx, generationPathDirect, gc.timeProvider.Now().Sub(started), result)
	return result, nil
}

// invokeGeneration calls one of the generation mutations. Errors are returned
// as produced by the client so callers can classify them.
func invokeGeneration(ctx context.Context, client domain.GraphQLInvoker, operation string, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	var result *domain.GenerationResult
	if err := client.Invoke(ctx, operation, req.Variables(), &result); err != nil {
		return nil, err
	}
	return result, nil
}

func recordGeneration(ctx context.Context, path string, elapsed time.Duration, result *domain.GenerationResult) {
	tokens := 0
	if result != nil {
		tokens = result.TokensUsed
	}
	RecordContentGeneration(ctx, path, elapsed, tokens)
}

// InitGenerateContent initializes the GenerateContent use case.
type InitGenerateContent struct {
	Client       domain.GraphQLInvoker      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the GenerateContent use case implementation.
func (igc InitGenerateContent) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GenerateContent](NewGenerateContentImpl(igc.Client, igc.TimeProvider))
	return ctx, nil
}
