package usecases

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// SubscribeGenerationStream is the use case interface for receiving incremental
// generation output for a snippet.
type SubscribeGenerationStream interface {
	// Execute opens the generation stream of the snippet. When streaming is
	// known to be unsupported no channel is opened and no handler is ever
	// called.
	Execute(ctx context.Context, snippetID string, handlers domain.StreamHandlers) domain.SubscriptionHandle
}

// SubscribeGenerationStreamImpl is the implementation of the SubscribeGenerationStream use case.
type SubscribeGenerationStreamImpl struct {
	subscriber domain.GraphQLSubscriber
	capability *StreamingCapability
	logger     *log.Logger
}

// NewSubscribeGenerationStreamImpl creates a new instance of SubscribeGenerationStreamImpl.
func NewSubscribeGenerationStreamImpl(s domain.GraphQLSubscriber, sc *StreamingCapability, l *log.Logger) SubscribeGenerationStreamImpl {
	return SubscribeGenerationStreamImpl{
		subscriber: s,
		capability: sc,
		logger:     l,
	}
}

// Execute opens the onGenerationStream subscription for snippetID.
func (sg SubscribeGenerationStreamImpl) Execute(ctx context.Context, snippetID string, handlers domain.StreamHandlers) domain.SubscriptionHandle {
	handle := &generationSubscription{}
	if !sg.capability.IsStreamingSupported() {
		handle.closed = true
		return handle
	}

	observable, err := sg.subscriber.Open(ctx, domain.OperationOnGenerationStream, map[string]any{
		"snippetId": snippetID,
	})
	if err != nil {
		handle.closed = true
		sg.handleError(ctx, handlers, err)
		return handle
	}

	sub := observable.Subscribe(domain.SubscriptionObserver{
		Next: func(payload json.RawMessage) {
			if !handle.isActive() {
				return
			}
			var event domain.StreamEvent
			if err := json.Unmarshal(payload, &event); err != nil {
				sg.logf("SubscribeGenerationStream: skipping malformed event for snippet %s: %v", snippetID, err)
				return
			}
			if event.Content != nil && handlers.OnNext != nil {
				handlers.OnNext(event)
			}
			if event.IsComplete && handle.terminate() {
				if handlers.OnComplete != nil {
					handlers.OnComplete()
				}
			}
		},
		Error: func(err error) {
			if !handle.terminate() {
				return
			}
			sg.handleError(ctx, handlers, err)
		},
		Complete: func() {
			if !handle.terminate() {
				return
			}
			if handlers.OnComplete != nil {
				handlers.OnComplete()
			}
		},
	})
	handle.attach(sub)

	return handle
}

// handleError downgrades the capability on capability failures and hides the
// raw error from the handler in that case.
func (sg SubscribeGenerationStreamImpl) handleError(ctx context.Context, handlers domain.StreamHandlers, err error) {
	if IsStreamingUnsupportedError(err) {
		sg.capability.MarkUnsupported(ctx, ExtractStreamingFallbackReason(err))
		if handlers.OnError != nil {
			reason := StreamingUnavailableMessage
			if r := sg.capability.StreamingFallbackReason(); r != nil {
				reason = *r
			}
			handlers.OnError(&StreamingUnavailableErr{Reason: reason})
		}
		return
	}
	if handlers.OnError != nil {
		handlers.OnError(err)
	}
}

func (sg SubscribeGenerationStreamImpl) logf(format string, args ...any) {
	if sg.logger != nil {
		sg.logger.Printf(format, args...)
	}
}

// generationSubscription is the SubscriptionHandle returned to callers.
// Once closed, by the caller or by the stream ending, no handler is called again.
type generationSubscription struct {
	mu       sync.Mutex
	closed   bool
	released bool
	sub      domain.Subscription
}

// Unsubscribe stops delivery and releases the channel. It is idempotent.
func (s *generationSubscription) Unsubscribe() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.release()
}

// attach stores the underlying subscription, releasing it right away when the
// handle was closed while the channel was being subscribed.
func (s *generationSubscription) attach(sub domain.Subscription) {
	s.mu.Lock()
	s.sub = sub
	closed := s.closed
	s.mu.Unlock()
	if closed {
		s.release()
	}
}

// terminate closes the handle on behalf of the stream. It returns false when
// the handle was already closed.
func (s *generationSubscription) terminate() bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.closed = true
	s.mu.Unlock()
	s.release()
	return true
}

func (s *generationSubscription) isActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

func (s *generationSubscription) release() {
	s.mu.Lock()
	if s.released || s.sub == nil {
		s.mu.Unlock()
		return
	}
	s.released = true
	sub := s.sub
	s.mu.Unlock()
	sub.Unsubscribe()
}

// InitSubscribeGenerationStream initializes the SubscribeGenerationStream use case.
type InitSubscribeGenerationStream struct {
	Subscriber domain.GraphQLSubscriber `resolve:""`
	Capability *StreamingCapability     `resolve:""`
	Logger     *log.Logger              `resolve:""`
}

// Initialize registers the SubscribeGenerationStream use case implementation.
func (isgs InitSubscribeGenerationStream) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SubscribeGenerationStream](NewSubscribeGenerationStreamImpl(
		isgs.Subscriber, isgs.Capability, isgs.Logger,
	))
	return ctx, nil
}
