package usecases

import (
	"context"
	"log"
	"sync"

	"github.com/cleitonmarx/symbiont/depend"
)

// StreamingUnavailableMessage is the user-facing reason reported once streaming
// has been disabled. Raw backend errors are only written to the log.
const StreamingUnavailableMessage = "Streaming is not available in this environment. " +
	"Falling back to standard generation; results will appear when complete."

// StreamingStatus exposes the streaming capability state to UI components.
type StreamingStatus interface {
	// IsStreamingSupported reports whether streaming generation is believed to work.
	IsStreamingSupported() bool
	// StreamingFallbackReason returns the user-safe reason streaming was disabled, or nil.
	StreamingFallbackReason() *string
}

// StreamingUnavailableErr is delivered to subscription error handlers when the
// channel failed because streaming is not supported. Its message is user-safe.
type StreamingUnavailableErr struct {
	Reason string
}

// Error returns the user-safe reason.
func (e *StreamingUnavailableErr) Error() string {
	return e.Reason
}

// StreamingCapability tracks whether streaming generation is supported for the
// lifetime of one client instance. The transition to unsupported is one-way.
type StreamingCapability struct {
	mu         sync.RWMutex
	supported  bool
	lastReason *string
	logger     *log.Logger
}

// NewStreamingCapability creates a tracker that starts as supported.
func NewStreamingCapability(logger *log.Logger) *StreamingCapability {
	return &StreamingCapability{
		supported: true,
		logger:    logger,
	}
}

// IsStreamingSupported reports whether streaming generation is believed to work.
func (c *StreamingCapability) IsStreamingSupported() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.supported
}

// StreamingFallbackReason returns the user-safe reason streaming was disabled, or nil.
func (c *StreamingCapability) StreamingFallbackReason() *string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.lastReason == nil {
		return nil
	}
	reason := *c.lastReason
	return &reason
}

// MarkUnsupported disables streaming. Only the first call changes the state and
// logs the raw reason; it returns true for that call.
func (c *StreamingCapability) MarkUnsupported(ctx context.Context, reason *string) bool {
	c.mu.Lock()
	if !c.supported {
		c.mu.Unlock()
		return false
	}
	c.supported = false
	generic := StreamingUnavailableMessage
	c.lastReason = &generic
	c.mu.Unlock()

	raw := "unknown"
	if reason != nil {
		raw = *reason
	}
	if c.logger != nil {
		c.logger.Printf("StreamingCapability: %s (reason: %s)", generic, raw)
	}
	RecordStreamingDowngrade(ctx)
	return true
}

// InitStreamingCapability registers the StreamingCapability shared by the generation use cases.
type InitStreamingCapability struct {
	Logger *log.Logger `resolve:""`
}

// Initialize registers the tracker both as *StreamingCapability and as StreamingStatus.
func (isc InitStreamingCapability) Initialize(ctx context.Context) (context.Context, error) {
	capability := NewStreamingCapability(isc.Logger)
	depend.Register(capability)
	depend.Register[StreamingStatus](capability)
	return ctx, nil
}
