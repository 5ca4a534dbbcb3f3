package domain

import "strings"

// GenerationRequest identifies a content generation job for a snippet on the canvas.
type GenerationRequest struct {
	ProjectID string
	SnippetID string
	ModelID   string
	Prompt    string
}

// Validate checks that every field of the request is present.
func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.ProjectID) == "" {
		return NewValidationErr("projectId cannot be empty")
	}
	if strings.TrimSpace(r.SnippetID) == "" {
		return NewValidationErr("snippetId cannot be empty")
	}
	if strings.TrimSpace(r.ModelID) == "" {
		return NewValidationErr("modelId cannot be empty")
	}
	if strings.TrimSpace(r.Prompt) == "" {
		return NewValidationErr("prompt cannot be empty")
	}
	return nil
}

// Variables returns the GraphQL variables shared by the generation operations.
func (r GenerationRequest) Variables() map[string]any {
	return map[string]any{
		"projectId": r.ProjectID,
		"snippetId": r.SnippetID,
		"modelId":   r.ModelID,
		"prompt":    r.Prompt,
	}
}

// GenerationResult is returned by both the streaming and the non-streaming backends.
type GenerationResult struct {
	Content          string  `json:"content"`
	TokensUsed       int     `json:"tokensUsed"`
	Cost             float64 `json:"cost"`
	ModelUsed        string  `json:"modelUsed"`
	GenerationTimeMs int64   `json:"generationTimeMs"`
}

// GenerationOutcome tells the caller which path produced the result.
// UsedStreaming=false is always paired with a non-nil FallbackReason.
type GenerationOutcome struct {
	Result         *GenerationResult `json:"result"`
	UsedStreaming  bool              `json:"usedStreaming"`
	FallbackReason *string           `json:"fallbackReason"`
}

// StreamEvent is one item pushed by a generation subscription.
type StreamEvent struct {
	SnippetID  string  `json:"snippetId"`
	Content    *string `json:"content"`
	IsComplete bool    `json:"isComplete"`
	TokensUsed *int    `json:"tokensUsed,omitempty"`
}

// StreamHandlers receives the events of a generation subscription.
// OnError and OnComplete are optional.
type StreamHandlers struct {
	OnNext     func(StreamEvent)
	OnError    func(error)
	OnComplete func()
}

// SubscriptionHandle cancels a generation subscription.
// Unsubscribe can be called any number of times, also after the stream has ended.
type SubscriptionHandle interface {
	Unsubscribe()
}
