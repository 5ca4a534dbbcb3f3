package http

import (
	"errors"

	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/domain"
)

// GenerateRequest is the body of both generation endpoints.
type GenerateRequest struct {
	ModelID string `json:"modelId"`
	Prompt  string `json:"prompt"`
}

// StreamingStatusResp reports the streaming capability of this instance.
type StreamingStatusResp struct {
	Supported      bool    `json:"supported"`
	FallbackReason *string `json:"fallbackReason"`
}

// FallbackEvent is sent on the generation stream when streaming is not available.
type FallbackEvent struct {
	SnippetID string `json:"snippetId"`
	Reason    string `json:"reason"`
}

// CompleteEvent is sent when the generation stream ends.
type CompleteEvent struct {
	SnippetID string `json:"snippetId"`
}

// toError maps a use case error to the API error body. Backend GraphQL errors
// with a known type become domain errors; the rest keep the backend messages.
func toError(err error) ErrorResp {
	errResp := ErrorResp{}

	var gqlErr *domain.GraphQLResponseError
	if errors.As(err, &gqlErr) {
		domainErr := gqlErr.DomainError()
		if domainErr == nil {
			errResp.Error.Code = UPSTREAMERROR
			errResp.Error.Message = gqlErr.Message()
			return errResp
		}
		err = domainErr
	}

	var validationErr *domain.ValidationErr
	var notFoundErr *domain.NotFoundErr
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = validationErr.Error()
	case errors.As(err, &notFoundErr):
		errResp.Error.Code = NOTFOUND
		errResp.Error.Message = notFoundErr.Error()
	default:
		errResp.Error.Code = INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toGenerationRequest(projectID, snippetID string, body GenerateRequest) domain.GenerationRequest {
	return domain.GenerationRequest{
		ProjectID: projectID,
		SnippetID: snippetID,
		ModelID:   body.ModelID,
		Prompt:    body.Prompt,
	}
}
