package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/domain"
	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/usecases"
	"github.com/oapi-codegen/runtime"
)

// Names of the events sent on the generation stream.
const (
	eventDelta    = "delta"
	eventComplete = "complete"
	eventFallback = "fallback"
	eventError    = "error"
)

func (api GenerationServer) GenerateContent(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeGenerationRequest(w, r)
	if !ok {
		return
	}

	result, err := api.GenerateContentUseCase.Execute(r.Context(), req)
	if err != nil {
		api.respondUseCaseError(w, req.SnippetID, err)
		return
	}
	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (api GenerationServer) GenerateContentStream(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeGenerationRequest(w, r)
	if !ok {
		return
	}

	outcome, err := api.GenerateContentStreamUseCase.Execute(r.Context(), req)
	if err != nil {
		api.respondUseCaseError(w, req.SnippetID, err)
		return
	}

	respondJSON(w, http.StatusOK, outcome)
}

func (api GenerationServer) GetStreamingStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, StreamingStatusResp{
		Supported:      api.StreamingStatus.IsStreamingSupported(),
		FallbackReason: api.StreamingStatus.StreamingFallbackReason(),
	})
}

// sseEvent is queued by the subscription handlers and written by the request goroutine.
type sseEvent struct {
	name     string
	data     any
	terminal bool
}

// GenerationStream relays the generation subscription of a snippet as Server-Sent Events.
// The stream ends after the first complete, fallback or error event.
func (api GenerationServer) GenerationStream(w http.ResponseWriter, r *http.Request) {
	snippetID, ok := bindPathParam(w, r, "snippetId")
	if !ok {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, ErrorResp{
			Error: Error{
				Code:    INTERNALERROR,
				Message: "streaming not supported",
			},
		})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	if !api.StreamingStatus.IsStreamingSupported() {
		_ = writeEvent(w, flusher, eventFallback, api.fallbackEvent(snippetID))
		return
	}

	events := make(chan sseEvent, 32)
	closed := make(chan struct{})
	defer close(closed)
	send := func(ev sseEvent) {
		select {
		case events <- ev:
		case <-closed:
		}
	}

	handle := api.SubscribeGenerationStreamUseCase.Execute(r.Context(), snippetID, domain.StreamHandlers{
		OnNext: func(e domain.StreamEvent) {
			send(sseEvent{name: eventDelta, data: e})
		},
		OnError: func(err error) {
			var unavailable *usecases.StreamingUnavailableErr
			if errors.As(err, &unavailable) {
				send(sseEvent{name: eventFallback, data: FallbackEvent{SnippetID: snippetID, Reason: unavailable.Error()}, terminal: true})
				return
			}
			api.Logger.Printf("GenerationStream: snippet %s stream failed: %v", snippetID, err)
			send(sseEvent{name: eventError, data: toError(err), terminal: true})
		},
		OnComplete: func() {
			send(sseEvent{name: eventComplete, data: CompleteEvent{SnippetID: snippetID}, terminal: true})
		},
	})
	defer handle.Unsubscribe()

	// The capability can be downgraded by a concurrent request before the
	// subscription was opened, in which case no handler will ever fire.
	if !api.StreamingStatus.IsStreamingSupported() {
		send(sseEvent{name: eventFallback, data: api.fallbackEvent(snippetID), terminal: true})
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-events:
			if err := writeEvent(w, flusher, ev.name, ev.data); err != nil {
				api.Logger.Printf("GenerationStream: error writing %s event: %v", ev.name, err)
				return
			}
			if ev.terminal {
				return
			}
		}
	}
}

func (api GenerationServer) fallbackEvent(snippetID string) FallbackEvent {
	reason := usecases.StreamingUnavailableMessage
	if r := api.StreamingStatus.StreamingFallbackReason(); r != nil {
		reason = *r
	}
	return FallbackEvent{SnippetID: snippetID, Reason: reason}
}

func (api GenerationServer) respondUseCaseError(w http.ResponseWriter, snippetID string, err error) {
	errResp := toError(err)
	if errResp.Error.Code == INTERNALERROR || errResp.Error.Code == UPSTREAMERROR {
		api.Logger.Printf("GenerationServer: generation for snippet %s failed: %v", snippetID, err)
	}
	respondError(w, errResp)
}

// bindPathParam binds a simple-style path parameter.
func bindPathParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, r.PathValue(name), &value, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		respondError(w, ErrorResp{
			Error: Error{
				Code:    BADREQUEST,
				Message: fmt.Sprintf("invalid format for parameter %s: %v", name, err),
			},
		})
		return "", false
	}
	return value, true
}

func decodeGenerationRequest(w http.ResponseWriter, r *http.Request) (domain.GenerationRequest, bool) {
	projectID, ok := bindPathParam(w, r, "projectId")
	if !ok {
		return domain.GenerationRequest{}, false
	}
	snippetID, ok := bindPathParam(w, r, "snippetId")
	if !ok {
		return domain.GenerationRequest{}, false
	}

	var body GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		errResp := ErrorResp{}
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = fmt.Sprintf("invalid request body: %v", err)

		respondError(w, errResp)
		return domain.GenerationRequest{}, false
	}
	return toGenerationRequest(projectID, snippetID, body), true
}
