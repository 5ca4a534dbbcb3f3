package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/common"
	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-snippet-canvas/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/usecases"
	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	generateBody = GenerateRequest{
		ModelID: "anthropic.claude-3-haiku",
		Prompt:  "Write an intro",
	}
	generationRequest = domain.GenerationRequest{
		ProjectID: "project-1",
		SnippetID: "snippet-1",
		ModelID:   "anthropic.claude-3-haiku",
		Prompt:    "Write an intro",
	}
	generationResult = &domain.GenerationResult{
		Content:          "Welcome to the canvas.",
		TokensUsed:       120,
		Cost:             0.0004,
		ModelUsed:        "anthropic.claude-3-haiku",
		GenerationTimeMs: 850,
	}
)

func serializeJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func testLogger() *log.Logger {
	return log.New(&bytes.Buffer{}, "", 0)
}

func TestGenerationServer_GenerateContent(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(*mocks.MockGenerateContent)
		expectedStatus int
		expectedBody   *domain.GenerationResult
		expectedError  *ErrorResp
	}{
		"success": {
			requestBody: serializeJSON(t, generateBody),
			setupMocks: func(m *mocks.MockGenerateContent) {
				m.EXPECT().Execute(mock.Anything, generationRequest).Return(generationResult, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   generationResult,
		},
		"no-content": {
			requestBody: serializeJSON(t, generateBody),
			setupMocks: func(m *mocks.MockGenerateContent) {
				m.EXPECT().Execute(mock.Anything, generationRequest).Return(nil, nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		"invalid-body": {
			requestBody:    []byte(`{"prompt":`),
			setupMocks:     func(m *mocks.MockGenerateContent) {},
			expectedStatus: http.StatusBadRequest,
		},
		"validation-error": {
			requestBody: serializeJSON(t, GenerateRequest{ModelID: "m"}),
			setupMocks: func(m *mocks.MockGenerateContent) {
				m.EXPECT().Execute(mock.Anything, mock.Anything).
					Return(nil, domain.NewValidationErr("prompt cannot be empty"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError: &ErrorResp{
				Error: Error{Code: BADREQUEST, Message: "prompt cannot be empty"},
			},
		},
		"not-found": {
			requestBody: serializeJSON(t, generateBody),
			setupMocks: func(m *mocks.MockGenerateContent) {
				m.EXPECT().Execute(mock.Anything, generationRequest).
					Return(nil, domain.NewNotFoundErr("snippet not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedError: &ErrorResp{
				Error: Error{Code: NOTFOUND, Message: "snippet not found"},
			},
		},
		"backend-error": {
			requestBody: serializeJSON(t, generateBody),
			setupMocks: func(m *mocks.MockGenerateContent) {
				m.EXPECT().Execute(mock.Anything, generationRequest).
					Return(nil, errors.New("graphql: Quota exceeded"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError: &ErrorResp{
				Error: Error{Code: INTERNALERROR, Message: "internal server error"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			generateContent := mocks.NewMockGenerateContent(t)
			tt.setupMocks(generateContent)

			server := GenerationServer{
				Logger:                 testLogger(),
				GenerateContentUseCase: generateContent,
			}

			req := httptest.NewRequest(
				http.MethodPost,
				"/api/v1/projects/project-1/snippets/snippet-1/generate",
				bytes.NewReader(tt.requestBody),
			)
			w := httptest.NewRecorder()

			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var got domain.GenerationResult
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, *tt.expectedBody, got)
			}
			if tt.expectedError != nil {
				var got ErrorResp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, *tt.expectedError, got)
			}
		})
	}
}

func TestGenerationServer_GenerateContentStream(t *testing.T) {
	tests := map[string]struct {
		setupMocks     func(*mocks.MockGenerateContentStream)
		expectedStatus int
		expectedBody   string
	}{
		"streamed": {
			setupMocks: func(m *mocks.MockGenerateContentStream) {
				m.EXPECT().Execute(mock.Anything, generationRequest).Return(domain.GenerationOutcome{
					Result:        generationResult,
					UsedStreaming: true,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"result":{"content":"Welcome to the canvas.","tokensUsed":120,"cost":0.0004,"modelUsed":"anthropic.claude-3-haiku","generationTimeMs":850},
				"usedStreaming":true,"fallbackReason":null}`,
		},
		"fallback": {
			setupMocks: func(m *mocks.MockGenerateContentStream) {
				m.EXPECT().Execute(mock.Anything, generationRequest).Return(domain.GenerationOutcome{
					Result:         generationResult,
					UsedStreaming:  false,
					FallbackReason: common.Ptr(usecases.StreamingUnavailableMessage),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"result":{"content":"Welcome to the canvas.","tokensUsed":120,"cost":0.0004,"modelUsed":"anthropic.claude-3-haiku","generationTimeMs":850},
				"usedStreaming":false,"fallbackReason":"` + usecases.StreamingUnavailableMessage + `"}`,
		},
		"business-error": {
			setupMocks: func(m *mocks.MockGenerateContentStream) {
				m.EXPECT().Execute(mock.Anything, generationRequest).
					Return(domain.GenerationOutcome{}, errors.New("Invalid prompt"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":{"code":"INTERNAL_ERROR","message":"internal server error"}}`,
		},
		"backend-validation-error": {
			setupMocks: func(m *mocks.MockGenerateContentStream) {
				m.EXPECT().Execute(mock.Anything, generationRequest).
					Return(domain.GenerationOutcome{}, &domain.GraphQLResponseError{Errors: []domain.GraphQLError{
						{Message: "Invalid prompt", ErrorType: "ValidationException"},
					}})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":{"code":"BAD_REQUEST","message":"Invalid prompt"}}`,
		},
		"backend-not-found-error": {
			setupMocks: func(m *mocks.MockGenerateContentStream) {
				m.EXPECT().Execute(mock.Anything, generationRequest).
					Return(domain.GenerationOutcome{}, &domain.GraphQLResponseError{Errors: []domain.GraphQLError{
						{Message: "Snippet snippet-1 not found", ErrorType: "NotFound"},
					}})
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":{"code":"NOT_FOUND","message":"Snippet snippet-1 not found"}}`,
		},
		"backend-untyped-error": {
			setupMocks: func(m *mocks.MockGenerateContentStream) {
				m.EXPECT().Execute(mock.Anything, generationRequest).
					Return(domain.GenerationOutcome{}, &domain.GraphQLResponseError{Errors: []domain.GraphQLError{
						{Message: "Quota exceeded for model", ErrorType: "LimitExceededException"},
					}})
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":{"code":"UPSTREAM_ERROR","message":"LimitExceededException: Quota exceeded for model"}}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			generateStream := mocks.NewMockGenerateContentStream(t)
			tt.setupMocks(generateStream)

			server := GenerationServer{
				Logger:                       testLogger(),
				GenerateContentStreamUseCase: generateStream,
			}

			req := httptest.NewRequest(
				http.MethodPost,
				"/api/v1/projects/project-1/snippets/snippet-1/generate-stream",
				bytes.NewReader(serializeJSON(t, generateBody)),
			)
			w := httptest.NewRecorder()

			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestGenerationServer_GenerateContentStream_BackendBusinessError(t *testing.T) {
	client := domain_mocks.NewMockGraphQLInvoker(t)
	client.EXPECT().Invoke(mock.Anything, domain.OperationGenerateContentStream, mock.Anything, mock.Anything).
		Return(&domain.GraphQLResponseError{Errors: []domain.GraphQLError{
			{Message: "Invalid prompt", ErrorType: "ValidationException"},
		}}).Once()
	timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
	timeProvider.EXPECT().Now().Return(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	capability := usecases.NewStreamingCapability(testLogger())
	server := GenerationServer{
		Logger:                       testLogger(),
		GenerateContentStreamUseCase: usecases.NewGenerateContentStreamImpl(client, capability, timeProvider, testLogger()),
	}

	req := httptest.NewRequest(
		http.MethodPost,
		"/api/v1/projects/project-1/snippets/snippet-1/generate-stream",
		bytes.NewReader(serializeJSON(t, generateBody)),
	)
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":{"code":"BAD_REQUEST","message":"Invalid prompt"}}`, w.Body.String())
	assert.True(t, capability.IsStreamingSupported())
}

func TestGenerationServer_GetStreamingStatus(t *testing.T) {
	tests := map[string]struct {
		supported    bool
		reason       *string
		expectedBody string
	}{
		"supported": {
			supported:    true,
			expectedBody: `{"supported":true,"fallbackReason":null}`,
		},
		"downgraded": {
			supported:    false,
			reason:       common.Ptr(usecases.StreamingUnavailableMessage),
			expectedBody: `{"supported":false,"fallbackReason":"` + usecases.StreamingUnavailableMessage + `"}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			status := mocks.NewMockStreamingStatus(t)
			status.EXPECT().IsStreamingSupported().Return(tt.supported)
			status.EXPECT().StreamingFallbackReason().Return(tt.reason)

			server := GenerationServer{StreamingStatus: status}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/streaming/status", nil)
			w := httptest.NewRecorder()

			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// fakeHandle counts Unsubscribe calls.
type fakeHandle struct {
	unsubscribed int
}

func (h *fakeHandle) Unsubscribe() { h.unsubscribed++ }

type sse struct {
	event string
	data  string
}

func parseEvents(body string) []sse {
	var events []sse
	for _, block := range strings.Split(strings.TrimSpace(body), "\n\n") {
		var ev sse
		for _, line := range strings.Split(block, "\n") {
			switch {
			case strings.HasPrefix(line, "event: "):
				ev.event = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				ev.data = strings.TrimPrefix(line, "data: ")
			}
		}
		if ev.event != "" {
			events = append(events, ev)
		}
	}
	return events
}

func TestGenerationServer_GenerationStream(t *testing.T) {
	tests := map[string]struct {
		setupMocks         func(*mocks.MockStreamingStatus, *mocks.MockSubscribeGenerationStream, *fakeHandle)
		expectedEvents     []sse
		expectUnsubscribed bool
	}{
		"deltas-then-complete": {
			setupMocks: func(s *mocks.MockStreamingStatus, sub *mocks.MockSubscribeGenerationStream, h *fakeHandle) {
				s.EXPECT().IsStreamingSupported().Return(true)
				sub.EXPECT().Execute(mock.Anything, "snippet-1", mock.Anything).
					RunAndReturn(func(_ context.Context, id string, hs domain.StreamHandlers) domain.SubscriptionHandle {
						hs.OnNext(domain.StreamEvent{SnippetID: id, Content: common.Ptr("Hel")})
						hs.OnNext(domain.StreamEvent{SnippetID: id, Content: common.Ptr("lo"), IsComplete: true})
						hs.OnComplete()
						return h
					})
			},
			expectedEvents: []sse{
				{event: "delta", data: `{"snippetId":"snippet-1","content":"Hel","isComplete":false}`},
				{event: "delta", data: `{"snippetId":"snippet-1","content":"lo","isComplete":true}`},
				{event: "complete", data: `{"snippetId":"snippet-1"}`},
			},
			expectUnsubscribed: true,
		},
		"unsupported-sends-fallback": {
			setupMocks: func(s *mocks.MockStreamingStatus, sub *mocks.MockSubscribeGenerationStream, h *fakeHandle) {
				s.EXPECT().IsStreamingSupported().Return(false)
				s.EXPECT().StreamingFallbackReason().Return(common.Ptr(usecases.StreamingUnavailableMessage))
			},
			expectedEvents: []sse{
				{event: "fallback", data: `{"snippetId":"snippet-1","reason":"` + usecases.StreamingUnavailableMessage + `"}`},
			},
		},
		"capability-error-sends-fallback": {
			setupMocks: func(s *mocks.MockStreamingStatus, sub *mocks.MockSubscribeGenerationStream, h *fakeHandle) {
				s.EXPECT().IsStreamingSupported().Return(true).Once()
				s.EXPECT().IsStreamingSupported().Return(false).Once()
				s.EXPECT().StreamingFallbackReason().Return(common.Ptr(usecases.StreamingUnavailableMessage)).Maybe()
				sub.EXPECT().Execute(mock.Anything, "snippet-1", mock.Anything).
					RunAndReturn(func(_ context.Context, _ string, hs domain.StreamHandlers) domain.SubscriptionHandle {
						hs.OnError(&usecases.StreamingUnavailableErr{Reason: usecases.StreamingUnavailableMessage})
						return h
					})
			},
			expectedEvents: []sse{
				{event: "fallback", data: `{"snippetId":"snippet-1","reason":"` + usecases.StreamingUnavailableMessage + `"}`},
			},
			expectUnsubscribed: true,
		},
		"business-error-sends-error": {
			setupMocks: func(s *mocks.MockStreamingStatus, sub *mocks.MockSubscribeGenerationStream, h *fakeHandle) {
				s.EXPECT().IsStreamingSupported().Return(true)
				sub.EXPECT().Execute(mock.Anything, "snippet-1", mock.Anything).
					RunAndReturn(func(_ context.Context, id string, hs domain.StreamHandlers) domain.SubscriptionHandle {
						hs.OnNext(domain.StreamEvent{SnippetID: id, Content: common.Ptr("partial")})
						hs.OnError(errors.New("graphql: Quota exceeded"))
						return h
					})
			},
			expectedEvents: []sse{
				{event: "delta", data: `{"snippetId":"snippet-1","content":"partial","isComplete":false}`},
				{event: "error", data: `{"error":{"code":"INTERNAL_ERROR","message":"internal server error"}}`},
			},
			expectUnsubscribed: true,
		},
		"backend-error-sends-error": {
			setupMocks: func(s *mocks.MockStreamingStatus, sub *mocks.MockSubscribeGenerationStream, h *fakeHandle) {
				s.EXPECT().IsStreamingSupported().Return(true)
				sub.EXPECT().Execute(mock.Anything, "snippet-1", mock.Anything).
					RunAndReturn(func(_ context.Context, _ string, hs domain.StreamHandlers) domain.SubscriptionHandle {
						hs.OnError(&domain.GraphQLResponseError{Errors: []domain.GraphQLError{
							{Message: "Quota exceeded for model"},
						}})
						return h
					})
			},
			expectedEvents: []sse{
				{event: "error", data: `{"error":{"code":"UPSTREAM_ERROR","message":"Quota exceeded for model"}}`},
			},
			expectUnsubscribed: true,
		},
		"backend-not-found-sends-error": {
			setupMocks: func(s *mocks.MockStreamingStatus, sub *mocks.MockSubscribeGenerationStream, h *fakeHandle) {
				s.EXPECT().IsStreamingSupported().Return(true)
				sub.EXPECT().Execute(mock.Anything, "snippet-1", mock.Anything).
					RunAndReturn(func(_ context.Context, _ string, hs domain.StreamHandlers) domain.SubscriptionHandle {
						hs.OnError(&domain.GraphQLResponseError{Errors: []domain.GraphQLError{
							{Message: "Snippet snippet-1 not found", ErrorType: "NotFound"},
						}})
						return h
					})
			},
			expectedEvents: []sse{
				{event: "error", data: `{"error":{"code":"NOT_FOUND","message":"Snippet snippet-1 not found"}}`},
			},
			expectUnsubscribed: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			status := mocks.NewMockStreamingStatus(t)
			subscribe := mocks.NewMockSubscribeGenerationStream(t)
			handle := &fakeHandle{}
			tt.setupMocks(status, subscribe, handle)

			server := GenerationServer{
				Logger:                           testLogger(),
				SubscribeGenerationStreamUseCase: subscribe,
				StreamingStatus:                  status,
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/snippets/snippet-1/generation-stream", nil)
			w := httptest.NewRecorder()

			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedEvents, parseEvents(w.Body.String()))
			if tt.expectUnsubscribed {
				assert.Equal(t, 1, handle.unsubscribed)
			}
		})
	}
}

func TestGenerationServer_GenerationStream_ClientDisconnect(t *testing.T) {
	status := mocks.NewMockStreamingStatus(t)
	status.EXPECT().IsStreamingSupported().Return(true)

	handle := &fakeHandle{}
	subscribe := mocks.NewMockSubscribeGenerationStream(t)
	subscribe.EXPECT().Execute(mock.Anything, "snippet-1", mock.Anything).Return(handle)

	server := GenerationServer{
		Logger:                           testLogger(),
		SubscribeGenerationStreamUseCase: subscribe,
		StreamingStatus:                  status,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/snippets/snippet-1/generation-stream", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	assert.Empty(t, parseEvents(w.Body.String()))
	assert.Equal(t, 1, handle.unsubscribed)
}

func TestBindPathParam(t *testing.T) {
	tests := map[string]struct {
		value        string
		expected     string
		expectedOK   bool
		expectedCode int
	}{
		"plain": {
			value:      "snippet-1",
			expected:   "snippet-1",
			expectedOK: true,
		},
		"escaped": {
			value:      "snippet%2F1",
			expected:   "snippet/1",
			expectedOK: true,
		},
		"empty": {
			value:        "",
			expectedCode: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.SetPathValue("snippetId", tt.value)
			w := httptest.NewRecorder()

			got, ok := bindPathParam(w, req, "snippetId")

			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expected, got)
			if !tt.expectedOK {
				assert.Equal(t, tt.expectedCode, w.Code)
				var errResp ErrorResp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
				assert.Equal(t, BADREQUEST, errResp.Error.Code)
				assert.True(t, strings.HasPrefix(errResp.Error.Message, "invalid format for parameter snippetId"))
			}
		})
	}
}
