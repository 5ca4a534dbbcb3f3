package usecases

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/domain"
	"github.com/stretchr/testify/assert"
)

type panickingErr struct{}

func (*panickingErr) Error() string { panic("boom") }

func TestCollectErrorMessages(t *testing.T) {
	tests := map[string]struct {
		err  any
		want []string
	}{
		"nil": {
			err:  nil,
			want: nil,
		},
		"number": {
			err:  42,
			want: nil,
		},
		"map-without-message-or-errors": {
			err:  map[string]any{"code": 500},
			want: nil,
		},
		"plain-error": {
			err:  errors.New("Invalid prompt"),
			want: []string{"Invalid prompt"},
		},
		"wrapped-error": {
			err:  fmt.Errorf("generate: %w", errors.New("Quota exceeded")),
			want: []string{"Quota exceeded", "generate: Quota exceeded"},
		},
		"graphql-aggregate": {
			err: &domain.GraphQLResponseError{Errors: []domain.GraphQLError{
				{Message: "UnknownOperationException: generateContentStream"},
				{Message: "Second Problem"},
			}},
			want: []string{"UnknownOperationException: generateContentStream", "Second Problem"},
		},
		"wrapped-graphql-aggregate": {
			err: fmt.Errorf("invoke: %w", &domain.GraphQLResponseError{Errors: []domain.GraphQLError{
				{Message: "Not Authorized to access generateContentStream on type Mutation", ErrorType: "Unauthorized"},
			}}),
			want: []string{
				"Unauthorized: Not Authorized to access generateContentStream on type Mutation",
				"invoke: graphql: Unauthorized: Not Authorized to access generateContentStream on type Mutation",
			},
		},
		"decoded-json-object": {
			err: map[string]any{
				"message": "Top level",
				"errors": []any{
					map[string]any{"message": "Nested One"},
					map[string]any{"path": []any{"x"}},
					"Nested Two",
				},
			},
			want: []string{"Top level", "Nested One", "Nested Two"},
		},
		"joined-errors": {
			err:  errors.Join(errors.New("a"), errors.New("b")),
			want: []string{"a\nb", "a", "b"},
		},
		"empty-messages-skipped": {
			err:  map[string]any{"message": "  ", "errors": []any{}},
			want: nil,
		},
		"panicking-error": {
			err:  &panickingErr{},
			want: nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				got := CollectErrorMessages(tt.err)
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

func TestIsStreamingUnsupportedError(t *testing.T) {
	tests := map[string]struct {
		err  any
		want bool
	}{
		"nil":            {err: nil, want: false},
		"no-message":     {err: map[string]any{"code": 1}, want: false},
		"business-error": {err: errors.New("Invalid prompt"), want: false},
		"quota-error":    {err: errors.New("Quota exceeded for model"), want: false},
		"unknown-operation": {
			err: map[string]any{"errors": []any{
				map[string]any{"message": "UnknownOperationException: generateContentStream"},
			}},
			want: true,
		},
		"field-undefined": {
			err: &domain.GraphQLResponseError{Errors: []domain.GraphQLError{
				{Message: "Validation error of type FieldUndefined: Field 'generateContentStream' in type 'Mutation' is undefined @ 'generateContentStream'"},
			}},
			want: true,
		},
		"unauthorized-type": {
			err: &domain.GraphQLResponseError{Errors: []domain.GraphQLError{
				{Message: "Not Authorized to access onGenerationStream on type Subscription", ErrorType: "Unauthorized"},
			}},
			want: true,
		},
		"http-unauthorized": {
			err:  errors.New("401 Unauthorized"),
			want: true,
		},
		"subscriptions-not-configured": {
			err:  errors.New("Schema is not configured for subscriptions."),
			want: true,
		},
		"permission-denied-case-insensitive": {
			err:  errors.New("PERMISSION DENIED for subscription"),
			want: true,
		},
		"resolver-missing": {
			err:  errors.New("No resolver attached to field generateContentStream"),
			want: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStreamingUnsupportedError(tt.err))
		})
	}
}

func TestIsStreamingUnsupportedError_EverySignature(t *testing.T) {
	for _, sig := range unsupportedStreamingSignatures {
		t.Run(sig, func(t *testing.T) {
			err := fmt.Errorf("backend said: %s (request 1234)", sig)
			assert.True(t, IsStreamingUnsupportedError(err))
		})
	}
}

func TestExtractStreamingFallbackReason(t *testing.T) {
	tests := map[string]struct {
		err  any
		want *string
	}{
		"nil": {
			err:  nil,
			want: nil,
		},
		"first-matching-message": {
			err: &domain.GraphQLResponseError{Errors: []domain.GraphQLError{
				{Message: "Something else"},
				{Message: "UnknownOperationException: generateContentStream"},
			}},
			want: ptr("UnknownOperationException: generateContentStream"),
		},
		"wrapped-aggregate-names-the-entry": {
			err: fmt.Errorf("invoke: %w", &domain.GraphQLResponseError{Errors: []domain.GraphQLError{
				{Message: "Invalid prompt"},
				{Message: "Not Authorized to access generateContentStream on type Mutation", ErrorType: "Unauthorized"},
			}}),
			want: ptr("Unauthorized: Not Authorized to access generateContentStream on type Mutation"),
		},
		"wrapped-business-error": {
			err:  fmt.Errorf("generate: %w", errors.New("Quota exceeded")),
			want: ptr("Quota exceeded"),
		},
		"first-message-when-none-match": {
			err: map[string]any{"errors": []any{
				map[string]any{"message": "Invalid prompt"},
				map[string]any{"message": "Also invalid"},
			}},
			want: ptr("Invalid prompt"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractStreamingFallbackReason(tt.err))
		})
	}
}

func ptr(s string) *string {
	return &s
}
