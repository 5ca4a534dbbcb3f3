package domain

import (
	"context"
	"encoding/json"
)

// Names of the GraphQL operations used for content generation.
const (
	OperationGenerateContent       = "GenerateContent"
	OperationGenerateContentStream = "GenerateContentStream"
	OperationOnGenerationStream    = "OnGenerationStream"
)

// GraphQLInvoker executes a named GraphQL query or mutation.
type GraphQLInvoker interface {
	// Invoke runs the operation with the given variables and decodes the
	// operation's root field into out. A GraphQL level failure is returned as
	// *GraphQLResponseError.
	Invoke(ctx context.Context, operationName string, variables map[string]any, out any) error
}

// GraphQLSubscriber opens server-push channels for GraphQL subscriptions.
type GraphQLSubscriber interface {
	// Open prepares the subscription. Nothing is sent to the server until
	// the returned Observable is subscribed.
	Open(ctx context.Context, operationName string, variables map[string]any) (Observable, error)
}

// Observable is a lazily started subscription channel.
type Observable interface {
	Subscribe(observer SubscriptionObserver) Subscription
}

// Subscription is an open subscription channel.
type Subscription interface {
	Unsubscribe()
}

// SubscriptionObserver receives the payloads of a subscription.
// Next receives the subscription root field, raw.
type SubscriptionObserver struct {
	Next     func(payload json.RawMessage)
	Error    func(err error)
	Complete func()
}
