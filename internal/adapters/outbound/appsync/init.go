package appsync

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitAppSyncClient registers the AppSync GraphQL invoker and realtime subscriber.
type InitAppSyncClient struct {
	HttpClient        *http.Client  `resolve:""`
	Logger            *log.Logger   `resolve:""`
	GraphQLURL        string        `config:"APPSYNC_GRAPHQL_URL"`
	RealtimeURL       string        `config:"APPSYNC_REALTIME_URL" default:"-"`
	APIKey            string        `config:"APPSYNC_API_KEY" default:"-"`
	AuthToken         string        `config:"APPSYNC_AUTH_TOKEN" default:"-"`
	ConnectionTimeout time.Duration `config:"APPSYNC_CONNECTION_TIMEOUT" default:"10s"`
}

// Initialize builds both adapters from the embedded operation catalogue.
func (i InitAppSyncClient) Initialize(ctx context.Context) (context.Context, error) {
	operations, err := DefaultCatalogue()
	if err != nil {
		return ctx, fmt.Errorf("failed to load GraphQL operations: %w", err)
	}

	auth := Authorizer{APIKey: unset(i.APIKey), Token: unset(i.AuthToken)}

	realtimeURL := unset(i.RealtimeURL)
	if realtimeURL == "" {
		realtimeURL, err = RealtimeURLFor(i.GraphQLURL)
		if err != nil {
			return ctx, err
		}
	}

	subscriber, err := NewRealtimeSubscriber(realtimeURL, i.GraphQLURL, auth, operations, i.ConnectionTimeout, i.Logger)
	if err != nil {
		return ctx, err
	}

	depend.Register[domain.GraphQLInvoker](NewClient(i.GraphQLURL, auth, operations, i.HttpClient))
	depend.Register[domain.GraphQLSubscriber](subscriber)
	return ctx, nil
}

// unset maps the "-" config placeholder to an empty value.
func unset(v string) string {
	if v == "-" {
		return ""
	}
	return v
}
