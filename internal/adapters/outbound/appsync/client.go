package appsync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/domain"
	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/telemetry"
	"github.com/vektah/gqlparser/v2/ast"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// request represents a GraphQL request payload.
type request struct {
	Query         string `json:"query"`
	OperationName string `json:"operationName,omitempty"`
	Variables     any    `json:"variables,omitempty"`
}

// response represents a GraphQL response payload.
type response struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []domain.GraphQLError      `json:"errors,omitempty"`
}

var _ domain.GraphQLInvoker = Client{}

// Client sends queries and mutations to an AppSync GraphQL endpoint.
type Client struct {
	url        string
	auth       Authorizer
	operations Catalogue
	http       *http.Client
}

// NewClient creates a new GraphQL client for endpoint.
func NewClient(endpoint string, auth Authorizer, operations Catalogue, httpClient *http.Client) Client {
	return Client{
		url:        endpoint,
		auth:       auth,
		operations: operations,
		http:       httpClient,
	}
}

// Invoke runs the named operation and decodes its root field into out.
// A null or missing root field leaves out untouched.
func (c Client) Invoke(ctx context.Context, operationName string, variables map[string]any, out any) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("graphql.operation.name", operationName),
	))
	defer span.End()

	op, err := c.operations.Lookup(operationName)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if op.Kind == ast.Subscription {
		err := fmt.Errorf("operation %s is a subscription", operationName)
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	resp, err := c.makeRequest(spanCtx, request{
		Query:         op.Document,
		OperationName: op.Name,
		Variables:     variables,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	raw, ok := resp.Data[op.RootField]
	if !ok || out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", op.RootField, err)
	}
	return nil
}

// makeRequest posts req and turns GraphQL and HTTP failures into a
// *domain.GraphQLResponseError.
func (c Client) makeRequest(ctx context.Context, req request) (response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return response{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return response{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	c.auth.Apply(httpReq)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return response{}, fmt.Errorf("http do: %w", err)
	}
	defer httpResp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return response{}, fmt.Errorf("read response: %w", err)
	}

	var gqlResp response
	decodeErr := json.Unmarshal(respBody, &gqlResp)
	if decodeErr == nil && len(gqlResp.Errors) > 0 {
		return response{}, &domain.GraphQLResponseError{
			StatusCode: httpResp.StatusCode,
			Errors:     gqlResp.Errors,
		}
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return response{}, &domain.GraphQLResponseError{
			StatusCode: httpResp.StatusCode,
			Errors:     []domain.GraphQLError{{Message: httpResp.Status}},
		}
	}
	if decodeErr != nil {
		return response{}, fmt.Errorf("failed to decode response: %w", decodeErr)
	}
	return gqlResp, nil
}
