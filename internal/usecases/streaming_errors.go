package usecases

import (
	"strings"

	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/domain"
)

// unsupportedStreamingSignatures are lower-cased fragments of backend error
// messages meaning the streaming operation cannot be served at all.
var unsupportedStreamingSignatures = []string{
	// operation or field missing from the deployed schema
	"unknownoperationexception",
	"field 'generatecontentstream' in type 'mutation' is undefined",
	"field 'ongenerationstream' in type 'subscription' is undefined",
	"validation error of type fieldundefined",
	"cannot return null for non-nullable type",
	// resolver not attached
	"no resolver",
	"resolver not found",
	"unknown resolver",
	"unknown subscription",
	// subscriptions disabled
	"subscriptions are not configured",
	"schema is not configured for subscriptions",
	// authorization
	"not authorized to access",
	"unauthorizedexception",
	"unauthorized",
	"permission denied",
	"access denied",
}

// maxErrorDepth bounds the recursion into nested error lists.
const maxErrorDepth = 8

// CollectErrorMessages extracts every human-readable message from err and from
// any nested error list it carries. Accepted shapes are errors (including
// *domain.GraphQLResponseError and errors.Join aggregates), maps decoded from
// JSON with "message" and "errors" keys, slices of those, and plain strings.
// The messages of a wrapped error precede the message of its wrapper.
// Anything else yields no messages. It never panics.
func CollectErrorMessages(err any) (messages []string) {
	defer func() {
		if recover() != nil {
			messages = nil
		}
	}()

	c := messageCollector{seen: map[string]struct{}{}}
	c.collect(err, 0)
	return c.messages
}

type messageCollector struct {
	messages []string
	seen     map[string]struct{}
}

func (c *messageCollector) add(msg string) {
	if strings.TrimSpace(msg) == "" {
		return
	}
	if _, ok := c.seen[msg]; ok {
		return
	}
	c.seen[msg] = struct{}{}
	c.messages = append(c.messages, msg)
}

func (c *messageCollector) collect(v any, depth int) {
	if v == nil || depth > maxErrorDepth {
		return
	}

	switch e := v.(type) {
	case string:
		c.add(e)
	case *domain.GraphQLResponseError:
		// the aggregate message is derived from the entries
		if e == nil {
			return
		}
		for _, ge := range e.Errors {
			c.add(ge.Error())
		}
	case domain.GraphQLError:
		c.add(e.Error())
	case []domain.GraphQLError:
		for _, ge := range e {
			c.add(ge.Error())
		}
	case map[string]any:
		if msg, ok := e["message"].(string); ok {
			c.add(msg)
		}
		if nested, ok := e["errors"]; ok {
			c.collect(nested, depth+1)
		}
	case []any:
		for _, item := range e {
			c.collect(item, depth+1)
		}
	case []error:
		for _, item := range e {
			c.collect(item, depth+1)
		}
	case interface {
		error
		Unwrap() []error
	}:
		c.add(e.Error())
		for _, item := range e.Unwrap() {
			c.collect(item, depth+1)
		}
	case interface {
		error
		Unwrap() error
	}:
		// wrapped entries come first so that reasons name the backend error
		c.collect(e.Unwrap(), depth+1)
		c.add(e.Error())
	case error:
		c.add(e.Error())
	}
}

// IsStreamingUnsupportedError reports whether err says that streaming is not
// available in this environment. Errors without any message are never
// classified as such.
func IsStreamingUnsupportedError(err any) bool {
	for _, msg := range CollectErrorMessages(err) {
		if matchesUnsupportedSignature(msg) {
			return true
		}
	}
	return false
}

// ExtractStreamingFallbackReason returns the first message matching a known
// signature, else the first message, else nil. The reason is meant for logs;
// it is not safe to show to end users.
func ExtractStreamingFallbackReason(err any) *string {
	messages := CollectErrorMessages(err)
	if len(messages) == 0 {
		return nil
	}
	for _, msg := range messages {
		if matchesUnsupportedSignature(msg) {
			return &msg
		}
	}
	return &messages[0]
}

func matchesUnsupportedSignature(msg string) bool {
	lower := strings.ToLower(msg)
	for _, sig := range unsupportedStreamingSignatures {
		if strings.Contains(lower, sig) {
			return true
		}
	}
	return false
}
