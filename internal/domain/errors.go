package domain

import "strings"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// GraphQLError is a single entry of a GraphQL "errors" list.
type GraphQLError struct {
	Message    string         `json:"message"`
	ErrorType  string         `json:"errorType,omitempty"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Error returns the error message.
func (e GraphQLError) Error() string {
	if e.ErrorType != "" && !strings.Contains(e.Message, e.ErrorType) {
		return e.ErrorType + ": " + e.Message
	}
	return e.Message
}

// GraphQLResponseError is an aggregate of GraphQL errors returned by the backend.
type GraphQLResponseError struct {
	StatusCode int
	Errors     []GraphQLError
}

// Error joins the messages of all errors.
func (e *GraphQLResponseError) Error() string {
	return "graphql: " + e.Message()
}

// Message joins the messages of all errors without the "graphql:" prefix.
func (e *GraphQLResponseError) Message() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ge := range e.Errors {
		msgs = append(msgs, ge.Error())
	}
	return strings.Join(msgs, "; ")
}

// DomainError maps the first entry with a known backend error type to a
// ValidationErr or NotFoundErr carrying that entry's message. It returns nil
// when no entry has a known type.
func (e *GraphQLResponseError) DomainError() error {
	for _, ge := range e.Errors {
		errorType := strings.ToLower(ge.ErrorType)
		switch {
		case strings.Contains(errorType, "validation"), strings.Contains(errorType, "badrequest"):
			return NewValidationErr(ge.Message)
		case strings.Contains(errorType, "notfound"):
			return NewNotFoundErr(ge.Message)
		}
	}
	return nil
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (e *GraphQLResponseError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, ge := range e.Errors {
		errs[i] = ge
	}
	return errs
}
