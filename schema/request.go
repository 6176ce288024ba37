package schema

import "encoding/json"

// Request is a single GraphQL call: operation name, query document and
// variables. It is built per invocation and never reused.
type Request struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// NewRequest creates a request for the given operation.
func NewRequest(operation, query string, variables map[string]any) *Request {
	return &Request{OperationName: operation, Query: query, Variables: variables}
}

// Response is the GraphQL response envelope.
type Response struct {
	Data   json.RawMessage `json:"data"`
	Errors []ResponseError `json:"errors,omitempty"`
}

// ResponseError is a GraphQL top-level error entry.
type ResponseError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

// PayloadError is the embedded error shape Monarch mutations return on
// failure even with a 200 status.
type PayloadError struct {
	Message     string `json:"message"`
	Code        string `json:"code"`
	FieldErrors []struct {
		Field    string   `json:"field"`
		Messages []string `json:"messages"`
	} `json:"fieldErrors"`
}

// ErrorMessage returns the most specific message carried by a payload error list.
func ErrorMessage(errs []PayloadError) string {
	for _, e := range errs {
		if e.Message != "" {
			return e.Message
		}
		for _, fe := range e.FieldErrors {
			if len(fe.Messages) > 0 {
				return fe.Field + ": " + fe.Messages[0]
			}
		}
	}
	return "request failed"
}

// ErrorCode returns the first remote error code carried by a payload error list.
func ErrorCode(errs []PayloadError) string {
	for _, e := range errs {
		if e.Code != "" {
			return e.Code
		}
	}
	return ""
}
