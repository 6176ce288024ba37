package gql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hammem/monarchmoney/schema"
)

const (
	defaultBaseURL = "https://api.monarchmoney.com"
	defaultTimeout = 10 * time.Second

	// GraphQLPath is the single query endpoint every operation posts to.
	GraphQLPath = "/graphql"
	// LoginPath is the password/MFA login endpoint.
	LoginPath = "/auth/login/"
	// UploadBalanceHistoryPath accepts account balance history CSV uploads.
	UploadBalanceHistoryPath = "/account-balance-history/upload/"

	userAgent      = "MonarchMoneyAPI (https://github.com/hammem/monarchmoney)"
	clientPlatform = "web"
)

// TokenProvider supplies the session token attached to authenticated requests.
type TokenProvider interface {
	Token() (string, bool)
}

// Endpoint issues single HTTP round trips against the Monarch Money API.
// It attaches ambient headers and the session token, and reports only
// transport-level failure; remote error semantics are layered on top by the
// auth and client packages.
type Endpoint struct {
	baseURL    string
	httpClient *http.Client
	deviceUUID string
	tokens     TokenProvider
}

// Option customizes an Endpoint.
type Option func(*Endpoint)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(e *Endpoint) {
		e.baseURL = baseURL
	}
}

// WithHTTPClient sets the underlying http client.
func WithHTTPClient(client *http.Client) Option {
	return func(e *Endpoint) {
		e.httpClient = client
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(e *Endpoint) {
		e.httpClient.Timeout = timeout
	}
}

// WithTokenProvider sets the session token source.
func WithTokenProvider(tokens TokenProvider) Option {
	return func(e *Endpoint) {
		e.tokens = tokens
	}
}

// New creates an endpoint with a per-process device identity.
func New(options ...Option) *Endpoint {
	ret := &Endpoint{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		deviceUUID: uuid.NewString(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// BaseURL returns the configured API base URL.
func (e *Endpoint) BaseURL() string { return e.baseURL }

// SetTokenProvider binds the session token source after construction; the
// authenticator uses it to close the endpoint/authenticator cycle.
func (e *Endpoint) SetTokenProvider(tokens TokenProvider) {
	e.tokens = tokens
}

// Post sends one JSON request and returns the raw status code and body.
// A nil error only means the HTTP exchange completed; callers interpret
// the status themselves.
func (e *Endpoint) Post(ctx context.Context, path string, payload any) (int, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return e.do(ctx, path, "application/json", bytes.NewReader(data))
}

// Upload sends one request with a caller-built body, e.g. a multipart form.
func (e *Endpoint) Upload(ctx context.Context, path, contentType string, body io.Reader) (int, []byte, error) {
	return e.do(ctx, path, contentType, body)
}

// Query posts one GraphQL request and decodes the response envelope.
// Non-success statuses surface as *schema.StatusError.
func (e *Endpoint) Query(ctx context.Context, request *schema.Request) (*schema.Response, error) {
	status, body, err := e.Post(ctx, GraphQLPath, request)
	if err != nil {
		return nil, err
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, &schema.StatusError{Code: status, Body: body}
	}
	var response schema.Response
	if err = json.Unmarshal(body, &response); err != nil {
		return nil, &schema.TransportError{Err: fmt.Errorf("malformed response body: %w", err)}
	}
	return &response, nil
}

func (e *Endpoint) do(ctx context.Context, path, contentType string, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Client-Platform", clientPlatform)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("device-uuid", e.deviceUUID)
	if e.tokens != nil {
		if token, ok := e.tokens.Token(); ok {
			req.Header.Set("Authorization", "Token "+token)
		}
	}
	resp, err := e.httpClient.Do(req)
	if err != nil {
		return 0, nil, &schema.TransportError{Err: err}
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &schema.TransportError{Err: err}
	}
	return resp.StatusCode, data, nil
}
