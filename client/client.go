package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hammem/monarchmoney/client/auth"
	"github.com/hammem/monarchmoney/client/gql"
	"github.com/hammem/monarchmoney/schema"
	"github.com/shopspring/decimal"
)

// Client is the typed surface over the Monarch Money GraphQL API. Every
// operation builds one request, executes it through the authenticated
// endpoint and decodes exactly the fields it promises.
//
// Mutating operations are never retried by the client; remote side effects
// are not guaranteed idempotent, so retry is the caller's responsibility.
type Client struct {
	endpoint *gql.Endpoint
	auth     *auth.Authenticator
	logger   *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger enables debug logging of executed operations.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client over the given endpoint and authenticator.
func New(endpoint *gql.Endpoint, authenticator *auth.Authenticator, options ...Option) *Client {
	ret := &Client{
		endpoint: endpoint,
		auth:     authenticator,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Auth returns the authenticator owning this client's session.
func (c *Client) Auth() *auth.Authenticator { return c.auth }

// query executes one GraphQL operation and decodes the data payload into R.
// It fails with schema.ErrLoginRequired before touching the network when no
// session is held, and maps a remote authorization rejection to
// schema.ErrSessionExpired.
func query[R any](ctx context.Context, c *Client, operation, document string, variables map[string]any) (*R, error) {
	if !c.auth.Session().Valid() {
		return nil, schema.ErrLoginRequired
	}
	started := time.Now()
	response, err := c.endpoint.Query(ctx, schema.NewRequest(operation, document, variables))
	if err != nil {
		return nil, mapQueryError(err)
	}
	if len(response.Errors) > 0 {
		first := response.Errors[0]
		return nil, &schema.OperationError{Operation: operation, Message: first.Message, Code: first.Extensions.Code}
	}
	var result R
	if err = json.Unmarshal(response.Data, &result); err != nil {
		return nil, schema.NewOperationError(operation, fmt.Sprintf("unexpected response shape: %v", err))
	}
	c.logger.DebugContext(ctx, "operation completed", "operation", operation, "elapsed", time.Since(started))
	return &result, nil
}

func mapQueryError(err error) error {
	var status *schema.StatusError
	if errors.As(err, &status) {
		if status.Code == http.StatusUnauthorized || status.Code == http.StatusForbidden {
			return fmt.Errorf("%w: HTTP %d", schema.ErrSessionExpired, status.Code)
		}
	}
	return err
}

// number renders a decimal as a raw JSON number inside variables;
// shopspring's default MarshalJSON quotes it, which the remote rejects.
func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// payloadError converts embedded mutation errors into an *schema.OperationError.
func payloadError(operation string, errs []schema.PayloadError) error {
	if len(errs) == 0 {
		return nil
	}
	return &schema.OperationError{
		Operation: operation,
		Message:   schema.ErrorMessage(errs),
		Code:      schema.ErrorCode(errs),
	}
}
