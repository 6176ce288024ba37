// Package monarchmoney provides a Go client for the Monarch Money
// personal-finance API.
//
// It glues three layers together: a transport gateway issuing single
// authenticated HTTP round trips, an authenticator owning the login and
// session lifecycle (password, multi-factor, TOTP seed, interactive
// prompts), and a typed operation surface over accounts, transactions,
// budgets and cashflow.
//
// Example:
//
//	mm, _ := monarchmoney.New(monarchmoney.WithSessionURL(".mm/session.json"))
//	if err := mm.Auth().LoadSession(ctx); err != nil {
//		_, err = mm.Auth().Login(ctx, email, password)
//	}
//	accounts, _ := mm.Accounts(ctx)
package monarchmoney

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hammem/monarchmoney/client"
	"github.com/hammem/monarchmoney/client/auth"
	"github.com/hammem/monarchmoney/client/auth/store"
	"github.com/hammem/monarchmoney/client/gql"
)

type config struct {
	endpointOptions []gql.Option
	authOptions     []auth.Option
	clientOptions   []client.Option
	sessionStore    store.Store
}

// Option customizes the assembled client.
type Option func(*config)

// WithBaseURL overrides the API base URL, e.g. for a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.endpointOptions = append(c.endpointOptions, gql.WithBaseURL(baseURL))
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *config) {
		c.endpointOptions = append(c.endpointOptions, gql.WithHTTPClient(httpClient))
	}
}

// WithTimeout sets the per-request timeout; the default is 10 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.endpointOptions = append(c.endpointOptions, gql.WithTimeout(timeout))
	}
}

// WithToken seeds the client with an already issued session token, skipping
// login entirely.
func WithToken(token string) Option {
	return func(c *config) {
		c.authOptions = append(c.authOptions, auth.WithToken(token))
	}
}

// WithSessionURL persists the session at the given afs URL (plain path,
// file://, mem://, ...).
func WithSessionURL(url string) Option {
	return func(c *config) {
		c.sessionStore = store.NewFileStore(url)
	}
}

// WithSessionStore sets a custom session persistence backend.
func WithSessionStore(s store.Store) Option {
	return func(c *config) {
		c.sessionStore = s
	}
}

// WithPrompter sets the interactive login input channel.
func WithPrompter(p auth.Prompter) Option {
	return func(c *config) {
		c.authOptions = append(c.authOptions, auth.WithPrompter(p))
	}
}

// WithLogger enables debug logging of executed operations.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.clientOptions = append(c.clientOptions, client.WithLogger(logger))
	}
}

// New assembles a Monarch Money client: endpoint, authenticator and typed
// operation surface. Without options it talks to the production API and
// persists the session at the default location.
func New(options ...Option) (*client.Client, error) {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}
	if cfg.sessionStore == nil {
		cfg.sessionStore = store.NewFileStore("")
	}
	endpoint := gql.New(cfg.endpointOptions...)
	authOptions := append([]auth.Option{auth.WithStore(cfg.sessionStore)}, cfg.authOptions...)
	authenticator := auth.New(endpoint, authOptions...)
	return client.New(endpoint, authenticator, cfg.clientOptions...), nil
}
