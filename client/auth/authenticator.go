package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/hammem/monarchmoney/client/auth/store"
	"github.com/hammem/monarchmoney/client/gql"
	"github.com/hammem/monarchmoney/schema"
	"github.com/pquerna/otp/totp"
)

// Authenticator owns the login lifecycle: password login, the multi-factor
// step, session persistence and token hand-off to the transport. Each
// instance holds its own session, so independent logged-in clients can
// coexist in one process.
type Authenticator struct {
	endpoint *gql.Endpoint
	store    store.Store
	prompter Prompter

	mu      sync.RWMutex
	session *schema.Session
}

// Option customizes an Authenticator.
type Option func(*Authenticator)

// WithStore sets the session persistence backend.
func WithStore(s store.Store) Option {
	return func(a *Authenticator) {
		a.store = s
	}
}

// WithPrompter sets the input channel used by InteractiveLogin.
func WithPrompter(p Prompter) Option {
	return func(a *Authenticator) {
		a.prompter = p
	}
}

// WithToken seeds the authenticator with an already issued token.
func WithToken(token string) Option {
	return func(a *Authenticator) {
		a.session = schema.NewSession(token)
	}
}

// New creates an authenticator bound to the endpoint; the endpoint pulls the
// session token through the authenticator on every authenticated request.
func New(endpoint *gql.Endpoint, options ...Option) *Authenticator {
	ret := &Authenticator{
		endpoint: endpoint,
		store:    store.NewMemoryStore(),
		prompter: NewTerminalPrompter(),
	}
	for _, opt := range options {
		opt(ret)
	}
	endpoint.SetTokenProvider(ret)
	return ret
}

// LoginOption customizes a single login call.
type LoginOption func(*loginOptions)

type loginOptions struct {
	totpSecret string
}

// WithTOTPSecret derives the one-time code locally from the MFA seed, so the
// multi-factor step completes within the same login call.
func WithTOTPSecret(secret string) LoginOption {
	return func(o *loginOptions) {
		o.totpSecret = secret
	}
}

// Login performs a password login. When the account has MFA enabled and no
// TOTP secret was supplied, it fails with schema.ErrRequireMFA; callers
// recover by calling MultiFactorAuthenticate with the one-time code. Login
// never retries.
func (a *Authenticator) Login(ctx context.Context, email, password string, options ...LoginOption) (*schema.Session, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", schema.ErrLoginFailed)
	}
	opts := &loginOptions{}
	for _, opt := range options {
		opt(opts)
	}
	payload := map[string]any{
		"username":       email,
		"password":       password,
		"supports_mfa":   true,
		"trusted_device": false,
	}
	if opts.totpSecret != "" {
		code, err := totp.GenerateCode(opts.totpSecret, time.Now())
		if err != nil {
			return nil, fmt.Errorf("%w: failed to derive one-time code: %v", schema.ErrLoginFailed, err)
		}
		payload["totp"] = code
	}
	status, body, err := a.endpoint.Post(ctx, gql.LoginPath, payload)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusForbidden:
		return nil, schema.ErrRequireMFA
	case status != http.StatusOK:
		return nil, loginFailure(status, body)
	}
	return a.adoptToken(body)
}

// MultiFactorAuthenticate completes a login that required a second factor.
func (a *Authenticator) MultiFactorAuthenticate(ctx context.Context, email, password, code string) (*schema.Session, error) {
	payload := map[string]any{
		"username":       email,
		"password":       password,
		"totp":           code,
		"supports_mfa":   true,
		"trusted_device": false,
	}
	status, body, err := a.endpoint.Post(ctx, gql.LoginPath, payload)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		var remote struct {
			Detail    string `json:"detail"`
			ErrorCode string `json:"error_code"`
		}
		if jsonErr := json.Unmarshal(body, &remote); jsonErr == nil {
			if remote.Detail != "" {
				return nil, fmt.Errorf("%w: %s", schema.ErrInvalidMFACode, remote.Detail)
			}
			if remote.ErrorCode != "" {
				return nil, fmt.Errorf("%w: %s", schema.ErrLoginFailed, remote.ErrorCode)
			}
		}
		return nil, loginFailure(status, body)
	}
	return a.adoptToken(body)
}

func (a *Authenticator) adoptToken(body []byte) (*schema.Session, error) {
	var result struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &result); err != nil || result.Token == "" {
		return nil, fmt.Errorf("%w: login response carried no token", schema.ErrLoginFailed)
	}
	session := schema.NewSession(result.Token)
	a.setSession(session)
	return session, nil
}

func loginFailure(status int, body []byte) error {
	return fmt.Errorf("%w: HTTP %d: %s", schema.ErrLoginFailed, status, body)
}

// SaveSession persists the current session through the store.
func (a *Authenticator) SaveSession(ctx context.Context) error {
	session := a.Session()
	if !session.Valid() {
		return schema.ErrLoginRequired
	}
	return a.store.Save(ctx, session)
}

// LoadSession replaces the in-memory session with the persisted one,
// unconditionally.
func (a *Authenticator) LoadSession(ctx context.Context) error {
	session, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	a.setSession(session)
	return nil
}

// DeleteSession removes the persisted session and clears the in-memory one.
func (a *Authenticator) DeleteSession(ctx context.Context) error {
	a.setSession(nil)
	return a.store.Delete(ctx)
}

// Session returns the current session, or nil when not logged in.
func (a *Authenticator) Session() *schema.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session
}

// SetToken replaces the session with one built from a raw token.
func (a *Authenticator) SetToken(token string) {
	a.setSession(schema.NewSession(token))
}

// Token implements gql.TokenProvider.
func (a *Authenticator) Token() (string, bool) {
	session := a.Session()
	if !session.Valid() {
		return "", false
	}
	return session.Token, true
}

func (a *Authenticator) setSession(session *schema.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = session
}
