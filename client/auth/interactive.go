package auth

import (
	"context"
	"errors"

	"github.com/hammem/monarchmoney/schema"
)

// InteractiveLogin prompts for credentials on the configured Prompter,
// attempts a login and, when the account requires a second factor, prompts
// for the one-time code and completes the multi-factor step. The flow is
// cooperative and single-threaded; it must not run concurrently with itself.
func (a *Authenticator) InteractiveLogin(ctx context.Context) (*schema.Session, error) {
	email, err := a.prompter.Prompt("Email")
	if err != nil {
		return nil, err
	}
	password, err := a.prompter.PromptSecret("Password")
	if err != nil {
		return nil, err
	}
	session, err := a.Login(ctx, email, password)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, schema.ErrRequireMFA) {
		return nil, err
	}
	code, err := a.prompter.Prompt("Two Factor Code")
	if err != nil {
		return nil, err
	}
	return a.MultiFactorAuthenticate(ctx, email, password, code)
}
