package auth

import (
	"context"
	"fmt"

	"github.com/hammem/monarchmoney/schema"
	"github.com/viant/scy"
	"github.com/viant/scy/cred"
)

// LoginWithSecrets loads basic credentials from a scy secret resource and
// logs in with them, so email and password can live in an encrypted secret
// store instead of source or environment.
func (a *Authenticator) LoginWithSecrets(ctx context.Context, resource *scy.Resource, options ...LoginOption) (*schema.Session, error) {
	secrets := scy.New()
	secret, err := secrets.Load(ctx, resource)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	basic, ok := secret.Target.(*cred.Basic)
	if !ok {
		return nil, fmt.Errorf("unsupported credentials type: %T", secret.Target)
	}
	return a.Login(ctx, basic.Username, basic.Password, options...)
}
