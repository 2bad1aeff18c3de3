package interfaces

import (
	"context"

	"golang.org/x/oauth2"
)

// TokenStore persists the OAuth token across runs. Load returns
// os.ErrNotExist-compatible errors when no token has been saved yet.
type TokenStore interface {
	Load() (*oauth2.Token, error)
	Save(token *oauth2.Token) error
}

// AuthorizationFlow obtains a fresh token interactively. Implementations
// that cannot prompt the operator (headless runs) return an error.
type AuthorizationFlow interface {
	Authorize(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error)
}
