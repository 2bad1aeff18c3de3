package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/perarneng/decksheet/pkg/interfaces"
)

// ErrAuthorization marks credential acquisition failures. These are
// fatal to a pipeline run.
var ErrAuthorization = errors.New("authorization failed")

// Broker owns the OAuth credential for the run. It loads a persisted
// token, refreshes it in place when expired, or falls back to the
// injected interactive flow. Every refresh or fresh grant is written
// back through the store.
type Broker struct {
	config *oauth2.Config
	store  interfaces.TokenStore
	flow   interfaces.AuthorizationFlow
	logger interfaces.Logger

	token *oauth2.Token
}

func NewBroker(config *oauth2.Config, store interfaces.TokenStore, flow interfaces.AuthorizationFlow, log interfaces.Logger) *Broker {
	return &Broker{
		config: config,
		store:  store,
		flow:   flow,
		logger: log,
	}
}

// ConfigFromFile parses a Google client secret file into an OAuth
// config carrying the given scopes.
func ConfigFromFile(path string, scopes ...string) (*oauth2.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read client secret file: %v", err)
	}
	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file to config: %v", err)
	}
	return config, nil
}

// Token returns a valid token, acquiring one if needed. A second call
// while the cached token is still valid performs no store or network
// access.
func (b *Broker) Token(ctx context.Context) (*oauth2.Token, error) {
	if b.token != nil && b.token.Valid() {
		return b.token, nil
	}

	tok, err := b.store.Load()
	if err == nil {
		if tok.Valid() {
			b.token = tok
			return tok, nil
		}
		if tok.RefreshToken != "" {
			refreshed, rerr := b.config.TokenSource(ctx, tok).Token()
			if rerr != nil {
				return nil, fmt.Errorf("%w: refresh rejected: %v", ErrAuthorization, rerr)
			}
			b.logger.Info("Refreshed expired credential")
			if serr := b.store.Save(refreshed); serr != nil {
				b.logger.Warn(fmt.Sprintf("Unable to persist refreshed credential: %v", serr))
			}
			b.token = refreshed
			return refreshed, nil
		}
	}

	b.logger.Info("No usable stored credential, starting authorization flow")
	tok, err = b.flow.Authorize(ctx, b.config)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthorization, err)
	}
	if serr := b.store.Save(tok); serr != nil {
		b.logger.Warn(fmt.Sprintf("Unable to persist credential: %v", serr))
	}
	b.token = tok
	return tok, nil
}

// HTTPClient returns an authorized HTTP client backed by the broker's
// token.
func (b *Broker) HTTPClient(ctx context.Context) (*http.Client, error) {
	tok, err := b.Token(ctx)
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(tok)), nil
}
