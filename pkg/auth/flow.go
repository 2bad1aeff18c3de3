package auth

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/oauth2"

	"github.com/perarneng/decksheet/pkg/interfaces"
)

// BrowserFlow asks the operator to visit the consent URL and paste the
// authorization code back. When In cannot produce a code (closed stdin,
// headless run) Authorize fails instead of hanging.
type BrowserFlow struct {
	In  io.Reader
	Out io.Writer
}

func NewBrowserFlow(in io.Reader, out io.Writer) interfaces.AuthorizationFlow {
	return &BrowserFlow{In: in, Out: out}
}

func (f *BrowserFlow) Authorize(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintf(f.Out, "Go to the following link in your browser then type the authorization code:\n%v\n", authURL)

	scanner := bufio.NewScanner(f.In)
	if !scanner.Scan() {
		return nil, fmt.Errorf("unable to read authorization code: input closed")
	}
	authCode := strings.TrimSpace(scanner.Text())
	if authCode == "" {
		return nil, fmt.Errorf("unable to read authorization code: empty input")
	}

	tok, err := config.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web: %v", err)
	}
	return tok, nil
}
