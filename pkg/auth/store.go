package auth

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"

	"github.com/perarneng/decksheet/pkg/interfaces"
)

// FileTokenStore keeps the OAuth token in a JSON file, overwritten on
// every save.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) interfaces.TokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Load() (*oauth2.Token, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("unable to decode token file %s: %v", s.path, err)
	}
	return tok, nil
}

func (s *FileTokenStore) Save(token *oauth2.Token) error {
	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to open token file %s: %v", s.path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(token); err != nil {
		return fmt.Errorf("unable to write token file %s: %v", s.path, err)
	}
	return nil
}
