// File: utils/googleauth.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"meetplan/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleOAuthClient builds an authenticated HTTP client for the Gmail and
// Calendar APIs from the configured OAuth client secret and stored token.
// The token must have been obtained out of band (consent flow) and saved to
// the configured token file.
func GoogleOAuthClient(ctx context.Context, scopes ...string) (*http.Client, error) {
	b, err := os.ReadFile(config.AppConfig.GoogleOAuthClientFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read OAuth client file: %w", err)
	}
	cfg, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse OAuth client file: %w", err)
	}

	token, err := tokenFromFile(config.AppConfig.GoogleOAuthTokenFile)
	if err != nil {
		return nil, fmt.Errorf("could not load OAuth token (run the consent flow first): %w", err)
	}
	return cfg.Client(ctx, token), nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, fmt.Errorf("invalid token file %s: %w", path, err)
	}
	return token, nil
}
