package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

var requiredScopes = []string{
	"https://graph.microsoft.com/Calendars.ReadWrite",
	"offline_access",
}

func msEndpoint(tenantID, path string) string {
	return "https://login.microsoftonline.com/" + tenantID + "/oauth2/v2.0/" + path
}

// tokenFilePath returns the path to the stored token file under base.
func tokenFilePath(base string) string {
	return filepath.Join(base, "auth", "msgraph_tokens.json")
}

// oauth2Config returns the oauth2.Config for Microsoft Graph using the
// provided tenant and client IDs.
func oauth2Config(tenantID, clientID string) *oauth2.Config {
	return &oauth2.Config{
		ClientID: clientID,
		Scopes:   requiredScopes,
		Endpoint: oauth2.Endpoint{
			DeviceAuthURL: msEndpoint(tenantID, "devicecode"),
			TokenURL:      msEndpoint(tenantID, "token"),
			AuthStyle:     oauth2.AuthStyleInParams,
		},
	}
}

// loadToken loads a previously saved token from disk. It returns nil, nil
// when no token has been saved yet.
func loadToken(base string) (*oauth2.Token, error) {
	path := tokenFilePath(base)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading token file: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("corrupt token file (delete %s to re-authenticate): %w", path, err)
	}
	return &tok, nil
}

// saveToken persists a token to disk.
func saveToken(base string, tok *oauth2.Token) error {
	path := tokenFilePath(base)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating auth directory: %w", err)
	}
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling token: %w", err)
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("saving token file: %w", err)
	}
	return nil
}

// Authenticate returns a token for Microsoft Graph. It loads the saved
// token, refreshes it if needed, or runs the device code flow, printing the
// sign-in instructions to prompt.
func Authenticate(ctx context.Context, base, tenantID, clientID string, prompt io.Writer, log *zap.Logger) (*oauth2.Token, *oauth2.Config, error) {
	cfg := oauth2Config(tenantID, clientID)

	tok, err := loadToken(base)
	if err != nil {
		// Corrupt token: warn and re-auth.
		log.Warn("discarding saved token", zap.Error(err))
		tok = nil
	}

	if tok != nil && tok.Valid() {
		return tok, cfg, nil
	}

	// Try to refresh.
	if tok != nil && tok.RefreshToken != "" {
		refreshed, err := cfg.TokenSource(ctx, tok).Token()
		if err == nil {
			if err := saveToken(base, refreshed); err != nil {
				log.Warn("could not save refreshed token", zap.Error(err))
			}
			return refreshed, cfg, nil
		}
		log.Info("token refresh failed, re-authenticating", zap.Error(err))
	}

	// Device code flow.
	resp, err := cfg.DeviceAuth(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("device auth request failed: %w", err)
	}

	fmt.Fprintln(prompt)
	fmt.Fprintln(prompt, "To sign in, use a web browser to open the page:")
	fmt.Fprintf(prompt, "  %s\n", resp.VerificationURI)
	fmt.Fprintf(prompt, "Enter the code: %s\n", resp.UserCode)
	fmt.Fprintln(prompt)

	newTok, err := cfg.DeviceAccessToken(ctx, resp)
	if err != nil {
		return nil, nil, fmt.Errorf("device authentication failed: %w", err)
	}

	if err := saveToken(base, newTok); err != nil {
		log.Warn("could not save token", zap.Error(err))
	}
	return newTok, cfg, nil
}
