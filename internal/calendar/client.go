package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const graphBaseURL = "https://graph.microsoft.com/v1.0"

// Client is an authenticated Microsoft Graph API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *zap.Logger
}

// NewClient creates a Graph API client from an authenticated token. Tokens
// refreshed during use are saved under base.
func NewClient(ctx context.Context, base string, tok *oauth2.Token, cfg *oauth2.Config, log *zap.Logger) *Client {
	ts := cfg.TokenSource(ctx, tok)
	return &Client{
		httpClient: oauth2.NewClient(ctx, &savingTokenSource{ts: ts, base: base, log: log}),
		baseURL:    graphBaseURL,
		log:        log,
	}
}

// savingTokenSource wraps a TokenSource and persists refreshed tokens.
type savingTokenSource struct {
	ts   oauth2.TokenSource
	base string
	log  *zap.Logger
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.ts.Token()
	if err != nil {
		return nil, err
	}
	if err := saveToken(s.base, tok); err != nil {
		s.log.Debug("could not persist token", zap.Error(err))
	}
	return tok, nil
}

// DateTimeZone is a Graph dateTimeTimeZone value.
type DateTimeZone struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

// ItemBody is a Graph itemBody value.
type ItemBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// Event is the subset of a Graph calendar event that intrack writes.
type Event struct {
	Subject                    string       `json:"subject"`
	Body                       ItemBody     `json:"body"`
	Start                      DateTimeZone `json:"start"`
	End                        DateTimeZone `json:"end"`
	IsAllDay                   bool         `json:"isAllDay"`
	ShowAs                     string       `json:"showAs"`
	IsReminderOn               bool         `json:"isReminderOn"`
	ReminderMinutesBeforeStart int          `json:"reminderMinutesBeforeStart"`
	Categories                 []string     `json:"categories"`
}

type eventResponse struct {
	ID string `json:"id"`
}

// CreateEvent posts ev to the signed-in user's default calendar and returns
// the new event ID.
func (c *Client) CreateEvent(ctx context.Context, ev Event) (string, error) {
	body, err := c.send(ctx, http.MethodPost, c.baseURL+"/me/events", ev, http.StatusCreated)
	if err != nil {
		return "", err
	}
	var created eventResponse
	if err := json.Unmarshal(body, &created); err != nil {
		return "", fmt.Errorf("decoding graph response: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("graph API returned no event id")
	}
	c.log.Debug("created calendar event", zap.String("id", created.ID), zap.String("subject", ev.Subject))
	return created.ID, nil
}

// UpdateEvent patches an existing event.
func (c *Client) UpdateEvent(ctx context.Context, id string, ev Event) error {
	_, err := c.send(ctx, http.MethodPatch, c.baseURL+"/me/events/"+id, ev, http.StatusOK)
	if err == nil {
		c.log.Debug("updated calendar event", zap.String("id", id), zap.String("subject", ev.Subject))
	}
	return err
}

func (c *Client) send(ctx context.Context, method, endpoint string, payload any, wantStatus int) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding event: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("graph API request failed: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode != wantStatus {
		return nil, fmt.Errorf("graph API error %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
