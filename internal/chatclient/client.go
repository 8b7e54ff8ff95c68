// Package chatclient is the client side of the mentor exchange: an HTTP
// client for the endpoint and the Session that owns a UI's history.
package chatclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"study-mentor/internal/models"
)

const (
	DefaultTimeout = 60 * time.Second

	// EmptyReplyText stands in for a reply that carried no message content.
	EmptyReplyText = "응답이 비어 있습니다."
)

// TransportError covers network failures and non-2xx responses.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("mentor request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("mentor request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the mentor API at baseURL. A non-positive
// timeout selects DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// replyEnvelope decodes only what the UI reads, keeping "absent" distinct
// from "empty".
type replyEnvelope struct {
	Message *struct {
		Content *string `json:"content"`
	} `json:"message"`
}

// Chat posts the whole history and returns the assistant's reply text.
func (c *Client) Chat(ctx context.Context, messages []models.ChatMessage) (string, error) {
	payload, err := json.Marshal(models.ChatRequest{Messages: messages})
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/mentor", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", &TransportError{StatusCode: res.StatusCode}
	}

	var env replyEnvelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return "", &TransportError{Err: fmt.Errorf("failed to decode reply: %w", err)}
	}
	if env.Message == nil || env.Message.Content == nil {
		return EmptyReplyText, nil
	}
	return *env.Message.Content, nil
}

// Status fetches which reply branch the server is on.
func (c *Client) Status(ctx context.Context) (models.MentorStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/mentor/status", nil)
	if err != nil {
		return models.MentorStatus{}, fmt.Errorf("failed to build status request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return models.MentorStatus{}, &TransportError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return models.MentorStatus{}, &TransportError{StatusCode: res.StatusCode}
	}

	var status models.MentorStatus
	if err := json.NewDecoder(res.Body).Decode(&status); err != nil {
		return models.MentorStatus{}, &TransportError{Err: fmt.Errorf("failed to decode status: %w", err)}
	}
	return status, nil
}
