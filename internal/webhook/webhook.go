package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Status classifies the result of one delivery attempt.
type Status int

const (
	// StatusDelivered means the endpoint accepted the message (HTTP 200/204).
	StatusDelivered Status = iota
	// StatusSkipped means no network attempt was made.
	StatusSkipped
	// StatusFailed means the attempt was made and rejected or errored.
	StatusFailed
)

// String returns the display label for a status.
func (s Status) String() string {
	switch s {
	case StatusDelivered:
		return "delivered"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Outcome is the classified result of a dispatch. Reason is empty for
// StatusDelivered.
type Outcome struct {
	Status Status
	Reason string
}

// Skipped builds a StatusSkipped outcome with the given reason.
func Skipped(reason string) Outcome {
	return Outcome{Status: StatusSkipped, Reason: reason}
}

const (
	requestTimeout = 8 * time.Second
	maxBodyPreview = 512
)

// Client posts rendered messages to a Discord-compatible webhook endpoint.
type Client struct {
	http *http.Client
}

// NewClient builds a Client with the fixed request timeout.
func NewClient() *Client {
	return &Client{
		http: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// payload is the webhook request body.
type payload struct {
	Content string `json:"content"`
}

// Post sends content to the webhook URL and classifies the result. A single
// attempt is made; there are no retries. Callers are expected to check for a
// blank URL before calling.
func (c *Client) Post(ctx context.Context, url, content string) Outcome {
	body, err := json.Marshal(payload{Content: content})
	if err != nil {
		return Outcome{Status: StatusFailed, Reason: fmt.Sprintf("encode payload: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Outcome{Status: StatusFailed, Reason: fmt.Sprintf("create request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Outcome{Status: StatusFailed, Reason: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNoContent {
		return Outcome{Status: StatusDelivered}
	}

	preview, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyPreview))
	return Outcome{
		Status: StatusFailed,
		Reason: fmt.Sprintf("HTTP %d - %s", resp.StatusCode, bytes.TrimSpace(preview)),
	}
}
