package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Upper bound on how much of an error response is kept.
const maxErrorBody = 512

var (
	// ErrTransport is returned when the webhook request could not be completed.
	ErrTransport = errors.New("webhook request failed")
	// ErrWebhookStatus is returned when the webhook responds with a non-2xx status.
	ErrWebhookStatus = errors.New("webhook returned unexpected status")
)

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client posts payloads to Slack incoming webhooks.
type Client struct {
	httpClient HTTPClient
}

// NewClient creates a new webhook client.
func NewClient(httpClient HTTPClient) *Client {
	return &Client{
		httpClient: httpClient,
	}
}

// Send the payload to the webhook once. Errors never include the webhook URL.
func (c *Client) Send(ctx context.Context, webhookURL string, payload Payload) error {
	var body bytes.Buffer

	if err := json.NewEncoder(&body).Encode(payload); err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, &body)
	if err != nil {
		return fmt.Errorf("%w: failed to create request", ErrTransport)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}

		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: status %d: %s", ErrWebhookStatus, resp.StatusCode, bytes.TrimSpace(msg))
	}

	// Drain so the connection can be reused by the next invocation.
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
