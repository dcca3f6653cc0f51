package recognition

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/asanchezgar/rehaplan/internal/logger"
)

// WebhookClient posts captured frames to the recognition webhook as
// multipart form data and validates the JSON response.
type WebhookClient struct {
	url    string
	apiKey string
	client *http.Client
}

// NewWebhookClient creates a client for the given endpoint. apiKey may be
// empty, in which case no Authorization header is sent.
func NewWebhookClient(url, apiKey string, timeout time.Duration) *WebhookClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &WebhookClient{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

// Recognize submits the JPEG and returns the validated outcome. Each request
// carries a unique X-Request-ID so attempts can be correlated server-side.
func (c *WebhookClient) Recognize(ctx context.Context, jpeg []byte) (*Result, error) {
	if c.url == "" {
		return nil, fmt.Errorf("recognition webhook URL is not configured")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "capture.jpg")
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(jpeg); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &buf)
	if err != nil {
		return nil, err
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Request-ID", requestID)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	logger.Debug("Submitting recognition request", "url", c.url, "request_id", requestID, "bytes", len(jpeg))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recognition request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading recognition response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recognition webhook returned %s", resp.Status)
	}

	result, err := ParseResult(body)
	if err != nil {
		return nil, err
	}

	logger.Info("Recognition attempt completed", "request_id", requestID, "recognized", result.Recognized)
	return result, nil
}
