package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const webhookTimeout = 10 * time.Second

// WebhookChannelImpl 將訊息 POST 到單一 webhook URL 的頻道
type WebhookChannelImpl struct {
	name       string
	webhookURL string
	client     *http.Client
}

func NewWebhookChannel(name, webhookURL string) Channel {
	return &WebhookChannelImpl{
		name:       name,
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: webhookTimeout},
	}
}

func (c *WebhookChannelImpl) Name() string {
	return c.name
}

func (c *WebhookChannelImpl) Send(ctx context.Context, message Message) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook %s returned status %d", c.name, resp.StatusCode)
	}

	return nil
}
