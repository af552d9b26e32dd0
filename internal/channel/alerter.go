package channel

import (
	"context"

	"go.uber.org/zap"

	"go-away-ticket-notifier/pkg/logger"
)

// Alerter 營運告警的 best-effort 發送口
// 告警失敗只記 log，不得蓋過原始錯誤
type Alerter interface {
	Alert(ctx context.Context, message Message)
}

// WebhookAlerterImpl 透過 webhook 頻道送出告警
type WebhookAlerterImpl struct {
	channel Channel
}

// NewWebhookAlerter webhookURL 為空時回傳 no-op alerter
func NewWebhookAlerter(webhookURL string) Alerter {
	if webhookURL == "" {
		return &noopAlerter{}
	}
	return &WebhookAlerterImpl{
		channel: NewWebhookChannel("alert", webhookURL),
	}
}

func (a *WebhookAlerterImpl) Alert(ctx context.Context, message Message) {
	if err := a.channel.Send(ctx, message); err != nil {
		logger.WithComponent("alerter").Warn("failed to send alert",
			zap.String("title", message.Title), zap.Error(err))
	}
}

type noopAlerter struct{}

func (a *noopAlerter) Alert(ctx context.Context, message Message) {}
