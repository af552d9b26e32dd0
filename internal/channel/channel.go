package channel

import (
	"context"
	"fmt"
	"time"

	"go-away-ticket-notifier/internal/model"
)

// Message 已格式化、可直接交給頻道發送的訊息
type Message struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Channel 通知頻道抽象：成功或回傳錯誤，內部細節不外漏
type Channel interface {
	Name() string
	Send(ctx context.Context, message Message) error
}

// BuildMessage 依通知種類組出發送內容
func BuildMessage(ticket *model.Ticket, typ model.NotificationType, loc *time.Location) Message {
	var lead string
	switch typ {
	case model.NotificationTypeDayBefore:
		lead = "明日販売開始"
	case model.NotificationTypeHourBefore:
		lead = "1時間後に販売開始"
	case model.NotificationTypeMinutesBefore:
		lead = "まもなく販売開始（15分前）"
	default:
		lead = "販売開始のお知らせ"
	}

	body := ticket.MatchName
	if ticket.SaleStartDate != nil {
		body += fmt.Sprintf("\n販売開始: %s", ticket.SaleStartDate.In(loc).Format("2006/01/02 15:04"))
	}
	if ticket.Venue != nil {
		body += fmt.Sprintf("\n会場: %s", *ticket.Venue)
	}
	if len(ticket.TicketTypes) > 0 {
		body += "\n席種: "
		for i, t := range ticket.TicketTypes {
			if i > 0 {
				body += " / "
			}
			body += t
		}
	}
	if ticket.TicketURL != nil {
		body += "\n" + *ticket.TicketURL
	}

	return Message{
		Title: fmt.Sprintf("【アウェイチケット】%s", lead),
		Body:  body,
	}
}
