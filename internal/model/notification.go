package model

import (
	"time"

	"github.com/google/uuid"

	apperrors "go-away-ticket-notifier/pkg/app_errors"
)

// NotificationType 通知種類：販售開始前的三個固定時點
type NotificationType string

const (
	NotificationTypeDayBefore     NotificationType = "day_before"
	NotificationTypeHourBefore    NotificationType = "hour_before"
	NotificationTypeMinutesBefore NotificationType = "minutes_before"
)

// AllNotificationTypes 排程時固定依此順序檢查
var AllNotificationTypes = []NotificationType{
	NotificationTypeDayBefore,
	NotificationTypeHourBefore,
	NotificationTypeMinutesBefore,
}

// IsValid 驗證通知種類是否有效
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeDayBefore, NotificationTypeHourBefore, NotificationTypeMinutesBefore:
		return true
	}
	return false
}

// NotificationStatus 通知狀態類型
type NotificationStatus string

const (
	NotificationStatusScheduled NotificationStatus = "scheduled"
	NotificationStatusSent      NotificationStatus = "sent"
	NotificationStatusFailed    NotificationStatus = "failed"
	NotificationStatusCancelled NotificationStatus = "cancelled"
)

// IsValid 驗證狀態是否有效
func (s NotificationStatus) IsValid() bool {
	switch s {
	case NotificationStatusScheduled, NotificationStatusSent,
		NotificationStatusFailed, NotificationStatusCancelled:
		return true
	}
	return false
}

// IsTerminal sent 與 cancelled 為終態，不可再轉出
func (s NotificationStatus) IsTerminal() bool {
	return s == NotificationStatusSent || s == NotificationStatusCancelled
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s NotificationStatus) CanTransitionTo(target NotificationStatus) bool {
	transitions := map[NotificationStatus][]NotificationStatus{
		NotificationStatusScheduled: {NotificationStatusSent, NotificationStatusFailed, NotificationStatusCancelled},
		NotificationStatusFailed:    {NotificationStatusScheduled, NotificationStatusCancelled},
		NotificationStatusSent:      {},
		NotificationStatusCancelled: {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// Notification 一筆已排程／已發送的通知紀錄
// scheduledAt 建立後不可變；時間變更時取消舊紀錄並建立新紀錄
type Notification struct {
	ID               uuid.UUID          `json:"id" db:"id"`
	TicketID         uuid.UUID          `json:"ticket_id" db:"ticket_id"`
	NotificationType NotificationType   `json:"notification_type" db:"notification_type"`
	ScheduledAt      time.Time          `json:"scheduled_at" db:"scheduled_at"`
	SentAt           *time.Time         `json:"sent_at,omitempty" db:"sent_at"`
	Status           NotificationStatus `json:"status" db:"status"`
	ErrorMessage     *string            `json:"error_message,omitempty" db:"error_message"`
	ExternalTaskID   *string            `json:"external_task_id,omitempty" db:"external_task_id"`
	CreatedAt        time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at" db:"updated_at"`
}

// NewNotification 建立 scheduled 狀態的通知，拒絕無效輸入
func NewNotification(ticketID uuid.UUID, typ NotificationType, scheduledAt time.Time, externalTaskID string) (*Notification, error) {
	if ticketID == uuid.Nil || !typ.IsValid() || scheduledAt.IsZero() {
		return nil, apperrors.ErrInvalidInput
	}

	n := &Notification{
		ID:               uuid.New(),
		TicketID:         ticketID,
		NotificationType: typ,
		ScheduledAt:      scheduledAt,
		Status:           NotificationStatusScheduled,
	}
	if externalTaskID != "" {
		n.ExternalTaskID = &externalTaskID
	}
	return n, nil
}

// IsActive 非 cancelled 即視為佔用 (ticketId, type) 這組業務鍵
func (n *Notification) IsActive() bool {
	return n.Status != NotificationStatusCancelled
}

// CanBeSent sweep 路徑的到期判斷：排程時間已到或在 window 內
func (n *Notification) CanBeSent(now time.Time, window time.Duration) bool {
	return n.Status == NotificationStatusScheduled && n.ScheduledAt.Sub(now) <= window
}

// MarkSent 回傳標記為已發送的複本
func (n *Notification) MarkSent(now time.Time) (*Notification, error) {
	if !n.Status.CanTransitionTo(NotificationStatusSent) {
		return nil, apperrors.ErrInvalidTransition
	}
	next := *n
	next.Status = NotificationStatusSent
	next.SentAt = &now
	next.ErrorMessage = nil
	return &next, nil
}

// MarkFailed 回傳標記為失敗的複本，errMessage 不可為空
func (n *Notification) MarkFailed(errMessage string) (*Notification, error) {
	if !n.Status.CanTransitionTo(NotificationStatusFailed) {
		return nil, apperrors.ErrInvalidTransition
	}
	if errMessage == "" {
		return nil, apperrors.ErrInvalidInput
	}
	next := *n
	next.Status = NotificationStatusFailed
	next.ErrorMessage = &errMessage
	return &next, nil
}

// MarkCancelled 回傳標記為已取消的複本
func (n *Notification) MarkCancelled() (*Notification, error) {
	if !n.Status.CanTransitionTo(NotificationStatusCancelled) {
		return nil, apperrors.ErrInvalidTransition
	}
	next := *n
	next.Status = NotificationStatusCancelled
	return &next, nil
}

// Rearm 失敗後重新排回 scheduled，僅限尚未過期的通知
func (n *Notification) Rearm(now time.Time) (*Notification, error) {
	if !n.Status.CanTransitionTo(NotificationStatusScheduled) {
		return nil, apperrors.ErrInvalidTransition
	}
	if !n.ScheduledAt.After(now) {
		return nil, apperrors.ErrScheduledInPast
	}
	next := *n
	next.Status = NotificationStatusScheduled
	next.ErrorMessage = nil
	return &next, nil
}
