package taskqueue

import (
	"context"
	"time"

	"github.com/google/uuid"

	"go-away-ticket-notifier/internal/model"
)

// CallbackPayload 任務到期時回呼端點收到的內容
type CallbackPayload struct {
	TicketID         uuid.UUID              `json:"ticket_id"`
	NotificationType model.NotificationType `json:"notification_type"`
}

// Task 一筆延遲回呼任務
// TaskID 由呼叫端以 {ticketId}-{type} 決定，佇列以此去重
type Task struct {
	TaskID      string
	Payload     CallbackPayload
	ScheduledAt time.Time
	TargetURL   string
}

// TaskQueue 外部任務佇列的抽象：在指定時刻對 TargetURL 發出 HTTP 回呼
type TaskQueue interface {
	// Enqueue 排入延遲任務，ScheduledAt 必須嚴格在未來
	Enqueue(ctx context.Context, task Task) (string, error)
	// Dequeue 撤回尚未執行的任務，不存在時回傳 ErrTaskNotFound
	Dequeue(ctx context.Context, externalTaskID string) error
}

// TaskSource 供 dispatch worker 取出到期任務
type TaskSource interface {
	// PopDue 取出並認領 now 之前到期的任務
	PopDue(ctx context.Context, now time.Time, limit int) ([]Task, error)
	// Retry 投遞失敗後延後重試
	Retry(ctx context.Context, task Task, retryAt time.Time) error
	// Complete 投遞成功後清除任務資料
	Complete(ctx context.Context, taskID string) error
}
