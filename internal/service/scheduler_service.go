package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"go-away-ticket-notifier/internal/model"
	"go-away-ticket-notifier/internal/repository"
	"go-away-ticket-notifier/internal/taskqueue"
	apperrors "go-away-ticket-notifier/pkg/app_errors"
	"go-away-ticket-notifier/pkg/logger"
)

// SchedulerService 把需要的通知時點變成持久化的排程工作，並負責反向取消
type SchedulerService interface {
	// ScheduleNotifications 三種通知互相獨立：全部嘗試後才彙總失敗
	ScheduleNotifications(ctx context.Context, ticket *model.Ticket, timings []model.NotificationTiming) error
	// CancelNotification 失敗直接往上傳，由呼叫端決定是否仍標記 cancelled
	CancelNotification(ctx context.Context, externalTaskID string) error
	CancelNotifications(ctx context.Context, externalTaskIDs []string) error
}

type SchedulerServiceImpl struct {
	notificationRepo repository.NotificationRepository
	taskQueue        taskqueue.TaskQueue
	callbackURL      string
}

func NewSchedulerService(
	notificationRepo repository.NotificationRepository,
	taskQueue taskqueue.TaskQueue,
	callbackURL string,
) SchedulerService {
	return &SchedulerServiceImpl{
		notificationRepo: notificationRepo,
		taskQueue:        taskQueue,
		callbackURL:      callbackURL,
	}
}

// TaskID 任務佇列的確定性 ID：{ticketId}-{type}，佇列以此去重
func TaskID(ticket *model.Ticket, typ model.NotificationType) string {
	return fmt.Sprintf("%s-%s", ticket.ID, typ)
}

func (s *SchedulerServiceImpl) ScheduleNotifications(ctx context.Context, ticket *model.Ticket, timings []model.NotificationTiming) error {
	// 回呼 URL 未設定屬致命設定錯誤，不可重試
	if s.callbackURL == "" {
		return apperrors.ErrMissingCallbackURL
	}
	if len(timings) == 0 {
		return nil
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, timing := range timings {
		wg.Add(1)
		go func(timing model.NotificationTiming) {
			defer wg.Done()

			if err := s.scheduleOne(ctx, ticket, timing); err != nil {
				logger.WithComponent("scheduler").Error("failed to schedule notification",
					zap.String("ticket_id", ticket.ID.String()),
					zap.String("notification_type", string(timing.Type)),
					zap.Error(err))
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", timing.Type, err))
				mu.Unlock()
			}
		}(timing)
	}

	wg.Wait()

	if len(errs) > 0 {
		return &apperrors.ScheduleAggregateError{
			Failed: len(errs),
			Total:  len(timings),
			Errs:   errs,
		}
	}

	return nil
}

// scheduleOne 先排入佇列、成功才寫入 Notification row
// 兩邊不一致時重跑排程即可收斂（同 type 已有 active row 會被上游擋掉）
func (s *SchedulerServiceImpl) scheduleOne(ctx context.Context, ticket *model.Ticket, timing model.NotificationTiming) error {
	externalTaskID, err := s.taskQueue.Enqueue(ctx, taskqueue.Task{
		TaskID: TaskID(ticket, timing.Type),
		Payload: taskqueue.CallbackPayload{
			TicketID:         ticket.ID,
			NotificationType: timing.Type,
		},
		ScheduledAt: timing.ScheduledAt,
		TargetURL:   s.callbackURL,
	})
	if err != nil {
		return fmt.Errorf("enqueue: %w", err)
	}

	notification, err := model.NewNotification(ticket.ID, timing.Type, timing.ScheduledAt, externalTaskID)
	if err != nil {
		return fmt.Errorf("build notification: %w", err)
	}

	if _, err := s.notificationRepo.Save(ctx, notification); err != nil {
		return fmt.Errorf("save notification: %w", err)
	}

	return nil
}

func (s *SchedulerServiceImpl) CancelNotification(ctx context.Context, externalTaskID string) error {
	return s.taskQueue.Dequeue(ctx, externalTaskID)
}

func (s *SchedulerServiceImpl) CancelNotifications(ctx context.Context, externalTaskIDs []string) error {
	if len(externalTaskIDs) == 0 {
		return nil
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, taskID := range externalTaskIDs {
		wg.Add(1)
		go func(taskID string) {
			defer wg.Done()

			if err := s.taskQueue.Dequeue(ctx, taskID); err != nil {
				logger.WithComponent("scheduler").Error("failed to cancel task",
					zap.String("task_id", taskID), zap.Error(err))
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", taskID, err))
				mu.Unlock()
			}
		}(taskID)
	}

	wg.Wait()

	if len(errs) > 0 {
		return &apperrors.CancelAggregateError{
			Failed: len(errs),
			Total:  len(externalTaskIDs),
			Errs:   errs,
		}
	}

	return nil
}
