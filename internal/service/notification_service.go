package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-away-ticket-notifier/config"
	"go-away-ticket-notifier/internal/channel"
	"go-away-ticket-notifier/internal/model"
	"go-away-ticket-notifier/internal/repository"
	"go-away-ticket-notifier/internal/taskqueue"
	apperrors "go-away-ticket-notifier/pkg/app_errors"
	"go-away-ticket-notifier/pkg/logger"
)

// NotificationService 任務佇列回呼觸發的發送流程
type NotificationService interface {
	// HandleCallback 佇列可能重複投遞，必須可重入
	HandleCallback(ctx context.Context, payload taskqueue.CallbackPayload) error
	// ProcessPendingNotifications 補漏路徑：撿起即將到期的 scheduled 通知
	ProcessPendingNotifications(ctx context.Context) (int, error)
	// RearmNotification failed -> scheduled 的明確重試，僅限尚未過期
	RearmNotification(ctx context.Context, notificationID uuid.UUID) error
}

type NotificationServiceImpl struct {
	ticketRepo       repository.TicketRepository
	notificationRepo repository.NotificationRepository
	channels         []channel.Channel
	alerter          channel.Alerter
	loc              *time.Location
	maxAttempts      int
	retryBaseDelay   time.Duration
	sweepWindow      time.Duration
}

func NewNotificationService(
	ticketRepo repository.TicketRepository,
	notificationRepo repository.NotificationRepository,
	channels []channel.Channel,
	alerter channel.Alerter,
	loc *time.Location,
	cfg config.NotifierConfig,
) NotificationService {
	return &NotificationServiceImpl{
		ticketRepo:       ticketRepo,
		notificationRepo: notificationRepo,
		channels:         channels,
		alerter:          alerter,
		loc:              loc,
		maxAttempts:      cfg.MaxSendAttempts,
		retryBaseDelay:   cfg.RetryBaseDelay,
		sweepWindow:      cfg.SweepWindow,
	}
}

func (s *NotificationServiceImpl) HandleCallback(ctx context.Context, payload taskqueue.CallbackPayload) error {
	if payload.TicketID == uuid.Nil || !payload.NotificationType.IsValid() {
		return apperrors.ErrInvalidInput
	}

	// 票券已被刪除屬致命狀況，不重試
	ticket, err := s.ticketRepo.FindByID(ctx, payload.TicketID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTicketNotFound) {
			s.alerter.Alert(ctx, channel.Message{
				Title: "通知發送失敗",
				Body:  fmt.Sprintf("ticket %s not found for %s notification", payload.TicketID, payload.NotificationType),
			})
		}
		return fmt.Errorf("load ticket: %w", err)
	}

	notification, err := s.loadOrCreateNotification(ctx, ticket, payload.NotificationType)
	if err != nil {
		return err
	}

	return s.deliver(ctx, ticket, notification)
}

// loadOrCreateNotification 冪等防護：同 (ticketId, type) 已有紀錄就重用
// 不過濾狀態：cancelled 紀錄必須原樣帶回，交給 deliver 的狀態檢查擋下，
// 否則取消後遲到的回呼會重建一筆新的 scheduled 並照常發送
func (s *NotificationServiceImpl) loadOrCreateNotification(ctx context.Context, ticket *model.Ticket, typ model.NotificationType) (*model.Notification, error) {
	notification, err := s.notificationRepo.FindLatestByTicketAndType(ctx, ticket.ID, typ)
	if err == nil {
		return notification, nil
	}
	if !errors.Is(err, apperrors.ErrNotificationNotFound) {
		return nil, fmt.Errorf("load notification: %w", err)
	}

	if ticket.SaleStartDate == nil {
		return nil, apperrors.ErrInvalidInput
	}

	timing, err := model.ComputeTiming(typ, *ticket.SaleStartDate, s.loc)
	if err != nil {
		return nil, err
	}

	created, err := model.NewNotification(ticket.ID, typ, timing.ScheduledAt, "")
	if err != nil {
		return nil, err
	}

	stored, err := s.notificationRepo.Save(ctx, created)
	if err != nil {
		return nil, fmt.Errorf("save notification: %w", err)
	}

	return stored, nil
}

func (s *NotificationServiceImpl) deliver(ctx context.Context, ticket *model.Ticket, notification *model.Notification) error {
	// 佇列重複投遞：已發送就直接結束
	if notification.Status == model.NotificationStatusSent {
		return nil
	}

	// 發送前再確認仍是 scheduled：取消進行中時回呼可能已在路上
	if notification.Status != model.NotificationStatusScheduled {
		logger.WithComponent("notification").Info("skip delivery, notification is not scheduled",
			zap.String("notification_id", notification.ID.String()),
			zap.String("status", string(notification.Status)))
		return nil
	}

	message := channel.BuildMessage(ticket, notification.NotificationType, s.loc)

	lastErr := s.attemptWithRetry(ctx, message)
	if lastErr == nil {
		sent, err := notification.MarkSent(time.Now().UTC())
		if err != nil {
			return err
		}
		if _, err := s.notificationRepo.Update(ctx, sent); err != nil {
			return fmt.Errorf("persist sent: %w", err)
		}
		logger.WithComponent("notification").Info("notification sent",
			zap.String("ticket_id", ticket.ID.String()),
			zap.String("notification_type", string(notification.NotificationType)))
		return nil
	}

	failed, err := notification.MarkFailed(lastErr.Error())
	if err != nil {
		return err
	}
	if _, err := s.notificationRepo.Update(ctx, failed); err != nil {
		return fmt.Errorf("persist failed: %w", err)
	}

	// 告警只是 best-effort，失敗不覆蓋原始錯誤
	s.alerter.Alert(ctx, channel.Message{
		Title: "通知發送失敗",
		Body: fmt.Sprintf("ticket %s (%s): %s",
			ticket.ID, notification.NotificationType, lastErr.Error()),
	})

	return fmt.Errorf("delivery exhausted after %d attempts: %w", s.maxAttempts, lastErr)
}

// attemptWithRetry 最多 maxAttempts 次；每次失敗後等 base * 2^(attempt-1)
// 重試必定循序：前一次的結果決定要不要有下一次
func (s *NotificationServiceImpl) attemptWithRetry(ctx context.Context, message channel.Message) error {
	var lastErr error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		lastErr = s.sendToAllChannels(ctx, message)
		if lastErr == nil {
			return nil
		}

		logger.WithComponent("notification").Warn("delivery attempt failed",
			zap.Int("attempt", attempt), zap.Error(lastErr))

		if attempt == s.maxAttempts {
			break
		}

		wait := s.retryBaseDelay << (attempt - 1)
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return lastErr
}

// sendToAllChannels 頻道並行發送後 join；有任一失敗整次嘗試就算失敗
// 半送達的 fan-out 至少會被重試，不會靜默放過
func (s *NotificationServiceImpl) sendToAllChannels(ctx context.Context, message channel.Message) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, ch := range s.channels {
		wg.Add(1)
		go func(ch channel.Channel) {
			defer wg.Done()

			if err := ch.Send(ctx, message); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("channel %s: %w", ch.Name(), err))
				mu.Unlock()
			}
		}(ch)
	}

	wg.Wait()

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func (s *NotificationServiceImpl) ProcessPendingNotifications(ctx context.Context) (int, error) {
	now := time.Now().UTC()

	due, err := s.notificationRepo.FindDueScheduled(ctx, now.Add(s.sweepWindow))
	if err != nil {
		return 0, fmt.Errorf("find due notifications: %w", err)
	}

	processed := 0

	for _, notification := range due {
		if !notification.CanBeSent(now, s.sweepWindow) {
			continue
		}

		ticket, err := s.ticketRepo.FindByID(ctx, notification.TicketID)
		if err != nil {
			logger.WithComponent("notification").Error("sweep: load ticket failed",
				zap.String("notification_id", notification.ID.String()), zap.Error(err))
			continue
		}

		if err := s.deliver(ctx, ticket, notification); err != nil {
			logger.WithComponent("notification").Error("sweep: delivery failed",
				zap.String("notification_id", notification.ID.String()), zap.Error(err))
			continue
		}
		processed++
	}

	return processed, nil
}

func (s *NotificationServiceImpl) RearmNotification(ctx context.Context, notificationID uuid.UUID) error {
	notification, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}

	rearmed, err := notification.Rearm(time.Now().UTC())
	if err != nil {
		return err
	}

	if _, err := s.notificationRepo.Update(ctx, rearmed); err != nil {
		return fmt.Errorf("persist rearmed: %w", err)
	}

	return nil
}
