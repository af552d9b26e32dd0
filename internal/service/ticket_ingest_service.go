package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-away-ticket-notifier/internal/model"
	"go-away-ticket-notifier/internal/repository"
	apperrors "go-away-ticket-notifier/pkg/app_errors"
	"go-away-ticket-notifier/pkg/logger"
)

// TicketIngestService 抓取管線的進入點：upsert 票券並決定
// 「第一次排程 / 取消後重排 / 什麼都不做」
type TicketIngestService interface {
	OnTicketIngested(ctx context.Context, incoming *model.Ticket) (*model.Ticket, error)
	// OnTicketRemoved 刪除票券前先取消其所有 active 通知
	OnTicketRemoved(ctx context.Context, id uuid.UUID) error
	// CleanupOldTickets 清除比賽日早於 cutoff 的票券
	CleanupOldTickets(ctx context.Context, cutoff time.Time) (int64, error)
}

type TicketIngestServiceImpl struct {
	ticketRepo        repository.TicketRepository
	notificationRepo  repository.NotificationRepository
	schedulingService SchedulingService
	schedulerService  SchedulerService
}

func NewTicketIngestService(
	ticketRepo repository.TicketRepository,
	notificationRepo repository.NotificationRepository,
	schedulingService SchedulingService,
	schedulerService SchedulerService,
) TicketIngestService {
	return &TicketIngestServiceImpl{
		ticketRepo:        ticketRepo,
		notificationRepo:  notificationRepo,
		schedulingService: schedulingService,
		schedulerService:  schedulerService,
	}
}

func (s *TicketIngestServiceImpl) OnTicketIngested(ctx context.Context, incoming *model.Ticket) (*model.Ticket, error) {
	if incoming.MatchName == "" || incoming.MatchDate.IsZero() || !incoming.SaleStatus.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}
	if incoming.ID == uuid.Nil {
		incoming.ID = model.NewTicketID(incoming.MatchName, incoming.MatchDate)
	}

	previous, err := s.ticketRepo.FindByID(ctx, incoming.ID)
	if err != nil && !errors.Is(err, apperrors.ErrTicketNotFound) {
		return nil, fmt.Errorf("load previous ticket: %w", err)
	}

	stored, err := s.ticketRepo.Upsert(ctx, incoming)
	if err != nil {
		return nil, fmt.Errorf("upsert ticket: %w", err)
	}

	now := time.Now().UTC()

	// 再抓取後有會影響通知的變更：先取消舊排程再重新評估
	if stored.ShouldRescheduleNotification(previous) {
		if err := s.cancelActiveNotifications(ctx, stored.ID); err != nil {
			return stored, err
		}
		if err := s.ticketRepo.SetNotificationScheduled(ctx, stored.ID, false, stored.Version); err != nil {
			return stored, err
		}
		stored.NotificationScheduled = false
		stored.Version++
	}

	if !stored.ShouldScheduleNotification(now) {
		return stored, nil
	}

	existing, err := s.notificationRepo.FindByTicketID(ctx, stored.ID)
	if err != nil {
		return stored, fmt.Errorf("load notifications: %w", err)
	}

	timings, err := s.schedulingService.ComputeRequiredTimings(stored, existing, now)
	if err != nil {
		return stored, err
	}
	if len(timings) == 0 {
		return stored, nil
	}

	if err := s.schedulerService.ScheduleNotifications(ctx, stored, timings); err != nil {
		// 部分成功：成功排入的照常發送，失敗數交由呼叫端決定整票重試
		return stored, err
	}

	if err := s.ticketRepo.SetNotificationScheduled(ctx, stored.ID, true, stored.Version); err != nil {
		return stored, err
	}
	stored.NotificationScheduled = true
	stored.Version++

	logger.WithComponent("ingest").Info("notifications scheduled",
		zap.String("ticket_id", stored.ID.String()),
		zap.Int("count", len(timings)))

	return stored, nil
}

// cancelActiveNotifications 先撤回佇列任務、成功才標記 cancelled
// 任務已不在佇列（可能已觸發）時仍標記，讓發送端靠狀態檢查擋下
func (s *TicketIngestServiceImpl) cancelActiveNotifications(ctx context.Context, ticketID uuid.UUID) error {
	notifications, err := s.notificationRepo.FindByTicketID(ctx, ticketID)
	if err != nil {
		return fmt.Errorf("load notifications: %w", err)
	}

	var errs []error
	attempted := 0

	for _, notification := range notifications {
		if !notification.IsActive() || notification.Status.IsTerminal() {
			continue
		}
		attempted++

		if notification.ExternalTaskID != nil {
			err := s.schedulerService.CancelNotification(ctx, *notification.ExternalTaskID)
			if err != nil && !errors.Is(err, apperrors.ErrTaskNotFound) {
				errs = append(errs, fmt.Errorf("%s: %w", notification.NotificationType, err))
				continue
			}
		}

		cancelled, err := notification.MarkCancelled()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", notification.NotificationType, err))
			continue
		}
		if _, err := s.notificationRepo.Update(ctx, cancelled); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", notification.NotificationType, err))
		}
	}

	if len(errs) > 0 {
		return &apperrors.CancelAggregateError{
			Failed: len(errs),
			Total:  attempted,
			Errs:   errs,
		}
	}

	return nil
}

func (s *TicketIngestServiceImpl) OnTicketRemoved(ctx context.Context, id uuid.UUID) error {
	// 通知不可比票券活得久：先取消所有 active 通知
	if err := s.cancelActiveNotifications(ctx, id); err != nil {
		return err
	}

	return s.ticketRepo.Delete(ctx, id)
}

func (s *TicketIngestServiceImpl) CleanupOldTickets(ctx context.Context, cutoff time.Time) (int64, error) {
	// 比賽早已結束的票券，其通知時點全數過期，佇列任務也已消化完
	deleted, err := s.ticketRepo.DeleteFinishedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup old tickets: %w", err)
	}

	if deleted > 0 {
		logger.WithComponent("ingest").Info("old tickets cleaned up",
			zap.Int64("deleted", deleted), zap.Time("cutoff", cutoff))
	}

	return deleted, nil
}
