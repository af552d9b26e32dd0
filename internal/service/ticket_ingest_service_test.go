package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-away-ticket-notifier/internal/model"
	repoMocks "go-away-ticket-notifier/internal/repository/mocks"
	"go-away-ticket-notifier/internal/service"
	serviceMocks "go-away-ticket-notifier/internal/service/mocks"
	apperrors "go-away-ticket-notifier/pkg/app_errors"
)

type ingestServiceMocks struct {
	ticketRepo        *repoMocks.MockTicketRepository
	notificationRepo  *repoMocks.MockNotificationRepository
	schedulingService *serviceMocks.MockSchedulingService
	schedulerService  *serviceMocks.MockSchedulerService
}

func setupIngestService(t *testing.T) (service.TicketIngestService, ingestServiceMocks) {
	t.Helper()

	m := ingestServiceMocks{
		ticketRepo:        repoMocks.NewMockTicketRepository(t),
		notificationRepo:  repoMocks.NewMockNotificationRepository(t),
		schedulingService: serviceMocks.NewMockSchedulingService(t),
		schedulerService:  serviceMocks.NewMockSchedulerService(t),
	}

	ingestService := service.NewTicketIngestService(
		m.ticketRepo,
		m.notificationRepo,
		m.schedulingService,
		m.schedulerService,
	)

	return ingestService, m
}

func TestTicketIngestService_OnTicketIngested(t *testing.T) {
	ctx := context.Background()
	loc := tokyo(t)
	saleStart := time.Now().In(loc).Add(72 * time.Hour)

	oneTiming := []model.NotificationTiming{
		{Type: model.NotificationTypeMinutesBefore, ScheduledAt: saleStart.Add(-15 * time.Minute), Tolerance: 2 * time.Minute},
	}

	t.Run("first ingest schedules notifications", func(t *testing.T) {
		ingestService, m := setupIngestService(t)
		incoming := beforeSaleTicket(saleStart)
		stored := *incoming
		stored.Version = 1

		m.ticketRepo.EXPECT().FindByID(ctx, incoming.ID).Return(nil, apperrors.ErrTicketNotFound).Once()
		m.ticketRepo.EXPECT().Upsert(ctx, incoming).Return(&stored, nil).Once()
		m.notificationRepo.EXPECT().FindByTicketID(ctx, stored.ID).Return(nil, nil).Once()
		m.schedulingService.EXPECT().ComputeRequiredTimings(&stored, []*model.Notification(nil), mock.AnythingOfType("time.Time")).
			Return(oneTiming, nil).Once()
		m.schedulerService.EXPECT().ScheduleNotifications(ctx, &stored, oneTiming).Return(nil).Once()
		m.ticketRepo.EXPECT().SetNotificationScheduled(ctx, stored.ID, true, 1).Return(nil).Once()

		result, err := ingestService.OnTicketIngested(ctx, incoming)

		require.NoError(t, err)
		assert.True(t, result.NotificationScheduled)
		assert.Equal(t, 2, result.Version)
		m.schedulerService.AssertExpectations(t)
	})

	t.Run("derives deterministic id when missing", func(t *testing.T) {
		ingestService, m := setupIngestService(t)
		incoming := beforeSaleTicket(saleStart)
		incoming.ID = uuid.Nil
		expectedID := model.NewTicketID(incoming.MatchName, incoming.MatchDate)

		stored := *incoming
		stored.ID = expectedID
		stored.SaleStatus = model.SaleStatusOnSale // 已開賣就不排程

		m.ticketRepo.EXPECT().FindByID(ctx, expectedID).Return(nil, apperrors.ErrTicketNotFound).Once()
		m.ticketRepo.EXPECT().Upsert(ctx, incoming).Return(&stored, nil).Once()

		result, err := ingestService.OnTicketIngested(ctx, incoming)

		require.NoError(t, err)
		assert.Equal(t, expectedID, result.ID)
		m.schedulerService.AssertNotCalled(t, "ScheduleNotifications")
	})

	t.Run("re-ingest without relevant change does nothing", func(t *testing.T) {
		ingestService, m := setupIngestService(t)
		incoming := beforeSaleTicket(saleStart)
		previous := *incoming
		previous.NotificationScheduled = true
		stored := previous

		m.ticketRepo.EXPECT().FindByID(ctx, incoming.ID).Return(&previous, nil).Once()
		m.ticketRepo.EXPECT().Upsert(ctx, incoming).Return(&stored, nil).Once()

		result, err := ingestService.OnTicketIngested(ctx, incoming)

		require.NoError(t, err)
		assert.True(t, result.NotificationScheduled)
		m.schedulerService.AssertNotCalled(t, "CancelNotification")
		m.schedulerService.AssertNotCalled(t, "ScheduleNotifications")
	})

	t.Run("sale start change cancels and reschedules", func(t *testing.T) {
		ingestService, m := setupIngestService(t)

		previous := beforeSaleTicket(saleStart)
		previous.NotificationScheduled = true
		previous.Version = 3

		incoming := *previous
		newStart := saleStart.Add(24 * time.Hour)
		incoming.SaleStartDate = timePtr(newStart)

		stored := incoming
		stored.Version = 4

		taskID := "old-task-1"
		oldNotification := activeNotification(stored.ID, model.NotificationTypeMinutesBefore, saleStart.Add(-15*time.Minute))
		oldNotification.ExternalTaskID = &taskID

		m.ticketRepo.EXPECT().FindByID(ctx, incoming.ID).Return(previous, nil).Once()
		m.ticketRepo.EXPECT().Upsert(ctx, &incoming).Return(&stored, nil).Once()

		// 取消舊排程
		m.notificationRepo.EXPECT().FindByTicketID(ctx, stored.ID).
			Return([]*model.Notification{oldNotification}, nil).Once()
		m.schedulerService.EXPECT().CancelNotification(ctx, taskID).Return(nil).Once()
		m.notificationRepo.EXPECT().Update(ctx, mock.AnythingOfType("*model.Notification")).
			RunAndReturn(func(_ context.Context, n *model.Notification) (*model.Notification, error) {
				assert.Equal(t, model.NotificationStatusCancelled, n.Status)
				return n, nil
			}).Once()
		m.ticketRepo.EXPECT().SetNotificationScheduled(ctx, stored.ID, false, 4).Return(nil).Once()

		// 重新排程
		m.notificationRepo.EXPECT().FindByTicketID(ctx, stored.ID).
			Return([]*model.Notification{}, nil).Once()
		m.schedulingService.EXPECT().ComputeRequiredTimings(&stored, []*model.Notification{}, mock.AnythingOfType("time.Time")).
			Return(oneTiming, nil).Once()
		m.schedulerService.EXPECT().ScheduleNotifications(ctx, &stored, oneTiming).Return(nil).Once()
		m.ticketRepo.EXPECT().SetNotificationScheduled(ctx, stored.ID, true, 5).Return(nil).Once()

		result, err := ingestService.OnTicketIngested(ctx, &incoming)

		require.NoError(t, err)
		assert.True(t, result.NotificationScheduled)
		assert.Equal(t, 6, result.Version)
		m.schedulerService.AssertExpectations(t)
	})

	t.Run("already triggered task tolerated during cancel", func(t *testing.T) {
		ingestService, m := setupIngestService(t)

		previous := beforeSaleTicket(saleStart)
		previous.NotificationScheduled = true
		previous.Version = 1

		incoming := *previous
		incoming.TicketURL = strPtr("https://example.com/tickets/new")

		stored := incoming
		stored.Version = 2

		taskID := "gone-task"
		oldNotification := activeNotification(stored.ID, model.NotificationTypeDayBefore, saleStart.Add(-14*time.Hour))
		oldNotification.ExternalTaskID = &taskID

		m.ticketRepo.EXPECT().FindByID(ctx, incoming.ID).Return(previous, nil).Once()
		m.ticketRepo.EXPECT().Upsert(ctx, &incoming).Return(&stored, nil).Once()
		m.notificationRepo.EXPECT().FindByTicketID(ctx, stored.ID).
			Return([]*model.Notification{oldNotification}, nil).Once()
		// 任務可能已觸發而不在佇列，仍要標記 cancelled
		m.schedulerService.EXPECT().CancelNotification(ctx, taskID).Return(apperrors.ErrTaskNotFound).Once()
		m.notificationRepo.EXPECT().Update(ctx, mock.AnythingOfType("*model.Notification")).
			RunAndReturn(func(_ context.Context, n *model.Notification) (*model.Notification, error) {
				assert.Equal(t, model.NotificationStatusCancelled, n.Status)
				return n, nil
			}).Once()
		m.ticketRepo.EXPECT().SetNotificationScheduled(ctx, stored.ID, false, 2).Return(nil).Once()

		m.notificationRepo.EXPECT().FindByTicketID(ctx, stored.ID).
			Return([]*model.Notification{}, nil).Once()
		m.schedulingService.EXPECT().ComputeRequiredTimings(&stored, []*model.Notification{}, mock.AnythingOfType("time.Time")).
			Return(oneTiming, nil).Once()
		m.schedulerService.EXPECT().ScheduleNotifications(ctx, &stored, oneTiming).Return(nil).Once()
		m.ticketRepo.EXPECT().SetNotificationScheduled(ctx, stored.ID, true, 3).Return(nil).Once()

		_, err := ingestService.OnTicketIngested(ctx, &incoming)

		require.NoError(t, err)
	})

	t.Run("partial schedule failure returns ticket with aggregate error", func(t *testing.T) {
		ingestService, m := setupIngestService(t)
		incoming := beforeSaleTicket(saleStart)
		stored := *incoming

		aggErr := &apperrors.ScheduleAggregateError{Failed: 1, Total: 3, Errs: []error{errors.New("enqueue: redis down")}}

		m.ticketRepo.EXPECT().FindByID(ctx, incoming.ID).Return(nil, apperrors.ErrTicketNotFound).Once()
		m.ticketRepo.EXPECT().Upsert(ctx, incoming).Return(&stored, nil).Once()
		m.notificationRepo.EXPECT().FindByTicketID(ctx, stored.ID).Return(nil, nil).Once()
		m.schedulingService.EXPECT().ComputeRequiredTimings(&stored, []*model.Notification(nil), mock.AnythingOfType("time.Time")).
			Return(oneTiming, nil).Once()
		m.schedulerService.EXPECT().ScheduleNotifications(ctx, &stored, oneTiming).Return(aggErr).Once()

		result, err := ingestService.OnTicketIngested(ctx, incoming)

		require.Error(t, err)
		var gotErr *apperrors.ScheduleAggregateError
		require.ErrorAs(t, err, &gotErr)
		// 票券本身已寫入，失敗只影響排程
		require.NotNil(t, result)
		assert.False(t, result.NotificationScheduled)
		m.ticketRepo.AssertNotCalled(t, "SetNotificationScheduled")
	})

	t.Run("version conflict on flag update bubbles up", func(t *testing.T) {
		ingestService, m := setupIngestService(t)
		incoming := beforeSaleTicket(saleStart)
		stored := *incoming
		stored.Version = 1

		m.ticketRepo.EXPECT().FindByID(ctx, incoming.ID).Return(nil, apperrors.ErrTicketNotFound).Once()
		m.ticketRepo.EXPECT().Upsert(ctx, incoming).Return(&stored, nil).Once()
		m.notificationRepo.EXPECT().FindByTicketID(ctx, stored.ID).Return(nil, nil).Once()
		m.schedulingService.EXPECT().ComputeRequiredTimings(&stored, []*model.Notification(nil), mock.AnythingOfType("time.Time")).
			Return(oneTiming, nil).Once()
		m.schedulerService.EXPECT().ScheduleNotifications(ctx, &stored, oneTiming).Return(nil).Once()
		m.ticketRepo.EXPECT().SetNotificationScheduled(ctx, stored.ID, true, 1).
			Return(apperrors.ErrVersionConflict).Once()

		_, err := ingestService.OnTicketIngested(ctx, incoming)

		assert.ErrorIs(t, err, apperrors.ErrVersionConflict)
	})

	t.Run("no timings required skips scheduling", func(t *testing.T) {
		ingestService, m := setupIngestService(t)
		incoming := beforeSaleTicket(saleStart)
		stored := *incoming

		m.ticketRepo.EXPECT().FindByID(ctx, incoming.ID).Return(nil, apperrors.ErrTicketNotFound).Once()
		m.ticketRepo.EXPECT().Upsert(ctx, incoming).Return(&stored, nil).Once()
		m.notificationRepo.EXPECT().FindByTicketID(ctx, stored.ID).Return(nil, nil).Once()
		m.schedulingService.EXPECT().ComputeRequiredTimings(&stored, []*model.Notification(nil), mock.AnythingOfType("time.Time")).
			Return(nil, nil).Once()

		result, err := ingestService.OnTicketIngested(ctx, incoming)

		require.NoError(t, err)
		assert.False(t, result.NotificationScheduled)
		m.schedulerService.AssertNotCalled(t, "ScheduleNotifications")
	})

	t.Run("rejects incomplete ticket", func(t *testing.T) {
		ingestService, m := setupIngestService(t)

		_, err := ingestService.OnTicketIngested(ctx, &model.Ticket{MatchName: "Urawa vs Kashima"})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		m.ticketRepo.AssertNotCalled(t, "Upsert")
	})
}

func TestTicketIngestService_OnTicketRemoved(t *testing.T) {
	ctx := context.Background()
	loc := tokyo(t)
	saleStart := time.Now().In(loc).Add(72 * time.Hour)

	t.Run("cancels active notifications before delete", func(t *testing.T) {
		ingestService, m := setupIngestService(t)
		ticketID := uuid.New()
		taskID := "task-1"
		notification := activeNotification(ticketID, model.NotificationTypeDayBefore, saleStart.Add(-14*time.Hour))
		notification.ExternalTaskID = &taskID
		sentAt := time.Now().UTC()
		alreadySent := activeNotification(ticketID, model.NotificationTypeHourBefore, saleStart.Add(-time.Hour))
		alreadySent.Status = model.NotificationStatusSent
		alreadySent.SentAt = &sentAt

		m.notificationRepo.EXPECT().FindByTicketID(ctx, ticketID).
			Return([]*model.Notification{notification, alreadySent}, nil).Once()
		m.schedulerService.EXPECT().CancelNotification(ctx, taskID).Return(nil).Once()
		m.notificationRepo.EXPECT().Update(ctx, mock.AnythingOfType("*model.Notification")).
			RunAndReturn(func(_ context.Context, n *model.Notification) (*model.Notification, error) {
				assert.Equal(t, model.NotificationStatusCancelled, n.Status)
				return n, nil
			}).Once()
		m.ticketRepo.EXPECT().Delete(ctx, ticketID).Return(nil).Once()

		err := ingestService.OnTicketRemoved(ctx, ticketID)

		require.NoError(t, err)
		m.ticketRepo.AssertExpectations(t)
	})

	t.Run("cancel failure keeps the ticket", func(t *testing.T) {
		ingestService, m := setupIngestService(t)
		ticketID := uuid.New()
		taskID := "task-1"
		notification := activeNotification(ticketID, model.NotificationTypeDayBefore, saleStart.Add(-14*time.Hour))
		notification.ExternalTaskID = &taskID

		m.notificationRepo.EXPECT().FindByTicketID(ctx, ticketID).
			Return([]*model.Notification{notification}, nil).Once()
		m.schedulerService.EXPECT().CancelNotification(ctx, taskID).
			Return(errors.New("redis down")).Once()

		err := ingestService.OnTicketRemoved(ctx, ticketID)

		require.Error(t, err)
		var aggErr *apperrors.CancelAggregateError
		assert.ErrorAs(t, err, &aggErr)
		m.ticketRepo.AssertNotCalled(t, "Delete")
	})
}

func TestTicketIngestService_CleanupOldTickets(t *testing.T) {
	ctx := context.Background()
	cutoff := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("reports deleted count", func(t *testing.T) {
		ingestService, m := setupIngestService(t)

		m.ticketRepo.EXPECT().DeleteFinishedBefore(ctx, cutoff).Return(int64(7), nil).Once()

		deleted, err := ingestService.CleanupOldTickets(ctx, cutoff)

		require.NoError(t, err)
		assert.Equal(t, int64(7), deleted)
	})

	t.Run("repository error bubbles up", func(t *testing.T) {
		ingestService, m := setupIngestService(t)

		m.ticketRepo.EXPECT().DeleteFinishedBefore(ctx, cutoff).Return(int64(0), errors.New("db error")).Once()

		_, err := ingestService.CleanupOldTickets(ctx, cutoff)

		require.Error(t, err)
	})
}
