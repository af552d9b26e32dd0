package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-away-ticket-notifier/internal/model"
	"go-away-ticket-notifier/internal/service"
)

func timePtr(t time.Time) *time.Time { return &t }
func strPtr(s string) *string        { return &s }

func tokyo(t *testing.T) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	return loc
}

func beforeSaleTicket(saleStart time.Time) *model.Ticket {
	return &model.Ticket{
		ID:            uuid.New(),
		MatchName:     "Urawa vs Kashima",
		MatchDate:     saleStart.Add(30 * 24 * time.Hour),
		SaleStartDate: timePtr(saleStart),
		SaleStatus:    model.SaleStatusBeforeSale,
	}
}

func activeNotification(ticketID uuid.UUID, typ model.NotificationType, scheduledAt time.Time) *model.Notification {
	return &model.Notification{
		ID:               uuid.New(),
		TicketID:         ticketID,
		NotificationType: typ,
		ScheduledAt:      scheduledAt,
		Status:           model.NotificationStatusScheduled,
	}
}

func TestSchedulingService_ComputeRequiredTimings(t *testing.T) {
	loc := tokyo(t)
	schedulingService := service.NewSchedulingService(loc)

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, loc)
	saleStart := time.Date(2025, 3, 15, 10, 0, 0, 0, loc)

	t.Run("all three timings for a fresh ticket", func(t *testing.T) {
		ticket := beforeSaleTicket(saleStart)

		timings, err := schedulingService.ComputeRequiredTimings(ticket, nil, now)

		require.NoError(t, err)
		require.Len(t, timings, 3)
		assert.Equal(t, model.NotificationTypeDayBefore, timings[0].Type)
		assert.True(t, timings[0].ScheduledAt.Equal(time.Date(2025, 3, 14, 20, 0, 0, 0, loc)))
		assert.Equal(t, model.NotificationTypeHourBefore, timings[1].Type)
		assert.True(t, timings[1].ScheduledAt.Equal(time.Date(2025, 3, 15, 9, 0, 0, 0, loc)))
		assert.Equal(t, model.NotificationTypeMinutesBefore, timings[2].Type)
		assert.True(t, timings[2].ScheduledAt.Equal(time.Date(2025, 3, 15, 9, 45, 0, 0, loc)))
	})

	t.Run("skips types with an active notification", func(t *testing.T) {
		ticket := beforeSaleTicket(saleStart)
		existing := []*model.Notification{
			activeNotification(ticket.ID, model.NotificationTypeDayBefore, time.Date(2025, 3, 14, 20, 0, 0, 0, loc)),
		}

		timings, err := schedulingService.ComputeRequiredTimings(ticket, existing, now)

		require.NoError(t, err)
		require.Len(t, timings, 2)
		assert.Equal(t, model.NotificationTypeHourBefore, timings[0].Type)
		assert.Equal(t, model.NotificationTypeMinutesBefore, timings[1].Type)
	})

	t.Run("cancelled notification does not block its type", func(t *testing.T) {
		ticket := beforeSaleTicket(saleStart)
		cancelled := activeNotification(ticket.ID, model.NotificationTypeDayBefore, time.Date(2025, 3, 14, 20, 0, 0, 0, loc))
		cancelled.Status = model.NotificationStatusCancelled

		timings, err := schedulingService.ComputeRequiredTimings(ticket, []*model.Notification{cancelled}, now)

		require.NoError(t, err)
		assert.Len(t, timings, 3)
	})

	t.Run("skips timings already in the past", func(t *testing.T) {
		ticket := beforeSaleTicket(saleStart)
		// day_before 時點（3/14 20:00）已過，只剩兩種
		lateNow := time.Date(2025, 3, 15, 8, 0, 0, 0, loc)

		timings, err := schedulingService.ComputeRequiredTimings(ticket, nil, lateNow)

		require.NoError(t, err)
		require.Len(t, timings, 2)
		assert.Equal(t, model.NotificationTypeHourBefore, timings[0].Type)
		assert.Equal(t, model.NotificationTypeMinutesBefore, timings[1].Type)
	})

	t.Run("no sale start date means nothing to schedule", func(t *testing.T) {
		ticket := beforeSaleTicket(saleStart)
		ticket.SaleStartDate = nil

		timings, err := schedulingService.ComputeRequiredTimings(ticket, nil, now)

		require.NoError(t, err)
		assert.Empty(t, timings)
	})

	t.Run("everything already active yields empty", func(t *testing.T) {
		ticket := beforeSaleTicket(saleStart)
		existing := []*model.Notification{
			activeNotification(ticket.ID, model.NotificationTypeDayBefore, time.Date(2025, 3, 14, 20, 0, 0, 0, loc)),
			activeNotification(ticket.ID, model.NotificationTypeHourBefore, time.Date(2025, 3, 15, 9, 0, 0, 0, loc)),
			activeNotification(ticket.ID, model.NotificationTypeMinutesBefore, time.Date(2025, 3, 15, 9, 45, 0, 0, loc)),
		}

		timings, err := schedulingService.ComputeRequiredTimings(ticket, existing, now)

		require.NoError(t, err)
		assert.Empty(t, timings)
	})
}
