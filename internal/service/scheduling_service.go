package service

import (
	"time"

	"go-away-ticket-notifier/internal/model"
)

// SchedulingService 決定一張票券還需要排程哪些通知
// 純計算、無 I/O：給定 (ticket, existing, now) 結果必定相同
type SchedulingService interface {
	ComputeRequiredTimings(ticket *model.Ticket, existing []*model.Notification, now time.Time) ([]model.NotificationTiming, error)
}

type SchedulingServiceImpl struct {
	loc *time.Location
}

func NewSchedulingService(loc *time.Location) SchedulingService {
	return &SchedulingServiceImpl{loc: loc}
}

func (s *SchedulingServiceImpl) ComputeRequiredTimings(ticket *model.Ticket, existing []*model.Notification, now time.Time) ([]model.NotificationTiming, error) {
	if ticket.SaleStartDate == nil {
		return nil, nil
	}

	active := make(map[model.NotificationType]bool)
	for _, n := range existing {
		if n.IsActive() {
			active[n.NotificationType] = true
		}
	}

	timings := make([]model.NotificationTiming, 0, len(model.AllNotificationTypes))

	for _, typ := range model.AllNotificationTypes {
		if active[typ] {
			continue
		}

		timing, err := model.ComputeTiming(typ, *ticket.SaleStartDate, s.loc)
		if err != nil {
			return nil, err
		}

		// 過去的時點不排程
		if !timing.ScheduledAt.After(now) {
			continue
		}

		timings = append(timings, timing)
	}

	return timings, nil
}
