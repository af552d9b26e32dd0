package model

import (
	"time"

	apperrors "go-away-ticket-notifier/pkg/app_errors"
)

const (
	// day_before 通知固定在前一天的這個時刻（當地時間）
	dayBeforeHour = 20

	defaultTolerance       = 5 * time.Minute
	minutesBeforeTolerance = 2 * time.Minute
)

// NotificationTiming 一種通知的目標發送時點與允許誤差
type NotificationTiming struct {
	Type        NotificationType
	ScheduledAt time.Time
	Tolerance   time.Duration
}

// ComputeTiming 由販售開始時間計算通知時點
// day_before 是牆上時鐘目標（前一天 20:00 當地時間），必須用 time.Date
// 在指定時區重建，跨 DST 偏移變更也要正確
func ComputeTiming(typ NotificationType, saleStart time.Time, loc *time.Location) (NotificationTiming, error) {
	switch typ {
	case NotificationTypeDayBefore:
		local := saleStart.In(loc)
		target := time.Date(local.Year(), local.Month(), local.Day()-1,
			dayBeforeHour, 0, 0, 0, loc)
		return NotificationTiming{
			Type:        typ,
			ScheduledAt: target,
			Tolerance:   defaultTolerance,
		}, nil
	case NotificationTypeHourBefore:
		return NotificationTiming{
			Type:        typ,
			ScheduledAt: saleStart.Add(-time.Hour),
			Tolerance:   defaultTolerance,
		}, nil
	case NotificationTypeMinutesBefore:
		return NotificationTiming{
			Type:        typ,
			ScheduledAt: saleStart.Add(-15 * time.Minute),
			Tolerance:   minutesBeforeTolerance,
		}, nil
	}
	return NotificationTiming{}, apperrors.ErrInvalidInput
}

// IsDue now 是否落在目標時點的誤差範圍內（邊界包含）
func (t NotificationTiming) IsDue(now time.Time) bool {
	diff := now.Sub(t.ScheduledAt)
	if diff < 0 {
		diff = -diff
	}
	return diff <= t.Tolerance
}
