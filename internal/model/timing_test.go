package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-away-ticket-notifier/internal/model"
	apperrors "go-away-ticket-notifier/pkg/app_errors"
)

func tokyo(t *testing.T) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	return loc
}

func TestComputeTiming_DayBefore(t *testing.T) {
	loc := tokyo(t)

	t.Run("previous day at 20:00 local time", func(t *testing.T) {
		saleStart := time.Date(2025, 3, 15, 10, 0, 0, 0, loc)

		timing, err := model.ComputeTiming(model.NotificationTypeDayBefore, saleStart, loc)

		require.NoError(t, err)
		assert.Equal(t, model.NotificationTypeDayBefore, timing.Type)
		assert.True(t, timing.ScheduledAt.Equal(time.Date(2025, 3, 14, 20, 0, 0, 0, loc)))
		assert.Equal(t, 5*time.Minute, timing.Tolerance)
	})

	t.Run("always 20:00 regardless of sale start clock time", func(t *testing.T) {
		early := time.Date(2025, 3, 15, 0, 30, 0, 0, loc)
		late := time.Date(2025, 3, 15, 23, 0, 0, 0, loc)

		a, err := model.ComputeTiming(model.NotificationTypeDayBefore, early, loc)
		require.NoError(t, err)
		b, err := model.ComputeTiming(model.NotificationTypeDayBefore, late, loc)
		require.NoError(t, err)

		assert.True(t, a.ScheduledAt.Equal(b.ScheduledAt))
		assert.Equal(t, 20, a.ScheduledAt.In(loc).Hour())
	})

	t.Run("sale start given in another zone converts first", func(t *testing.T) {
		// 2025-03-15 01:00 UTC 是東京時間 10:00
		saleStart := time.Date(2025, 3, 15, 1, 0, 0, 0, time.UTC)

		timing, err := model.ComputeTiming(model.NotificationTypeDayBefore, saleStart, loc)

		require.NoError(t, err)
		assert.True(t, timing.ScheduledAt.Equal(time.Date(2025, 3, 14, 20, 0, 0, 0, loc)))
	})

	t.Run("month boundary", func(t *testing.T) {
		saleStart := time.Date(2025, 4, 1, 10, 0, 0, 0, loc)

		timing, err := model.ComputeTiming(model.NotificationTypeDayBefore, saleStart, loc)

		require.NoError(t, err)
		assert.True(t, timing.ScheduledAt.Equal(time.Date(2025, 3, 31, 20, 0, 0, 0, loc)))
	})

	t.Run("spring DST transition keeps 20:00 wall clock", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)

		// 2025-03-09 美東進入夏令時間，前一天仍需是牆上時鐘 20:00
		saleStart := time.Date(2025, 3, 10, 12, 0, 0, 0, ny)

		timing, err := model.ComputeTiming(model.NotificationTypeDayBefore, saleStart, ny)

		require.NoError(t, err)
		local := timing.ScheduledAt.In(ny)
		assert.Equal(t, 20, local.Hour())
		assert.Equal(t, 9, local.Day())
	})
}

func TestComputeTiming_HourBefore(t *testing.T) {
	loc := tokyo(t)
	saleStart := time.Date(2025, 3, 15, 10, 0, 0, 0, loc)

	timing, err := model.ComputeTiming(model.NotificationTypeHourBefore, saleStart, loc)

	require.NoError(t, err)
	assert.True(t, timing.ScheduledAt.Equal(time.Date(2025, 3, 15, 9, 0, 0, 0, loc)))
	assert.Equal(t, 5*time.Minute, timing.Tolerance)
}

func TestComputeTiming_MinutesBefore(t *testing.T) {
	loc := tokyo(t)
	saleStart := time.Date(2025, 3, 15, 10, 0, 0, 0, loc)

	timing, err := model.ComputeTiming(model.NotificationTypeMinutesBefore, saleStart, loc)

	require.NoError(t, err)
	assert.True(t, timing.ScheduledAt.Equal(time.Date(2025, 3, 15, 9, 45, 0, 0, loc)))
	assert.Equal(t, 2*time.Minute, timing.Tolerance)
}

func TestComputeTiming_InvalidType(t *testing.T) {
	loc := tokyo(t)

	_, err := model.ComputeTiming(model.NotificationType("week_before"), time.Now(), loc)

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestNotificationTiming_IsDue(t *testing.T) {
	loc := tokyo(t)
	target := time.Date(2025, 3, 14, 20, 0, 0, 0, loc)
	timing := model.NotificationTiming{
		Type:        model.NotificationTypeDayBefore,
		ScheduledAt: target,
		Tolerance:   5 * time.Minute,
	}

	t.Run("exactly on time", func(t *testing.T) {
		assert.True(t, timing.IsDue(target))
	})

	t.Run("within tolerance after", func(t *testing.T) {
		assert.True(t, timing.IsDue(target.Add(3*time.Minute)))
	})

	t.Run("within tolerance before", func(t *testing.T) {
		assert.True(t, timing.IsDue(target.Add(-4*time.Minute)))
	})

	t.Run("boundary is inclusive", func(t *testing.T) {
		assert.True(t, timing.IsDue(target.Add(5*time.Minute)))
		assert.True(t, timing.IsDue(target.Add(-5*time.Minute)))
	})

	t.Run("just past tolerance", func(t *testing.T) {
		assert.False(t, timing.IsDue(target.Add(5*time.Minute+time.Millisecond)))
		assert.False(t, timing.IsDue(target.Add(10*time.Minute)))
	})
}
