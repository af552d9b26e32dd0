package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrVersionConflict      = errors.New("ticket version conflict")
	ErrMissingCallbackURL   = errors.New("notification callback url is not configured")
	ErrScheduledInPast      = errors.New("scheduled time is not in the future")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInternalServerError  = errors.New("internal server error")
)

// ScheduleAggregateError 排程 fan-out 的彙總錯誤
// 三種通知互相獨立，全部嘗試完才回報失敗數
type ScheduleAggregateError struct {
	Failed int
	Total  int
	Errs   []error
}

func (e *ScheduleAggregateError) Error() string {
	return fmt.Sprintf("%d of %d notifications failed to schedule", e.Failed, e.Total)
}

func (e *ScheduleAggregateError) Unwrap() []error {
	return e.Errs
}

// CancelAggregateError 取消 fan-out 的彙總錯誤
type CancelAggregateError struct {
	Failed int
	Total  int
	Errs   []error
}

func (e *CancelAggregateError) Error() string {
	return fmt.Sprintf("%d of %d notifications failed to cancel", e.Failed, e.Total)
}

func (e *CancelAggregateError) Unwrap() []error {
	return e.Errs
}
