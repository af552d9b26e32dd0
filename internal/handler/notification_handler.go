package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-away-ticket-notifier/internal/service"
	"go-away-ticket-notifier/internal/taskqueue"
	apperrors "go-away-ticket-notifier/pkg/app_errors"
	"go-away-ticket-notifier/pkg/logger"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/internal/notifications")
	{
		router.POST("callback", h.Callback)
		router.POST("sweep", h.Sweep)
		router.POST(":uuid/rearm", h.Rearm)
	}
}

// Callback 任務佇列到期時打進來的回呼端點
func (h *NotificationHandler) Callback(c *gin.Context) {
	var payload taskqueue.CallbackPayload
	if err := BindJson(c, &payload); err != nil {
		return
	}

	if err := h.notificationService.HandleCallback(c, payload); err != nil {
		h.handleError(c, err, "Callback")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Sweep 補漏路徑：處理佇列漏投遞的到期通知
func (h *NotificationHandler) Sweep(c *gin.Context) {
	processed, err := h.notificationService.ProcessPendingNotifications(c)
	if err != nil {
		h.handleError(c, err, "Sweep")
		return
	}
	c.JSON(http.StatusOK, gin.H{"processed": processed})
}

func (h *NotificationHandler) Rearm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification uuid"})
		return
	}

	if err := h.notificationService.RearmNotification(c, id); err != nil {
		h.handleError(c, err, "Rearm")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *NotificationHandler) handleError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, apperrors.ErrTicketNotFound),
		errors.Is(err, apperrors.ErrNotificationNotFound):
		// 致命且不可重試：回 4xx 讓佇列不要再投遞
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidInput),
		errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrScheduledInPast):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.WithComponent("handler").Error("notification handler error",
			zap.String("op", op), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
