package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-away-ticket-notifier/internal/model"
	"go-away-ticket-notifier/internal/repository"
	"go-away-ticket-notifier/internal/service"
	apperrors "go-away-ticket-notifier/pkg/app_errors"
	"go-away-ticket-notifier/pkg/logger"
)

type TicketHandler struct {
	ingestService service.TicketIngestService
	ticketRepo    repository.TicketRepository
}

func NewTicketHandler(ingestService service.TicketIngestService, ticketRepo repository.TicketRepository) *TicketHandler {
	return &TicketHandler{
		ingestService: ingestService,
		ticketRepo:    ticketRepo,
	}
}

func (h *TicketHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("tickets/ingest", h.Ingest)
		router.GET("tickets", h.List)
		router.GET("tickets/:uuid", h.GetByID)
		router.DELETE("tickets/:uuid", h.Delete)
	}
}

// IngestTicketRequest 抓取層送進來的原始票券事實
type IngestTicketRequest struct {
	MatchName     string     `json:"match_name" binding:"required"`
	MatchDate     time.Time  `json:"match_date" binding:"required"`
	HomeTeam      *string    `json:"home_team"`
	AwayTeam      *string    `json:"away_team"`
	SaleStartDate *time.Time `json:"sale_start_date"`
	SaleEndDate   *time.Time `json:"sale_end_date"`
	Venue         *string    `json:"venue"`
	TicketTypes   []string   `json:"ticket_types"`
	TicketURL     *string    `json:"ticket_url"`
	SaleStatus    string     `json:"sale_status" binding:"required"`
}

func (h *TicketHandler) Ingest(c *gin.Context) {
	var req IngestTicketRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	ticket := &model.Ticket{
		MatchName:     req.MatchName,
		MatchDate:     req.MatchDate,
		HomeTeam:      req.HomeTeam,
		AwayTeam:      req.AwayTeam,
		SaleStartDate: req.SaleStartDate,
		SaleEndDate:   req.SaleEndDate,
		Venue:         req.Venue,
		TicketTypes:   req.TicketTypes,
		TicketURL:     req.TicketURL,
		SaleStatus:    model.SaleStatus(req.SaleStatus),
		ScrapedAt:     time.Now().UTC(),
	}

	stored, err := h.ingestService.OnTicketIngested(c, ticket)
	if err != nil {
		// 部分排程失敗時票券本身已寫入，回 207 讓呼叫端決定是否整票重試
		var aggErr *apperrors.ScheduleAggregateError
		if errors.As(err, &aggErr) {
			c.JSON(http.StatusMultiStatus, gin.H{
				"ticket": stored,
				"error":  aggErr.Error(),
			})
			return
		}
		h.handleError(c, err, "Ingest")
		return
	}

	c.JSON(http.StatusOK, stored)
}

func (h *TicketHandler) List(c *gin.Context) {
	statuses := []model.SaleStatus{
		model.SaleStatusBeforeSale,
		model.SaleStatusOnSale,
		model.SaleStatusEnded,
	}
	if s := c.Query("status"); s != "" {
		statuses = []model.SaleStatus{model.SaleStatus(s)}
	}

	tickets, err := h.ticketRepo.FindByStatusIn(c, statuses)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (h *TicketHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket uuid"})
		return
	}

	ticket, err := h.ticketRepo.FindByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket uuid"})
		return
	}

	if err := h.ingestService.OnTicketRemoved(c, id); err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TicketHandler) handleError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, apperrors.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.WithComponent("handler").Error("ticket handler error",
			zap.String("op", op), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
