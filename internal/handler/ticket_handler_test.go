package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-away-ticket-notifier/internal/handler"
	"go-away-ticket-notifier/internal/model"
	repoMocks "go-away-ticket-notifier/internal/repository/mocks"
	serviceMocks "go-away-ticket-notifier/internal/service/mocks"
	apperrors "go-away-ticket-notifier/pkg/app_errors"
)

func setupTicketTestRouter(t *testing.T) (*gin.Engine, *serviceMocks.MockTicketIngestService, *repoMocks.MockTicketRepository) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()

	ingestService := serviceMocks.NewMockTicketIngestService(t)
	ticketRepo := repoMocks.NewMockTicketRepository(t)

	ticketHandler := handler.NewTicketHandler(ingestService, ticketRepo)
	ticketHandler.RegisterRoutes(router)

	return router, ingestService, ticketRepo
}

func sampleIngestRequest() handler.IngestTicketRequest {
	saleStart := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	return handler.IngestTicketRequest{
		MatchName:     "Urawa vs Kashima",
		MatchDate:     time.Date(2025, 4, 12, 14, 0, 0, 0, time.UTC),
		SaleStartDate: &saleStart,
		SaleStatus:    "before_sale",
	}
}

func TestTicketHandler_Ingest(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, ingestService, _ := setupTicketTestRouter(t)

		req := sampleIngestRequest()
		stored := &model.Ticket{
			ID:                    model.NewTicketID(req.MatchName, req.MatchDate),
			MatchName:             req.MatchName,
			MatchDate:             req.MatchDate,
			SaleStatus:            model.SaleStatusBeforeSale,
			NotificationScheduled: true,
		}

		ingestService.EXPECT().OnTicketIngested(mock.Anything, mock.AnythingOfType("*model.Ticket")).
			Return(stored, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", "/api/v1/tickets/ingest", req))

		assert.Equal(t, http.StatusOK, w.Code)

		var got model.Ticket
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, stored.ID, got.ID)
		assert.True(t, got.NotificationScheduled)
		ingestService.AssertExpectations(t)
	})

	t.Run("Partial schedule failure returns 207", func(t *testing.T) {
		router, ingestService, _ := setupTicketTestRouter(t)

		req := sampleIngestRequest()
		stored := &model.Ticket{
			ID:        model.NewTicketID(req.MatchName, req.MatchDate),
			MatchName: req.MatchName,
		}
		aggErr := &apperrors.ScheduleAggregateError{
			Failed: 1,
			Total:  3,
			Errs:   []error{errors.New("enqueue: redis down")},
		}

		ingestService.EXPECT().OnTicketIngested(mock.Anything, mock.AnythingOfType("*model.Ticket")).
			Return(stored, aggErr).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", "/api/v1/tickets/ingest", req))

		assert.Equal(t, http.StatusMultiStatus, w.Code)
		assert.Contains(t, w.Body.String(), "1 of 3 notifications failed to schedule")
	})

	t.Run("Failed - invalid input", func(t *testing.T) {
		router, ingestService, _ := setupTicketTestRouter(t)

		ingestService.EXPECT().OnTicketIngested(mock.Anything, mock.AnythingOfType("*model.Ticket")).
			Return(nil, apperrors.ErrInvalidInput).Once()

		req := sampleIngestRequest()
		req.SaleStatus = "sold_out"

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", "/api/v1/tickets/ingest", req))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - binding error", func(t *testing.T) {
		router, ingestService, _ := setupTicketTestRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", "/api/v1/tickets/ingest", InvalidJSON))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		ingestService.AssertNotCalled(t, "OnTicketIngested")
	})

	t.Run("Failed - version conflict", func(t *testing.T) {
		router, ingestService, _ := setupTicketTestRouter(t)

		ingestService.EXPECT().OnTicketIngested(mock.Anything, mock.AnythingOfType("*model.Ticket")).
			Return(nil, apperrors.ErrVersionConflict).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", "/api/v1/tickets/ingest", sampleIngestRequest()))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestTicketHandler_GetByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, _, ticketRepo := setupTicketTestRouter(t)

		ticket := &model.Ticket{
			ID:         uuid.New(),
			MatchName:  "Urawa vs Kashima",
			SaleStatus: model.SaleStatusBeforeSale,
		}
		ticketRepo.EXPECT().FindByID(mock.Anything, ticket.ID).Return(ticket, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/tickets/"+ticket.ID.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), ticket.ID.String())
	})

	t.Run("Failed - not found", func(t *testing.T) {
		router, _, ticketRepo := setupTicketTestRouter(t)

		id := uuid.New()
		ticketRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, apperrors.ErrTicketNotFound).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/tickets/"+id.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - invalid uuid", func(t *testing.T) {
		router, _, ticketRepo := setupTicketTestRouter(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/tickets/not-a-uuid", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		ticketRepo.AssertNotCalled(t, "FindByID")
	})
}

func TestTicketHandler_List(t *testing.T) {
	t.Run("Success - all statuses by default", func(t *testing.T) {
		router, _, ticketRepo := setupTicketTestRouter(t)

		ticketRepo.EXPECT().FindByStatusIn(mock.Anything, []model.SaleStatus{
			model.SaleStatusBeforeSale,
			model.SaleStatusOnSale,
			model.SaleStatusEnded,
		}).Return([]*model.Ticket{}, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/tickets", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Success - filter by status", func(t *testing.T) {
		router, _, ticketRepo := setupTicketTestRouter(t)

		ticketRepo.EXPECT().FindByStatusIn(mock.Anything, []model.SaleStatus{model.SaleStatusBeforeSale}).
			Return([]*model.Ticket{}, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/tickets?status=before_sale", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestTicketHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, ingestService, _ := setupTicketTestRouter(t)

		id := uuid.New()
		ingestService.EXPECT().OnTicketRemoved(mock.Anything, id).Return(nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/tickets/"+id.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Failed - cancel error", func(t *testing.T) {
		router, ingestService, _ := setupTicketTestRouter(t)

		id := uuid.New()
		ingestService.EXPECT().OnTicketRemoved(mock.Anything, id).
			Return(&apperrors.CancelAggregateError{Failed: 1, Total: 1, Errs: []error{errors.New("redis down")}}).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/tickets/"+id.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
