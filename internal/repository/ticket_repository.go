package repository

import (
	"context"
	"go-away-ticket-notifier/internal/model"
	apperrors "go-away-ticket-notifier/pkg/app_errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Ticket, error)
	FindByStatusIn(ctx context.Context, statuses []model.SaleStatus) ([]*model.Ticket, error)
	// Upsert 以相同資料重複呼叫是 no-op：只刷新 scraped_at，version 不變
	// 內容有變才 version+1
	Upsert(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
	// SetNotificationScheduled 帶版本檢查的條件更新，版本不符回傳 ErrVersionConflict
	SetNotificationScheduled(ctx context.Context, id uuid.UUID, scheduled bool, expectedVersion int) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteFinishedBefore 清除比賽日早於 cutoff 的舊票券
	DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type TicketRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &TicketRepositoryImpl{
		pool: pool,
	}
}

const ticketColumns = `
	id, match_name, match_date, home_team, away_team,
	sale_start_date, sale_end_date, venue, ticket_types, ticket_url,
	sale_status, notification_scheduled, version,
	scraped_at, created_at, updated_at
`

func scanTicket(row pgx.Row) (*model.Ticket, error) {
	var ticket model.Ticket
	err := row.Scan(
		&ticket.ID,
		&ticket.MatchName,
		&ticket.MatchDate,
		&ticket.HomeTeam,
		&ticket.AwayTeam,
		&ticket.SaleStartDate,
		&ticket.SaleEndDate,
		&ticket.Venue,
		&ticket.TicketTypes,
		&ticket.TicketURL,
		&ticket.SaleStatus,
		&ticket.NotificationScheduled,
		&ticket.Version,
		&ticket.ScrapedAt,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE id = $1
	`

	ticket, err := scanTicket(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return ticket, nil
}

func (r *TicketRepositoryImpl) FindByStatusIn(ctx context.Context, statuses []model.SaleStatus) ([]*model.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE sale_status = ANY($1)
		ORDER BY match_date ASC
	`

	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	rows, err := r.pool.Query(ctx, query, values)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]*model.Ticket, 0)

	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (r *TicketRepositoryImpl) Upsert(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	// 內容沒變的重複抓取只更新 scraped_at，version 不動
	// version 是排程流程的併發權杖，無意義的 bump 會讓同時進行的排程誤判衝突
	query := `
		INSERT INTO tickets (
			id, match_name, match_date, home_team, away_team,
			sale_start_date, sale_end_date, venue, ticket_types, ticket_url,
			sale_status, notification_scheduled, scraped_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			match_name      = EXCLUDED.match_name,
			match_date      = EXCLUDED.match_date,
			home_team       = EXCLUDED.home_team,
			away_team       = EXCLUDED.away_team,
			sale_start_date = EXCLUDED.sale_start_date,
			sale_end_date   = EXCLUDED.sale_end_date,
			venue           = EXCLUDED.venue,
			ticket_types    = EXCLUDED.ticket_types,
			ticket_url      = EXCLUDED.ticket_url,
			sale_status     = EXCLUDED.sale_status,
			scraped_at      = EXCLUDED.scraped_at,
			version = tickets.version + CASE WHEN
				(tickets.match_name, tickets.match_date, tickets.home_team, tickets.away_team,
				 tickets.sale_start_date, tickets.sale_end_date, tickets.venue,
				 tickets.ticket_types, tickets.ticket_url, tickets.sale_status)
				IS DISTINCT FROM
				(EXCLUDED.match_name, EXCLUDED.match_date, EXCLUDED.home_team, EXCLUDED.away_team,
				 EXCLUDED.sale_start_date, EXCLUDED.sale_end_date, EXCLUDED.venue,
				 EXCLUDED.ticket_types, EXCLUDED.ticket_url, EXCLUDED.sale_status)
				THEN 1 ELSE 0 END,
			updated_at = NOW()
		RETURNING ` + ticketColumns + `
	`

	stored, err := scanTicket(r.pool.QueryRow(ctx, query,
		ticket.ID, ticket.MatchName, ticket.MatchDate,
		ticket.HomeTeam, ticket.AwayTeam,
		ticket.SaleStartDate, ticket.SaleEndDate,
		ticket.Venue, ticket.TicketTypes, ticket.TicketURL,
		ticket.SaleStatus, ticket.NotificationScheduled, ticket.ScrapedAt,
	))
	if err != nil {
		return nil, err
	}

	return stored, nil
}

func (r *TicketRepositoryImpl) SetNotificationScheduled(ctx context.Context, id uuid.UUID, scheduled bool, expectedVersion int) error {
	query := `
		UPDATE tickets
		SET notification_scheduled = $1, version = version + 1, updated_at = $2
		WHERE id = $3 AND version = $4
	`

	result, err := r.pool.Exec(ctx, query, scheduled, time.Now().UTC(), id, expectedVersion)
	if err != nil {
		return err
	}

	// 0 筆更新：票券不存在或已被其他 ingestion 更新
	if result.RowsAffected() == 0 {
		_, findErr := r.FindByID(ctx, id)
		if findErr != nil {
			return findErr
		}
		return apperrors.ErrVersionConflict
	}

	return nil
}

func (r *TicketRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM tickets
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrTicketNotFound
	}

	return nil
}

func (r *TicketRepositoryImpl) DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM tickets
		WHERE match_date < $1
	`

	result, err := r.pool.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
