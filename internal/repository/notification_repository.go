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

type NotificationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Notification, error)
	FindByTicketID(ctx context.Context, ticketID uuid.UUID) ([]*model.Notification, error)
	// FindLatestByTicketAndType 同一 (ticketId, type) 最新一筆，不過濾狀態
	// 取消後的殘留回呼要能看到 cancelled 紀錄，才擋得下重送
	FindLatestByTicketAndType(ctx context.Context, ticketID uuid.UUID, typ model.NotificationType) (*model.Notification, error)
	// FindDueScheduled 取出 scheduled 且排程時間早於 before 的通知，供 sweep 使用
	FindDueScheduled(ctx context.Context, before time.Time) ([]*model.Notification, error)
	Save(ctx context.Context, notification *model.Notification) (*model.Notification, error)
	Update(ctx context.Context, notification *model.Notification) (*model.Notification, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type NotificationRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) NotificationRepository {
	return &NotificationRepositoryImpl{
		pool: pool,
	}
}

const notificationColumns = `
	id, ticket_id, notification_type, scheduled_at, sent_at,
	status, error_message, external_task_id, created_at, updated_at
`

func scanNotification(row pgx.Row) (*model.Notification, error) {
	var n model.Notification
	err := row.Scan(
		&n.ID,
		&n.TicketID,
		&n.NotificationType,
		&n.ScheduledAt,
		&n.SentAt,
		&n.Status,
		&n.ErrorMessage,
		&n.ExternalTaskID,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE id = $1
	`

	n, err := scanNotification(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, err
	}

	return n, nil
}

func (r *NotificationRepositoryImpl) FindByTicketID(ctx context.Context, ticketID uuid.UUID) ([]*model.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE ticket_id = $1
		ORDER BY scheduled_at ASC
	`

	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]*model.Notification, 0)

	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *NotificationRepositoryImpl) FindLatestByTicketAndType(ctx context.Context, ticketID uuid.UUID, typ model.NotificationType) (*model.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE ticket_id = $1 AND notification_type = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	n, err := scanNotification(r.pool.QueryRow(ctx, query, ticketID, typ))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, err
	}

	return n, nil
}

func (r *NotificationRepositoryImpl) FindDueScheduled(ctx context.Context, before time.Time) ([]*model.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE status = 'scheduled' AND scheduled_at <= $1
		ORDER BY scheduled_at ASC
	`

	rows, err := r.pool.Query(ctx, query, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]*model.Notification, 0)

	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *NotificationRepositoryImpl) Save(ctx context.Context, notification *model.Notification) (*model.Notification, error) {
	query := `
		INSERT INTO notifications (
			id, ticket_id, notification_type, scheduled_at, sent_at,
			status, error_message, external_task_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + notificationColumns + `
	`

	stored, err := scanNotification(r.pool.QueryRow(ctx, query,
		notification.ID, notification.TicketID, notification.NotificationType,
		notification.ScheduledAt, notification.SentAt,
		notification.Status, notification.ErrorMessage, notification.ExternalTaskID,
	))
	if err != nil {
		return nil, err
	}

	return stored, nil
}

func (r *NotificationRepositoryImpl) Update(ctx context.Context, notification *model.Notification) (*model.Notification, error) {
	// scheduled_at 不可變：時間變更要取消後重建，不在此更新
	query := `
		UPDATE notifications
		SET status = $1, sent_at = $2, error_message = $3,
			external_task_id = $4, updated_at = $5
		WHERE id = $6
		RETURNING ` + notificationColumns + `
	`

	stored, err := scanNotification(r.pool.QueryRow(ctx, query,
		notification.Status, notification.SentAt, notification.ErrorMessage,
		notification.ExternalTaskID, time.Now().UTC(), notification.ID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, err
	}

	return stored, nil
}

func (r *NotificationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM notifications
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}

	return nil
}
