package notification

import (
	"context"

	"github.com/decomizer/storefront/model"
	"github.com/decomizer/storefront/repository"
	"github.com/jmoiron/sqlx"
)

type NotificationRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.AdminNotificationEntity) (uint64, error)
	List(ctx context.Context, filter *model.NotificationFilter) ([]model.AdminNotificationEntity, error)
	MarkRead(ctx context.Context, id uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewNotificationRepository(conn *sqlx.DB) NotificationRepository {
	return &SQL{conn: conn}
}

const (
	insertNotificationQuery = `INSERT INTO admin_notifications (type, title, message, is_read, metadata, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	listNotificationsBase   = `SELECT id, type, title, message, is_read, metadata, created_at FROM admin_notifications`
	markReadQuery           = `UPDATE admin_notifications SET is_read = TRUE WHERE id = ?`
)

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.AdminNotificationEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertNotificationQuery, data.Type, data.Title, data.Message, data.IsRead, data.Metadata, data.CreatedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) List(ctx context.Context, filter *model.NotificationFilter) ([]model.AdminNotificationEntity, error) {
	query := listNotificationsBase
	if filter.UnreadOnly {
		query += " WHERE is_read = FALSE"
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"

	rows, err := s.conn.QueryxContext(ctx, query, filter.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AdminNotificationEntity, 0)
	for rows.Next() {
		var n model.AdminNotificationEntity
		if err := rows.StructScan(&n); err != nil {
			return nil, err
		}
		if err := n.DecodeMetadata(); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

func (s *SQL) MarkRead(ctx context.Context, id uint64) error {
	res, err := s.conn.ExecContext(ctx, markReadQuery, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
