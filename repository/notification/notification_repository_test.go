package notification_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/decomizer/storefront/constant"
	"github.com/decomizer/storefront/model"
	"github.com/decomizer/storefront/repository"
	notificationrepo "github.com/decomizer/storefront/repository/notification"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "mysql"), mock
}

func TestNotificationRepository_CreateTx(t *testing.T) {
	db, mock := newDB(t)
	n := model.NewUserNotification(&model.UserEntity{ID: 7, Name: "Ayu", Email: "ayu@example.com", PhoneNumber: "9876543210"})
	n.CreatedAt = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO admin_notifications (type, title, message, is_read, metadata, created_at) VALUES (?, ?, ?, ?, ?, ?)`)).
		WithArgs("new_user", "New User Registration", "Ayu has registered with email ayu@example.com", false,
			`{"userId":7,"email":"ayu@example.com","phoneNumber":"9876543210"}`, n.CreatedAt).
		WillReturnResult(sqlmock.NewResult(11, 1))

	tx, err := db.Beginx()
	require.NoError(t, err)

	id, err := notificationrepo.NewNotificationRepository(db).CreateTx(context.Background(), tx, n)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_List(t *testing.T) {
	db, mock := newDB(t)
	created := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, type, title, message, is_read, metadata, created_at FROM admin_notifications WHERE is_read = FALSE ORDER BY created_at DESC, id DESC LIMIT ?`)).
		WithArgs(50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "title", "message", "is_read", "metadata", "created_at"}).
			AddRow(2, "new_user", "New User Registration", "Ayu has registered with email ayu@example.com", false,
				[]byte(`{"userId":7,"email":"ayu@example.com","phoneNumber":"9876543210"}`), created))

	got, err := notificationrepo.NewNotificationRepository(db).List(context.Background(), &model.NotificationFilter{UnreadOnly: true, Limit: 50})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, constant.NotificationNewUser, got[0].Type)
	require.NotNil(t, got[0].Metadata.NewUser)
	assert.Equal(t, uint64(7), got[0].Metadata.NewUser.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	query := regexp.QuoteMeta(`UPDATE admin_notifications SET is_read = TRUE WHERE id = ?`)

	t.Run("success", func(t *testing.T) {
		db, mock := newDB(t)
		mock.ExpectExec(query).WithArgs(2).WillReturnResult(sqlmock.NewResult(0, 1))
		assert.NoError(t, notificationrepo.NewNotificationRepository(db).MarkRead(context.Background(), 2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id", func(t *testing.T) {
		db, mock := newDB(t)
		mock.ExpectExec(query).WithArgs(404).WillReturnResult(sqlmock.NewResult(0, 0))
		err := notificationrepo.NewNotificationRepository(db).MarkRead(context.Background(), 404)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
