package notification

import (
	"context"
	stderrors "errors"

	"github.com/decomizer/storefront/constant"
	"github.com/decomizer/storefront/model"
	"github.com/decomizer/storefront/repository"
	notificationrepo "github.com/decomizer/storefront/repository/notification"
	"github.com/decomizer/storefront/utils/errors"
	"github.com/decomizer/storefront/utils/logger"
	"go.uber.org/zap"
)

const listLimit = 50

type NotificationApp interface {
	List(ctx context.Context, unreadOnly bool) ([]model.AdminNotificationEntity, error)
	MarkRead(ctx context.Context, id uint64) error
}

type NotificationAppImpl struct {
	notificationRepo notificationrepo.NotificationRepository
}

func NewNotificationApp(notificationRepo notificationrepo.NotificationRepository) NotificationApp {
	return &NotificationAppImpl{notificationRepo: notificationRepo}
}

// List returns the newest notifications first.
func (s *NotificationAppImpl) List(ctx context.Context, unreadOnly bool) ([]model.AdminNotificationEntity, error) {
	notifications, err := s.notificationRepo.List(ctx, &model.NotificationFilter{UnreadOnly: unreadOnly, Limit: listLimit})
	if err != nil {
		logger.Error("[ListNotifications] err notificationRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if notifications == nil {
		notifications = []model.AdminNotificationEntity{}
	}
	return notifications, nil
}

func (s *NotificationAppImpl) MarkRead(ctx context.Context, id uint64) error {
	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[MarkRead] err notificationRepo.MarkRead", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
