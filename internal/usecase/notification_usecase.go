package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

// Listing is capped regardless of what the caller asks for.
const notificationListLimit = 50

type notificationUsecase struct {
	notificationRepo domain.NotificationRepository
}

func NewNotificationUsecase(notificationRepo domain.NotificationRepository) domain.NotificationUsecase {
	return &notificationUsecase{notificationRepo: notificationRepo}
}

func (u *notificationUsecase) Create(ctx context.Context, userID, message, notifType string) (*domain.Notification, error) {
	if notifType == "" {
		notifType = domain.NotificationTypeApplication
	}

	n := &domain.Notification{
		UserID:  userID,
		Message: message,
		Type:    notifType,
	}
	if err := u.notificationRepo.Create(ctx, n); err != nil {
		return nil, apperror.Internal(err)
	}
	return n, nil
}

func (u *notificationUsecase) ListForUser(ctx context.Context, userID string, onlyUnread bool) ([]domain.Notification, error) {
	notifications, err := u.notificationRepo.GetByUserID(ctx, userID, onlyUnread, notificationListLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return notifications, nil
}

func (u *notificationUsecase) MarkRead(ctx context.Context, id int64, userID string) error {
	if err := u.notificationRepo.MarkRead(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Notificação não encontrada")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *notificationUsecase) MarkAllRead(ctx context.Context, userID string) error {
	if err := u.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *notificationUsecase) Delete(ctx context.Context, id int64, userID string) error {
	if err := u.notificationRepo.Delete(ctx, id, userID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
