package domain

import (
	"context"
	"time"
)

// Notification types
const (
	NotificationTypeApplication = "application"
	NotificationTypeApproval    = "approval"
)

// Notification message templates.
const (
	NotificationMsgApproved       = "Parabéns! Sua candidatura foi aprovada. A empresa entrará em contato em breve."
	NotificationMsgReviewed       = "Sua candidatura foi analisada."
	NotificationMsgNewApplication = "Você recebeu uma nova candidatura para a vaga: %s"
)

type Notification struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"` // recipient
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	GetByUserID(ctx context.Context, userID string, onlyUnread bool, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, id int64, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, id int64, userID string) error
}

type NotificationUsecase interface {
	Create(ctx context.Context, userID, message, notifType string) (*Notification, error)
	ListForUser(ctx context.Context, userID string, onlyUnread bool) ([]Notification, error)
	MarkRead(ctx context.Context, id int64, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, id int64, userID string) error
}
