package notification

import (
	"context"
	"time"
)

// Repository defines the notification repository interface
type Repository interface {
	Create(ctx context.Context, notification *Notification) error
	CreateBatch(ctx context.Context, notifications []*Notification) error
	// GetByRecipient returns notifications newest first.
	GetByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]*Notification, error)
	GetUnreadCount(ctx context.Context, recipientID string) (int, error)
	MarkAsRead(ctx context.Context, ids []string, recipientID string, readAt time.Time) error
	MarkAllAsRead(ctx context.Context, recipientID string, readAt time.Time) error
}
