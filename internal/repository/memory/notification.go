package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/notification"
)

type notificationRepositoryImpl struct {
	mu            sync.RWMutex
	notifications []*notification.Notification
}

func NewNotificationRepository() notification.Repository {
	return &notificationRepositoryImpl{}
}

func cloneNotification(n *notification.Notification) *notification.Notification {
	c := *n
	if n.ReadAt != nil {
		t := *n.ReadAt
		c.ReadAt = &t
	}
	return &c
}

// Create implements notification.Repository.
func (r *notificationRepositoryImpl) Create(ctx context.Context, n *notification.Notification) error {
	return r.CreateBatch(ctx, []*notification.Notification{n})
}

// CreateBatch implements notification.Repository.
func (r *notificationRepositoryImpl) CreateBatch(ctx context.Context, notifications []*notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range notifications {
		r.notifications = append(r.notifications, cloneNotification(n))
	}
	return nil
}

// GetByRecipient implements notification.Repository.
func (r *notificationRepositoryImpl) GetByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]*notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*notification.Notification, 0)
	for _, n := range slices.Backward(r.notifications) {
		if n.RecipientID != recipientID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		result = append(result, cloneNotification(n))
	}
	return result, nil
}

// GetUnreadCount implements notification.Repository.
func (r *notificationRepositoryImpl) GetUnreadCount(ctx context.Context, recipientID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, n := range r.notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

// MarkAsRead implements notification.Repository.
func (r *notificationRepositoryImpl) MarkAsRead(ctx context.Context, ids []string, recipientID string, readAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := 0
	for _, n := range r.notifications {
		if n.RecipientID != recipientID || !slices.Contains(ids, n.ID) {
			continue
		}
		found++
		if !n.IsRead {
			n.IsRead = true
			t := readAt
			n.ReadAt = &t
		}
	}
	if found == 0 {
		return notification.ErrNotificationNotFound
	}
	return nil
}

// MarkAllAsRead implements notification.Repository.
func (r *notificationRepositoryImpl) MarkAllAsRead(ctx context.Context, recipientID string, readAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			n.IsRead = true
			t := readAt
			n.ReadAt = &t
		}
	}
	return nil
}
