package notification

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/notification"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/clock"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/sse"
	"github.com/dayflow-hris/hris-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 2, 18, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, cfg Config) (notification.Service, *sse.Hub) {
	t.Helper()
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = time.Hour
	}
	hub := sse.NewHub()
	svc := NewNotificationService(memory.NewNotificationRepository(), hub, clock.NewFixed(testNow), cfg)
	t.Cleanup(svc.Stop)
	return svc, hub
}

func leaveSubmitted(recipient, title string) notification.CreateNotificationRequest {
	return notification.CreateNotificationRequest{
		RecipientID: recipient,
		Type:        notification.TypeLeaveSubmitted,
		Title:       title,
		Message:     "John Doe requested paid leave",
		Data:        map[string]interface{}{"leave_request_id": "1"},
	}
}

func TestService_StopFlushesQueuedNotifications(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, Config{})

	require.NoError(t, svc.QueueNotification(ctx, leaveSubmitted("ADM001", "first")))
	require.NoError(t, svc.QueueNotification(ctx, leaveSubmitted("ADM001", "second")))
	require.NoError(t, svc.QueueNotification(ctx, leaveSubmitted("EMP001", "other")))

	svc.Stop()

	list, err := svc.GetNotifications(ctx, "ADM001", false)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, 2, list.UnreadCount)
	for _, n := range list.Notifications {
		assert.Equal(t, testNow, n.CreatedAt)
		assert.False(t, n.IsRead)
	}

	err = svc.QueueNotification(ctx, leaveSubmitted("ADM001", "late"))
	assert.ErrorIs(t, err, notification.ErrServiceStopped)
}

func TestService_FullQueueFallsBackToDirectInsert(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, Config{QueueSize: 1, WorkerCount: 1, BatchSize: 100})

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.QueueNotification(ctx, leaveSubmitted("ADM001", "n")))
	}
	svc.Stop()

	count, err := svc.GetUnreadCount(ctx, "ADM001")
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestService_SubscribeReceivesPublishedNotification(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc, hub := newTestService(t, Config{})

	events, cleanup := svc.Subscribe(ctx, "ADM001")
	defer cleanup()
	assert.Equal(t, 1, hub.SubscriberCount("ADM001"))

	require.NoError(t, svc.QueueBulkNotification(ctx, []notification.CreateNotificationRequest{
		leaveSubmitted("ADM001", "New Leave Request"),
	}))
	svc.Stop()

	select {
	case ev := <-events:
		assert.Equal(t, "leave.submitted", ev.Event)
		assert.Equal(t, "New Leave Request", ev.Data.Title)
		assert.Equal(t, notification.TypeLeaveSubmitted, ev.Data.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a notification event")
	}
}

func TestService_SubscribeClosesOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	svc, _ := newTestService(t, Config{})

	events, cleanup := svc.Subscribe(ctx, "EMP001")
	defer cleanup()
	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("expected stream to close")
	}
}

func TestService_MarkAsRead(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, Config{})

	require.NoError(t, svc.QueueNotification(ctx, leaveSubmitted("ADM001", "first")))
	require.NoError(t, svc.QueueNotification(ctx, leaveSubmitted("ADM001", "second")))
	svc.Stop()

	list, err := svc.GetNotifications(ctx, "ADM001", false)
	require.NoError(t, err)
	require.Len(t, list.Notifications, 2)

	err = svc.MarkAsRead(ctx, "ADM001", notification.MarkAsReadRequest{NotificationIDs: []string{list.Notifications[0].ID}})
	require.NoError(t, err)

	unread, err := svc.GetNotifications(ctx, "ADM001", true)
	require.NoError(t, err)
	assert.Equal(t, 1, unread.Total)
	assert.Equal(t, 1, unread.UnreadCount)

	err = svc.MarkAsRead(ctx, "EMP001", notification.MarkAsReadRequest{NotificationIDs: []string{list.Notifications[1].ID}})
	assert.ErrorIs(t, err, notification.ErrNotificationNotFound)

	err = svc.MarkAsRead(ctx, "ADM001", notification.MarkAsReadRequest{})
	assert.Error(t, err)

	require.NoError(t, svc.MarkAllAsRead(ctx, "ADM001"))
	count, err := svc.GetUnreadCount(ctx, "ADM001")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
