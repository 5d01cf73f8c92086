package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/zhiren/talenthub/internal/models"
	mongorepo "github.com/zhiren/talenthub/internal/repositories/mongo"
	"github.com/zhiren/talenthub/internal/utils"
)

// PushChannelFor is the Redis pub/sub channel a recipient's websocket
// subscribes to.
func PushChannelFor(recipientID string) string {
	return "notifications:" + recipientID
}

type NotificationService interface {
	Notify(ctx context.Context, n *models.Notification) error
	List(ctx context.Context, recipientID string, unreadOnly bool, limit int) ([]models.Notification, error)
	UnreadCount(ctx context.Context, recipientID string) (int64, error)
	MarkRead(ctx context.Context, recipientID, notifID string) error
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
}

type notificationService struct {
	notifications mongorepo.NotificationRepository
	rdb           *redis.Client
	log           *logrus.Logger
}

func NewNotificationService(notifications mongorepo.NotificationRepository, rdb *redis.Client, log *logrus.Logger) NotificationService {
	return &notificationService{notifications: notifications, rdb: rdb, log: log}
}

// Notify persists the notification and pushes it to the recipient's live
// channel. Push failures are logged, never surfaced: the document is already
// durable and the list endpoint will deliver it.
func (s *notificationService) Notify(ctx context.Context, n *models.Notification) error {
	const op = "NotificationService.Notify"

	if n == nil || n.RecipientID == "" || n.Title == "" {
		return utils.E(utils.CodeInvalidArgument, op, "recipient_id and title are required", nil)
	}
	if n.NotifID == "" {
		n.NotifID = uuid.NewString()
	}
	if n.Priority == "" {
		n.Priority = models.PriorityMedium
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	if err := s.notifications.Insert(ctx, n); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to persist notification", err)
	}

	if s.rdb != nil {
		if b, err := json.Marshal(n); err == nil {
			if err := s.rdb.Publish(ctx, PushChannelFor(n.RecipientID), b).Err(); err != nil && s.log != nil {
				s.log.WithError(err).Warn("notification push publish failed")
			}
		}
	}
	return nil
}

func (s *notificationService) List(ctx context.Context, recipientID string, unreadOnly bool, limit int) ([]models.Notification, error) {
	const op = "NotificationService.List"

	if recipientID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "recipient_id is required", nil)
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	rows, err := s.notifications.ListByRecipient(ctx, recipientID, unreadOnly, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list notifications", err)
	}
	return rows, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	const op = "NotificationService.UnreadCount"

	if recipientID == "" {
		return 0, utils.E(utils.CodeInvalidArgument, op, "recipient_id is required", nil)
	}
	n, err := s.notifications.CountUnread(ctx, recipientID)
	if err != nil {
		return 0, utils.E(utils.CodeInternal, op, "failed to count unread notifications", err)
	}
	return n, nil
}

func (s *notificationService) MarkRead(ctx context.Context, recipientID, notifID string) error {
	const op = "NotificationService.MarkRead"

	if recipientID == "" || notifID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "recipient_id and notification id are required", nil)
	}
	if err := s.notifications.MarkRead(ctx, recipientID, notifID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "notification not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to mark notification read", err)
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	const op = "NotificationService.MarkAllRead"

	if recipientID == "" {
		return 0, utils.E(utils.CodeInvalidArgument, op, "recipient_id is required", nil)
	}
	n, err := s.notifications.MarkAllRead(ctx, recipientID)
	if err != nil {
		return 0, utils.E(utils.CodeInternal, op, "failed to mark notifications read", err)
	}
	return n, nil
}
