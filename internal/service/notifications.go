package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
	"github.com/pribylovaa/civic-engagement-service/internal/pkg/log"
)

// Notifications возвращает ленту уведомлений пользователя, новые первыми.
func (s *Service) Notifications(ctx context.Context, userID uuid.UUID) ([]models.Notification, error) {
	const op = "service/notifications/Notifications"

	lg := log.From(ctx).With("op", op, "user_id", userID.String())

	if userID == uuid.Nil {
		lg.Warn("unauthenticated request")
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	result, err := s.notifications.ListByUser(ctx, userID)
	if err != nil {
		lg.Error("storage error on ListByUser", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return result, nil
}

// UnreadCount возвращает живой счётчик непрочитанных уведомлений.
func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	const op = "service/notifications/UnreadCount"

	lg := log.From(ctx).With("op", op, "user_id", userID.String())

	if userID == uuid.Nil {
		lg.Warn("unauthenticated request")
		return 0, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	count, err := s.notifications.UnreadCount(ctx, userID)
	if err != nil {
		lg.Error("storage error on UnreadCount", "err", err)
		return 0, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return count, nil
}

// MarkNotificationRead помечает уведомление прочитанным (идемпотентно).
// Чужое уведомление — ErrPermissionDenied, отсутствующее — ErrNotFound.
func (s *Service) MarkNotificationRead(ctx context.Context, id string, userID uuid.UUID) error {
	const op = "service/notifications/MarkNotificationRead"

	lg := log.From(ctx).With("op", op, "notification_id", id, "user_id", userID.String())

	if userID == uuid.Nil {
		lg.Warn("unauthenticated request")
		return fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	if strings.TrimSpace(id) == "" {
		lg.Warn("invalid argument: empty notification id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.notifications.MarkRead(ctx, id, userID); err != nil {
		lg.Warn("mark read failed", "err", err)
		return mapStorageErr(op, err)
	}

	return nil
}

// MarkAllNotificationsRead помечает все уведомления пользователя
// прочитанными. No-op при пустой ленте.
func (s *Service) MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) error {
	const op = "service/notifications/MarkAllNotificationsRead"

	lg := log.From(ctx).With("op", op, "user_id", userID.String())

	if userID == uuid.Nil {
		lg.Warn("unauthenticated request")
		return fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	if err := s.notifications.MarkAllRead(ctx, userID); err != nil {
		lg.Error("storage error on MarkAllRead", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return nil
}
