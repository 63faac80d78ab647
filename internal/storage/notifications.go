package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
)

// Notifications — контракт ленты уведомлений.
type Notifications interface {
	// CreateNotification создаёт непрочитанное уведомление.
	// Дедупликации нет: повторные события дают повторные уведомления.
	CreateNotification(ctx context.Context, n *models.Notification) (*models.Notification, error)

	// ListByUser возвращает уведомления пользователя, новые первыми.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Notification, error)

	// MarkRead помечает уведомление прочитанным (идемпотентно).
	// Ошибки: ErrNotFound — записи нет; ErrNotOwner — уведомление
	// принадлежит другому пользователю.
	MarkRead(ctx context.Context, id string, userID uuid.UUID) error

	// MarkAllRead помечает все уведомления пользователя прочитанными.
	// No-op, если их нет.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// UnreadCount возвращает живой COUNT непрочитанных уведомлений —
	// отдельного счётчика нет, дрейф невозможен.
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

// NotificationsStorage — верхнеуровневый интерфейс ленты уведомлений.
type NotificationsStorage interface {
	Notifications
	Close(ctx context.Context) error
}
