package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
	"github.com/pribylovaa/civic-engagement-service/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// notificationDoc — схема документа уведомления в MongoDB.
type notificationDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Title     string             `bson:"title"`
	Message   string             `bson:"message"`
	Link      string             `bson:"link,omitempty"`
	IsRead    bool               `bson:"is_read"`
	CreatedAt time.Time          `bson:"created_at"`
}

// toModel конвертирует документ в доменную модель.
func (d *notificationDoc) toModel() (*models.Notification, error) {
	uid, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, fmt.Errorf("bad user_id in document %s: %w", d.ID.Hex(), err)
	}

	return &models.Notification{
		ID:        d.ID.Hex(),
		UserID:    uid,
		Title:     d.Title,
		Message:   d.Message,
		Link:      d.Link,
		IsRead:    d.IsRead,
		CreatedAt: d.CreatedAt.UTC(),
	}, nil
}

// CreateNotification создаёт непрочитанное уведомление.
// Дедупликации нет: повторные события дают повторные уведомления.
func (m *Mongo) CreateNotification(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	const op = "storage/mongo/notifications/CreateNotification"

	doc := notificationDoc{
		UserID:    n.UserID.String(),
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}

	res, err := m.notifications.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)

	result, err := doc.toModel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ListByUser возвращает уведомления пользователя, новые первыми.
func (m *Mongo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Notification, error) {
	const op = "storage/mongo/notifications/ListByUser"

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := m.notifications.Find(ctx, bson.M{"user_id": userID.String()}, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer cur.Close(ctx)

	var result []models.Notification
	for cur.Next(ctx) {
		var doc notificationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		n, err := doc.toModel()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *n)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// MarkRead помечает уведомление прочитанным. Идемпотентно: повторный
// вызов по уже прочитанному — успех. Принадлежность проверяется до
// мутации, чтобы различить ErrNotFound и ErrNotOwner.
func (m *Mongo) MarkRead(ctx context.Context, id string, userID uuid.UUID) error {
	const op = "storage/mongo/notifications/MarkRead"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var doc notificationDoc
	err = m.notifications.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if doc.UserID != userID.String() {
		return fmt.Errorf("%s: %w", op, storage.ErrNotOwner)
	}

	_, err = m.notifications.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"is_read": true}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// MarkAllRead помечает все уведомления пользователя прочитанными.
// No-op, если их нет.
func (m *Mongo) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	const op = "storage/mongo/notifications/MarkAllRead"

	_, err := m.notifications.UpdateMany(ctx,
		bson.M{"user_id": userID.String(), "is_read": false},
		bson.M{"$set": bson.M{"is_read": true}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UnreadCount возвращает живой COUNT непрочитанных уведомлений.
// Отдельного счётчика нет, так что значение всегда согласовано с лентой.
func (m *Mongo) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	const op = "storage/mongo/notifications/UnreadCount"

	n, err := m.notifications.CountDocuments(ctx,
		bson.M{"user_id": userID.String(), "is_read": false})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.NotificationsStorage = (*Mongo)(nil)
