// service содержит бизнес-логику engagement-сервиса:
// - идеи и голоса по ним (toggle/switch/remove);
// - комментарии;
// - опросы с одноразовым голосованием;
// - жалобы и их модерация с каскадным мягким удалением;
// - лента уведомлений и живой счётчик непрочитанных;
// - производные бейджи и агрегаты платформы.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pribylovaa/civic-engagement-service/internal/config"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
	"github.com/pribylovaa/civic-engagement-service/internal/pkg/log"
	"github.com/pribylovaa/civic-engagement-service/internal/storage"
)

var (
	// ErrInvalidArgument — неверные входные параметры запроса к сервису.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnauthenticated — запрос без подтверждённой личности актора.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrPermissionDenied — актор аутентифицирован, но не имеет права
	// (недостаточная роль, бан, чужая сущность).
	ErrPermissionDenied = errors.New("permission denied")
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — конфликт уникальности/дубликат.
	ErrAlreadyExists = errors.New("already exists")
	// ErrAlreadyVoted — повторный голос в опросе (одноразовое голосование).
	ErrAlreadyVoted = errors.New("already voted")
	// ErrPollClosed — опрос закрыт по ends_at.
	ErrPollClosed = errors.New("poll closed")
	// ErrInvalidOption — вариант не объявлен в опросе.
	ErrInvalidOption = errors.New("invalid option")
	// ErrAlreadyResolved — жалоба уже в терминальном статусе.
	ErrAlreadyResolved = errors.New("already resolved")
	// ErrInternal — внутренняя ошибка (сторадж/БД/контекст/и т.д.).
	ErrInternal = errors.New("internal")
)

// Service — описывает бизнес-логику engagement-сервиса.
type Service struct {
	ledger        storage.LedgerStorage
	notifications storage.NotificationsStorage
	attachments   storage.AttachmentsStorage
	cfg           *config.Config
}

// New создает новый экземпляр Service.
func New(ledger storage.LedgerStorage, notifications storage.NotificationsStorage, attachments storage.AttachmentsStorage, cfg *config.Config) *Service {
	return &Service{
		ledger:        ledger,
		notifications: notifications,
		attachments:   attachments,
		cfg:           cfg,
	}
}

// requireActor загружает актора и проверяет, что он может мутировать:
//   - uuid.Nil -> ErrUnauthenticated;
//   - профиль не заведён -> ErrUnauthenticated (клиент обязан сначала
//     получить /me, где профиль заводится лениво);
//   - бан -> ErrPermissionDenied.
func (s *Service) requireActor(ctx context.Context, actorID uuid.UUID) (*models.User, error) {
	if actorID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.ledger.UserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUnauthenticated
		}

		return nil, ErrInternal
	}

	if user.IsBanned {
		return nil, ErrPermissionDenied
	}

	return user, nil
}

// notify создаёт уведомление получателю. Ошибка доставки не валит
// родительскую операцию: событие уже зафиксировано в реестре,
// потеря уведомления — деградация, а не откат.
func (s *Service) notify(ctx context.Context, recipient uuid.UUID, title, message, link string) {
	_, err := s.notifications.CreateNotification(ctx, &models.Notification{
		UserID:  recipient,
		Title:   title,
		Message: message,
		Link:    link,
	})
	if err != nil {
		log.From(ctx).Error("notification delivery failed",
			"recipient", recipient.String(), "err", err)
	}
}

// mapStorageErr переводит типовые ошибки стораджа в ошибки сервиса.
func mapStorageErr(op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, storage.ErrAlreadyExists):
		return fmt.Errorf("%s: %w", op, ErrAlreadyExists)
	case errors.Is(err, storage.ErrAlreadyVoted):
		return fmt.Errorf("%s: %w", op, ErrAlreadyVoted)
	case errors.Is(err, storage.ErrPollClosed):
		return fmt.Errorf("%s: %w", op, ErrPollClosed)
	case errors.Is(err, storage.ErrInvalidOption):
		return fmt.Errorf("%s: %w", op, ErrInvalidOption)
	case errors.Is(err, storage.ErrAlreadyResolved):
		return fmt.Errorf("%s: %w", op, ErrAlreadyResolved)
	case errors.Is(err, storage.ErrNotOwner):
		return fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	case errors.Is(err, storage.ErrInvalidArgument):
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	default:
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}
}
