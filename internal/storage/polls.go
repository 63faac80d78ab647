package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
)

// Polls — контракт репозитория опросов.
type Polls interface {
	// CreatePoll создаёт опрос. Варианты к этому моменту
	// нормализованы и уникальны (валидация — на сервисном слое).
	CreatePoll(ctx context.Context, poll *models.Poll) (*models.Poll, error)

	// PollByID возвращает опрос с пересчитанными счётчиками и выбором
	// viewer (uuid.Nil — анонимный запрос). Если записи нет — ErrNotFound.
	PollByID(ctx context.Context, id, viewer uuid.UUID) (*models.Poll, error)

	// ListPolls возвращает все опросы, новые первыми.
	ListPolls(ctx context.Context, viewer uuid.UUID) ([]models.Poll, error)

	// CastVote атомарно фиксирует одноразовый голос пользователя.
	// Строка опроса блокируется (FOR UPDATE). Ошибки:
	//   - ErrNotFound — опроса нет;
	//   - ErrPollClosed — now позже ends_at;
	//   - ErrInvalidOption — вариант не объявлен;
	//   - ErrAlreadyVoted — у пользователя уже есть запись в poll_votes.
	CastVote(ctx context.Context, pollID, userID uuid.UUID, option string, now time.Time) (*models.Poll, error)
}
