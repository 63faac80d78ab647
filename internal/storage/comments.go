package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
)

// Comments — контракт репозитория комментариев.
type Comments interface {
	// CreateComment создаёт комментарий и в той же транзакции
	// инкрементирует comments_count идеи (строка идеи блокируется).
	// Если идея отсутствует или удалена — ErrNotFound.
	CreateComment(ctx context.Context, comment *models.Comment) (*models.Comment, error)

	// ListByIdea возвращает неудалённые комментарии идеи, старые первыми.
	ListByIdea(ctx context.Context, ideaID uuid.UUID) ([]models.Comment, error)
}
