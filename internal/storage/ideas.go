package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
)

// Ideas — контракт репозитория идей и голосов по ним.
type Ideas interface {
	// CreateIdea создаёт идею. Заполняются серверные поля (id, timestamps).
	CreateIdea(ctx context.Context, idea *models.Idea) (*models.Idea, error)

	// IdeaByID возвращает идею по id вместе с голосом viewer
	// (uuid.Nil — анонимный запрос, UserVote останется пустым).
	// Удалённая модерацией или отсутствующая идея — ErrNotFound.
	IdeaByID(ctx context.Context, id, viewer uuid.UUID) (*models.Idea, error)

	// ListIdeas возвращает неудалённые идеи по фильтру.
	// Sort: recent — created_at DESC; top — (votes_up - votes_down) DESC.
	ListIdeas(ctx context.Context, filter models.IdeaFilter, viewer uuid.UUID) ([]models.Idea, error)

	// UpdateIdeaStatus меняет статус идеи. Если записи нет — ErrNotFound.
	UpdateIdeaStatus(ctx context.Context, id uuid.UUID, status models.IdeaStatus) (*models.Idea, error)

	// ApplyVote атомарно применяет действие над голосом (toggle/switch/remove)
	// и пересчитывает votes_up/votes_down из idea_votes в той же транзакции.
	// Строка идеи блокируется (FOR UPDATE): конкурирующие операции по одной
	// идее линеаризуются. Если идеи нет — ErrNotFound.
	ApplyVote(ctx context.Context, ideaID, userID uuid.UUID, action models.VoteAction) (*models.VoteResult, error)

	// AddAttachmentKey дописывает ключ подтверждённого вложения к идее.
	// Если записи нет — ErrNotFound.
	AddAttachmentKey(ctx context.Context, ideaID uuid.UUID, key string) (*models.Idea, error)
}
