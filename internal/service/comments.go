package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
	"github.com/pribylovaa/civic-engagement-service/internal/pkg/log"
)

// CreateCommentInput — создание комментария к идее.
type CreateCommentInput struct {
	IdeaID   uuid.UUID
	AuthorID uuid.UUID
	Content  string
}

// CreateComment — бизнес-операция создания комментария.
//
// Валидация:
//   - актор обязателен и не забанен;
//   - Content нормализуется (TrimSpace) и не должен быть пустым;
//   - идея должна существовать и не быть удалённой — иначе ErrNotFound.
//
// Побочный эффект: автор идеи получает уведомление о новом комментарии
// (кроме комментария под собственной идеей).
func (s *Service) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	const op = "service/comments/CreateComment"

	lg := log.From(ctx).With(
		"op", op,
		"idea_id", in.IdeaID.String(),
		"author_id", in.AuthorID.String(),
	)

	if in.IdeaID == uuid.Nil {
		lg.Warn("invalid argument: empty idea_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		lg.Warn("invalid argument: empty content")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	actor, err := s.requireActor(ctx, in.AuthorID)
	if err != nil {
		lg.Warn("actor rejected", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	idea, err := s.ledger.IdeaByID(ctx, in.IdeaID, uuid.Nil)
	if err != nil {
		lg.Warn("idea lookup failed", "err", err)
		return nil, mapStorageErr(op, err)
	}

	comment := &models.Comment{
		IdeaID:     in.IdeaID,
		AuthorID:   actor.ID,
		AuthorName: actor.Username,
		Content:    in.Content,
	}

	result, err := s.ledger.CreateComment(ctx, comment)
	if err != nil {
		lg.Error("storage error on CreateComment", "err", err)
		return nil, mapStorageErr(op, err)
	}

	if idea.AuthorID != actor.ID {
		s.notify(ctx, idea.AuthorID,
			"Nouveau commentaire sur votre idée",
			fmt.Sprintf("%s a commenté votre idée « %s ».", actor.Username, idea.Title),
			"/ideas/"+in.IdeaID.String(),
		)
	}

	return result, nil
}

// CommentsByIdea возвращает комментарии идеи, старые первыми.
// Для удалённой/отсутствующей идеи — ErrNotFound.
func (s *Service) CommentsByIdea(ctx context.Context, ideaID uuid.UUID) ([]models.Comment, error) {
	const op = "service/comments/CommentsByIdea"

	lg := log.From(ctx).With("op", op, "idea_id", ideaID.String())

	if ideaID == uuid.Nil {
		lg.Warn("invalid argument: empty idea_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.ledger.IdeaByID(ctx, ideaID, uuid.Nil); err != nil {
		lg.Warn("idea lookup failed", "err", err)
		return nil, mapStorageErr(op, err)
	}

	result, err := s.ledger.ListByIdea(ctx, ideaID)
	if err != nil {
		lg.Error("storage error on ListByIdea", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return result, nil
}
