package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
	"github.com/pribylovaa/civic-engagement-service/internal/pkg/log"
)

// ApplyVoteInput — применение действия над голосом по идее.
type ApplyVoteInput struct {
	IdeaID uuid.UUID
	UserID uuid.UUID
	Action models.VoteAction
}

// ApplyVote — бизнес-операция голосования по идее.
//
// Семантика (зеркалит клиент платформы):
//   - нет голоса + up/down — голос записывается;
//   - повторное то же направление — toggle-off, голос снимается;
//   - противоположное направление — переключение;
//   - remove — явная очистка, no-op при отсутствии голоса.
//
// Поведение/ошибки:
//   - ErrUnauthenticated — нет актора; ErrPermissionDenied — бан;
//   - ErrNotFound — идеи нет или она удалена модерацией;
//   - ErrInvalidArgument — неизвестное действие;
//   - ErrInternal — прочие ошибки стораджа.
//
// Побочный эффект: записанный (не снятый) голос уведомляет автора идеи;
// свой голос по своей идее уведомления не создаёт. Дедупликации нет.
func (s *Service) ApplyVote(ctx context.Context, in ApplyVoteInput) (*models.VoteResult, error) {
	const op = "service/votes/ApplyVote"

	lg := log.From(ctx).With(
		"op", op,
		"idea_id", in.IdeaID.String(),
		"user_id", in.UserID.String(),
		"action", string(in.Action),
	)

	if !in.Action.Valid() {
		lg.Warn("invalid argument: unknown vote action")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.IdeaID == uuid.Nil {
		lg.Warn("invalid argument: empty idea_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.requireActor(ctx, in.UserID); err != nil {
		lg.Warn("actor rejected", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result, err := s.ledger.ApplyVote(ctx, in.IdeaID, in.UserID, in.Action)
	if err != nil {
		lg.Warn("apply vote failed", "err", err)
		return nil, mapStorageErr(op, err)
	}

	if result.Recorded && result.AuthorID != in.UserID {
		s.notify(ctx, result.AuthorID,
			"Nouveau vote sur votre idée",
			"Quelqu'un a voté pour votre idée.",
			"/ideas/"+in.IdeaID.String(),
		)
	}

	return result, nil
}
