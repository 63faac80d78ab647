package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
	"github.com/pribylovaa/civic-engagement-service/internal/pkg/log"
)

// CreatePollInput — создание опроса.
type CreatePollInput struct {
	Title       string
	Description string
	Options     []string
	CreatedBy   uuid.UUID
	EndsAt      *time.Time
}

// CastPollVoteInput — одноразовый голос в опросе.
type CastPollVoteInput struct {
	PollID uuid.UUID
	UserID uuid.UUID
	Option string
}

// CreatePoll — бизнес-операция создания опроса.
//
// Доступна только модераторам и администраторам. Варианты нормализуются
// (TrimSpace, пустые отбрасываются) и дедуплицируются с сохранением
// порядка; после нормализации их должно остаться не меньше двух.
func (s *Service) CreatePoll(ctx context.Context, in CreatePollInput) (*models.Poll, error) {
	const op = "service/polls/CreatePoll"

	lg := log.From(ctx).With("op", op, "created_by", in.CreatedBy.String())

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		lg.Warn("invalid argument: empty title")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	options := normalizeOptions(in.Options)
	if len(options) < 2 {
		lg.Warn("invalid argument: fewer than two distinct options")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	actor, err := s.requireActor(ctx, in.CreatedBy)
	if err != nil {
		lg.Warn("actor rejected", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !actor.Role.CanModerate() {
		lg.Warn("permission denied: moderator role required")
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	poll := &models.Poll{
		Title:       in.Title,
		Description: strings.TrimSpace(in.Description),
		Options:     options,
		CreatedBy:   actor.ID,
		EndsAt:      in.EndsAt,
	}

	result, err := s.ledger.CreatePoll(ctx, poll)
	if err != nil {
		lg.Error("storage error on CreatePoll", "err", err)
		return nil, mapStorageErr(op, err)
	}

	return result, nil
}

// PollByID возвращает опрос со счётчиками и выбором зрителя
// (uuid.Nil — анонимный запрос).
func (s *Service) PollByID(ctx context.Context, id, viewer uuid.UUID) (*models.Poll, error) {
	const op = "service/polls/PollByID"

	lg := log.From(ctx).With("op", op, "poll_id", id.String())

	if id == uuid.Nil {
		lg.Warn("invalid argument: empty poll_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	result, err := s.ledger.PollByID(ctx, id, viewer)
	if err != nil {
		lg.Warn("poll lookup failed", "err", err)
		return nil, mapStorageErr(op, err)
	}

	return result, nil
}

// ListPolls возвращает все опросы, новые первыми.
func (s *Service) ListPolls(ctx context.Context, viewer uuid.UUID) ([]models.Poll, error) {
	const op = "service/polls/ListPolls"

	result, err := s.ledger.ListPolls(ctx, viewer)
	if err != nil {
		log.From(ctx).Error("storage error on ListPolls", "op", op, "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return result, nil
}

// CastPollVote — бизнес-операция одноразового голосования в опросе.
//
// Голос неизменяем: без смены варианта и без отзыва. Порядок проверок
// фиксирован: закрытие -> повторный голос -> валидность варианта.
// Момент закрытия оценивается по времени вызова (UTC).
func (s *Service) CastPollVote(ctx context.Context, in CastPollVoteInput) (*models.Poll, error) {
	const op = "service/polls/CastPollVote"

	lg := log.From(ctx).With(
		"op", op,
		"poll_id", in.PollID.String(),
		"user_id", in.UserID.String(),
	)

	if in.PollID == uuid.Nil {
		lg.Warn("invalid argument: empty poll_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.Option = strings.TrimSpace(in.Option)
	if in.Option == "" {
		lg.Warn("invalid argument: empty option")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.requireActor(ctx, in.UserID); err != nil {
		lg.Warn("actor rejected", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result, err := s.ledger.CastVote(ctx, in.PollID, in.UserID, in.Option, time.Now().UTC())
	if err != nil {
		lg.Warn("cast vote failed", "err", err)
		return nil, mapStorageErr(op, err)
	}

	return result, nil
}

// normalizeOptions чистит и дедуплицирует варианты с сохранением порядка.
func normalizeOptions(options []string) []string {
	seen := make(map[string]struct{}, len(options))
	result := make([]string, 0, len(options))

	for _, option := range options {
		option = strings.TrimSpace(option)
		if option == "" {
			continue
		}

		if _, ok := seen[option]; ok {
			continue
		}

		seen[option] = struct{}{}
		result = append(result, option)
	}

	return result
}
