package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
	"github.com/pribylovaa/civic-engagement-service/internal/pkg/log"
	"github.com/pribylovaa/civic-engagement-service/internal/storage"
)

// Входные структуры сервисного слоя.

// CreateIdeaInput — создание идеи.
type CreateIdeaInput struct {
	AuthorID    uuid.UUID
	Title       string
	Description string
	Tags        []string
}

// AttachmentUploadInput — запрос presigned URL для вложения идеи.
type AttachmentUploadInput struct {
	ActorID       uuid.UUID
	IdeaID        uuid.UUID
	ContentType   string
	ContentLength int64
}

// ConfirmAttachmentInput — подтверждение загрузки вложения.
type ConfirmAttachmentInput struct {
	ActorID uuid.UUID
	IdeaID  uuid.UUID
	Key     string
}

// normalizeTags нормализует список тегов: trim, отбрасывание пустых,
// дедупликация с сохранением порядка.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))

	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}

	return result
}

// CreateIdea — бизнес-операция создания идеи.
//
// Валидация:
//   - актор обязателен и не забанен;
//   - Title и Description нормализуются (TrimSpace) и не должны быть пустыми;
//   - теги нормализуются и дедуплицируются.
func (s *Service) CreateIdea(ctx context.Context, in CreateIdeaInput) (*models.Idea, error) {
	const op = "service/ideas/CreateIdea"

	lg := log.From(ctx).With("op", op, "author_id", in.AuthorID.String())

	actor, err := s.requireActor(ctx, in.AuthorID)
	if err != nil {
		lg.Warn("actor rejected", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		lg.Warn("invalid argument: empty title")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		lg.Warn("invalid argument: empty description")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	idea := &models.Idea{
		Title:       in.Title,
		Description: in.Description,
		Tags:        normalizeTags(in.Tags),
		AuthorID:    actor.ID,
		AuthorName:  actor.Username,
		Status:      models.IdeaStatusDiscussion,
	}

	result, err := s.ledger.CreateIdea(ctx, idea)
	if err != nil {
		lg.Error("storage error on CreateIdea", "err", err)
		return nil, mapStorageErr(op, err)
	}

	return result, nil
}

// IdeaByID возвращает идею по идентификатору вместе с голосом viewer.
// viewer == uuid.Nil — анонимный запрос.
func (s *Service) IdeaByID(ctx context.Context, id, viewer uuid.UUID) (*models.Idea, error) {
	const op = "service/ideas/IdeaByID"

	lg := log.From(ctx).With("op", op, "idea_id", id.String())

	if id == uuid.Nil {
		lg.Warn("invalid argument: empty idea_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	result, err := s.ledger.IdeaByID(ctx, id, viewer)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("idea not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("storage error on IdeaByID", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return result, nil
}

// ListIdeas возвращает неудалённые идеи по фильтру.
// Неизвестная сортировка трактуется как recent.
func (s *Service) ListIdeas(ctx context.Context, filter models.IdeaFilter, viewer uuid.UUID) ([]models.Idea, error) {
	const op = "service/ideas/ListIdeas"

	if filter.Sort != models.IdeaSortTop {
		filter.Sort = models.IdeaSortRecent
	}
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Tag = strings.TrimSpace(filter.Tag)

	result, err := s.ledger.ListIdeas(ctx, filter, viewer)
	if err != nil {
		log.From(ctx).Error("storage error on ListIdeas", "op", op, "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return result, nil
}

// UpdateIdeaStatus меняет статус жизненного цикла идеи.
// Доступно только модераторам/администраторам.
func (s *Service) UpdateIdeaStatus(ctx context.Context, actorID, ideaID uuid.UUID, status models.IdeaStatus) (*models.Idea, error) {
	const op = "service/ideas/UpdateIdeaStatus"

	lg := log.From(ctx).With("op", op, "idea_id", ideaID.String(), "actor_id", actorID.String())

	if !status.Valid() {
		lg.Warn("invalid argument: status out of range", "status", status)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	actor, err := s.requireActor(ctx, actorID)
	if err != nil {
		lg.Warn("actor rejected", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !actor.Role.CanModerate() {
		lg.Warn("permission denied: role cannot moderate", "role", actor.Role.String())
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	result, err := s.ledger.UpdateIdeaStatus(ctx, ideaID, status)
	if err != nil {
		lg.Warn("update status failed", "err", err)
		return nil, mapStorageErr(op, err)
	}

	return result, nil
}

// AttachmentUploadURL выдаёт presigned PUT URL для вложения идеи.
// Доступно только автору идеи.
func (s *Service) AttachmentUploadURL(ctx context.Context, in AttachmentUploadInput) (*storage.UploadInfo, error) {
	const op = "service/ideas/AttachmentUploadURL"

	lg := log.From(ctx).With("op", op, "idea_id", in.IdeaID.String(), "actor_id", in.ActorID.String())

	actor, err := s.requireActor(ctx, in.ActorID)
	if err != nil {
		lg.Warn("actor rejected", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	idea, err := s.ledger.IdeaByID(ctx, in.IdeaID, uuid.Nil)
	if err != nil {
		lg.Warn("idea lookup failed", "err", err)
		return nil, mapStorageErr(op, err)
	}

	if idea.AuthorID != actor.ID {
		lg.Warn("permission denied: not the author")
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	info, err := s.attachments.AttachmentUploadURL(ctx, in.IdeaID, in.ContentType, in.ContentLength)
	if err != nil {
		lg.Warn("presign failed", "err", err)
		return nil, mapStorageErr(op, err)
	}

	return info, nil
}

// ConfirmAttachment подтверждает загрузку вложения и дописывает ключ к идее.
// Доступно только автору идеи.
func (s *Service) ConfirmAttachment(ctx context.Context, in ConfirmAttachmentInput) (*models.Idea, error) {
	const op = "service/ideas/ConfirmAttachment"

	lg := log.From(ctx).With("op", op, "idea_id", in.IdeaID.String(), "actor_id", in.ActorID.String())

	if strings.TrimSpace(in.Key) == "" {
		lg.Warn("invalid argument: empty key")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	actor, err := s.requireActor(ctx, in.ActorID)
	if err != nil {
		lg.Warn("actor rejected", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	idea, err := s.ledger.IdeaByID(ctx, in.IdeaID, uuid.Nil)
	if err != nil {
		lg.Warn("idea lookup failed", "err", err)
		return nil, mapStorageErr(op, err)
	}

	if idea.AuthorID != actor.ID {
		lg.Warn("permission denied: not the author")
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	if _, err := s.attachments.CheckAttachmentUpload(ctx, in.IdeaID, in.Key); err != nil {
		if errors.Is(err, storage.ErrNotFoundAttachment) {
			lg.Warn("attachment object not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Warn("attachment check failed", "err", err)
		return nil, mapStorageErr(op, err)
	}

	result, err := s.ledger.AddAttachmentKey(ctx, in.IdeaID, in.Key)
	if err != nil {
		lg.Error("storage error on AddAttachmentKey", "err", err)
		return nil, mapStorageErr(op, err)
	}

	return result, nil
}
