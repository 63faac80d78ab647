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

// FileReportInput — подача жалобы на контент.
type FileReportInput struct {
	ContentType models.ReportContentType
	ContentID   uuid.UUID
	ReporterID  uuid.UUID
	Reason      models.ReportReason
	Description string
}

// ResolveReportInput — резолюция жалобы модератором.
type ResolveReportInput struct {
	ReportID    uuid.UUID
	ModeratorID uuid.UUID
	Resolution  string
	Action      models.ReportAction
}

// FileReport — бизнес-операция подачи жалобы.
//
// Жалоба ссылается на существующий неудалённый контент (идею или
// комментарий); на отсутствующий контент — ErrNotFound. Дубликаты
// допустимы: каждая жалоба отслеживается независимо.
func (s *Service) FileReport(ctx context.Context, in FileReportInput) (*models.Report, error) {
	const op = "service/reports/FileReport"

	lg := log.From(ctx).With(
		"op", op,
		"content_type", string(in.ContentType),
		"content_id", in.ContentID.String(),
		"reporter_id", in.ReporterID.String(),
	)

	if !in.ContentType.Valid() {
		lg.Warn("invalid argument: unknown content type")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.ContentID == uuid.Nil {
		lg.Warn("invalid argument: empty content_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if !in.Reason.Valid() {
		lg.Warn("invalid argument: unknown reason")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	actor, err := s.requireActor(ctx, in.ReporterID)
	if err != nil {
		lg.Warn("actor rejected", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	report := &models.Report{
		ContentType: in.ContentType,
		ContentID:   in.ContentID,
		ReporterID:  actor.ID,
		Reason:      in.Reason,
		Description: strings.TrimSpace(in.Description),
	}

	result, err := s.ledger.CreateReport(ctx, report)
	if err != nil {
		lg.Warn("create report failed", "err", err)
		return nil, mapStorageErr(op, err)
	}

	return result, nil
}

// ListReports возвращает жалобы для очереди модерации, новые первыми.
// Доступна только модераторам и администраторам; status == nil — все.
func (s *Service) ListReports(ctx context.Context, actorID uuid.UUID, status *models.ReportStatus) ([]models.Report, error) {
	const op = "service/reports/ListReports"

	lg := log.From(ctx).With("op", op, "actor_id", actorID.String())

	actor, err := s.requireActor(ctx, actorID)
	if err != nil {
		lg.Warn("actor rejected", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !actor.Role.CanModerate() {
		lg.Warn("permission denied: moderator role required")
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	result, err := s.ledger.ListReports(ctx, status)
	if err != nil {
		lg.Error("storage error on ListReports", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return result, nil
}

// ResolveReport — бизнес-операция резолюции жалобы.
//
// Доступна только модераторам и администраторам. Переход статуса
// монотонный: pending -> resolved (при заданном action) либо
// pending -> reviewed; повторная резолюция — ErrAlreadyResolved.
// Action == delete_content каскадно мягко удаляет контент жалобы
// в той же транзакции.
//
// Побочный эффект: автор жалобы получает уведомление об итоге.
func (s *Service) ResolveReport(ctx context.Context, in ResolveReportInput) (*models.Report, error) {
	const op = "service/reports/ResolveReport"

	lg := log.From(ctx).With(
		"op", op,
		"report_id", in.ReportID.String(),
		"moderator_id", in.ModeratorID.String(),
	)

	if in.ReportID == uuid.Nil {
		lg.Warn("invalid argument: empty report_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.Action != "" && in.Action != models.ActionDeleteContent {
		lg.Warn("invalid argument: unknown action")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	actor, err := s.requireActor(ctx, in.ModeratorID)
	if err != nil {
		lg.Warn("actor rejected", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !actor.Role.CanModerate() {
		lg.Warn("permission denied: moderator role required")
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	result, err := s.ledger.ResolveReport(ctx, in.ReportID, actor.ID,
		strings.TrimSpace(in.Resolution), in.Action, time.Now().UTC())
	if err != nil {
		lg.Warn("resolve report failed", "err", err)
		return nil, mapStorageErr(op, err)
	}

	s.notify(ctx, result.ReporterID,
		"Votre signalement a été traité",
		"Un modérateur a examiné votre signalement. Merci de contribuer à la qualité de la plateforme.",
		"",
	)

	return result, nil
}
