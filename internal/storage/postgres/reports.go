package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
	"github.com/pribylovaa/civic-engagement-service/internal/storage"
)

const reportColumns = `
id, content_type, content_id, reporter_id, reason, description,
status, resolution, action, reviewed_by, reviewed_at, created_at
`

// scanReport сканирует одну строку жалобы в доменную модель.
// reviewed_by NULL до резолюции — читается через указатель.
func scanReport(row pgx.Row) (*models.Report, error) {
	var report models.Report
	var status int16
	var reviewedBy *uuid.UUID

	if err := row.Scan(
		&report.ID,
		&report.ContentType,
		&report.ContentID,
		&report.ReporterID,
		&report.Reason,
		&report.Description,
		&status,
		&report.Resolution,
		&report.Action,
		&reviewedBy,
		&report.ReviewedAt,
		&report.CreatedAt,
	); err != nil {
		return nil, err
	}

	report.Status = models.ReportStatus(status)
	if reviewedBy != nil {
		report.ReviewedBy = *reviewedBy
	}

	return &report, nil
}

// CreateReport создаёт жалобу в статусе pending.
// Существование контента проверяется в той же транзакции; дубликаты
// жалоб от одного пользователя допустимы и отслеживаются независимо.
func (s *Storage) CreateReport(ctx context.Context, report *models.Report) (*models.Report, error) {
	const op = "storage/postgres/reports/CreateReport"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	contentQuery := `SELECT EXISTS (SELECT 1 FROM ideas WHERE id = $1 AND NOT is_removed)`
	if report.ContentType == models.ReportContentComment {
		contentQuery = `SELECT EXISTS (SELECT 1 FROM comments WHERE id = $1 AND NOT is_removed)`
	}

	var exists bool
	if err := tx.QueryRow(ctx, contentQuery, report.ContentID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	q := `
	INSERT INTO reports (id, content_type, content_id, reporter_id, reason, description)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING
	` + reportColumns

	row := tx.QueryRow(ctx, q,
		uuid.New(),
		string(report.ContentType),
		report.ContentID,
		report.ReporterID,
		string(report.Reason),
		report.Description,
	)

	result, err := scanReport(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ListReports возвращает жалобы, новые первыми.
// status == nil — без фильтра по статусу.
func (s *Storage) ListReports(ctx context.Context, status *models.ReportStatus) ([]models.Report, error) {
	const op = "storage/postgres/reports/ListReports"

	q := `SELECT ` + reportColumns + ` FROM reports`
	args := []any{}
	if status != nil {
		q += ` WHERE status = $1`
		args = append(args, int16(*status))
	}
	q += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var reports []models.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		reports = append(reports, *report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reports, nil
}

// ResolveReport атомарно переводит жалобу из pending в терминальный статус.
// Порядок внутри транзакции:
//  1. блокируем строку жалобы (FOR UPDATE) — два модератора не могут
//     зарезолвить одну жалобу одновременно;
//  2. терминальный статус отклоняется (монотонность);
//  3. при action = delete_content контент мягко удаляется в той же
//     транзакции (content_id в жалобе сохраняется для аудита);
//  4. фиксируем статус, резолюцию, модератора и reviewed_at.
func (s *Storage) ResolveReport(ctx context.Context, id, moderatorID uuid.UUID, resolution string, action models.ReportAction, now time.Time) (*models.Report, error) {
	const op = "storage/postgres/reports/ResolveReport"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var status int16
	var contentType string
	var contentID uuid.UUID
	err = tx.QueryRow(ctx,
		`SELECT status, content_type, content_id FROM reports WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&status, &contentType, &contentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if models.ReportStatus(status).Terminal() {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyResolved)
	}

	newStatus := models.ReportStatusReviewed
	if action == models.ActionDeleteContent {
		newStatus = models.ReportStatusResolved

		if models.ReportContentType(contentType) == models.ReportContentComment {
			// Мягкое удаление комментария обязано в той же транзакции
			// пересчитать comments_count родительской идеи из таблицы
			// comments — счётчик не пишется независимо.
			var ideaID uuid.UUID
			err = tx.QueryRow(ctx,
				`UPDATE comments SET is_removed = TRUE WHERE id = $1 RETURNING idea_id`,
				contentID,
			).Scan(&ideaID)
			if err != nil && !errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("%s: %w", op, err)
			}

			if err == nil {
				_, err = tx.Exec(ctx, `
					UPDATE ideas SET
						comments_count = (SELECT COUNT(*) FROM comments WHERE idea_id = $1 AND NOT is_removed),
						updated_at = now()
					WHERE id = $1`,
					ideaID)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", op, err)
				}
			}
		} else {
			_, err = tx.Exec(ctx,
				`UPDATE ideas SET is_removed = TRUE, updated_at = now() WHERE id = $1`,
				contentID)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	q := `
	UPDATE reports
	SET status = $2, resolution = $3, action = $4, reviewed_by = $5, reviewed_at = $6
	WHERE id = $1
	RETURNING
	` + reportColumns

	row := tx.QueryRow(ctx, q,
		id,
		int16(newStatus),
		resolution,
		string(action),
		moderatorID,
		now.UTC(),
	)

	result, err := scanReport(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
