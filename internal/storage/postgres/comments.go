package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
	"github.com/pribylovaa/civic-engagement-service/internal/storage"
)

const commentColumns = `
id, idea_id, author_id, author_name, content, is_removed, created_at
`

// scanComment сканирует одну строку комментария в доменную модель.
func scanComment(row pgx.Row) (*models.Comment, error) {
	var comm models.Comment

	if err := row.Scan(
		&comm.ID,
		&comm.IdeaID,
		&comm.AuthorID,
		&comm.AuthorName,
		&comm.Content,
		&comm.IsRemoved,
		&comm.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &comm, nil
}

// CreateComment вставляет комментарий и в той же транзакции пересчитывает
// comments_count идеи из таблицы comments. Строка идеи блокируется
// (FOR UPDATE), так что счётчик не разъезжается при конкурирующих
// комментариях.
// Ошибки: storage.ErrNotFound, если идея отсутствует или удалена.
func (s *Storage) CreateComment(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	const op = "storage/postgres/comments/CreateComment"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var ideaID uuid.UUID
	err = tx.QueryRow(ctx,
		`SELECT id FROM ideas WHERE id = $1 AND NOT is_removed FOR UPDATE`,
		comment.IdeaID,
	).Scan(&ideaID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	q := `
	INSERT INTO comments (id, idea_id, author_id, author_name, content)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING
	` + commentColumns

	row := tx.QueryRow(ctx, q,
		uuid.New(),
		comment.IdeaID,
		comment.AuthorID,
		comment.AuthorName,
		comment.Content,
	)

	result, err := scanComment(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Счётчик комментариев всегда пересчитывается из таблицы comments
	// в той же транзакции — как votes_up/votes_down в ApplyVote.
	_, err = tx.Exec(ctx, `
		UPDATE ideas SET
			comments_count = (SELECT COUNT(*) FROM comments WHERE idea_id = $1 AND NOT is_removed),
			updated_at = now()
		WHERE id = $1`,
		comment.IdeaID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ListByIdea возвращает неудалённые комментарии идеи, старые первыми —
// удобнее для чтения обсуждения сверху вниз.
func (s *Storage) ListByIdea(ctx context.Context, ideaID uuid.UUID) ([]models.Comment, error) {
	const op = "storage/postgres/comments/ListByIdea"

	q := `SELECT ` + commentColumns + ` FROM comments
	WHERE idea_id = $1 AND NOT is_removed
	ORDER BY created_at ASC`

	rows, err := s.db.Query(ctx, q, ideaID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		comm, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		comments = append(comments, *comm)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return comments, nil
}
