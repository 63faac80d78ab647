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

// ideaColumns — список колонок таблицы ideas (с алиасом i) плюс голос
// запрашивающего пользователя из LEFT JOIN idea_votes (алиас v).
const ideaColumns = `
i.id, i.title, i.description, i.tags, i.author_id, i.author_name, i.status,
i.votes_up, i.votes_down, i.comments_count, i.attachment_keys, i.is_removed,
i.created_at, i.updated_at, COALESCE(v.direction, '')
`

// scanIdea сканирует одну строку идеи в доменную модель.
func scanIdea(row pgx.Row) (*models.Idea, error) {
	var idea models.Idea
	var status int16
	var userVote string

	if err := row.Scan(
		&idea.ID,
		&idea.Title,
		&idea.Description,
		&idea.Tags,
		&idea.AuthorID,
		&idea.AuthorName,
		&status,
		&idea.VotesUp,
		&idea.VotesDown,
		&idea.CommentsCount,
		&idea.AttachmentKeys,
		&idea.IsRemoved,
		&idea.CreatedAt,
		&idea.UpdatedAt,
		&userVote,
	); err != nil {
		return nil, err
	}

	idea.Status = models.IdeaStatus(status)
	idea.UserVote = models.VoteDirection(userVote)

	return &idea, nil
}

// CreateIdea вставляет новую идею. Id генерируется здесь,
// производные счётчики стартуют с нуля.
func (s *Storage) CreateIdea(ctx context.Context, idea *models.Idea) (*models.Idea, error) {
	const op = "storage/postgres/ideas/CreateIdea"

	q := `
	INSERT INTO ideas AS i (id, title, description, tags, author_id, author_name, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING i.id, i.title, i.description, i.tags, i.author_id, i.author_name, i.status,
	i.votes_up, i.votes_down, i.comments_count, i.attachment_keys, i.is_removed,
	i.created_at, i.updated_at, ''
	`

	row := s.db.QueryRow(ctx, q,
		uuid.New(),
		idea.Title,
		idea.Description,
		idea.Tags,
		idea.AuthorID,
		idea.AuthorName,
		int16(idea.Status),
	)

	result, err := scanIdea(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// IdeaByID возвращает идею по id вместе с голосом viewer.
// Удалённая модерацией идея недоступна: storage.ErrNotFound.
func (s *Storage) IdeaByID(ctx context.Context, id, viewer uuid.UUID) (*models.Idea, error) {
	const op = "storage/postgres/ideas/IdeaByID"

	q := `
	SELECT ` + ideaColumns + `
	FROM ideas i
	LEFT JOIN idea_votes v ON v.idea_id = i.id AND v.user_id = $2
	WHERE i.id = $1 AND NOT i.is_removed
	`

	result, err := scanIdea(s.db.QueryRow(ctx, q, id, viewer))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ListIdeas возвращает неудалённые идеи по фильтру.
func (s *Storage) ListIdeas(ctx context.Context, filter models.IdeaFilter, viewer uuid.UUID) ([]models.Idea, error) {
	const op = "storage/postgres/ideas/ListIdeas"

	where := `NOT i.is_removed`
	args := []any{viewer}
	count := 1

	if filter.Search != "" {
		count++
		where += fmt.Sprintf(` AND (i.title ILIKE '%%' || $%d || '%%' OR i.description ILIKE '%%' || $%d || '%%')`, count, count)
		args = append(args, filter.Search)
	}

	if filter.Tag != "" {
		count++
		where += fmt.Sprintf(` AND $%d = ANY(i.tags)`, count)
		args = append(args, filter.Tag)
	}

	order := `i.created_at DESC`
	if filter.Sort == models.IdeaSortTop {
		order = `(i.votes_up - i.votes_down) DESC, i.created_at DESC`
	}

	q := `
	SELECT ` + ideaColumns + `
	FROM ideas i
	LEFT JOIN idea_votes v ON v.idea_id = i.id AND v.user_id = $1
	WHERE ` + where + `
	ORDER BY ` + order

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ideas []models.Idea
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ideas = append(ideas, *idea)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ideas, nil
}

// UpdateIdeaStatus меняет статус жизненного цикла идеи.
// Ошибки: storage.ErrNotFound при отсутствии/удалённости записи.
func (s *Storage) UpdateIdeaStatus(ctx context.Context, id uuid.UUID, status models.IdeaStatus) (*models.Idea, error) {
	const op = "storage/postgres/ideas/UpdateIdeaStatus"

	q := `
	UPDATE ideas AS i SET status = $2, updated_at = now()
	WHERE i.id = $1 AND NOT i.is_removed
	RETURNING i.id, i.title, i.description, i.tags, i.author_id, i.author_name, i.status,
	i.votes_up, i.votes_down, i.comments_count, i.attachment_keys, i.is_removed,
	i.created_at, i.updated_at, ''
	`

	result, err := scanIdea(s.db.QueryRow(ctx, q, id, int16(status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ApplyVote атомарно применяет действие пользователя над голосом.
// Порядок внутри транзакции:
//  1. блокируем строку идеи (FOR UPDATE) — конкурирующие операции по одной
//     идее линеаризуются, разные идеи не координируются;
//  2. читаем текущий голос пары (idea_id, user_id);
//  3. вычисляем переход (toggle/switch/remove) чистой функцией;
//  4. правим idea_votes и пересчитываем votes_up/votes_down из неё же —
//     счётчики не могут разъехаться с картой голосов.
func (s *Storage) ApplyVote(ctx context.Context, ideaID, userID uuid.UUID, action models.VoteAction) (*models.VoteResult, error) {
	const op = "storage/postgres/ideas/ApplyVote"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var authorID uuid.UUID
	err = tx.QueryRow(ctx,
		`SELECT author_id FROM ideas WHERE id = $1 AND NOT is_removed FOR UPDATE`,
		ideaID,
	).Scan(&authorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var prev string
	err = tx.QueryRow(ctx,
		`SELECT direction FROM idea_votes WHERE idea_id = $1 AND user_id = $2`,
		ideaID, userID,
	).Scan(&prev)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	next := models.ApplyVoteTransition(models.VoteDirection(prev), action)

	switch {
	case next == models.VoteNone && prev != "":
		_, err = tx.Exec(ctx,
			`DELETE FROM idea_votes WHERE idea_id = $1 AND user_id = $2`,
			ideaID, userID)
	case next != models.VoteNone && prev == "":
		_, err = tx.Exec(ctx,
			`INSERT INTO idea_votes (idea_id, user_id, direction) VALUES ($1, $2, $3)`,
			ideaID, userID, string(next))
	case next != models.VoteNone && string(next) != prev:
		_, err = tx.Exec(ctx,
			`UPDATE idea_votes SET direction = $3, created_at = now() WHERE idea_id = $1 AND user_id = $2`,
			ideaID, userID, string(next))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var votesUp, votesDown int64
	err = tx.QueryRow(ctx, `
		UPDATE ideas SET
			votes_up = (SELECT COUNT(*) FROM idea_votes WHERE idea_id = $1 AND direction = 'up'),
			votes_down = (SELECT COUNT(*) FROM idea_votes WHERE idea_id = $1 AND direction = 'down'),
			updated_at = now()
		WHERE id = $1
		RETURNING votes_up, votes_down`,
		ideaID,
	).Scan(&votesUp, &votesDown)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.VoteResult{
		VotesUp:   votesUp,
		VotesDown: votesDown,
		UserVote:  next,
		AuthorID:  authorID,
		Recorded:  next != models.VoteNone && string(next) != prev,
	}, nil
}

// AddAttachmentKey дописывает ключ подтверждённого вложения к идее.
// Ошибки: storage.ErrNotFound при отсутствии/удалённости записи.
func (s *Storage) AddAttachmentKey(ctx context.Context, ideaID uuid.UUID, key string) (*models.Idea, error) {
	const op = "storage/postgres/ideas/AddAttachmentKey"

	q := `
	UPDATE ideas AS i SET attachment_keys = array_append(attachment_keys, $2), updated_at = now()
	WHERE i.id = $1 AND NOT i.is_removed
	RETURNING i.id, i.title, i.description, i.tags, i.author_id, i.author_name, i.status,
	i.votes_up, i.votes_down, i.comments_count, i.attachment_keys, i.is_removed,
	i.created_at, i.updated_at, ''
	`

	result, err := scanIdea(s.db.QueryRow(ctx, q, ideaID, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
