package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
	"github.com/pribylovaa/civic-engagement-service/internal/storage"
)

// queryer — общий интерфейс pgxpool.Pool и pgx.Tx, чтобы переиспользовать
// загрузку опроса и вне, и внутри транзакции.
type queryer interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// loadPoll читает опрос, пересчитывает счётчики из poll_votes
// и подставляет выбор viewer (uuid.Nil — анонимный запрос).
func loadPoll(ctx context.Context, q queryer, id, viewer uuid.UUID) (*models.Poll, error) {
	var poll models.Poll

	err := q.QueryRow(ctx, `
		SELECT p.id, p.title, p.description, p.options, p.created_by, p.ends_at, p.created_at,
		       COALESCE(v.option, '')
		FROM polls p
		LEFT JOIN poll_votes v ON v.poll_id = p.id AND v.user_id = $2
		WHERE p.id = $1`,
		id, viewer,
	).Scan(
		&poll.ID,
		&poll.Title,
		&poll.Description,
		&poll.Options,
		&poll.CreatedBy,
		&poll.EndsAt,
		&poll.CreatedAt,
		&poll.UserVote,
	)
	if err != nil {
		return nil, err
	}

	// Счётчики всегда пересчитываются из таблицы голосов;
	// варианты без голосов получают явный ноль.
	poll.Votes = make(map[string]int64, len(poll.Options))
	for _, opt := range poll.Options {
		poll.Votes[opt] = 0
	}

	rows, err := q.Query(ctx,
		`SELECT option, COUNT(*) FROM poll_votes WHERE poll_id = $1 GROUP BY option`,
		id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var opt string
		var n int64
		if err := rows.Scan(&opt, &n); err != nil {
			return nil, err
		}
		poll.Votes[opt] = n
	}

	return &poll, rows.Err()
}

// CreatePoll вставляет новый опрос.
func (s *Storage) CreatePoll(ctx context.Context, poll *models.Poll) (*models.Poll, error) {
	const op = "storage/postgres/polls/CreatePoll"

	var id uuid.UUID
	err := s.db.QueryRow(ctx, `
		INSERT INTO polls (id, title, description, options, created_by, ends_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		uuid.New(),
		poll.Title,
		poll.Description,
		poll.Options,
		poll.CreatedBy,
		poll.EndsAt,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result, err := loadPoll(ctx, s.db, id, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// PollByID возвращает опрос по id.
// Ошибки: storage.ErrNotFound, либо ошибка выполнения запроса.
func (s *Storage) PollByID(ctx context.Context, id, viewer uuid.UUID) (*models.Poll, error) {
	const op = "storage/postgres/polls/PollByID"

	result, err := loadPoll(ctx, s.db, id, viewer)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ListPolls возвращает все опросы, новые первыми.
func (s *Storage) ListPolls(ctx context.Context, viewer uuid.UUID) ([]models.Poll, error) {
	const op = "storage/postgres/polls/ListPolls"

	rows, err := s.db.Query(ctx,
		`SELECT id FROM polls ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	polls := make([]models.Poll, 0, len(ids))
	for _, id := range ids {
		poll, err := loadPoll(ctx, s.db, id, viewer)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		polls = append(polls, *poll)
	}

	return polls, nil
}

// CastVote атомарно фиксирует одноразовый голос пользователя.
// Порядок проверок внутри транзакции: закрытость опроса -> повторный
// голос -> валидность варианта; уникальный PK (poll_id, user_id) —
// страховка от гонки двух одновременных первых голосов.
func (s *Storage) CastVote(ctx context.Context, pollID, userID uuid.UUID, option string, now time.Time) (*models.Poll, error) {
	const op = "storage/postgres/polls/CastVote"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var options []string
	var endsAt *time.Time
	err = tx.QueryRow(ctx,
		`SELECT options, ends_at FROM polls WHERE id = $1 FOR UPDATE`,
		pollID,
	).Scan(&options, &endsAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if endsAt != nil && now.After(*endsAt) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrPollClosed)
	}

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM poll_votes WHERE poll_id = $1 AND user_id = $2)`,
		pollID, userID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyVoted)
	}

	valid := false
	for _, opt := range options {
		if opt == option {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidOption)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO poll_votes (poll_id, user_id, option) VALUES ($1, $2, $3)`,
		pollID, userID, option)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyVoted)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result, err := loadPoll(ctx, tx, pollID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
