package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
	"github.com/pribylovaa/civic-engagement-service/internal/storage"
)

// userColumns — единый список колонок таблицы users,
// используемый в SELECT/RETURNING, чтобы гарантировать одинаковый порядок сканирования.
const userColumns = `
id, username, email, role, is_banned, created_at, updated_at
`

// scanUser сканирует одну строку аккаунта в доменную модель
// с корректным кастом SMALLINT -> models.Role.
func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	var role int16

	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&role,
		&user.IsBanned,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}

	user.Role = models.Role(role)

	return &user, nil
}

// UpsertUser создаёт запись аккаунта либо обновляет username/email существующей.
// Роль и флаг бана при апдейте не трогаются — они меняются только админскими операциями.
// Ошибки: storage.ErrAlreadyExists при конфликте уникальности email.
func (s *Storage) UpsertUser(ctx context.Context, user *models.User) (*models.User, error) {
	const op = "storage/postgres/users/UpsertUser"

	q := `
	INSERT INTO users (id, username, email, role, is_banned)
	VALUES ($1, $2, $3, $4, FALSE)
	ON CONFLICT (id) DO UPDATE
	SET username = EXCLUDED.username,
	    email = EXCLUDED.email,
	    updated_at = now()
	RETURNING
	` + userColumns

	row := s.db.QueryRow(ctx, q,
		user.ID,
		user.Username,
		user.Email,
		int16(user.Role),
	)

	result, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// UserByID возвращает аккаунт по id.
// Ошибки: storage.ErrNotFound, либо ошибка выполнения запроса.
func (s *Storage) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "storage/postgres/users/UserByID"

	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	result, err := scanUser(s.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ListUsers возвращает все аккаунты, новые первыми.
func (s *Storage) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "storage/postgres/users/ListUsers"

	q := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

// UpdateRole меняет роль аккаунта.
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) UpdateRole(ctx context.Context, id uuid.UUID, role models.Role) (*models.User, error) {
	const op = "storage/postgres/users/UpdateRole"

	q := `UPDATE users SET role = $2, updated_at = now() WHERE id = $1 RETURNING ` + userColumns

	result, err := scanUser(s.db.QueryRow(ctx, q, id, int16(role)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// SetBanned выставляет флаг бана.
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) SetBanned(ctx context.Context, id uuid.UUID, banned bool) (*models.User, error) {
	const op = "storage/postgres/users/SetBanned"

	q := `UPDATE users SET is_banned = $2, updated_at = now() WHERE id = $1 RETURNING ` + userColumns

	result, err := scanUser(s.db.QueryRow(ctx, q, id, banned))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// UserActivity возвращает счётчики активности пользователя.
// Счётчики всегда считаются из исходных таблиц — отдельного состояния нет.
func (s *Storage) UserActivity(ctx context.Context, id uuid.UUID) (models.ActivityStats, error) {
	const op = "storage/postgres/users/UserActivity"

	q := `
	SELECT
		(SELECT COUNT(*) FROM comments WHERE author_id = $1 AND NOT is_removed),
		(SELECT COUNT(*) FROM idea_votes WHERE user_id = $1)
			+ (SELECT COUNT(*) FROM poll_votes WHERE user_id = $1),
		(SELECT COUNT(*) FROM ideas WHERE author_id = $1 AND NOT is_removed)
	`

	var stats models.ActivityStats
	if err := s.db.QueryRow(ctx, q, id).Scan(
		&stats.CommentCount,
		&stats.VoteCount,
		&stats.IdeasAuthored,
	); err != nil {
		return models.ActivityStats{}, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}

// Stats возвращает публичные агрегаты платформы.
func (s *Storage) Stats(ctx context.Context) (storage.PlatformStats, error) {
	const op = "storage/postgres/users/Stats"

	q := `
	SELECT
		(SELECT COUNT(*) FROM users),
		(SELECT COUNT(*) FROM ideas WHERE NOT is_removed),
		(SELECT COUNT(*) FROM idea_votes),
		(SELECT COUNT(*) FROM comments WHERE NOT is_removed)
	`

	var stats storage.PlatformStats
	if err := s.db.QueryRow(ctx, q).Scan(
		&stats.Members,
		&stats.Ideas,
		&stats.Votes,
		&stats.Comments,
	); err != nil {
		return storage.PlatformStats{}, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}

// StatsForAdmin возвращает агрегаты для админ-панели.
func (s *Storage) StatsForAdmin(ctx context.Context) (storage.AdminStats, error) {
	const op = "storage/postgres/users/StatsForAdmin"

	q := `
	SELECT
		(SELECT COUNT(*) FROM users),
		(SELECT COUNT(*) FROM ideas WHERE NOT is_removed),
		(SELECT COUNT(*) FROM comments WHERE NOT is_removed),
		(SELECT COUNT(*) FROM idea_votes) + (SELECT COUNT(*) FROM poll_votes),
		(SELECT COUNT(*) FROM reports),
		(SELECT COUNT(*) FROM reports WHERE status = $1)
	`

	var stats storage.AdminStats
	if err := s.db.QueryRow(ctx, q, int16(models.ReportStatusPending)).Scan(
		&stats.TotalUsers,
		&stats.TotalIdeas,
		&stats.TotalComments,
		&stats.TotalVotes,
		&stats.TotalReports,
		&stats.PendingCount,
	); err != nil {
		return storage.AdminStats{}, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}
