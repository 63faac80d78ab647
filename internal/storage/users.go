package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
)

// AdminStats — агрегаты для админ-панели.
type AdminStats struct {
	TotalUsers    int64
	TotalIdeas    int64
	TotalComments int64
	TotalVotes    int64
	TotalReports  int64
	PendingCount  int64
}

// PlatformStats — публичные агрегаты платформы.
type PlatformStats struct {
	Members  int64
	Ideas    int64
	Votes    int64
	Comments int64
}

// Users — контракт репозитория аккаунтов.
type Users interface {
	// UpsertUser создаёт запись аккаунта либо обновляет username/email
	// существующей (ленивое заведение профиля при первом обращении).
	UpsertUser(ctx context.Context, user *models.User) (*models.User, error)

	// UserByID возвращает аккаунт по id. Если записи нет — ErrNotFound.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// ListUsers возвращает все аккаунты, новые первыми.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateRole меняет роль аккаунта. Если записи нет — ErrNotFound.
	UpdateRole(ctx context.Context, id uuid.UUID, role models.Role) (*models.User, error)

	// SetBanned выставляет флаг бана. Если записи нет — ErrNotFound.
	SetBanned(ctx context.Context, id uuid.UUID, banned bool) (*models.User, error)

	// UserActivity возвращает счётчики активности пользователя.
	// Значения всегда считаются из исходных таблиц (комментарии,
	// голоса по идеям и опросам, авторство идей) — отдельного
	// состояния счётчиков нет.
	UserActivity(ctx context.Context, id uuid.UUID) (models.ActivityStats, error)

	// Stats возвращает публичные агрегаты платформы.
	Stats(ctx context.Context) (PlatformStats, error)

	// StatsForAdmin возвращает агрегаты для админ-панели.
	StatsForAdmin(ctx context.Context) (AdminStats, error)
}
