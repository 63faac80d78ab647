package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
	"github.com/pribylovaa/civic-engagement-service/internal/pkg/log"
	"github.com/pribylovaa/civic-engagement-service/internal/storage"
)

// SyncUserInput — ленивое заведение/обновление профиля из токена.
type SyncUserInput struct {
	UserID   uuid.UUID
	Username string
	Email    string
}

// ChangeUserRoleInput — смена роли аккаунта администратором.
type ChangeUserRoleInput struct {
	AdminID uuid.UUID
	UserID  uuid.UUID
	Role    models.Role
}

// SetUserBanInput — установка/снятие бана администратором.
type SetUserBanInput struct {
	AdminID uuid.UUID
	UserID  uuid.UUID
	Banned  bool
}

// Profile — профиль пользователя с производной активностью.
// Бейджи не хранятся: выводятся из счётчиков на каждое чтение.
type Profile struct {
	User   *models.User
	Stats  models.ActivityStats
	Badges []string
}

// SyncUser заводит профиль при первом обращении либо обновляет
// username/email существующего (identity-провайдер — источник истины
// по этим полям). Роль и бан при повторном входе не трогаются.
func (s *Service) SyncUser(ctx context.Context, in SyncUserInput) (*Profile, error) {
	const op = "service/users/SyncUser"

	lg := log.From(ctx).With("op", op, "user_id", in.UserID.String())

	if in.UserID == uuid.Nil {
		lg.Warn("unauthenticated request")
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" {
		lg.Warn("invalid argument: empty username")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.ledger.UpsertUser(ctx, &models.User{
		ID:       in.UserID,
		Username: in.Username,
		Email:    strings.TrimSpace(in.Email),
	})
	if err != nil {
		lg.Error("storage error on UpsertUser", "err", err)
		return nil, mapStorageErr(op, err)
	}

	return s.profile(ctx, op, user)
}

// UserProfile возвращает профиль пользователя с бейджами и активностью.
func (s *Service) UserProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	const op = "service/users/UserProfile"

	lg := log.From(ctx).With("op", op, "user_id", userID.String())

	if userID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.ledger.UserByID(ctx, userID)
	if err != nil {
		lg.Warn("user lookup failed", "err", err)
		return nil, mapStorageErr(op, err)
	}

	return s.profile(ctx, op, user)
}

func (s *Service) profile(ctx context.Context, op string, user *models.User) (*Profile, error) {
	stats, err := s.ledger.UserActivity(ctx, user.ID)
	if err != nil {
		log.From(ctx).Error("storage error on UserActivity", "op", op, "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return &Profile{
		User:   user,
		Stats:  stats,
		Badges: models.EvaluateBadges(stats),
	}, nil
}

// PlatformStats возвращает публичные агрегаты платформы.
func (s *Service) PlatformStats(ctx context.Context) (storage.PlatformStats, error) {
	const op = "service/users/PlatformStats"

	stats, err := s.ledger.Stats(ctx)
	if err != nil {
		log.From(ctx).Error("storage error on Stats", "op", op, "err", err)
		return storage.PlatformStats{}, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return stats, nil
}

// AdminStats возвращает агрегаты админ-панели. Только для администраторов.
func (s *Service) AdminStats(ctx context.Context, adminID uuid.UUID) (storage.AdminStats, error) {
	const op = "service/users/AdminStats"

	lg := log.From(ctx).With("op", op, "admin_id", adminID.String())

	if err := s.requireAdmin(ctx, adminID); err != nil {
		lg.Warn("admin check failed", "err", err)
		return storage.AdminStats{}, fmt.Errorf("%s: %w", op, err)
	}

	stats, err := s.ledger.StatsForAdmin(ctx)
	if err != nil {
		lg.Error("storage error on StatsForAdmin", "err", err)
		return storage.AdminStats{}, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return stats, nil
}

// AdminUsers возвращает все аккаунты, новые первыми. Только для администраторов.
func (s *Service) AdminUsers(ctx context.Context, adminID uuid.UUID) ([]models.User, error) {
	const op = "service/users/AdminUsers"

	lg := log.From(ctx).With("op", op, "admin_id", adminID.String())

	if err := s.requireAdmin(ctx, adminID); err != nil {
		lg.Warn("admin check failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	users, err := s.ledger.ListUsers(ctx)
	if err != nil {
		lg.Error("storage error on ListUsers", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return users, nil
}

// ChangeUserRole меняет роль аккаунта. Только для администраторов;
// собственную роль администратор менять не может.
//
// Побочный эффект: владелец аккаунта получает уведомление о новой роли.
func (s *Service) ChangeUserRole(ctx context.Context, in ChangeUserRoleInput) (*models.User, error) {
	const op = "service/users/ChangeUserRole"

	lg := log.From(ctx).With(
		"op", op,
		"admin_id", in.AdminID.String(),
		"user_id", in.UserID.String(),
		"role", in.Role.String(),
	)

	if in.UserID == uuid.Nil || !in.Role.Valid() {
		lg.Warn("invalid argument")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.requireAdmin(ctx, in.AdminID); err != nil {
		lg.Warn("admin check failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if in.UserID == in.AdminID {
		lg.Warn("invalid argument: admin cannot change own role")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.ledger.UpdateRole(ctx, in.UserID, in.Role)
	if err != nil {
		lg.Warn("update role failed", "err", err)
		return nil, mapStorageErr(op, err)
	}

	s.notify(ctx, user.ID,
		"Votre rôle a été mis à jour",
		fmt.Sprintf("Un administrateur vous a attribué le rôle « %s ».", user.Role.String()),
		"",
	)

	return user, nil
}

// SetUserBan выставляет флаг бана. Только для администраторов;
// собственный аккаунт банить нельзя.
func (s *Service) SetUserBan(ctx context.Context, in SetUserBanInput) (*models.User, error) {
	const op = "service/users/SetUserBan"

	lg := log.From(ctx).With(
		"op", op,
		"admin_id", in.AdminID.String(),
		"user_id", in.UserID.String(),
		"banned", in.Banned,
	)

	if in.UserID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.requireAdmin(ctx, in.AdminID); err != nil {
		lg.Warn("admin check failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if in.UserID == in.AdminID {
		lg.Warn("invalid argument: admin cannot ban own account")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.ledger.SetBanned(ctx, in.UserID, in.Banned)
	if err != nil {
		lg.Warn("set banned failed", "err", err)
		return nil, mapStorageErr(op, err)
	}

	return user, nil
}

// requireAdmin проверяет, что актор существует, не забанен и имеет
// административную роль.
func (s *Service) requireAdmin(ctx context.Context, adminID uuid.UUID) error {
	actor, err := s.requireActor(ctx, adminID)
	if err != nil {
		return err
	}

	if !actor.Role.IsAdmin() {
		return ErrPermissionDenied
	}

	return nil
}
