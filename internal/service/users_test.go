package service

// Тесты бизнес-операций аккаунтов (users.go).
//
// Проверяем:
//  - ленивое заведение профиля (SyncUser) и сборку бейджей;
//  - админские гейты на смену роли/бан;
//  - запрет операций над собственным аккаунтом;
//  - уведомление владельца при смене роли.

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
	"github.com/pribylovaa/civic-engagement-service/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestService_SyncUser_ValidationErrors(t *testing.T) {
	s, _, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.SyncUser(context.Background(), SyncUserInput{
		UserID:   uuid.Nil,
		Username: "alice",
	})
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = s.SyncUser(context.Background(), SyncUserInput{
		UserID:   uuid.New(),
		Username: "   ",
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_SyncUser_OK_DerivesBadges(t *testing.T) {
	s, ml, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	uid := uuid.New()
	stored := mustUser(uid, "alice", models.RoleUser)

	ml.EXPECT().
		UpsertUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) (*models.User, error) {
			require.Equal(t, uid, u.ID)
			require.Equal(t, "alice", u.Username)
			return stored, nil
		})

	ml.EXPECT().
		UserActivity(gomock.Any(), uid).
		Return(models.ActivityStats{CommentCount: 12, VoteCount: 25, IdeasAuthored: 4}, nil)

	profile, err := s.SyncUser(context.Background(), SyncUserInput{
		UserID:   uid,
		Username: " alice ",
		Email:    "alice@example.org",
	})
	require.NoError(t, err)
	require.Equal(t, stored, profile.User)
	require.Contains(t, profile.Badges, models.BadgeContributor)
	require.Contains(t, profile.Badges, models.BadgeActiveVoter)
	require.Contains(t, profile.Badges, models.BadgeIdeaCreator)
	require.Contains(t, profile.Badges, models.BadgeCommunityLeader)
	require.NotContains(t, profile.Badges, models.BadgeTopContributor)
}

func TestService_UserProfile_NotFound(t *testing.T) {
	s, ml, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	uid := uuid.New()
	ml.EXPECT().UserByID(gomock.Any(), uid).Return(nil, storage.ErrNotFound)

	_, err := s.UserProfile(context.Background(), uid)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_AdminStats_RequiresAdmin(t *testing.T) {
	s, ml, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mod := mustUser(uuid.New(), "mod", models.RoleModerator)
	expectActor(ml, mod)

	_, err := s.AdminStats(context.Background(), mod.ID)
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestService_AdminStats_OK(t *testing.T) {
	s, ml, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	admin := mustUser(uuid.New(), "root", models.RoleAdmin)
	expectActor(ml, admin)

	want := storage.AdminStats{TotalUsers: 5, TotalIdeas: 7, PendingCount: 2}
	ml.EXPECT().StatsForAdmin(gomock.Any()).Return(want, nil)

	got, err := s.AdminStats(context.Background(), admin.ID)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestService_ChangeUserRole_SelfChangeForbidden(t *testing.T) {
	s, ml, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	admin := mustUser(uuid.New(), "root", models.RoleAdmin)
	expectActor(ml, admin)

	_, err := s.ChangeUserRole(context.Background(), ChangeUserRoleInput{
		AdminID: admin.ID,
		UserID:  admin.ID,
		Role:    models.RoleUser,
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_ChangeUserRole_OK_NotifiesUser(t *testing.T) {
	s, ml, mn, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	admin := mustUser(uuid.New(), "root", models.RoleAdmin)
	expectActor(ml, admin)

	target := mustUser(uuid.New(), "bob", models.RoleModerator)
	ml.EXPECT().
		UpdateRole(gomock.Any(), target.ID, models.RoleModerator).
		Return(target, nil)

	mn.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) (*models.Notification, error) {
			require.Equal(t, target.ID, n.UserID)
			return n, nil
		})

	got, err := s.ChangeUserRole(context.Background(), ChangeUserRoleInput{
		AdminID: admin.ID,
		UserID:  target.ID,
		Role:    models.RoleModerator,
	})
	require.NoError(t, err)
	require.Equal(t, models.RoleModerator, got.Role)
}

func TestService_SetUserBan_RequiresAdmin(t *testing.T) {
	s, ml, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	actor := mustUser(uuid.New(), "alice", models.RoleUser)
	expectActor(ml, actor)

	_, err := s.SetUserBan(context.Background(), SetUserBanInput{
		AdminID: actor.ID,
		UserID:  uuid.New(),
		Banned:  true,
	})
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestService_SetUserBan_SelfBanForbidden(t *testing.T) {
	s, ml, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	admin := mustUser(uuid.New(), "root", models.RoleAdmin)
	expectActor(ml, admin)

	_, err := s.SetUserBan(context.Background(), SetUserBanInput{
		AdminID: admin.ID,
		UserID:  admin.ID,
		Banned:  true,
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_SetUserBan_OK(t *testing.T) {
	s, ml, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	admin := mustUser(uuid.New(), "root", models.RoleAdmin)
	expectActor(ml, admin)

	target := mustUser(uuid.New(), "bob", models.RoleUser)
	target.IsBanned = true
	ml.EXPECT().SetBanned(gomock.Any(), target.ID, true).Return(target, nil)

	got, err := s.SetUserBan(context.Background(), SetUserBanInput{
		AdminID: admin.ID,
		UserID:  target.ID,
		Banned:  true,
	})
	require.NoError(t, err)
	require.True(t, got.IsBanned)
}

func TestService_PlatformStats_OK(t *testing.T) {
	s, ml, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	want := storage.PlatformStats{Members: 10, Ideas: 4, Votes: 30, Comments: 12}
	ml.EXPECT().Stats(gomock.Any()).Return(want, nil)

	got, err := s.PlatformStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}
