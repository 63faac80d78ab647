package service

// Тесты операций над лентой уведомлений (notifications.go).

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
	"github.com/pribylovaa/civic-engagement-service/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestService_Notifications_Unauthenticated(t *testing.T) {
	s, _, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.Notifications(context.Background(), uuid.Nil)
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = s.UnreadCount(context.Background(), uuid.Nil)
	require.ErrorIs(t, err, ErrUnauthenticated)

	err = s.MarkNotificationRead(context.Background(), "abc", uuid.Nil)
	require.ErrorIs(t, err, ErrUnauthenticated)

	err = s.MarkAllNotificationsRead(context.Background(), uuid.Nil)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestService_Notifications_OK(t *testing.T) {
	s, _, mn, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	uid := uuid.New()
	want := []models.Notification{
		{ID: "n2", UserID: uid, Title: "Nouveau vote sur votre idée"},
		{ID: "n1", UserID: uid, Title: "Nouveau commentaire sur votre idée", IsRead: true},
	}
	mn.EXPECT().ListByUser(gomock.Any(), uid).Return(want, nil)

	got, err := s.Notifications(context.Background(), uid)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestService_UnreadCount_OK(t *testing.T) {
	s, _, mn, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	uid := uuid.New()
	mn.EXPECT().UnreadCount(gomock.Any(), uid).Return(int64(3), nil)

	count, err := s.UnreadCount(context.Background(), uid)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)
}

func TestService_MarkNotificationRead_EmptyID(t *testing.T) {
	s, _, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	err := s.MarkNotificationRead(context.Background(), "   ", uuid.New())
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Чужое уведомление -> ErrPermissionDenied, отсутствующее -> ErrNotFound.
func TestService_MarkNotificationRead_ErrorMapping(t *testing.T) {
	s, _, mn, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	uid := uuid.New()

	mn.EXPECT().MarkRead(gomock.Any(), "foreign", uid).Return(storage.ErrNotOwner)
	err := s.MarkNotificationRead(context.Background(), "foreign", uid)
	require.ErrorIs(t, err, ErrPermissionDenied)

	mn.EXPECT().MarkRead(gomock.Any(), "missing", uid).Return(storage.ErrNotFound)
	err = s.MarkNotificationRead(context.Background(), "missing", uid)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_MarkAllNotificationsRead_OK(t *testing.T) {
	s, _, mn, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	uid := uuid.New()
	mn.EXPECT().MarkAllRead(gomock.Any(), uid).Return(nil)

	require.NoError(t, s.MarkAllNotificationsRead(context.Background(), uid))
}
