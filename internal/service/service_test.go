package service

// Общие хелперы тестов сервисного слоя.
//
// Подготовка окружения:
//   go test ./internal/service -v -race -count=1
//
// Примечание: моки сгенерированы в пакете /mocks (MockLedgerStorage,
// MockNotificationsStorage, MockAttachmentsStorage).

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/civic-engagement-service/internal/config"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
	"github.com/pribylovaa/civic-engagement-service/mocks"
)

func newServiceWithMocks(t *testing.T) (*Service, *mocks.MockLedgerStorage, *mocks.MockNotificationsStorage, *mocks.MockAttachmentsStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ml := mocks.NewMockLedgerStorage(ctrl)
	mn := mocks.NewMockNotificationsStorage(ctrl)
	ma := mocks.NewMockAttachmentsStorage(ctrl)
	s := New(ml, mn, ma, &config.Config{})
	return s, ml, mn, ma, ctrl
}

// mustUser — быстрый хелпер для сборки аккаунта.
func mustUser(id uuid.UUID, name string, role models.Role) *models.User {
	return &models.User{
		ID:        id,
		Username:  name,
		Email:     name + "@example.org",
		Role:      role,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

// expectActor — регистрирует ожидание загрузки актора (requireActor).
func expectActor(ml *mocks.MockLedgerStorage, user *models.User) {
	ml.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
}
