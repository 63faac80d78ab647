package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
)

// Reports — контракт репозитория жалоб.
type Reports interface {
	// CreateReport создаёт жалобу в статусе pending.
	// Контент (идея/комментарий) проверяется на существование в той же
	// транзакции; если его нет — ErrNotFound. Дубликаты жалоб допустимы.
	CreateReport(ctx context.Context, report *models.Report) (*models.Report, error)

	// ListReports возвращает жалобы, новые первыми.
	// status == nil — без фильтра по статусу.
	ListReports(ctx context.Context, status *models.ReportStatus) ([]models.Report, error)

	// ResolveReport атомарно переводит жалобу из pending в терминальный
	// статус (resolved при заданном action, иначе reviewed), записывает
	// резолюцию, модератора и reviewed_at. Если action == delete_content,
	// в той же транзакции мягко удаляется контент жалобы.
	// Ошибки: ErrNotFound — жалобы нет; ErrAlreadyResolved — статус уже
	// терминальный (монотонность).
	ResolveReport(ctx context.Context, id, moderatorID uuid.UUID, resolution string, action models.ReportAction, now time.Time) (*models.Report, error)
}
