package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UploadInfo — параметры presigned-загрузки вложения.
type UploadInfo struct {
	UploadURL      string
	AttachmentKey  string
	Expires        time.Duration
	RequiredHeader map[string]string
}

// Attachments — контракт загрузки вложений идей в S3/MinIO.
type Attachments interface {
	// AttachmentUploadURL генерирует presigned PUT URL для загрузки
	// вложения идеи. Ключ имеет вид "ideas/<ideaID>/<uuid>.<ext>".
	// Ошибки: ErrInvalidArgument — недопустимый content-type/размер.
	AttachmentUploadURL(ctx context.Context, ideaID uuid.UUID, contentType string, contentLength int64) (*UploadInfo, error)

	// CheckAttachmentUpload подтверждает факт загрузки по ключу:
	// объект существует и удовлетворяет ограничениям размера/типа.
	// Возвращает публичный URL (пустая строка, если PublicBaseURL не задан).
	// Ошибки: ErrInvalidArgument, ErrNotFoundAttachment.
	CheckAttachmentUpload(ctx context.Context, ideaID uuid.UUID, key string) (string, error)
}

// AttachmentsStorage — верхнеуровневый интерфейс хранилища вложений.
type AttachmentsStorage interface {
	Attachments
}

// LedgerStorage — верхнеуровневый интерфейс реестра (PostgreSQL):
// аккаунты, идеи, комментарии, опросы, жалобы в одной БД,
// что позволяет каскадам модерации фиксироваться одной транзакцией.
type LedgerStorage interface {
	Users
	Ideas
	Comments
	Polls
	Reports
	Close()
}
