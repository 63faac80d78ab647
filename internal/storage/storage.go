// storage содержит контракты слоя хранилищ engagement-сервиса.
//
// users.go / ideas.go / comments.go / polls.go / reports.go — реестр
// (PostgreSQL): аккаунты, идеи, голоса, комментарии, опросы, жалобы.
// notifications.go — лента уведомлений (MongoDB).
// attachments.go — загрузка вложений идей в S3/MinIO (presigned URL).
package storage

import "errors"

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — конфликт уникальности/дубликат.
	ErrAlreadyExists = errors.New("already exists")
	// ErrAlreadyVoted — пользователь уже голосовал в опросе;
	// запись в poll_votes неизменяема (ни смены варианта, ни отзыва).
	ErrAlreadyVoted = errors.New("already voted")
	// ErrPollClosed — опрос закрыт (ends_at в прошлом).
	ErrPollClosed = errors.New("poll closed")
	// ErrInvalidOption — вариант не объявлен в опросе.
	ErrInvalidOption = errors.New("invalid option")
	// ErrAlreadyResolved — жалоба уже в терминальном статусе;
	// статус монотонный, повторная резолюция отклоняется.
	ErrAlreadyResolved = errors.New("already resolved")
	// ErrNotOwner — сущность принадлежит другому пользователю.
	ErrNotOwner = errors.New("not owner")
	// ErrInvalidArgument — некорректные параметры на уровне хранилища
	// (например, недопустимый content-type вложения).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFoundAttachment — объект вложения не найден в бакете.
	ErrNotFoundAttachment = errors.New("attachment not found")
)
