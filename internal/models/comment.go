package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment — внутренняя доменная модель комментария.
// Комментарий неизменяем после создания; единственная мутация —
// мягкое удаление через модерацию (IsRemoved), при котором запись
// сохраняется для аудита, но исчезает из выдач.
type Comment struct {
	ID         uuid.UUID
	IdeaID     uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string
	Content    string
	IsRemoved  bool
	CreatedAt  time.Time
}
