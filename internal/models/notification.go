package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification — внутренняя доменная модель уведомления (MongoDB).
// Важно:
//   - ID — ObjectID MongoDB, наружу конвертируется в string;
//   - создаётся только диспетчером в ответ на доменные события,
//     пользователи создавать уведомления не могут;
//   - единственная мутация — установка IsRead (read / read-all);
//   - счётчик непрочитанных не хранится: всегда живой COUNT по ленте.
type Notification struct {
	ID        string
	UserID    uuid.UUID
	Title     string
	Message   string
	Link      string
	IsRead    bool
	CreatedAt time.Time
}
