package models

import (
	"time"

	"github.com/google/uuid"
)

// IdeaStatus — статус жизненного цикла идеи. Хранится как SMALLINT.
type IdeaStatus int16

const (
	IdeaStatusDiscussion IdeaStatus = iota
	IdeaStatusApproved
	IdeaStatusInProgress
	IdeaStatusRejected
)

// Valid проверяет, что значение входит в допустимый диапазон.
func (s IdeaStatus) Valid() bool {
	return s >= IdeaStatusDiscussion && s <= IdeaStatusRejected
}

// String возвращает каноническое строковое представление статуса.
func (s IdeaStatus) String() string {
	switch s {
	case IdeaStatusApproved:
		return "approved"
	case IdeaStatusInProgress:
		return "in_progress"
	case IdeaStatusRejected:
		return "rejected"
	default:
		return "discussion"
	}
}

// ParseIdeaStatus разбирает строковое представление статуса.
func ParseIdeaStatus(s string) (IdeaStatus, bool) {
	switch s {
	case "discussion":
		return IdeaStatusDiscussion, true
	case "approved":
		return IdeaStatusApproved, true
	case "in_progress":
		return IdeaStatusInProgress, true
	case "rejected":
		return IdeaStatusRejected, true
	default:
		return IdeaStatusDiscussion, false
	}
}

// Idea — внутренняя доменная модель идеи.
// Важно:
//   - VotesUp/VotesDown — производные счётчики: всегда пересчитываются
//     из таблицы idea_votes в той же транзакции, что и изменение голоса;
//   - CommentsCount — производный счётчик комментариев;
//   - UserVote — направление голоса запрашивающего пользователя
//     ("" — если не голосовал или запрос анонимный);
//   - IsRemoved — мягкое удаление через модерацию: идея исчезает из
//     выдач, но запись сохраняется для аудита жалоб.
type Idea struct {
	ID             uuid.UUID
	Title          string
	Description    string
	Tags           []string
	AuthorID       uuid.UUID
	AuthorName     string
	Status         IdeaStatus
	VotesUp        int64
	VotesDown      int64
	CommentsCount  int64
	UserVote       VoteDirection
	AttachmentKeys []string
	IsRemoved      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IdeaSort — порядок сортировки списка идей.
type IdeaSort string

const (
	// IdeaSortRecent — сначала новые (created_at DESC).
	IdeaSortRecent IdeaSort = "recent"
	// IdeaSortTop — по рейтингу votes_up - votes_down (DESC).
	IdeaSortTop IdeaSort = "top"
)

// IdeaFilter — параметры выборки списка идей.
type IdeaFilter struct {
	Sort   IdeaSort
	Search string
	Tag    string
}
