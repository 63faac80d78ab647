package models

import "github.com/google/uuid"

// VoteDirection — направление голоса пользователя по идее.
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
	// VoteNone — отсутствие голоса (не хранится, только в переходах).
	VoteNone VoteDirection = ""
)

// VoteAction — действие пользователя над голосом.
// Повторный клик по тому же направлению снимает голос (toggle),
// VoteRemove — явная очистка (no-op, если голоса нет).
type VoteAction string

const (
	VoteActionUp     VoteAction = "up"
	VoteActionDown   VoteAction = "down"
	VoteActionRemove VoteAction = "remove"
)

// Valid проверяет, что действие входит в допустимый набор.
func (a VoteAction) Valid() bool {
	return a == VoteActionUp || a == VoteActionDown || a == VoteActionRemove
}

// ApplyVoteTransition вычисляет новое состояние голоса (prev -> next).
// Семантика:
//   - нет голоса + up/down — голос записывается;
//   - повторное то же направление — toggle-off, голос снимается;
//   - противоположное направление — переключение;
//   - remove — очистка (идемпотентно).
//
// Функция чистая: реальное изменение счётчиков выполняет хранилище
// в одной транзакции, пересчитывая их из таблицы голосов.
func ApplyVoteTransition(prev VoteDirection, action VoteAction) VoteDirection {
	switch action {
	case VoteActionRemove:
		return VoteNone
	case VoteActionUp:
		if prev == VoteUp {
			return VoteNone
		}
		return VoteUp
	case VoteActionDown:
		if prev == VoteDown {
			return VoteNone
		}
		return VoteDown
	default:
		return prev
	}
}

// VoteResult — итог применения голоса: актуальные счётчики идеи
// и записанное направление голоса пользователя.
type VoteResult struct {
	VotesUp   int64
	VotesDown int64
	UserVote  VoteDirection
	// AuthorID — автор идеи; нужен диспетчеру уведомлений.
	AuthorID uuid.UUID
	// Recorded — true, если в результате операции записан новый голос
	// (не снятие и не no-op); только такие операции уведомляют автора.
	Recorded bool
}
