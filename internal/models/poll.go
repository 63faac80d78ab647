package models

import (
	"time"

	"github.com/google/uuid"
)

// Poll — внутренняя доменная модель опроса.
// Важно:
//   - Options — упорядоченный список уникальных вариантов (>= 2);
//   - Votes — производные счётчики по вариантам (пересчитываются из
//     таблицы poll_votes, порядок следует Options);
//   - запись в poll_votes неизменяема: пользователь голосует один раз,
//     без смены варианта и без отзыва (в отличие от голосов по идеям);
//   - EndsAt == nil — бессрочный опрос; закрытие — чистое сравнение
//     с текущим временем в момент чтения/голосования.
type Poll struct {
	ID          uuid.UUID
	Title       string
	Description string
	Options     []string
	Votes       map[string]int64
	UserVote    string
	CreatedBy   uuid.UUID
	EndsAt      *time.Time
	CreatedAt   time.Time
}

// Closed сообщает, закрыт ли опрос на момент now.
func (p *Poll) Closed(now time.Time) bool {
	return p.EndsAt != nil && now.After(*p.EndsAt)
}

// TotalVotes возвращает суммарное число голосов по всем вариантам.
func (p *Poll) TotalVotes() int64 {
	var total int64
	for _, n := range p.Votes {
		total += n
	}
	return total
}

// OptionPercent возвращает долю голосов варианта в процентах.
// При нулевой сумме голосов — 0 (а не деление на ноль).
func (p *Poll) OptionPercent(option string) float64 {
	total := p.TotalVotes()
	if total == 0 {
		return 0
	}
	return float64(p.Votes[option]) / float64(total) * 100
}

// HasOption проверяет, объявлен ли вариант в опросе.
func (p *Poll) HasOption(option string) bool {
	for _, o := range p.Options {
		if o == option {
			return true
		}
	}
	return false
}
