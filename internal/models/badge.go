package models

// Ключи бейджей (совпадают с ключами клиента платформы).
const (
	BadgeContributor     = "contributor"      // 10+ комментариев
	BadgeActiveVoter     = "active_voter"     // 20+ голосов
	BadgeIdeaCreator     = "idea_creator"     // 1+ идея
	BadgeTopContributor  = "top_contributor"  // 10+ идей
	BadgeCommunityLeader = "community_leader" // составной порог активности
)

// Пороговые значения бейджей.
const (
	contributorComments = 10
	activeVoterVotes    = 20
	topContributorIdeas = 10
	leaderComments      = 10
	leaderVotes         = 20
	leaderIdeas         = 3
)

// ActivityStats — счётчики активности пользователя.
// Производные значения: считаются из таблиц комментариев/голосов/идей,
// отдельно не хранятся и напрямую не изменяются.
type ActivityStats struct {
	CommentCount  int64
	VoteCount     int64
	IdeasAuthored int64
}

// EvaluateBadges выводит набор бейджей из счётчиков активности.
// Функция чистая и детерминированная: пересчитывается на каждое чтение
// профиля, порядок результата стабилен.
func EvaluateBadges(s ActivityStats) []string {
	badges := make([]string, 0, 5)

	if s.CommentCount >= contributorComments {
		badges = append(badges, BadgeContributor)
	}

	if s.VoteCount >= activeVoterVotes {
		badges = append(badges, BadgeActiveVoter)
	}

	if s.IdeasAuthored >= 1 {
		badges = append(badges, BadgeIdeaCreator)
	}

	if s.IdeasAuthored >= topContributorIdeas {
		badges = append(badges, BadgeTopContributor)
	}

	if s.CommentCount >= leaderComments && s.VoteCount >= leaderVotes && s.IdeasAuthored >= leaderIdeas {
		badges = append(badges, BadgeCommunityLeader)
	}

	return badges
}
