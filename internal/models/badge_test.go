package models

// Тесты вывода бейджей из счётчиков активности (badge.go).

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateBadges(t *testing.T) {
	cases := []struct {
		name  string
		stats ActivityStats
		want  []string
	}{
		{
			name:  "no activity",
			stats: ActivityStats{},
			want:  []string{},
		},
		{
			name:  "single idea",
			stats: ActivityStats{IdeasAuthored: 1},
			want:  []string{BadgeIdeaCreator},
		},
		{
			name:  "below thresholds",
			stats: ActivityStats{CommentCount: 9, VoteCount: 19},
			want:  []string{},
		},
		{
			name:  "contributor at threshold",
			stats: ActivityStats{CommentCount: 10},
			want:  []string{BadgeContributor},
		},
		{
			name:  "active voter at threshold",
			stats: ActivityStats{VoteCount: 20},
			want:  []string{BadgeActiveVoter},
		},
		{
			name:  "top contributor includes idea creator",
			stats: ActivityStats{IdeasAuthored: 10},
			want:  []string{BadgeIdeaCreator, BadgeTopContributor},
		},
		{
			name:  "community leader composite",
			stats: ActivityStats{CommentCount: 10, VoteCount: 20, IdeasAuthored: 3},
			want:  []string{BadgeContributor, BadgeActiveVoter, BadgeIdeaCreator, BadgeCommunityLeader},
		},
		{
			name:  "all badges",
			stats: ActivityStats{CommentCount: 50, VoteCount: 100, IdeasAuthored: 12},
			want: []string{
				BadgeContributor, BadgeActiveVoter, BadgeIdeaCreator,
				BadgeTopContributor, BadgeCommunityLeader,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, EvaluateBadges(tc.stats))
		})
	}
}

// Порядок результата стабилен между вызовами.
func TestEvaluateBadges_StableOrder(t *testing.T) {
	stats := ActivityStats{CommentCount: 50, VoteCount: 100, IdeasAuthored: 12}

	first := EvaluateBadges(stats)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, EvaluateBadges(stats))
	}
}
