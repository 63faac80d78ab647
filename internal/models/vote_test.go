package models

// Тесты машины переходов голоса по идее (vote.go).
//
// Проверяем:
//  - запись голоса из пустого состояния;
//  - toggle-off при повторном действии в том же направлении;
//  - переключение направления;
//  - идемпотентность remove;
//  - сценарий up -> up -> down (после снятия голос уходит в down).

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyVoteTransition(t *testing.T) {
	cases := []struct {
		name   string
		prev   VoteDirection
		action VoteAction
		want   VoteDirection
	}{
		{"none+up", VoteNone, VoteActionUp, VoteUp},
		{"none+down", VoteNone, VoteActionDown, VoteDown},
		{"up+up toggle-off", VoteUp, VoteActionUp, VoteNone},
		{"down+down toggle-off", VoteDown, VoteActionDown, VoteNone},
		{"up+down switch", VoteUp, VoteActionDown, VoteDown},
		{"down+up switch", VoteDown, VoteActionUp, VoteUp},
		{"up+remove", VoteUp, VoteActionRemove, VoteNone},
		{"down+remove", VoteDown, VoteActionRemove, VoteNone},
		{"none+remove noop", VoteNone, VoteActionRemove, VoteNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ApplyVoteTransition(tc.prev, tc.action))
		})
	}
}

// Последовательность кликов одного пользователя: up, up, down.
// После второго up голос снят, после down — записан down.
func TestApplyVoteTransition_Sequence(t *testing.T) {
	state := VoteNone

	state = ApplyVoteTransition(state, VoteActionUp)
	require.Equal(t, VoteUp, state)

	state = ApplyVoteTransition(state, VoteActionUp)
	require.Equal(t, VoteNone, state)

	state = ApplyVoteTransition(state, VoteActionDown)
	require.Equal(t, VoteDown, state)
}

func TestVoteAction_Valid(t *testing.T) {
	require.True(t, VoteActionUp.Valid())
	require.True(t, VoteActionDown.Valid())
	require.True(t, VoteActionRemove.Valid())
	require.False(t, VoteAction("").Valid())
	require.False(t, VoteAction("sideways").Valid())
}
