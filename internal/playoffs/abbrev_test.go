package playoffs

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamAbbreviation(t *testing.T) {
	tests := []struct {
		name string
		team string
		want string
	}{
		{name: "known team", team: "Kansas City Chiefs", want: "KC"},
		{name: "two letter code", team: "Green Bay Packers", want: "GB"},
		{name: "unknown falls back to prefix", team: "Portland Pioneers", want: "POR"},
		{name: "short unknown name", team: "Ab", want: "AB"},
		{name: "empty name", team: "", want: "UNK"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TeamAbbreviation(tc.team))
		})
	}
}

func TestKnownTeams(t *testing.T) {
	teams := KnownTeams()
	require.Len(t, teams, 32)

	sorted := sort.SliceIsSorted(teams, func(i, j int) bool {
		return teams[i].Team < teams[j].Team
	})
	assert.True(t, sorted)

	for _, info := range teams {
		assert.Equal(t, info.Abbreviation, TeamAbbreviation(info.Team))
	}
}
