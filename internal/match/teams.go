// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import "github.com/pdiddy/collab-matcher/pkg/types"

const (
	minTeamSize = 3
	// teamSizeCycle is how many sizes the builder rotates through: 3, 4, 5.
	teamSizeCycle = 3
)

// BuildTeams cuts contiguous teams out of ranked. Team t has 3 + t%3 members
// (3, 4, 5, 3, ...). After each team the cursor moves forward by
// max(2, size-1), so consecutive teams share one member. Building stops after
// k teams, or when fewer than three candidates remain at the cursor.
func BuildTeams(ranked []types.FacultyProfile, k int) []types.Team {
	teams := make([]types.Team, 0)
	cursor := 0

	for len(teams) < k && cursor < len(ranked) {
		size := minTeamSize + len(teams)%teamSizeCycle
		end := min(cursor+size, len(ranked))
		if end-cursor < minTeamSize {
			break
		}

		team := make(types.Team, end-cursor)
		copy(team, ranked[cursor:end])
		teams = append(teams, team)

		cursor += max(2, size-1)
	}
	return teams
}
