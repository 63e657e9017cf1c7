// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"github.com/pdiddy/collab-matcher/internal/fields"
	"github.com/pdiddy/collab-matcher/internal/logger"
	"github.com/pdiddy/collab-matcher/pkg/types"
)

// Result holds the records produced by a run and the counts reported on the console.
type Result struct {
	Records           []types.TeamRecord
	FacultyCount      int
	OpportunitiesUsed int
}

// Run selects the most recent opportunities, ranks the faculty against each,
// and assembles pair and team records. Records are grouped by opportunity in
// selection order, pairs before teams.
func Run(cfg types.MatchConfig, faculty []types.FacultyProfile, opps []types.Opportunity, log logger.Logger) Result {
	selected := SelectOpportunities(opps, cfg.MaxOpportunities)
	roster := NewRoster(faculty)

	records := make([]types.TeamRecord, 0)
	for _, o := range selected {
		ranking := roster.Rank(o, cfg.TopN, cfg.FallbackThreshold)
		ranked := ranking.Profiles()

		pairs := PickPairs(ranked, cfg.PairCount)
		teams := BuildTeams(ranked, cfg.TeamCount)

		log.Debug().
			Str("opportunity", fields.Title(o)).
			Int("candidates", len(ranked)).
			Bool("fallback", ranking.Fallback).
			Int("pairs", len(pairs)).
			Int("teams", len(teams)).
			Msg("matched opportunity")

		records = append(records, Assemble(cfg.Department, o, pairs, teams, cfg.OverlapTermCap)...)
	}

	return Result{
		Records:           records,
		FacultyCount:      roster.Len(),
		OpportunitiesUsed: len(selected),
	}
}
