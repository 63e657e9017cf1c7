// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"sort"

	"github.com/pdiddy/collab-matcher/pkg/types"
)

// Ranking is the ordered candidate list for one opportunity.
type Ranking struct {
	// Candidates are in descending score order.
	Candidates []types.ScoredFaculty

	// Fallback is true when too few faculty had a nonzero score and the
	// candidates were taken from the full roster regardless of score.
	Fallback bool
}

// Profiles returns the candidate profiles in ranked order.
func (r Ranking) Profiles() []types.FacultyProfile {
	out := make([]types.FacultyProfile, len(r.Candidates))
	for i, c := range r.Candidates {
		out[i] = c.Faculty
	}
	return out
}

// Rank scores every roster profile against o and orders them by descending
// score; ties keep roster order. Profiles with a nonzero score are kept, up to
// topN. When that leaves fewer than threshold candidates, the score filter is
// dropped and the first min(topN, roster size) profiles of the full ordering
// are returned instead, so there are enough people to form teams.
func (r *Roster) Rank(o types.Opportunity, topN, threshold int) Ranking {
	if topN < 0 {
		topN = 0
	}

	scored := r.Scores(o)
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	top := make([]types.ScoredFaculty, 0, min(topN, len(scored)))
	for _, s := range scored {
		if len(top) == topN {
			break
		}
		if s.Score > 0 {
			top = append(top, s)
		}
	}
	if len(top) >= threshold {
		return Ranking{Candidates: top}
	}

	n := min(topN, len(scored))
	return Ranking{Candidates: scored[:n], Fallback: true}
}
