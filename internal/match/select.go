// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"sort"
	"time"

	"github.com/pdiddy/collab-matcher/internal/fields"
	"github.com/pdiddy/collab-matcher/pkg/types"
)

// SentinelDate stands in for opportunities with no resolvable date. It sorts
// before any real date.
var SentinelDate = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// RecencyKey returns the close date of o, else its posted date, else SentinelDate.
func RecencyKey(o types.Opportunity) time.Time {
	posted, postedOK, closed, closedOK := fields.Dates(o)
	switch {
	case closedOK:
		return closed
	case postedOK:
		return posted
	default:
		return SentinelDate
	}
}

// SelectOpportunities orders opportunities by RecencyKey, latest first, and
// returns at most max of them. Ties keep their input order.
func SelectOpportunities(opps []types.Opportunity, max int) []types.Opportunity {
	if max <= 0 {
		return []types.Opportunity{}
	}

	type keyed struct {
		key time.Time
		opp types.Opportunity
	}
	decorated := make([]keyed, len(opps))
	for i, o := range opps {
		decorated[i] = keyed{key: RecencyKey(o), opp: o}
	}
	sort.SliceStable(decorated, func(i, j int) bool {
		return decorated[i].key.After(decorated[j].key)
	})

	if len(decorated) > max {
		decorated = decorated[:max]
	}
	selected := make([]types.Opportunity, len(decorated))
	for i, d := range decorated {
		selected[i] = d.opp
	}
	return selected
}
