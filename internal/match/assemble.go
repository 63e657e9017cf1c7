// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/collab-matcher/internal/fields"
	"github.com/pdiddy/collab-matcher/pkg/types"
)

// Fixed advisory text attached to every record of a given team type.
const (
	UntitledOpportunity = "Untitled opportunity"

	PairLowOverlapRationale = "Low lexical overlap; plausible conceptual fit based on general scope."
	PairSpecificAim         = "Define a focused pilot that ties the opportunity deliverable to an existing departmental strength and a measurable endpoint."
	PairNextSteps           = "Confirm eligibility and scope, assign a lead, draft a one page concept, and map resources and preliminary data needs."

	TeamRationale    = "Team spans complementary expertise aligned to the opportunity scope based on summary keyword overlap."
	TeamSpecificAim  = "Propose an integrated workflow where each member owns a module contributing to one coherent milestone driven plan."
	TeamNextSteps    = "Hold a 30 minute scoping call, align roles to milestones, identify data gaps, and draft an outline plus budget sketch."
	ConfidenceMedium = "medium"
)

// teamNameMembers is how many member names a team name spells out.
const teamNameMembers = 2

// Assemble builds the output records for one opportunity: every pair first,
// then every team, each in the order given.
func Assemble(dept string, o types.Opportunity, pairs []types.Pair, teams []types.Team, termCap int) []types.TeamRecord {
	title := fields.Title(o)
	if title == "" {
		title = UntitledOpportunity
	}
	number := fields.Number(o)
	id := fields.ID(o)

	records := make([]types.TeamRecord, 0, len(pairs)+len(teams))
	for _, p := range pairs {
		records = append(records, types.TeamRecord{
			TeamType:             types.TypePair,
			TeamName:             fmt.Sprintf("%s pair: %s + %s", dept, p.A.Name, p.B.Name),
			OpportunityID:        id,
			OpportunityNumber:    number,
			OpportunityTitle:     title,
			Members:              []string{p.A.Name, p.B.Name},
			MemberIDs:            []string{p.A.ID, p.B.ID},
			Rationale:            pairRationale(p, o, termCap),
			SuggestedSpecificAim: PairSpecificAim,
			NextSteps:            PairNextSteps,
			Confidence:           ConfidenceMedium,
		})
	}

	for _, team := range teams {
		names := make([]string, len(team))
		ids := make([]string, len(team))
		for i, m := range team {
			names[i] = m.Name
			ids[i] = m.ID
		}
		records = append(records, types.TeamRecord{
			TeamType:             types.TypeTeam,
			TeamName:             teamName(dept, names),
			OpportunityID:        id,
			OpportunityNumber:    number,
			OpportunityTitle:     title,
			Members:              names,
			MemberIDs:            ids,
			Rationale:            TeamRationale,
			SuggestedSpecificAim: TeamSpecificAim,
			NextSteps:            TeamNextSteps,
			Confidence:           ConfidenceMedium,
		})
	}
	return records
}

// pairRationale lists the terms either member shares with the opportunity.
func pairRationale(p types.Pair, o types.Opportunity, termCap int) string {
	terms := mergeTerms(OverlapTerms(p.A, o, termCap), OverlapTerms(p.B, o, termCap))
	if len(terms) == 0 {
		return PairLowOverlapRationale
	}
	return "Shared terms: " + strings.Join(terms, ", ")
}

// mergeTerms returns the sorted union of a and b.
func mergeTerms(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	merged := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, t := range list {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			merged = append(merged, t)
		}
	}
	sort.Strings(merged)
	return merged
}

func teamName(dept string, names []string) string {
	shown := names
	if len(shown) > teamNameMembers {
		shown = shown[:teamNameMembers]
	}
	name := fmt.Sprintf("%s team: %s", dept, strings.Join(shown, ", "))
	if len(names) > teamNameMembers {
		name += " et al"
	}
	return name
}
