// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/collab-matcher/internal/logger"
	"github.com/pdiddy/collab-matcher/pkg/types"
)

func testConfig(maxOpps, topN int) types.MatchConfig {
	cfg := types.DefaultMatchConfig()
	cfg.Department = "Biology"
	cfg.MaxOpportunities = maxOpps
	cfg.TopN = topN
	return cfg
}

func TestRunDisjointVocabulariesStillProducesGroups(t *testing.T) {
	faculty := []types.FacultyProfile{
		fac("f1", "volcanology"),
		fac("f2", "linguistics"),
		fac("f3", "numismatics"),
		fac("f4", "choreography"),
		fac("f5", "cryptography"),
		fac("f6", "ornithology"),
	}
	opps := []types.Opportunity{{"title": "Quantum Materials", "synopsis": "Superconducting qubits."}}

	res := Run(testConfig(5, 10), faculty, opps, logger.Nop())
	assert.Equal(t, 6, res.FacultyCount)
	assert.Equal(t, 1, res.OpportunitiesUsed)

	var pairs, teams int
	for _, r := range res.Records {
		switch r.TeamType {
		case types.TypePair:
			pairs++
		case types.TypeTeam:
			teams++
		}
		assert.Equal(t, "medium", r.Confidence)
		assert.NotEmpty(t, r.Rationale)
	}
	assert.Equal(t, 3, pairs)
	assert.Equal(t, 2, teams)
}

func TestRunOrdersByRecencyThenPairsBeforeTeams(t *testing.T) {
	faculty := []types.FacultyProfile{
		fac("f1", "soil", "carbon"),
		fac("f2", "soil"),
		fac("f3", "carbon"),
		fac("f4", "nitrogen"),
		fac("f5", "microbial"),
		fac("f6", "cycling", "soil"),
	}
	older := types.Opportunity{"id": "older", "title": "Soil carbon", "close_date": "2024-01-01"}
	newer := types.Opportunity{"id": "newer", "title": "Soil nitrogen microbial cycling", "close_date": "2025-03-01"}
	skipped := types.Opportunity{"id": "skipped", "title": "Soil"}

	res := Run(testConfig(2, 10), faculty, []types.Opportunity{older, newer, skipped}, logger.Nop())
	require.Equal(t, 2, res.OpportunitiesUsed)
	require.NotEmpty(t, res.Records)

	var order []any
	for _, r := range res.Records {
		if len(order) == 0 || order[len(order)-1] != r.OpportunityID {
			order = append(order, r.OpportunityID)
		}
	}
	assert.Equal(t, []any{"newer", "older"}, order)

	sawTeam := map[any]bool{}
	for _, r := range res.Records {
		if r.TeamType == types.TypeTeam {
			sawTeam[r.OpportunityID] = true
			continue
		}
		assert.False(t, sawTeam[r.OpportunityID], "pair after team for %v", r.OpportunityID)
	}
}

func TestRunPairsDisjointPerOpportunity(t *testing.T) {
	faculty := roster(12)
	opps := []types.Opportunity{
		{"id": "o1", "close_date": "2024-02-01"},
		{"id": "o2", "close_date": "2024-03-01"},
	}

	res := Run(testConfig(2, 10), faculty, opps, logger.Nop())
	used := map[any]map[string]bool{}
	for _, r := range res.Records {
		if r.TeamType != types.TypePair {
			continue
		}
		if used[r.OpportunityID] == nil {
			used[r.OpportunityID] = map[string]bool{}
		}
		for _, id := range r.MemberIDs {
			assert.False(t, used[r.OpportunityID][id], "%s reused within %v", id, r.OpportunityID)
			used[r.OpportunityID][id] = true
		}
	}
	assert.Len(t, used, 2)
}

func TestRunEmptyInputs(t *testing.T) {
	res := Run(testConfig(5, 10), nil, nil, logger.Nop())
	assert.Equal(t, 0, res.FacultyCount)
	assert.Equal(t, 0, res.OpportunitiesUsed)
	assert.NotNil(t, res.Records)
	assert.Empty(t, res.Records)

	res = Run(testConfig(5, 10), nil, []types.Opportunity{{"title": "x"}}, logger.Nop())
	assert.Equal(t, 1, res.OpportunitiesUsed)
	assert.Empty(t, res.Records)
}

func TestRunDeterministic(t *testing.T) {
	faculty := []types.FacultyProfile{
		fac("f1", "soil", "carbon"), fac("f2", "soil"), fac("f3", "carbon"),
		fac("f4", "nitrogen"), fac("f5", "microbial"), fac("f6", "cycling"), fac("f7", "soil", "nitrogen"),
	}
	opps := []types.Opportunity{{"title": "Soil carbon nitrogen microbial cycling"}}

	first := Run(testConfig(1, 10), faculty, opps, logger.Nop())
	second := Run(testConfig(1, 10), faculty, opps, logger.Nop())
	assert.Equal(t, first, second)
}
