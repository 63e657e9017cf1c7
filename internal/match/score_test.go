// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/collab-matcher/internal/textnorm"
	"github.com/pdiddy/collab-matcher/pkg/types"
)

func genomicsOpp() types.Opportunity {
	return types.Opportunity{
		"OpportunityTitle": "Genomic Medicine and Precision Health",
		"AgencyCode":       "NIH",
		"SynopsisDesc":     "Supports research on genomic sequencing, clinical genomics, and precision therapeutics.",
	}
}

func TestFacultyText(t *testing.T) {
	f := types.FacultyProfile{
		Name:       "Ada Lovelace",
		Title:      "Professor",
		Summary:    "Computing",
		Keywords:   []string{"engines", "poetry"},
		SearchText: "extra",
	}
	assert.Equal(t, "Ada Lovelace Professor Computing engines poetry extra", FacultyText(f))
	assert.Equal(t, "", FacultyText(types.FacultyProfile{}))
}

func TestOpportunityText(t *testing.T) {
	assert.Equal(t,
		"Genomic Medicine and Precision Health NIH Supports research on genomic sequencing, clinical genomics, and precision therapeutics.",
		OpportunityText(genomicsOpp()))
	assert.Equal(t, "  ", OpportunityText(types.Opportunity{}))
}

func TestOverlapTerms(t *testing.T) {
	f := types.FacultyProfile{
		Name:     "Rosalind Franklin",
		Summary:  "Clinical genomics and sequencing of tumor genomes",
		Keywords: []string{"precision", "medicine", "genomics"},
	}
	got := OverlapTerms(f, genomicsOpp(), 12)
	assert.Equal(t, []string{"clinical", "genomics", "medicine", "precision", "sequencing"}, got)
}

func TestOverlapTermsCapped(t *testing.T) {
	words := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
		"hotel", "india", "juliet", "kilo", "lima", "mike", "november"}
	f := fac("f1", words...)
	o := types.Opportunity{"title": "november mike lima kilo juliet india hotel golf foxtrot echo delta charlie bravo alpha"}

	got := OverlapTerms(f, o, 12)
	assert.Len(t, got, 12)
	assert.Equal(t, "alpha", got[0])
	assert.Equal(t, "lima", got[11], "cap keeps the lexicographically first terms")
	assert.Len(t, OverlapTerms(f, o, 0), 14, "non-positive cap keeps every term")

	assert.Equal(t, 14, Score(f, o), "score counts the uncapped intersection")
}

func TestScoreMatchesSetIntersection(t *testing.T) {
	f := types.FacultyProfile{Summary: "Clinical genomics and sequencing", Keywords: []string{"precision"}}
	o := genomicsOpp()

	want := len(textnorm.NewSet(FacultyText(f)).Intersect(textnorm.NewSet(OpportunityText(o))))
	assert.Equal(t, want, Score(f, o))
	assert.Equal(t, Score(f, o), Score(f, o), "repeated calls agree")
}

func TestScoreNoOverlap(t *testing.T) {
	assert.Equal(t, 0, Score(fac("f1", "volcanology"), genomicsOpp()))
	assert.Equal(t, 0, Score(types.FacultyProfile{}, types.Opportunity{}))
	assert.Empty(t, OverlapTerms(types.FacultyProfile{}, genomicsOpp(), 12))
}

func TestRosterScoresMatchScore(t *testing.T) {
	faculty := []types.FacultyProfile{
		fac("f1", "genomics", "sequencing"),
		fac("f2", "volcanology"),
		fac("f3", "precision", "medicine", "clinical"),
	}
	r := NewRoster(faculty)
	assert.Equal(t, 3, r.Len())

	o := genomicsOpp()
	scored := r.Scores(o)
	for i, s := range scored {
		assert.Equal(t, faculty[i].ID, s.Faculty.ID, "roster order preserved")
		assert.Equal(t, Score(faculty[i], o), s.Score)
	}
}
