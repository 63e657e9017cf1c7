// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match scores faculty against funding opportunities by lexical term
// overlap and selects candidate pairs and teams for each opportunity.
package match

import (
	"strings"

	"github.com/pdiddy/collab-matcher/internal/fields"
	"github.com/pdiddy/collab-matcher/internal/textnorm"
	"github.com/pdiddy/collab-matcher/pkg/types"
)

// FacultyText concatenates the searchable text of a faculty profile.
func FacultyText(f types.FacultyProfile) string {
	return strings.TrimSpace(strings.Join([]string{
		f.Name,
		f.Title,
		f.Summary,
		strings.Join(f.Keywords, " "),
		f.SearchText,
	}, " "))
}

// OpportunityText concatenates the title, agency, and synopsis of an opportunity.
func OpportunityText(o types.Opportunity) string {
	return strings.Join([]string{fields.Title(o), fields.Agency(o), fields.Synopsis(o)}, " ")
}

// OverlapTerms returns the sorted tokens shared by the faculty profile and the
// opportunity, keeping at most termCap of them. A termCap of zero or less
// keeps all.
func OverlapTerms(f types.FacultyProfile, o types.Opportunity, termCap int) []string {
	terms := textnorm.NewSet(FacultyText(f)).Intersect(textnorm.NewSet(OpportunityText(o)))
	return capTerms(terms, termCap)
}

// Score returns the number of distinct tokens shared by the faculty profile
// and the opportunity.
func Score(f types.FacultyProfile, o types.Opportunity) int {
	return len(textnorm.NewSet(FacultyText(f)).Intersect(textnorm.NewSet(OpportunityText(o))))
}

func capTerms(terms []string, termCap int) []string {
	if termCap > 0 && len(terms) > termCap {
		return terms[:termCap]
	}
	return terms
}

// Roster holds the faculty list with each profile's token set computed once,
// so scoring many opportunities does not re-tokenize the faculty text.
type Roster struct {
	faculty []types.FacultyProfile
	sets    []textnorm.Set
}

// NewRoster tokenizes every profile in faculty. The slice is not copied and
// must not be modified while the roster is in use.
func NewRoster(faculty []types.FacultyProfile) *Roster {
	sets := make([]textnorm.Set, len(faculty))
	for i, f := range faculty {
		sets[i] = textnorm.NewSet(FacultyText(f))
	}
	return &Roster{faculty: faculty, sets: sets}
}

// Len returns the number of profiles in the roster.
func (r *Roster) Len() int { return len(r.faculty) }

// Scores returns every profile paired with its score against o, in roster order.
func (r *Roster) Scores(o types.Opportunity) []types.ScoredFaculty {
	oppSet := textnorm.NewSet(OpportunityText(o))
	scored := make([]types.ScoredFaculty, len(r.faculty))
	for i, f := range r.faculty {
		scored[i] = types.ScoredFaculty{
			Score:   len(r.sets[i].Intersect(oppSet)),
			Faculty: f,
		}
	}
	return scored
}
