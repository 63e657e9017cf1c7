// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TeamType distinguishes two-person pairs from larger teams.
type TeamType string

const (
	TypePair TeamType = "pair"
	TypeTeam TeamType = "team"
)

// ScoredFaculty couples a faculty profile with its overlap score against one
// opportunity.
type ScoredFaculty struct {
	Score   int
	Faculty FacultyProfile
}

// Pair is a two-person grouping of distinct faculty.
type Pair struct {
	A FacultyProfile
	B FacultyProfile
}

// Team is a contiguous slice of ranked faculty with three to five members.
type Team []FacultyProfile

// TeamRecord is one suggested collaboration written to the output file.
// Field order matches the published output schema.
type TeamRecord struct {
	// TeamType is "pair" or "team".
	TeamType TeamType `json:"team_type" yaml:"team_type"`

	// TeamName is a display label, e.g. "Biology pair: Ada + Grace".
	TeamName string `json:"team_name" yaml:"team_name"`

	// OpportunityID is the resolved identifier in its input JSON type.
	OpportunityID any `json:"opportunity_id" yaml:"opportunity_id"`

	// OpportunityNumber is the resolved announcement number in its input JSON type.
	OpportunityNumber any `json:"opportunity_number" yaml:"opportunity_number"`

	// OpportunityTitle is the resolved title, or "Untitled opportunity".
	OpportunityTitle string `json:"opportunity_title" yaml:"opportunity_title"`

	// Members lists member names in ranked order.
	Members []string `json:"members" yaml:"members"`

	// MemberIDs lists member IDs aligned with Members.
	MemberIDs []string `json:"member_ids" yaml:"member_ids"`

	Rationale            string `json:"rationale" yaml:"rationale"`
	SuggestedSpecificAim string `json:"suggested_specific_aim" yaml:"suggested_specific_aim"`
	NextSteps            string `json:"next_steps" yaml:"next_steps"`
	Confidence           string `json:"confidence" yaml:"confidence"`
}
