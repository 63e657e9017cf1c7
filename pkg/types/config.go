// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Default file locations, relative to the working directory.
const (
	DefaultFacultyPath       = "data/faculty_index.json"
	DefaultOpportunitiesPath = "data/opportunities.json"
	DefaultOutputPath        = "data/teams.json"
)

// MatchConfig holds settings for one matching run.
type MatchConfig struct {
	// Department labels every generated team name (e.g. "Biology").
	Department string `json:"department" yaml:"department"`

	// MaxOpportunities caps how many opportunities are considered, most
	// recent first. Zero or less selects none.
	MaxOpportunities int `json:"max_opportunities" yaml:"max_opportunities"`

	// TopN caps the ranked candidate list per opportunity.
	TopN int `json:"top_n" yaml:"top_n"`

	// PairCount is the target number of pairs per opportunity (default 5).
	PairCount int `json:"pair_count" yaml:"pair_count" validate:"gte=0"`

	// TeamCount is the target number of teams per opportunity (default 5).
	TeamCount int `json:"team_count" yaml:"team_count" validate:"gte=0"`

	// FallbackThreshold is the minimum number of nonzero-score candidates
	// below which the ranker ignores scores and takes the top of the full
	// roster instead (default 6).
	FallbackThreshold int `json:"fallback_threshold" yaml:"fallback_threshold" validate:"gte=0"`

	// OverlapTermCap caps the overlap terms reported per faculty member (default 12).
	OverlapTermCap int `json:"overlap_term_cap" yaml:"overlap_term_cap" validate:"gte=1"`

	// FacultyPath is the faculty index JSON file.
	FacultyPath string `json:"faculty_path" yaml:"faculty_path" validate:"required"`

	// OpportunitiesPath is the opportunities JSON file.
	OpportunitiesPath string `json:"opportunities_path" yaml:"opportunities_path" validate:"required"`

	// OutputPath is where the team records are written.
	OutputPath string `json:"output_path" yaml:"output_path" validate:"required"`
}

// DefaultMatchConfig returns a MatchConfig with the standard group counts,
// thresholds, and file locations. Department, MaxOpportunities, and TopN are
// left for the caller.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		PairCount:         5,
		TeamCount:         5,
		FallbackThreshold: 6,
		OverlapTermCap:    12,
		FacultyPath:       DefaultFacultyPath,
		OpportunitiesPath: DefaultOpportunitiesPath,
		OutputPath:        DefaultOutputPath,
	}
}
