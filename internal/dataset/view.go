// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/collab-matcher/pkg/types"
)

// Output formats accepted by Format.
const (
	FormatTableName = "table"
	FormatJSONName  = "json"
	FormatYAMLName  = "yaml"
)

// Filter returns the records whose opportunity title, opportunity number,
// team name, member names, or rationale contain query, ignoring case.
// An empty or blank query returns records unchanged.
func Filter(records []types.TeamRecord, query string) []types.TeamRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}
	var out []types.TeamRecord
	for _, r := range records {
		if strings.Contains(haystack(r), q) {
			out = append(out, r)
		}
	}
	return out
}

func haystack(r types.TeamRecord) string {
	parts := []string{
		r.OpportunityTitle,
		types.Text(r.OpportunityNumber),
		r.TeamName,
		strings.Join(r.Members, " "),
		r.Rationale,
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// TopOpportunities keeps the records belonging to the first n distinct
// opportunities, in file order. n <= 0 keeps everything.
func TopOpportunities(records []types.TeamRecord, n int) []types.TeamRecord {
	if n <= 0 {
		return records
	}
	return selectGroups(records, n, true)
}

// OtherOpportunities drops the records of the first n distinct opportunities
// and keeps the rest, in file order. n <= 0 keeps everything.
func OtherOpportunities(records []types.TeamRecord, n int) []types.TeamRecord {
	if n <= 0 {
		return records
	}
	return selectGroups(records, n, false)
}

// selectGroups keeps records inside the first n opportunity groups when
// inside is true, or outside them otherwise.
func selectGroups(records []types.TeamRecord, n int, inside bool) []types.TeamRecord {
	keys := opportunityKeys(records)
	first := make(map[string]bool)
	for _, k := range keys {
		if len(first) == n {
			break
		}
		first[k] = true
	}

	var out []types.TeamRecord
	for i, r := range records {
		if first[keys[i]] == inside {
			out = append(out, r)
		}
	}
	return out
}

// opportunityKeys assigns each record the opportunity it belongs to.
// Records with an identifier are grouped by it. Records without one are
// grouped by position: generate writes each opportunity as one consecutive
// run of pairs followed by teams, so a run ends when the number or title
// changes, or when a pair follows a team.
func opportunityKeys(records []types.TeamRecord) []string {
	keys := make([]string, len(records))
	run := 0
	for i, r := range records {
		if i > 0 {
			prev := records[i-1]
			if runKey(prev) != runKey(r) ||
				(prev.TeamType == types.TypeTeam && r.TeamType == types.TypePair) {
				run++
			}
		}
		if id := types.Text(r.OpportunityID); id != "" {
			keys[i] = "id:" + id
		} else {
			keys[i] = fmt.Sprintf("run:%d", run)
		}
	}
	return keys
}

func runKey(r types.TeamRecord) string {
	return types.Text(r.OpportunityID) + "\x00" + types.Text(r.OpportunityNumber) + "\x00" + r.OpportunityTitle
}

// Format writes records to w in the named format.
func Format(records []types.TeamRecord, format string, w io.Writer) error {
	switch format {
	case "", FormatTableName:
		FormatTable(records, w)
		return nil
	case FormatJSONName:
		return FormatJSON(records, w)
	case FormatYAMLName:
		return FormatYAML(records, w)
	default:
		return fmt.Errorf("unknown format %q (want table, json, or yaml)", format)
	}
}

// FormatTable writes records as a human-readable table grouped by
// opportunity.
func FormatTable(records []types.TeamRecord, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No teams found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-4s  %-48s  %-40s  %s\n",
		"#", "Type", "Members", "Opportunity", "Rationale")
	fmt.Fprintln(w, strings.Repeat("-", 130))

	keys := opportunityKeys(records)
	opps := make(map[string]bool)
	for i, r := range records {
		opps[keys[i]] = true
		opp := r.OpportunityTitle
		if num := types.Text(r.OpportunityNumber); num != "" {
			opp = num + " " + opp
		}
		fmt.Fprintf(w, "%-4d  %-4s  %-48s  %-40s  %s\n",
			i+1, r.TeamType,
			truncate(strings.Join(r.Members, ", "), 48),
			truncate(opp, 40),
			truncate(r.Rationale, 60))
	}

	fmt.Fprintf(w, "\n%d teams across %d opportunities\n", len(records), len(opps))
}

// FormatJSON writes records as indented JSON.
func FormatJSON(records []types.TeamRecord, w io.Writer) error {
	if records == nil {
		records = []types.TeamRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}

// FormatYAML writes records as a YAML sequence.
func FormatYAML(records []types.TeamRecord, w io.Writer) error {
	if records == nil {
		records = []types.TeamRecord{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(yamlRecords(records))
}

// yamlRecords renders identifier values as text so json.Number values from
// a loaded file encode as scalars.
func yamlRecords(records []types.TeamRecord) []types.TeamRecord {
	out := make([]types.TeamRecord, len(records))
	for i, r := range records {
		if n, ok := r.OpportunityID.(json.Number); ok {
			r.OpportunityID = n.String()
		}
		if n, ok := r.OpportunityNumber.(json.Number); ok {
			r.OpportunityNumber = n.String()
		}
		out[i] = r
	}
	return out
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
