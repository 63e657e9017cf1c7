// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fields resolves the semantic fields of an opportunity record whose
// key spellings vary by source. Each field maps to an ordered list of keys,
// most specific first; the first present, non-empty value wins.
package fields

import (
	"time"

	"github.com/pdiddy/collab-matcher/pkg/types"
)

// Key lists per semantic field.
var (
	TitleKeys    = []string{"opportunity_title", "OpportunityTitle", "title", "OpportunityTitleText"}
	NumberKeys   = []string{"opportunity_number", "OpportunityNumber", "number", "OpportunityNumberText"}
	IDKeys       = []string{"opportunity_id", "OpportunityID", "id", "OpportunityId"}
	AgencyKeys   = []string{"agency", "AgencyCode", "agency_code", "AgencyName", "Agency"}
	SynopsisKeys = []string{"synopsis", "SynopsisDesc", "summary", "description", "OpportunityDescription", "synopsis_desc"}
	PostedKeys   = []string{"posted_date", "PostDate", "PostedDate", "post_date", "OpportunityPostedDate"}
	CloseKeys    = []string{"close_date", "CloseDate", "ApplicationDueDate", "due_date", "OpportunityCloseDate"}
)

// First returns the value of the first key in keys whose value is present and
// not nil, the empty string, or an empty array. If none qualifies it returns def.
func First(rec map[string]any, keys []string, def any) any {
	for _, k := range keys {
		v, ok := rec[k]
		if !ok || isEmpty(v) {
			continue
		}
		return v
	}
	return def
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	}
	return false
}

// Title returns the opportunity title as text, or "".
func Title(o types.Opportunity) string {
	return types.Text(First(o, TitleKeys, ""))
}

// Number returns the raw announcement number value, or "".
func Number(o types.Opportunity) any {
	return First(o, NumberKeys, "")
}

// ID returns the raw opportunity identifier value, or "".
func ID(o types.Opportunity) any {
	return First(o, IDKeys, "")
}

// Agency returns the agency name or code as text, or "".
func Agency(o types.Opportunity) string {
	return types.Text(First(o, AgencyKeys, ""))
}

// Synopsis returns the opportunity description as text, or "".
func Synopsis(o types.Opportunity) string {
	return types.Text(First(o, SynopsisKeys, ""))
}

// Dates resolves the posted and close dates. Each ok flag is false when the
// field is missing or unparseable.
func Dates(o types.Opportunity) (posted time.Time, postedOK bool, closed time.Time, closedOK bool) {
	posted, postedOK = ParseDate(First(o, PostedKeys, nil))
	closed, closedOK = ParseDate(First(o, CloseKeys, nil))
	return posted, postedOK, closed, closedOK
}
