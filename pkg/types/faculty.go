// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrNullFaculty is returned when a faculty entry is JSON null.
var ErrNullFaculty = errors.New("faculty entry is null")

// FacultyProfile is one entry of the faculty index. ID is the identity used
// for pair disjointness; the remaining text fields feed the overlap scorer.
type FacultyProfile struct {
	// ID identifies the faculty member. Numeric IDs in the input are kept in
	// their literal form (e.g. 1042 becomes "1042").
	ID string `json:"id" yaml:"id"`

	// Name is the display name used in team names and member lists.
	Name string `json:"name" yaml:"name"`

	// Title is the academic title or position.
	Title string `json:"title" yaml:"title"`

	// Summary is a free-text description of research interests.
	Summary string `json:"summary" yaml:"summary"`

	// Keywords lists expertise keywords in source order.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// SearchText is any additional text indexed for matching.
	SearchText string `json:"search_text" yaml:"search_text"`
}

// UnmarshalJSON decodes a faculty object leniently: null fields become empty,
// non-string scalars are rendered as text, and a keywords value that is not
// an array is ignored. A null entry is an error.
func (f *FacultyProfile) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if raw == nil {
		return ErrNullFaculty
	}

	*f = FacultyProfile{
		ID:         Text(raw["id"]),
		Name:       Text(raw["name"]),
		Title:      Text(raw["title"]),
		Summary:    Text(raw["summary"]),
		SearchText: Text(raw["search_text"]),
	}
	if kws, ok := raw["keywords"].([]any); ok {
		f.Keywords = make([]string, 0, len(kws))
		for _, k := range kws {
			f.Keywords = append(f.Keywords, Text(k))
		}
	}
	return nil
}
