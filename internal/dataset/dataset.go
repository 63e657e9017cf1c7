// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset reads the faculty and opportunity collections and writes
// the team records file. All files are JSON arrays read and written whole.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/collab-matcher/pkg/types"
)

// LoadFaculty reads a JSON array of faculty profiles from path.
func LoadFaculty(path string) ([]types.FacultyProfile, error) {
	var faculty []types.FacultyProfile
	if err := readJSON(path, &faculty); err != nil {
		return nil, fmt.Errorf("loading faculty: %w", err)
	}
	if faculty == nil {
		faculty = []types.FacultyProfile{}
	}
	return faculty, nil
}

// LoadOpportunities reads a JSON array of opportunity objects from path.
// Numbers are kept as json.Number so identifiers keep their literal form.
func LoadOpportunities(path string) ([]types.Opportunity, error) {
	var opps []types.Opportunity
	if err := readJSON(path, &opps); err != nil {
		return nil, fmt.Errorf("loading opportunities: %w", err)
	}
	if opps == nil {
		opps = []types.Opportunity{}
	}
	return opps, nil
}

// LoadTeams reads a previously written team records file.
func LoadTeams(path string) ([]types.TeamRecord, error) {
	var records []types.TeamRecord
	if err := readJSON(path, &records); err != nil {
		return nil, fmt.Errorf("loading teams: %w", err)
	}
	if records == nil {
		records = []types.TeamRecord{}
	}
	return records, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if dec.More() {
		return fmt.Errorf("parsing %s: unexpected data after top-level value", path)
	}
	return nil
}

// WriteTeams writes records to path as a JSON array indented by two spaces
// with a trailing newline. Non-ASCII and HTML characters are written as-is.
// The parent directory is created if needed, and the file is replaced
// atomically so a failed write never leaves a partial file behind.
func WriteTeams(path string, records []types.TeamRecord) error {
	if records == nil {
		records = []types.TeamRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("marshaling teams: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming into %s: %w", path, err)
	}
	return nil
}
