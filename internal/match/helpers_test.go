// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"fmt"

	"github.com/pdiddy/collab-matcher/pkg/types"
)

// fac builds a faculty profile whose only matchable text is its keywords.
// The name repeats the ID, which never appears in opportunity text.
func fac(id string, keywords ...string) types.FacultyProfile {
	return types.FacultyProfile{ID: id, Name: id, Keywords: keywords}
}

// roster builds n faculty with IDs f00, f01, ... and no keywords.
func roster(n int) []types.FacultyProfile {
	out := make([]types.FacultyProfile, n)
	for i := range out {
		out[i] = fac(fmt.Sprintf("f%02d", i))
	}
	return out
}

func ids(profiles []types.FacultyProfile) []string {
	out := make([]string, len(profiles))
	for i, p := range profiles {
		out[i] = p.ID
	}
	return out
}
