// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import "github.com/pdiddy/collab-matcher/pkg/types"

// PickPairs walks all two-person combinations of ranked in order (outer index
// first) and accepts a pair when neither member's ID is already in an
// accepted pair. It stops after k pairs or when combinations run out.
func PickPairs(ranked []types.FacultyProfile, k int) []types.Pair {
	pairs := make([]types.Pair, 0)
	used := make(map[string]struct{})

	for i := 0; i < len(ranked) && len(pairs) < k; i++ {
		a := ranked[i]
		if _, ok := used[a.ID]; ok {
			continue
		}
		for j := i + 1; j < len(ranked) && len(pairs) < k; j++ {
			b := ranked[j]
			if _, ok := used[b.ID]; ok {
				continue
			}
			pairs = append(pairs, types.Pair{A: a, B: b})
			used[a.ID] = struct{}{}
			used[b.ID] = struct{}{}
			break
		}
	}
	return pairs
}
