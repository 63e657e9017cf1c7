// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"whitespace only", "  \t\n ", []string{}},
		{"punctuation stripped and lowercased", "AI, Robotics & ML!", []string{"robotics"}},
		{"stopwords removed", "The use of machine learning for genomics", []string{"machine", "learning", "genomics"}},
		{"digits kept", "COVID-19 and H5N1 in 2024", []string{"covid", "h5n1", "2024"}},
		{"duplicates kept in order", "cell cell biology cell", []string{"cell", "cell", "biology", "cell"}},
		{"non-ascii letters split words", "café naïve résumé", []string{"caf", "sum"}},
		{"underscores and hyphens split", "deep_learning multi-omics", []string{"deep", "learning", "multi", "omics"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokens(tt.in))
		})
	}
}

func TestTokensMinimumLength(t *testing.T) {
	for _, tok := range Tokens("go ml ai xyz data") {
		assert.GreaterOrEqual(t, len(tok), minTokenLen)
	}
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("based"))
	assert.True(t, IsStopword("the"))
	assert.False(t, IsStopword("genomics"))
}

func TestSetIntersect(t *testing.T) {
	a := NewSet("protein folding and molecular dynamics simulation")
	b := NewSet("Molecular simulation of protein aggregation")

	got := a.Intersect(b)
	assert.Equal(t, []string{"molecular", "protein", "simulation"}, got)
	assert.Equal(t, got, b.Intersect(a), "intersection must not depend on argument order")
}

func TestSetIntersectEmpty(t *testing.T) {
	assert.Empty(t, NewSet("").Intersect(NewSet("anything here")))
	assert.Empty(t, NewSet("alpha beta").Intersect(NewSet("gamma delta")))
}
