// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textnorm turns free text into the significant lowercase tokens used
// for lexical overlap scoring.
package textnorm

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// minTokenLen is the shortest token kept; shorter tokens carry no signal.
const minTokenLen = 3

// stopwords are dropped after lowercasing. The set is fixed for the process.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "of": {}, "to": {}, "in": {}, "for": {}, "on": {},
	"with": {}, "a": {}, "an": {}, "by": {}, "from": {}, "as": {}, "at": {}, "is": {},
	"are": {}, "this": {}, "that": {}, "these": {}, "those": {}, "we": {}, "our": {},
	"their": {}, "its": {}, "into": {}, "via": {}, "using": {}, "use": {}, "based": {},
}

// IsStopword reports whether w is in the stopword set.
func IsStopword(w string) bool {
	_, ok := stopwords[w]
	return ok
}

// Tokens lowercases s, replaces every character outside [a-z0-9] with a
// space, and returns the remaining words that are at least three characters
// long and not stopwords. Order follows the input; duplicates are kept.
func Tokens(s string) []string {
	if s == "" {
		return []string{}
	}

	lower := cases.Lower(language.Und).String(s)
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, lower)

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, w := range fields {
		if len(w) < minTokenLen || IsStopword(w) {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// Set is an unordered collection of distinct tokens.
type Set map[string]struct{}

// NewSet returns the distinct tokens of s.
func NewSet(s string) Set {
	set := make(Set)
	for _, tok := range Tokens(s) {
		set[tok] = struct{}{}
	}
	return set
}

// Intersect returns the tokens present in both sets, sorted.
func (s Set) Intersect(other Set) []string {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	common := make([]string, 0)
	for tok := range small {
		if _, ok := large[tok]; ok {
			common = append(common, tok)
		}
	}
	sort.Strings(common)
	return common
}
