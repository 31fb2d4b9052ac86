// Package search is the query engine over a flattened keybinding list:
// case-insensitive fuzzy subsequence matching, ranked and stable-sorted.
package search

import (
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/doums/apekey/parser"
)

// Score is the ranking of a single match: the fuzzy rank and the byte
// positions of the matched runes inside "{keys} {description}".
type Score struct {
	Rank      int
	Positions []int
}

// ScoredKeybind is a keybind paired with an optional match score. Scored
// values are ephemeral: they are recomputed on every Search call and
// never refer back into a Document.
type ScoredKeybind struct {
	Keys        string
	Description string
	Score       *Score
}

// Target returns the candidate string the pattern is matched against
func (k ScoredKeybind) Target() string {
	return k.Keys + " " + k.Description
}

// source adapts a keybind slice to fuzzy.Source
type source []parser.Keybind

func (s source) String(i int) string {
	return s[i].Keys + " " + s[i].Description
}

func (s source) Len() int {
	return len(s)
}

// Search filters and ranks keybinds by fuzzy-matching pattern against
// "{keys} {description}". An empty pattern returns the full list,
// unscored, in original order. Otherwise keybinds that don't match are
// excluded and the rest are sorted by descending score; ties keep
// document order (the scoring function is not injective, so the
// tie-break is explicit). Each call is independent and idempotent.
func Search(keybinds []parser.Keybind, pattern string) []ScoredKeybind {
	if pattern == "" {
		result := make([]ScoredKeybind, len(keybinds))
		for i, kb := range keybinds {
			result[i] = ScoredKeybind{Keys: kb.Keys, Description: kb.Description}
		}
		return result
	}

	matches := fuzzy.FindFrom(pattern, source(keybinds))
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Index < matches[j].Index
	})

	result := make([]ScoredKeybind, 0, len(matches))
	for _, m := range matches {
		kb := keybinds[m.Index]
		result = append(result, ScoredKeybind{
			Keys:        kb.Keys,
			Description: kb.Description,
			Score: &Score{
				Rank:      m.Score,
				Positions: m.MatchedIndexes,
			},
		})
	}
	return result
}
