package engine

import "github.com/sahilm/fuzzy"

// SearchResult is one fuzzy match against the pattern list, with the
// character indices the query matched so the UI can highlight them.
type SearchResult struct {
	Index          int
	Score          int
	MatchedIndexes []int
}

// FuzzySearch scores every candidate against query and returns matches best
// score first. An empty query matches nothing (the caller should show the
// unfiltered list instead of calling this).
func FuzzySearch(query string, candidates []string) []SearchResult {
	if query == "" {
		return nil
	}
	matches := fuzzy.Find(query, candidates)
	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		results[i] = SearchResult{
			Index:          m.Index,
			Score:          m.Score,
			MatchedIndexes: m.MatchedIndexes,
		}
	}
	return results
}
