package ui

import "github.com/ftahirops/logradar/engine"

// recomputeFilter rebuilds filteredIndices from the store's current
// contents: an empty search query falls back to the store's rate-sorted
// order (score 0 for every row); a non-empty query fuzzy-scores each
// pattern's signature, drops non-matches, and sorts by score descending.
// activeSourceFilter, if set, is applied after scoring so a narrowed
// source view still benefits from the fuzzy ranking.
func (m *Model) recomputeFilter() {
	base := m.store.SortedIndices()

	var indices []int
	if m.searchQuery == "" {
		indices = base
	} else {
		candidates := make([]string, len(base))
		for i, idx := range base {
			candidates[i] = m.store.Pattern(idx).Signature
		}
		results := engine.FuzzySearch(m.searchQuery, candidates)
		indices = make([]int, len(results))
		for i, r := range results {
			indices[i] = base[r.Index]
		}
	}

	if m.activeSourceFilter != "" {
		narrowed := make([]int, 0, len(indices))
		for _, idx := range indices {
			p := m.store.Pattern(idx)
			if _, ok := p.Sources[m.activeSourceFilter]; ok {
				narrowed = append(narrowed, idx)
			}
		}
		indices = narrowed
	}

	m.filteredIndices = indices
}

func (m Model) visibleCount() int {
	return len(m.filteredIndices)
}

// selectedPatternIndex returns the store index of the currently selected
// row, and false if there is no selection (empty list).
func (m Model) selectedPatternIndex() (int, bool) {
	if m.selectedPattern < 0 || m.selectedPattern >= len(m.filteredIndices) {
		return 0, false
	}
	return m.filteredIndices[m.selectedPattern], true
}
