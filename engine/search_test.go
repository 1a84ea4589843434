package engine

import "testing"

func TestFuzzySearchEmptyQuery(t *testing.T) {
	if got := FuzzySearch("", []string{"a", "b"}); got != nil {
		t.Errorf("FuzzySearch(\"\", ...) = %v, want nil", got)
	}
}

func TestFuzzySearchFilters(t *testing.T) {
	candidates := []string{"connection refused", "disk full", "timeout waiting for lock"}
	results := FuzzySearch("timeout", candidates)
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if candidates[results[0].Index] != "timeout waiting for lock" {
		t.Errorf("matched %q, want the timeout line", candidates[results[0].Index])
	}
}

func TestFuzzySearchMatchedIndexesNonEmpty(t *testing.T) {
	results := FuzzySearch("conn", []string{"connection refused"})
	if len(results) != 1 || len(results[0].MatchedIndexes) == 0 {
		t.Fatalf("expected non-empty matched indexes, got %+v", results)
	}
}

func TestFuzzySearchScoresBetterMatchHigher(t *testing.T) {
	candidates := []string{"xyz timeout xyz", "timeout"}
	results := FuzzySearch("timeout", candidates)
	if len(results) < 2 {
		t.Fatalf("expected both candidates to match, got %d", len(results))
	}
	if results[0].Index != 1 {
		t.Errorf("expected exact match %q to score highest, got index %d", candidates[1], results[0].Index)
	}
}

func TestFuzzySearchNoMatchReturnsEmpty(t *testing.T) {
	results := FuzzySearch("zzz_no_such_thing", []string{"connection refused", "disk full"})
	if len(results) != 0 {
		t.Errorf("expected no matches, got %+v", results)
	}
}
