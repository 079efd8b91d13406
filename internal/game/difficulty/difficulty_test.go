package difficulty

import "testing"

// TestLevelsCatalog ensures the catalog holds the four fixed levels in
// menu order with their constant bounds and try limits.
func TestLevelsCatalog(t *testing.T) {
	expected := []struct {
		id         string
		upperBound int
		maxTries   int
	}{
		{"EASY", 50, 10},
		{"MEDIUM", 100, 7},
		{"HARD", 500, 9},
		{"IMPOSSIBLE", 1000, 10},
	}

	got := Levels()
	if len(got) != len(expected) {
		t.Fatalf("expected %d levels, got %d", len(expected), len(got))
	}
	for i, want := range expected {
		level := got[i]
		if level.ID != want.id {
			t.Fatalf("level %d: expected id %s, got %s", i, want.id, level.ID)
		}
		if level.UpperBound != want.upperBound {
			t.Fatalf("%s: expected upper bound %d, got %d", want.id, want.upperBound, level.UpperBound)
		}
		if level.MaxTries != want.maxTries {
			t.Fatalf("%s: expected max tries %d, got %d", want.id, want.maxTries, level.MaxTries)
		}
		if level.Flavour == "" {
			t.Fatalf("%s: expected flavour text", want.id)
		}
	}
}

// TestByIndex ensures menu positions are 1-based and bounded.
func TestByIndex(t *testing.T) {
	level, ok := ByIndex(1)
	if !ok || level.ID != "EASY" {
		t.Fatalf("expected EASY at index 1, got %+v ok=%v", level, ok)
	}
	level, ok = ByIndex(4)
	if !ok || level.ID != "IMPOSSIBLE" {
		t.Fatalf("expected IMPOSSIBLE at index 4, got %+v ok=%v", level, ok)
	}
	for _, index := range []int{0, -1, 5, 100} {
		if _, ok := ByIndex(index); ok {
			t.Fatalf("expected no level at index %d", index)
		}
	}
}

// TestIsValid ensures identifier matching is exact and case-sensitive.
func TestIsValid(t *testing.T) {
	for _, level := range Levels() {
		if !IsValid(level.ID) {
			t.Fatalf("expected %s to be valid", level.ID)
		}
	}
	for _, id := range []string{"easy", "Easy", "NIGHTMARE", ""} {
		if IsValid(id) {
			t.Fatalf("expected %q to be invalid", id)
		}
	}
}

// TestLevelsReturnsCopy ensures callers cannot mutate the catalog.
func TestLevelsReturnsCopy(t *testing.T) {
	first := Levels()
	first[0].UpperBound = 9999

	level, ok := ByIndex(1)
	if !ok || level.UpperBound != 50 {
		t.Fatalf("catalog mutated: got upper bound %d", level.UpperBound)
	}
}
