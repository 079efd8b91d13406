package textfile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/louisbranch/guessing.game/internal/game/score"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "highscores.txt")
	store, err := New(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store, path
}

// TestLoadMissingFile ensures a missing file yields an empty mapping
// without error.
func TestLoadMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	scores, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(scores) != 0 {
		t.Fatalf("expected empty mapping, got %v", scores)
	}
}

// TestSaveLoadRoundTrip ensures a saved mapping loads back equal.
func TestSaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	saved := score.Scores{"EASY": 3, "MEDIUM": 5, "IMPOSSIBLE": 9}

	if err := store.Save(saved); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(loaded, saved) {
		t.Fatalf("expected %v, got %v", saved, loaded)
	}
}

// TestLoadSkipsMalformedLines ensures only well-formed lines with known
// identifiers survive a load.
func TestLoadSkipsMalformedLines(t *testing.T) {
	store, path := newTestStore(t)
	content := "MEDIUM 5\n" +
		"\n" +
		"NIGHTMARE 2\n" +
		"EASY x\n" +
		"HARD\n" +
		"IMPOSSIBLE 0\n" +
		"easy 4\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	scores, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(scores, score.Scores{"MEDIUM": 5}) {
		t.Fatalf("expected only the MEDIUM entry, got %v", scores)
	}
}

// TestLoadKeepsLowestDuplicate ensures duplicate identifiers resolve to
// the lowest attempt count.
func TestLoadKeepsLowestDuplicate(t *testing.T) {
	store, path := newTestStore(t)
	if err := os.WriteFile(path, []byte("HARD 6\nHARD 4\nHARD 8\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	scores, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if scores["HARD"] != 4 {
		t.Fatalf("expected lowest duplicate 4, got %d", scores["HARD"])
	}
}

// TestSaveOverwritesSorted ensures saves rewrite the whole file in
// identifier order.
func TestSaveOverwritesSorted(t *testing.T) {
	store, path := newTestStore(t)
	if err := os.WriteFile(path, []byte("HARD 9\nMEDIUM 9\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if err := store.Save(score.Scores{"MEDIUM": 5, "EASY": 2}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(data) != "EASY 2\nMEDIUM 5\n" {
		t.Fatalf("unexpected file contents: %q", string(data))
	}
}

// TestNewRequiresPath ensures a blank path is rejected.
func TestNewRequiresPath(t *testing.T) {
	if _, err := New("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}
