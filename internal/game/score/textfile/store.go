// Package textfile stores high scores in a plain text file with one
// `<DIFFICULTY> <tries>` record per line.
package textfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/louisbranch/guessing.game/internal/game/difficulty"
	"github.com/louisbranch/guessing.game/internal/game/score"
)

// Store persists the score mapping in a flat text file.
type Store struct {
	path string
}

// New creates a store backed by the file at path. The file does not need
// to exist yet.
func New(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("scores path is required")
	}
	return &Store{path: filepath.Clean(path)}, nil
}

// Load reads the score file. A missing file yields an empty mapping and
// no error. Lines that are empty, name an unknown difficulty, or carry a
// non-positive or unparsable count are skipped. Read failures yield an
// empty mapping alongside the error so the caller can warn and continue.
func (s *Store) Load() (score.Scores, error) {
	scores := score.Scores{}
	if s == nil || s.path == "" {
		return scores, fmt.Errorf("storage is not configured")
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return scores, nil
		}
		return scores, fmt.Errorf("open scores file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		id, tries, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if best, exists := scores[id]; exists && best <= tries {
			continue
		}
		scores[id] = tries
	}
	if err := scanner.Err(); err != nil {
		return score.Scores{}, fmt.Errorf("read scores file: %w", err)
	}
	return scores, nil
}

// Save overwrites the score file with one line per entry, sorted by
// identifier so repeated saves are byte-stable. The in-memory mapping is
// never touched; a write failure is reported for the caller to warn
// about.
func (s *Store) Save(scores score.Scores) error {
	if s == nil || s.path == "" {
		return fmt.Errorf("storage is not configured")
	}

	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var buf bytes.Buffer
	for _, id := range ids {
		fmt.Fprintf(&buf, "%s %d\n", id, scores[id])
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write scores file: %w", err)
	}
	return nil
}

func parseLine(line string) (string, int, bool) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) != 2 {
		return "", 0, false
	}
	id := fields[0]
	if !difficulty.IsValid(id) {
		return "", 0, false
	}
	tries, err := strconv.Atoi(fields[1])
	if err != nil || tries < 1 {
		return "", 0, false
	}
	return id, tries, true
}
