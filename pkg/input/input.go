// Package input locates and loads puzzle input files. Inputs
// live under a data root, split by variant and year:
//
//	<root>/test/<year>/day-NN.txt
//	<root>/puzzle/<year>/day-NN.txt
//
// Test inputs are small redistributable samples checked into the
// repository; puzzle inputs are the user's own and are optional.
package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoPuzzleData indicates that no puzzle input file exists for
// the requested problem. This is an expected condition, not a
// failure: puzzle inputs are intentionally not redistributed.
var ErrNoPuzzleData = errors.New("no puzzle data")

// Store resolves and reads input files for problems.
type Store struct {
	root string
}

// NewStore creates a Store rooted at the given data directory.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the data directory the store reads from.
func (s *Store) Root() string {
	return s.root
}

// TestPath returns the path of the test input for a problem.
func (s *Store) TestPath(year, day int) string {
	return s.path("test", year, day)
}

// PuzzlePath returns the path of the puzzle input for a problem.
func (s *Store) PuzzlePath(year, day int) string {
	return s.path("puzzle", year, day)
}

func (s *Store) path(variant string, year, day int) string {
	return filepath.Join(
		s.root, variant,
		fmt.Sprintf("%d", year),
		fmt.Sprintf("day-%02d.txt", day),
	)
}

// Test reads the test input for a problem. Test data is
// guaranteed to be checked in, so a missing file is an error.
func (s *Store) Test(year, day int) (string, error) {
	data, err := os.ReadFile(s.TestPath(year, day))
	if err != nil {
		return "", fmt.Errorf(
			"read test input for %d/day-%02d: %w",
			year, day, err,
		)
	}
	return trim(data), nil
}

// Puzzle reads the puzzle input for a problem. A missing file
// returns ErrNoPuzzleData; any other read failure is a real
// error.
func (s *Store) Puzzle(year, day int) (string, error) {
	data, err := os.ReadFile(s.PuzzlePath(year, day))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoPuzzleData
		}
		return "", fmt.Errorf(
			"read puzzle input for %d/day-%02d: %w",
			year, day, err,
		)
	}
	return trim(data), nil
}

// HasPuzzle reports whether a puzzle input file exists for the
// problem.
func (s *Store) HasPuzzle(year, day int) bool {
	_, err := os.Stat(s.PuzzlePath(year, day))
	return err == nil
}

// trim strips trailing whitespace. Editors tend to append a
// final newline; answers must not depend on it.
func trim(data []byte) string {
	return strings.TrimRight(string(data), " \t\r\n")
}
