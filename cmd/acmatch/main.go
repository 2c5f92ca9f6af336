// Command acmatch scans files under a directory against a pattern file
// and reports which ones match.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sansecio/acmatch"
	"github.com/sansecio/acmatch/internal/patternfile"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: acmatch <patterns> <path>\n")
		os.Exit(1)
	}

	patternsFile := os.Args[1]
	scanPath := os.Args[2]

	p, err := patternfile.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error building pattern parser: %v\n", err)
		os.Exit(1)
	}

	entries, err := p.ParseFile(patternsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing patterns: %v\n", err)
		os.Exit(1)
	}

	var patterns []acmatch.Pattern
	var regexAtoms int
	for _, e := range entries {
		switch e.Kind {
		case patternfile.Literal:
			patterns = append(patterns, acmatch.Pattern{ID: e.ID, Value: []byte(e.Text)})
		case patternfile.Regex:
			// The automaton only filters candidate files by the regex's
			// longest literal run; a match here is a hint, not a
			// verified regex match.
			patterns = append(patterns, acmatch.Pattern{ID: e.ID, Value: e.Atom})
			regexAtoms++
		}
	}
	if regexAtoms > 0 {
		fmt.Fprintf(os.Stderr, "searching %d regex entries by their literal atom only\n", regexAtoms)
	}

	m, err := acmatch.New(acmatch.Config{Patterns: patterns})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error building matcher: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "compiled %d patterns (max length %d)\n", m.PatternCount(), m.MaxPatternLen())

	var scanned, matched int

	err = filepath.WalkDir(scanPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return nil
		}
		if d.IsDir() {
			return nil
		}

		scanned++

		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading %s: %v\n", path, err)
			return nil
		}

		if locs := m.All(data, 0); len(locs) > 0 {
			matched++
			fmt.Printf("%s: %d matches\n", path, len(locs))
		}

		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error walking path: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "scanned %d files, %d matched\n", scanned, matched)
}
