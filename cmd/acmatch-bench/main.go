// Command acmatch-bench times acmatch against other published
// multi-pattern matchers over the same file and pattern set.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	coregxac "github.com/coregx/ahocorasick"
	pgavlinac "github.com/pgavlin/aho-corasick"
	"github.com/sansecio/acmatch"
)

type engineFunc func(patterns [][]byte, haystack []byte) (int, error)

var engines = map[string]engineFunc{
	"acmatch": func(patterns [][]byte, haystack []byte) (int, error) {
		cfgPatterns := make([]acmatch.Pattern, len(patterns))
		for i, p := range patterns {
			cfgPatterns[i] = acmatch.Pattern{ID: i, Value: p}
		}
		m, err := acmatch.New(acmatch.Config{Patterns: cfgPatterns})
		if err != nil {
			return 0, err
		}
		return len(m.All(haystack, 0)), nil
	},
	"pgavlin": func(patterns [][]byte, haystack []byte) (int, error) {
		builder := pgavlinac.NewAhoCorasickBuilder(pgavlinac.Opts{})
		ac := builder.BuildByte(patterns)
		count := 0
		iter := ac.IterOverlappingByte(haystack)
		for iter.Next() != nil {
			count++
		}
		return count, nil
	},
	"coregx": func(patterns [][]byte, haystack []byte) (int, error) {
		builder := coregxac.NewBuilder()
		for _, p := range patterns {
			builder.AddPattern(p)
		}
		auto, err := builder.Build()
		if err != nil {
			return 0, err
		}
		count := 0
		at := 0
		for at <= len(haystack) {
			m := auto.Find(haystack, at)
			if m == nil {
				break
			}
			count++
			if m.End <= at {
				at++
			} else {
				at = m.End
			}
		}
		return count, nil
	},
}

var (
	cpuProfile = flag.Bool("cpu-profile", false, "write cpu profiles for each engine")
	patternArg = flag.String("patterns", "", "'|' separated literal patterns to search for")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 || *patternArg == "" {
		fmt.Fprintf(os.Stderr, "Usage: acmatch-bench [-cpu-profile] -patterns 'a|b|c' <file>\n")
		os.Exit(1)
	}

	var patterns [][]byte
	for _, p := range strings.Split(*patternArg, "|") {
		if p != "" {
			patterns = append(patterns, []byte(p))
		}
	}

	filePath := flag.Arg(0)
	haystack, err := os.ReadFile(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("File: %s (%d bytes)\n", filePath, len(haystack))
	fmt.Printf("Patterns: %d\n\n", len(patterns))

	order := []string{"acmatch", "pgavlin", "coregx"}
	results := make(map[string]time.Duration)
	counts := make(map[string]int)

	for _, name := range order {
		run := engines[name]

		var profileFile *os.File
		if *cpuProfile {
			profileFile, err = os.Create(name + ".pprof")
			if err != nil {
				fmt.Fprintf(os.Stderr, "error creating profile for %s: %v\n", name, err)
				os.Exit(1)
			}
			if err := pprof.StartCPUProfile(profileFile); err != nil {
				fmt.Fprintf(os.Stderr, "error starting cpu profile: %v\n", err)
				os.Exit(1)
			}
		}

		start := time.Now()
		count, err := run(patterns, haystack)
		duration := time.Since(start)

		if profileFile != nil {
			pprof.StopCPUProfile()
			_ = profileFile.Close()
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
			os.Exit(1)
		}

		results[name] = duration
		counts[name] = count
	}

	fmt.Println("Engine      Matches    Duration (µs)")
	fmt.Println("--------    -------    -------------")
	for _, name := range order {
		fmt.Printf("%-10s  %7d    %13.2f\n", name, counts[name], float64(results[name].Microseconds()))
	}
}
