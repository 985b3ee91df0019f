package main

import (
	"os"
	"strings"

	"github.com/sabhiram/go-gitignore"

	"github.com/rfjakob/xtendr/internal/exitcodes"
)

// prepareExcluder creates an object to check if paths are excluded
// based on the patterns specified in the command line. Returns nil if
// there are no patterns.
func prepareExcluder(args *argContainer) (ignore.IgnoreParser, error) {
	patterns, err := getExclusionPatterns(args)
	if err != nil {
		return nil, err
	}
	if len(patterns) == 0 {
		return nil, nil
	}
	return ignore.CompileIgnoreLines(patterns...), nil
}

// getExclusionPatterns prepares a list of patterns to be excluded.
// Patterns passed in the -exclude command line option are prefixed
// with a leading '/' so they are matched against the full path
// relative to PATH.
func getExclusionPatterns(args *argContainer) ([]string, error) {
	patterns := make([]string, len(args.exclude)+len(args.excludeWildcard))
	// add -exclude
	for i, p := range args.exclude {
		patterns[i] = "/" + p
	}
	// add -exclude-wildcard
	copy(patterns[len(args.exclude):], args.excludeWildcard)
	// add -exclude-from
	for _, file := range args.excludeFrom {
		lines, err := getLines(file)
		if err != nil {
			return nil, exitcodes.NewErr("Error reading exclusion patterns: "+err.Error(), exitcodes.ExcludeError)
		}
		patterns = append(patterns, lines...)
	}
	return patterns, nil
}

// getLines reads a file and splits it into lines
func getLines(file string) ([]string, error) {
	buffer, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return strings.Split(string(buffer), "\n"), nil
}

// isExcluded reports whether "relPath" (relative to the walk root, without
// leading slash) is excluded. The root itself can't be excluded.
func isExcluded(excluder ignore.IgnoreParser, relPath string) bool {
	if relPath == "" || relPath == "." {
		return false
	}
	return excluder != nil && excluder.MatchesPath(relPath)
}
