package pathutils

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

const (
	booleanLiteralTrueValueConstant  = "true"
	booleanLiteralFalseValueConstant = "false"
	windowsOperatingSystemConstant   = "windows"
)

// RepositoryPathSanitizerConfiguration controls repository path sanitization behavior.
type RepositoryPathSanitizerConfiguration struct {
	// ExcludeBooleanLiteralCandidates removes arguments that represent boolean
	// literals, which toggle-style flags may leave behind as positional values.
	ExcludeBooleanLiteralCandidates bool
	// PruneNestedPaths removes repository paths nested within other provided paths.
	PruneNestedPaths bool
}

// RepositoryPathSanitizer normalizes repository path inputs consistently across commands.
type RepositoryPathSanitizer struct {
	homeExpander  *HomeExpander
	configuration RepositoryPathSanitizerConfiguration
}

// NewRepositoryPathSanitizer constructs a RepositoryPathSanitizer with default behavior.
func NewRepositoryPathSanitizer() *RepositoryPathSanitizer {
	return NewRepositoryPathSanitizerWithConfiguration(nil, RepositoryPathSanitizerConfiguration{})
}

// NewRepositoryPathSanitizerWithConfiguration constructs a RepositoryPathSanitizer using the provided expander and configuration.
func NewRepositoryPathSanitizerWithConfiguration(homeExpander *HomeExpander, configuration RepositoryPathSanitizerConfiguration) *RepositoryPathSanitizer {
	if homeExpander == nil {
		homeExpander = NewHomeExpander()
	}
	return &RepositoryPathSanitizer{homeExpander: homeExpander, configuration: configuration}
}

// Sanitize trims whitespace, expands the user's home directory, and removes
// disallowed values. An input yielding no usable paths returns nil.
func (sanitizer *RepositoryPathSanitizer) Sanitize(candidatePaths []string) []string {
	expander := sanitizer.homeExpander
	configuration := sanitizer.configuration

	sanitizedPaths := make([]string, 0, len(candidatePaths))
	for _, candidatePath := range candidatePaths {
		trimmedCandidate := strings.TrimSpace(candidatePath)
		if len(trimmedCandidate) == 0 {
			continue
		}
		if configuration.ExcludeBooleanLiteralCandidates && isBooleanLiteral(trimmedCandidate) {
			continue
		}

		expandedPath := expander.Expand(trimmedCandidate)
		if len(expandedPath) == 0 {
			continue
		}

		sanitizedPaths = append(sanitizedPaths, expandedPath)
	}

	if len(sanitizedPaths) == 0 {
		return nil
	}
	if configuration.PruneNestedPaths {
		return pruneNestedPaths(sanitizedPaths)
	}
	return sanitizedPaths
}

func isBooleanLiteral(candidate string) bool {
	loweredCandidate := strings.ToLower(candidate)
	return loweredCandidate == booleanLiteralTrueValueConstant || loweredCandidate == booleanLiteralFalseValueConstant
}

// pruneNestedPaths drops duplicates and paths contained within another
// candidate, preserving the original declaration order of the survivors.
func pruneNestedPaths(candidatePaths []string) []string {
	type pathDetails struct {
		originalIndex int
		value         string
		comparison    string
	}

	pathEntries := make([]pathDetails, 0, len(candidatePaths))
	for pathIndex, candidatePath := range candidatePaths {
		pathEntries = append(pathEntries, pathDetails{
			originalIndex: pathIndex,
			value:         candidatePath,
			comparison:    comparisonPath(canonicalizePath(candidatePath)),
		})
	}

	sort.SliceStable(pathEntries, func(first int, second int) bool {
		if len(pathEntries[first].comparison) == len(pathEntries[second].comparison) {
			return pathEntries[first].comparison < pathEntries[second].comparison
		}
		return len(pathEntries[first].comparison) < len(pathEntries[second].comparison)
	})

	selectedEntries := make([]pathDetails, 0, len(pathEntries))
	for _, candidateEntry := range pathEntries {
		nested := false
		for _, selectedEntry := range selectedEntries {
			if candidateEntry.comparison == selectedEntry.comparison || isNestedPath(selectedEntry.comparison, candidateEntry.comparison) {
				nested = true
				break
			}
		}
		if !nested {
			selectedEntries = append(selectedEntries, candidateEntry)
		}
	}

	sort.SliceStable(selectedEntries, func(first int, second int) bool {
		return selectedEntries[first].originalIndex < selectedEntries[second].originalIndex
	})

	prunedPaths := make([]string, 0, len(selectedEntries))
	for _, selectedEntry := range selectedEntries {
		prunedPaths = append(prunedPaths, selectedEntry.value)
	}
	return prunedPaths
}

func canonicalizePath(candidatePath string) string {
	cleanedPath := filepath.Clean(candidatePath)
	if absolutePath, absoluteError := filepath.Abs(cleanedPath); absoluteError == nil {
		return filepath.Clean(absolutePath)
	}
	return cleanedPath
}

func comparisonPath(candidatePath string) string {
	comparison := filepath.Clean(candidatePath)
	if runtime.GOOS == windowsOperatingSystemConstant {
		comparison = strings.ToLower(comparison)
	}
	return comparison
}

func isNestedPath(parentPath string, candidatePath string) bool {
	if candidatePath == parentPath {
		return true
	}
	if len(candidatePath) <= len(parentPath) {
		return false
	}
	if !strings.HasPrefix(candidatePath, parentPath) {
		return false
	}
	if parentPath[len(parentPath)-1] == os.PathSeparator {
		return true
	}
	return candidatePath[len(parentPath)] == os.PathSeparator
}
