package pathutils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/repostate/internal/utils/path"
)

func TestRepositoryPathSanitizerNormalizesInputs(testInstance *testing.T) {
	homeDirectory, homeDirectoryError := os.UserHomeDir()
	require.NoError(testInstance, homeDirectoryError)

	temporaryDirectory := testInstance.TempDir()
	absolutePath := filepath.Join(temporaryDirectory, "sanitized-repository")
	tildeInput := filepath.Join("~", "Projects", "example")
	expandedTilde := filepath.Join(homeDirectory, "Projects", "example")

	testCases := []struct {
		name            string
		sanitizer       *pathutils.RepositoryPathSanitizer
		inputs          []string
		expectedOutputs []string
	}{
		{
			name:            "default_configuration",
			sanitizer:       pathutils.NewRepositoryPathSanitizer(),
			inputs:          []string{"", "  " + absolutePath + "\t", "  " + tildeInput},
			expectedOutputs: []string{absolutePath, expandedTilde},
		},
		{
			name: "boolean_literals_excluded",
			sanitizer: pathutils.NewRepositoryPathSanitizerWithConfiguration(nil, pathutils.RepositoryPathSanitizerConfiguration{
				ExcludeBooleanLiteralCandidates: true,
			}),
			inputs:          []string{"TRUE", "False", tildeInput},
			expectedOutputs: []string{expandedTilde},
		},
		{
			name: "nested_paths_pruned",
			sanitizer: pathutils.NewRepositoryPathSanitizerWithConfiguration(nil, pathutils.RepositoryPathSanitizerConfiguration{
				PruneNestedPaths: true,
			}),
			inputs: []string{
				filepath.Join(temporaryDirectory, "parent", "child"),
				filepath.Join(temporaryDirectory, "parent"),
				filepath.Join(temporaryDirectory, "sibling"),
				filepath.Join(temporaryDirectory, "parent"),
			},
			expectedOutputs: []string{
				filepath.Join(temporaryDirectory, "parent"),
				filepath.Join(temporaryDirectory, "sibling"),
			},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedOutputs, testCase.sanitizer.Sanitize(testCase.inputs))
		})
	}
}

func TestRepositoryPathSanitizerReturnsNilForEmptyResults(testInstance *testing.T) {
	sanitizer := pathutils.NewRepositoryPathSanitizer()

	require.Nil(testInstance, sanitizer.Sanitize([]string{"   ", "\n"}))
}
