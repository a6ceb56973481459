package execshell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildSuccessMessageForAbbrevRefReportsBranchName(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"rev-parse", "--abbrev-ref", "HEAD"},
			WorkingDirectory: "/workspace/repo",
		},
	}

	message := formatter.BuildSuccessMessage(command)

	require.Equal(t, "/workspace/repo is in a detached HEAD state", message)
}

func TestBuildStartedMessageForCloneNamesSourceAndDestination(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments: []string{"clone", "--depth", "1", "--recurse-submodules", "https://example.com/project.git", "/workspace/project"},
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Cloning https://example.com/project.git into /workspace/project", message)
}

func TestBuildFailureMessageForSubmoduleIncludesExitCodeAndStandardError(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"submodule", "update", "--init"},
			WorkingDirectory: "/workspace/repo",
		},
	}

	message := formatter.BuildFailureMessage(command, ExecutionResult{ExitCode: 2, StandardError: "fatal: no submodule mapping"})

	require.Equal(t, "Submodule update failed in /workspace/repo (exit code 2: fatal: no submodule mapping)", message)
}
