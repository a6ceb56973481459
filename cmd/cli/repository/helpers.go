package repository

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/repostate/internal/execshell"
	"github.com/temirov/repostate/internal/filesystem"
	"github.com/temirov/repostate/internal/gitrepo"
	"github.com/temirov/repostate/internal/ui"
	pathutils "github.com/temirov/repostate/internal/utils/path"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// BuilderDependencies groups the injectable collaborators shared by the
// repository command builders. Zero-value fields resolve to OS-backed
// defaults.
type BuilderDependencies struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider func() bool
	GitExecutor                  gitrepo.GitExecutor
	FileSystem                   gitrepo.FileSystem
	ConfigurationProvider        func() CommandConfiguration
}

func (dependencies BuilderDependencies) resolveLogger() *zap.Logger {
	if dependencies.LoggerProvider == nil {
		return zap.NewNop()
	}
	if logger := dependencies.LoggerProvider(); logger != nil {
		return logger
	}
	return zap.NewNop()
}

// resolve assembles the gitrepo dependency bundle used by every repository
// command. Human-readable logging attaches a console event observer so each
// git invocation surfaces on the terminal.
func (dependencies BuilderDependencies) resolve() (gitrepo.Dependencies, error) {
	logger := dependencies.resolveLogger()

	gitExecutor := dependencies.GitExecutor
	if gitExecutor == nil {
		commandRunner := execshell.NewOSCommandRunner()

		humanReadableLogging := dependencies.HumanReadableLoggingProvider != nil && dependencies.HumanReadableLoggingProvider()
		if humanReadableLogging {
			shellExecutor, creationError := execshell.NewShellExecutorWithObserver(logger, commandRunner, ui.NewConsoleCommandEventLogger(logger))
			if creationError != nil {
				return gitrepo.Dependencies{}, creationError
			}
			gitExecutor = shellExecutor
		} else {
			shellExecutor, creationError := execshell.NewShellExecutor(logger, commandRunner)
			if creationError != nil {
				return gitrepo.Dependencies{}, creationError
			}
			gitExecutor = shellExecutor
		}
	}

	resolvedFileSystem := dependencies.FileSystem
	if resolvedFileSystem == nil {
		resolvedFileSystem = filesystem.OSFileSystem{}
	}

	return gitrepo.Dependencies{
		GitExecutor: gitExecutor,
		FileSystem:  resolvedFileSystem,
		Logger:      logger,
	}, nil
}

// resolveConfiguration returns the sanitized command configuration, falling
// back to defaults when no provider is wired.
func (dependencies BuilderDependencies) resolveConfiguration() CommandConfiguration {
	if dependencies.ConfigurationProvider == nil {
		return DefaultConfiguration().sanitize()
	}
	return dependencies.ConfigurationProvider().sanitize()
}

// resolveRepositoryRoots merges positional arguments with configured roots.
// Positional arguments win when present; both sources pass through the path
// sanitizer so toggle literals and nested duplicates never reach git.
func resolveRepositoryRoots(arguments []string, configuredRoots []string) []string {
	sanitizer := pathutils.NewRepositoryPathSanitizerWithConfiguration(nil, pathutils.RepositoryPathSanitizerConfiguration{
		ExcludeBooleanLiteralCandidates: true,
		PruneNestedPaths:                true,
	})

	if sanitizedArguments := sanitizer.Sanitize(arguments); len(sanitizedArguments) > 0 {
		return sanitizedArguments
	}
	if sanitizedRoots := sanitizer.Sanitize(configuredRoots); len(sanitizedRoots) > 0 {
		return sanitizedRoots
	}
	return []string{defaultRepositoryRootConstant}
}

func commandContext(command *cobra.Command) context.Context {
	if command != nil && command.Context() != nil {
		return command.Context()
	}
	return context.Background()
}
