package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/temirov/repostate/internal/gitrepo"
)

const (
	fetchCommandUseConstant              = "fetch [root ...]"
	fetchCommandShortDescriptionConstant = "Download remote updates for each repository"
	fetchCommandLongDescriptionConstant  = "fetch runs git fetch in every repository root and reports the repositories that failed."
	fetchSuccessMessageTemplateConstant  = "FETCHED: %s\n"
	operationFailureTemplateConstant     = "%s failed in: %s"
	failedPathSeparatorConstant          = ", "
)

// FetchCommandBuilder assembles the repo fetch command.
type FetchCommandBuilder struct {
	BuilderDependencies
}

// Build constructs the fetch command.
func (builder *FetchCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   fetchCommandUseConstant,
		Short: fetchCommandShortDescriptionConstant,
		Long:  fetchCommandLongDescriptionConstant,
		RunE:  builder.run,
	}

	return command, nil
}

func (builder *FetchCommandBuilder) run(command *cobra.Command, arguments []string) error {
	return runRepositoryOperation(builder.BuilderDependencies, command, arguments, repositoryOperation{
		name:            "fetch",
		successTemplate: fetchSuccessMessageTemplateConstant,
		invoke: func(executionContext context.Context, repositoryHandle *gitrepo.Repository) bool {
			return repositoryHandle.Fetch(executionContext)
		},
	})
}

// repositoryOperation describes a per-root git operation executed by the
// fetch, pull, and submodule commands.
type repositoryOperation struct {
	name            string
	successTemplate string
	invoke          func(executionContext context.Context, repositoryHandle *gitrepo.Repository) bool
}

func runRepositoryOperation(dependencies BuilderDependencies, command *cobra.Command, arguments []string, operation repositoryOperation) error {
	configuration := dependencies.resolveConfiguration()
	repositoryRoots := resolveRepositoryRoots(arguments, configuration.Roots)

	resolvedDependencies, dependenciesError := dependencies.resolve()
	if dependenciesError != nil {
		return dependenciesError
	}

	executionContext := commandContext(command)
	failedPaths := make([]string, 0)
	for _, repositoryRoot := range repositoryRoots {
		repositoryHandle, creationError := gitrepo.NewRepository(executionContext, resolvedDependencies, repositoryRoot)
		if creationError != nil {
			return creationError
		}

		if !operation.invoke(executionContext, repositoryHandle) {
			failedPaths = append(failedPaths, repositoryHandle.Path())
			continue
		}
		fmt.Fprintf(command.OutOrStdout(), operation.successTemplate, repositoryHandle.Path())
	}

	if len(failedPaths) > 0 {
		return fmt.Errorf(operationFailureTemplateConstant, operation.name, strings.Join(failedPaths, failedPathSeparatorConstant))
	}
	return nil
}
