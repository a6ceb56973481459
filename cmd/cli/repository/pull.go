package repository

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/temirov/repostate/internal/gitrepo"
)

const (
	pullCommandUseConstant              = "pull [root ...]"
	pullCommandShortDescriptionConstant = "Integrate remote updates into each repository"
	pullCommandLongDescriptionConstant  = "pull runs git pull in every repository root and reports the repositories that failed."
	pullSuccessMessageTemplateConstant  = "PULLED: %s\n"
)

// PullCommandBuilder assembles the repo pull command.
type PullCommandBuilder struct {
	BuilderDependencies
}

// Build constructs the pull command.
func (builder *PullCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   pullCommandUseConstant,
		Short: pullCommandShortDescriptionConstant,
		Long:  pullCommandLongDescriptionConstant,
		RunE:  builder.run,
	}

	return command, nil
}

func (builder *PullCommandBuilder) run(command *cobra.Command, arguments []string) error {
	return runRepositoryOperation(builder.BuilderDependencies, command, arguments, repositoryOperation{
		name:            "pull",
		successTemplate: pullSuccessMessageTemplateConstant,
		invoke: func(executionContext context.Context, repositoryHandle *gitrepo.Repository) bool {
			return repositoryHandle.Pull(executionContext)
		},
	})
}
