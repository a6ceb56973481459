package repository

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/repostate/internal/gitrepo"
	"github.com/temirov/repostate/internal/utils/flags"
)

const (
	cloneCommandUseConstant              = "clone <remote-url> <destination>"
	cloneCommandShortDescriptionConstant = "Clone a repository and derive its state"
	cloneCommandLongDescriptionConstant  = "clone clones the remote URL into the destination path with recursive submodules, then derives the state of the new repository."
	cloneSuccessMessageTemplateConstant  = "CLONED: %s -> %s (%s)\n"
	cloneArgumentCountConstant           = 2
)

// CloneCommandBuilder assembles the repo clone command.
type CloneCommandBuilder struct {
	BuilderDependencies

	shallowFlagValue bool
}

// Build constructs the clone command.
func (builder *CloneCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   cloneCommandUseConstant,
		Short: cloneCommandShortDescriptionConstant,
		Long:  cloneCommandLongDescriptionConstant,
		Args:  cobra.ExactArgs(cloneArgumentCountConstant),
		RunE:  builder.run,
	}

	flags.AddToggleFlag(command.Flags(), &builder.shallowFlagValue, flags.ShallowFlagName, "", false, flags.ShallowFlagUsage)

	return command, nil
}

func (builder *CloneCommandBuilder) run(command *cobra.Command, arguments []string) error {
	remoteURL := arguments[0]
	destinationPath := arguments[1]

	shallow := builder.shallowFlagValue
	if !command.Flags().Changed(flags.ShallowFlagName) {
		shallow = builder.resolveConfiguration().Clone.Shallow
	}

	resolvedDependencies, dependenciesError := builder.resolve()
	if dependenciesError != nil {
		return dependenciesError
	}

	clonedRepository, cloneError := gitrepo.CloneFrom(commandContext(command), resolvedDependencies, remoteURL, destinationPath, shallow)
	if cloneError != nil {
		return cloneError
	}

	fmt.Fprintf(command.OutOrStdout(), cloneSuccessMessageTemplateConstant, remoteURL, clonedRepository.Path(), clonedRepository.Branch())
	return nil
}
