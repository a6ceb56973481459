package repository

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/temirov/repostate/internal/gitrepo"
	"github.com/temirov/repostate/internal/utils/flags"
)

const (
	submoduleCommandUseConstant              = "submodule <command> [argument ...]"
	submoduleCommandShortDescriptionConstant = "Run a git submodule subcommand in each repository"
	submoduleCommandLongDescriptionConstant  = "submodule forwards the named git submodule subcommand, with any trailing arguments, to every repository root."
	submoduleOperationNameConstant           = "submodule"
	submoduleMinimumArgumentCountConstant    = 1
)

// SubmoduleCommandBuilder assembles the repo submodule command.
type SubmoduleCommandBuilder struct {
	BuilderDependencies

	rootFlagValues []string
}

// Build constructs the submodule command.
func (builder *SubmoduleCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   submoduleCommandUseConstant,
		Short: submoduleCommandShortDescriptionConstant,
		Long:  submoduleCommandLongDescriptionConstant,
		Args:  cobra.MinimumNArgs(submoduleMinimumArgumentCountConstant),
		RunE:  builder.run,
	}

	command.Flags().StringArrayVar(&builder.rootFlagValues, flags.DefaultRootFlagName, nil, flags.DefaultRootFlagUsage)
	command.Flags().SetInterspersed(false)

	return command, nil
}

func (builder *SubmoduleCommandBuilder) run(command *cobra.Command, arguments []string) error {
	submoduleSubcommand := arguments[0]
	forwardedArguments := arguments[1:]

	return runRepositoryOperation(builder.BuilderDependencies, command, builder.rootFlagValues, repositoryOperation{
		name:            submoduleOperationNameConstant,
		successTemplate: submoduleSuccessMessage(submoduleSubcommand),
		invoke: func(executionContext context.Context, repositoryHandle *gitrepo.Repository) bool {
			return repositoryHandle.Submodule(executionContext, submoduleSubcommand, forwardedArguments...)
		},
	})
}

func submoduleSuccessMessage(submoduleSubcommand string) string {
	return "SUBMODULE " + submoduleSubcommand + ": %s\n"
}
