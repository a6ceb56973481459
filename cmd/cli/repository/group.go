// Package repository assembles the CLI commands that inspect and synchronize
// local git repositories.
package repository

import "github.com/spf13/cobra"

const (
	groupUseConstant              = "repo"
	groupShortDescriptionConstant = "Inspect and synchronize local git repositories"
	groupLongDescriptionConstant  = "repo groups subcommands that derive repository state and run git synchronization operations."
)

// CommandGroupBuilder assembles the repo command group.
type CommandGroupBuilder struct {
	BuilderDependencies
}

// Build constructs the repo command hierarchy.
func (builder *CommandGroupBuilder) Build() (*cobra.Command, error) {
	groupCommand := &cobra.Command{
		Use:   groupUseConstant,
		Short: groupShortDescriptionConstant,
		Long:  groupLongDescriptionConstant,
	}

	subcommandBuilders := []interface {
		Build() (*cobra.Command, error)
	}{
		&StatusCommandBuilder{BuilderDependencies: builder.BuilderDependencies},
		&FetchCommandBuilder{BuilderDependencies: builder.BuilderDependencies},
		&PullCommandBuilder{BuilderDependencies: builder.BuilderDependencies},
		&CheckoutCommandBuilder{BuilderDependencies: builder.BuilderDependencies},
		&CloneCommandBuilder{BuilderDependencies: builder.BuilderDependencies},
		&SubmoduleCommandBuilder{BuilderDependencies: builder.BuilderDependencies},
	}

	for _, subcommandBuilder := range subcommandBuilders {
		subcommand, buildError := subcommandBuilder.Build()
		if buildError != nil {
			return nil, buildError
		}
		groupCommand.AddCommand(subcommand)
	}

	return groupCommand, nil
}
