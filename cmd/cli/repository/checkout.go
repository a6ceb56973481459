package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/temirov/repostate/internal/gitrepo"
	"github.com/temirov/repostate/internal/utils/flags"
)

const (
	checkoutCommandUseConstant              = "checkout"
	checkoutCommandShortDescriptionConstant = "Switch each repository to a branch or commit"
	checkoutCommandLongDescriptionConstant  = "checkout switches every repository root to the requested branch or commit hash. The branch takes precedence when both are supplied."
	checkoutSuccessMessageTemplateConstant  = "CHECKED OUT: %s (%s)\n"
	checkoutOperationNameConstant           = "checkout"
	missingCheckoutTargetMessageConstant    = "checkout requires --branch or --commit"
)

// CheckoutCommandBuilder assembles the repo checkout command.
type CheckoutCommandBuilder struct {
	BuilderDependencies

	targetFlagValues *flags.CheckoutTargetFlagValues
	rootFlagValues   []string
}

// Build constructs the checkout command.
func (builder *CheckoutCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   checkoutCommandUseConstant,
		Short: checkoutCommandShortDescriptionConstant,
		Long:  checkoutCommandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	builder.targetFlagValues = flags.BindCheckoutTargetFlags(command, flags.CheckoutTargetFlagValues{}, flags.CheckoutTargetFlagDefinitions{
		Branch: flags.CheckoutTargetFlagDefinition{Name: flags.BranchFlagName, Usage: flags.BranchFlagUsage, Enabled: true},
		Commit: flags.CheckoutTargetFlagDefinition{Name: flags.CommitFlagName, Usage: flags.CommitFlagUsage, Enabled: true},
	})
	command.Flags().StringArrayVar(&builder.rootFlagValues, flags.DefaultRootFlagName, nil, flags.DefaultRootFlagUsage)

	return command, nil
}

func (builder *CheckoutCommandBuilder) run(command *cobra.Command, _ []string) error {
	checkoutTarget, targetError := builder.resolveTarget()
	if targetError != nil {
		if command != nil {
			_ = command.Help()
		}
		return targetError
	}

	configuration := builder.resolveConfiguration()
	repositoryRoots := resolveRepositoryRoots(builder.rootFlagValues, configuration.Roots)

	resolvedDependencies, dependenciesError := builder.resolve()
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

		checkedOut, checkoutError := repositoryHandle.Checkout(executionContext, checkoutTarget)
		if checkoutError != nil {
			return checkoutError
		}
		if !checkedOut {
			failedPaths = append(failedPaths, repositoryHandle.Path())
			continue
		}
		fmt.Fprintf(command.OutOrStdout(), checkoutSuccessMessageTemplateConstant, repositoryHandle.Path(), builder.targetLabel())
	}

	if len(failedPaths) > 0 {
		return fmt.Errorf(operationFailureTemplateConstant, checkoutOperationNameConstant, strings.Join(failedPaths, failedPathSeparatorConstant))
	}
	return nil
}

// resolveTarget validates the flag combination before any repository work
// starts; branch selection wins when both flags carry values.
func (builder *CheckoutCommandBuilder) resolveTarget() (gitrepo.CheckoutTarget, error) {
	branchName := strings.TrimSpace(builder.targetFlagValues.Branch)
	commitHash := strings.TrimSpace(builder.targetFlagValues.Commit)

	switch {
	case len(branchName) > 0:
		return gitrepo.BranchCheckoutTarget(branchName), nil
	case len(commitHash) > 0:
		return gitrepo.CommitCheckoutTarget(commitHash), nil
	default:
		return gitrepo.CheckoutTarget{}, errors.New(missingCheckoutTargetMessageConstant)
	}
}

func (builder *CheckoutCommandBuilder) targetLabel() string {
	if branchName := strings.TrimSpace(builder.targetFlagValues.Branch); len(branchName) > 0 {
		return branchName
	}
	return strings.TrimSpace(builder.targetFlagValues.Commit)
}
