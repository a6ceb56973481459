// Package flags provides helpers for binding standardized flags to Cobra commands.
package flags

import "github.com/spf13/cobra"

const (
	// DefaultRootFlagName exposes the shared repository root flag name.
	DefaultRootFlagName = "root"
	// DefaultRootFlagUsage describes the shared repository root flag purpose.
	DefaultRootFlagUsage = "Repository roots to inspect (repeatable)"
	// BranchFlagName exposes the shared branch selection flag name.
	BranchFlagName = "branch"
	// BranchFlagUsage describes the shared branch selection flag purpose.
	BranchFlagUsage = "Branch name to check out"
	// CommitFlagName exposes the shared commit selection flag name.
	CommitFlagName = "commit"
	// CommitFlagUsage describes the shared commit selection flag purpose.
	CommitFlagUsage = "Commit hash to check out"
	// ShallowFlagName exposes the shared shallow clone flag name.
	ShallowFlagName = "shallow"
	// ShallowFlagUsage describes the shared shallow clone flag purpose.
	ShallowFlagUsage = "Clone with depth 1 and shallow submodules"
)

// CheckoutTargetFlagDefinition captures configuration for a checkout target flag.
type CheckoutTargetFlagDefinition struct {
	Name    string
	Usage   string
	Enabled bool
}

// CheckoutTargetFlagDefinitions groups checkout target flag definitions.
type CheckoutTargetFlagDefinitions struct {
	Branch CheckoutTargetFlagDefinition
	Commit CheckoutTargetFlagDefinition
}

// CheckoutTargetFlagValues stores checkout target flag values.
type CheckoutTargetFlagValues struct {
	Branch string
	Commit string
}

// BindCheckoutTargetFlags attaches checkout target flags to the provided command.
func BindCheckoutTargetFlags(command *cobra.Command, defaults CheckoutTargetFlagValues, definitions CheckoutTargetFlagDefinitions) *CheckoutTargetFlagValues {
	values := defaults
	if command == nil {
		return &values
	}

	flagSet := command.Flags()
	if definitions.Branch.Enabled && len(definitions.Branch.Name) > 0 {
		flagSet.StringVar(&values.Branch, definitions.Branch.Name, defaults.Branch, definitions.Branch.Usage)
	}
	if definitions.Commit.Enabled && len(definitions.Commit.Name) > 0 {
		flagSet.StringVar(&values.Commit, definitions.Commit.Name, defaults.Commit, definitions.Commit.Usage)
	}

	return &values
}
