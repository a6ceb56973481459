package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestBindCheckoutTargetFlagsUsesDefaultsAndParsesValues(t *testing.T) {
	command := &cobra.Command{}

	values := BindCheckoutTargetFlags(command, CheckoutTargetFlagValues{Branch: "main"}, CheckoutTargetFlagDefinitions{
		Branch: CheckoutTargetFlagDefinition{Name: BranchFlagName, Usage: BranchFlagUsage, Enabled: true},
		Commit: CheckoutTargetFlagDefinition{Name: CommitFlagName, Usage: CommitFlagUsage, Enabled: true},
	})

	require.NotNil(t, values)
	require.Equal(t, "main", values.Branch)
	require.Empty(t, values.Commit)

	require.NoError(t, command.Flags().Parse([]string{"--branch", "release/2024", "--commit", "0a1b2c3"}))
	require.Equal(t, "release/2024", values.Branch)
	require.Equal(t, "0a1b2c3", values.Commit)
}

func TestBindCheckoutTargetFlagsSkipsDisabledDefinitions(t *testing.T) {
	command := &cobra.Command{}

	values := BindCheckoutTargetFlags(command, CheckoutTargetFlagValues{}, CheckoutTargetFlagDefinitions{
		Branch: CheckoutTargetFlagDefinition{Name: BranchFlagName, Usage: BranchFlagUsage, Enabled: true},
	})

	require.NotNil(t, values)
	require.Nil(t, command.Flags().Lookup(CommitFlagName))
	require.NotNil(t, command.Flags().Lookup(BranchFlagName))
}

func TestBindCheckoutTargetFlagsNilCommand(t *testing.T) {
	values := BindCheckoutTargetFlags(nil, CheckoutTargetFlagValues{Commit: "0a1b2c3"}, CheckoutTargetFlagDefinitions{})

	require.NotNil(t, values)
	require.Equal(t, "0a1b2c3", values.Commit)
}
