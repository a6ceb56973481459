package repository

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/temirov/repostate/internal/gitrepo"
)

const (
	statusCommandUseConstant              = "status [root ...]"
	statusCommandShortDescriptionConstant = "Report derived repository state"
	statusCommandLongDescriptionConstant  = "status derives the branch, remotes, head commit, and cleanliness of each repository root and renders the result as YAML."
	statusEncodingErrorTemplateConstant   = "unable to encode repository state: %w"
)

// repositoryStateReport is the YAML projection of a derived repository handle.
type repositoryStateReport struct {
	Path        string              `yaml:"path"`
	Exists      bool                `yaml:"exists"`
	Initialized bool                `yaml:"initialized"`
	Bare        bool                `yaml:"bare"`
	Dirty       bool                `yaml:"dirty"`
	Branch      string              `yaml:"branch,omitempty"`
	Detached    bool                `yaml:"detached"`
	Head        string              `yaml:"head,omitempty"`
	Remotes     []remoteStateReport `yaml:"remotes,omitempty"`
}

type remoteStateReport struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Protocol string `yaml:"protocol"`
}

// StatusCommandBuilder assembles the repo status command.
type StatusCommandBuilder struct {
	BuilderDependencies
}

// Build constructs the status command.
func (builder *StatusCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   statusCommandUseConstant,
		Short: statusCommandShortDescriptionConstant,
		Long:  statusCommandLongDescriptionConstant,
		RunE:  builder.run,
	}

	return command, nil
}

func (builder *StatusCommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()
	repositoryRoots := resolveRepositoryRoots(arguments, configuration.Roots)

	repositoryDependencies, dependenciesError := builder.resolve()
	if dependenciesError != nil {
		return dependenciesError
	}

	stateReports := make([]repositoryStateReport, 0, len(repositoryRoots))
	for _, repositoryRoot := range repositoryRoots {
		repositoryHandle, creationError := gitrepo.NewRepository(commandContext(command), repositoryDependencies, repositoryRoot)
		if creationError != nil {
			return creationError
		}
		stateReports = append(stateReports, buildStateReport(repositoryHandle))
	}

	encodedReports, encodingError := yaml.Marshal(stateReports)
	if encodingError != nil {
		return fmt.Errorf(statusEncodingErrorTemplateConstant, encodingError)
	}

	fmt.Fprint(command.OutOrStdout(), string(encodedReports))
	return nil
}

func buildStateReport(repositoryHandle *gitrepo.Repository) repositoryStateReport {
	branchName, _ := repositoryHandle.Branch().Name()

	remoteCollection := repositoryHandle.Remotes()
	remoteReports := make([]remoteStateReport, 0, remoteCollection.Len())
	for _, remoteName := range remoteCollection.Names() {
		remote, _ := remoteCollection.Get(remoteName)
		remoteReports = append(remoteReports, remoteStateReport{
			Name:     remoteName,
			URL:      remote.URL,
			Protocol: string(gitrepo.DetectRemoteProtocol(remote.URL)),
		})
	}

	return repositoryStateReport{
		Path:        repositoryHandle.Path(),
		Exists:      repositoryHandle.Exists(),
		Initialized: repositoryHandle.Initialized(),
		Bare:        repositoryHandle.Bare(),
		Dirty:       repositoryHandle.Dirty(),
		Branch:      branchName,
		Detached:    repositoryHandle.Branch().Detached(),
		Head:        repositoryHandle.Head().Commit,
		Remotes:     remoteReports,
	}
}
