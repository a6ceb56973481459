package repository

import (
	pathutils "github.com/temirov/repostate/internal/utils/path"
)

const (
	configurationRootsKeyConstant        = "roots"
	configurationCloneKeyConstant        = "clone"
	configurationCloneShallowKeyConstant = "shallow"
	configurationKeySeparatorConstant    = "."
	defaultRepositoryRootConstant        = "."
)

// CommandConfiguration captures configuration shared by repository commands.
type CommandConfiguration struct {
	Roots []string           `mapstructure:"roots"`
	Clone CloneConfiguration `mapstructure:"clone"`
}

// CloneConfiguration describes defaults for the clone command.
type CloneConfiguration struct {
	Shallow bool `mapstructure:"shallow"`
}

// DefaultConfiguration returns baseline configuration values for repository commands.
func DefaultConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Roots: []string{defaultRepositoryRootConstant},
		Clone: CloneConfiguration{Shallow: false},
	}
}

// DefaultConfigurationValues produces Viper defaults for repository commands under the provided key.
func DefaultConfigurationValues(configurationKey string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		configurationKey + configurationKeySeparatorConstant + configurationRootsKeyConstant: defaults.Roots,
		configurationKey + configurationKeySeparatorConstant + configurationCloneKeyConstant +
			configurationKeySeparatorConstant + configurationCloneShallowKeyConstant: defaults.Clone.Shallow,
	}
}

// sanitize normalizes configured repository roots, falling back to the current
// directory when no usable root remains.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitizer := pathutils.NewRepositoryPathSanitizerWithConfiguration(nil, pathutils.RepositoryPathSanitizerConfiguration{
		ExcludeBooleanLiteralCandidates: true,
		PruneNestedPaths:                true,
	})
	sanitized.Roots = sanitizer.Sanitize(configuration.Roots)
	if len(sanitized.Roots) == 0 {
		sanitized.Roots = []string{defaultRepositoryRootConstant}
	}

	return sanitized
}
