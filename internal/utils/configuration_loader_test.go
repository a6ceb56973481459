package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/repostate/internal/utils"
)

const (
	loaderConfigurationNameConstant   = "config"
	loaderConfigurationTypeConstant   = "yaml"
	loaderEnvironmentPrefixConstant   = "REPOSTATETEST"
	configurationFileNameConstant     = "config.yaml"
	embeddedConfigurationYAMLConstant = "common:\n  log_level: warn\n  log_format: console\n"
	fileConfigurationYAMLConstant     = "common:\n  log_level: debug\ntools:\n  repository:\n    roots:\n      - /workspace/alpha\n      - /workspace/beta\n"
)

type loaderCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type loaderRepositoryConfiguration struct {
	Roots []string `mapstructure:"roots"`
}

type loaderToolsConfiguration struct {
	Repository loaderRepositoryConfiguration `mapstructure:"repository"`
}

type loaderTestConfiguration struct {
	Common loaderCommonConfiguration `mapstructure:"common"`
	Tools  loaderToolsConfiguration  `mapstructure:"tools"`
}

func writeConfigurationFile(testInstance *testing.T, contents string) string {
	testInstance.Helper()

	configurationFilePath := filepath.Join(testInstance.TempDir(), configurationFileNameConstant)
	require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte(contents), 0o600))
	return configurationFilePath
}

func TestConfigurationLoaderAppliesDefaults(testInstance *testing.T) {
	loader := utils.NewConfigurationLoader(loaderConfigurationNameConstant, loaderConfigurationTypeConstant, loaderEnvironmentPrefixConstant, nil)

	configuration := loaderTestConfiguration{}
	_, loadError := loader.LoadConfiguration("", map[string]any{
		"common.log_level":  "info",
		"common.log_format": "structured",
	}, &configuration)

	require.NoError(testInstance, loadError)
	require.Equal(testInstance, "info", configuration.Common.LogLevel)
	require.Equal(testInstance, "structured", configuration.Common.LogFormat)
}

func TestConfigurationLoaderReadsConfigurationFile(testInstance *testing.T) {
	configurationFilePath := writeConfigurationFile(testInstance, fileConfigurationYAMLConstant)
	loader := utils.NewConfigurationLoader(loaderConfigurationNameConstant, loaderConfigurationTypeConstant, loaderEnvironmentPrefixConstant, nil)

	configuration := loaderTestConfiguration{}
	loadedConfiguration, loadError := loader.LoadConfiguration(configurationFilePath, map[string]any{
		"common.log_format": "structured",
	}, &configuration)

	require.NoError(testInstance, loadError)
	require.Equal(testInstance, configurationFilePath, loadedConfiguration.ConfigFileUsed)
	require.Equal(testInstance, "debug", configuration.Common.LogLevel)
	require.Equal(testInstance, "structured", configuration.Common.LogFormat)
	require.Equal(testInstance, []string{"/workspace/alpha", "/workspace/beta"}, configuration.Tools.Repository.Roots)
}

func TestConfigurationLoaderMergesEmbeddedConfiguration(testInstance *testing.T) {
	loader := utils.NewConfigurationLoader(loaderConfigurationNameConstant, loaderConfigurationTypeConstant, loaderEnvironmentPrefixConstant, nil)
	loader.SetEmbeddedConfiguration([]byte(embeddedConfigurationYAMLConstant), loaderConfigurationTypeConstant)

	configuration := loaderTestConfiguration{}
	_, loadError := loader.LoadConfiguration("", nil, &configuration)

	require.NoError(testInstance, loadError)
	require.Equal(testInstance, "warn", configuration.Common.LogLevel)
	require.Equal(testInstance, "console", configuration.Common.LogFormat)
}

func TestConfigurationLoaderEmbeddedConfigurationYieldsToFile(testInstance *testing.T) {
	configurationFilePath := writeConfigurationFile(testInstance, fileConfigurationYAMLConstant)
	loader := utils.NewConfigurationLoader(loaderConfigurationNameConstant, loaderConfigurationTypeConstant, loaderEnvironmentPrefixConstant, nil)
	loader.SetEmbeddedConfiguration([]byte(embeddedConfigurationYAMLConstant), loaderConfigurationTypeConstant)

	configuration := loaderTestConfiguration{}
	_, loadError := loader.LoadConfiguration(configurationFilePath, nil, &configuration)

	require.NoError(testInstance, loadError)
	require.Equal(testInstance, "debug", configuration.Common.LogLevel)
	require.Equal(testInstance, "console", configuration.Common.LogFormat)
}

func TestConfigurationLoaderEnvironmentOverrides(testInstance *testing.T) {
	testInstance.Setenv(loaderEnvironmentPrefixConstant+"_COMMON_LOG_LEVEL", "error")

	loader := utils.NewConfigurationLoader(loaderConfigurationNameConstant, loaderConfigurationTypeConstant, loaderEnvironmentPrefixConstant, nil)

	configuration := loaderTestConfiguration{}
	_, loadError := loader.LoadConfiguration("", map[string]any{
		"common.log_level": "info",
	}, &configuration)

	require.NoError(testInstance, loadError)
	require.Equal(testInstance, "error", configuration.Common.LogLevel)
}

func TestConfigurationLoaderEnvironmentListValues(testInstance *testing.T) {
	testInstance.Setenv(loaderEnvironmentPrefixConstant+"_TOOLS_REPOSITORY_ROOTS", "/workspace/alpha,/workspace/beta")

	loader := utils.NewConfigurationLoader(loaderConfigurationNameConstant, loaderConfigurationTypeConstant, loaderEnvironmentPrefixConstant, nil)

	configuration := loaderTestConfiguration{}
	_, loadError := loader.LoadConfiguration("", map[string]any{
		"tools.repository.roots": []string{},
	}, &configuration)

	require.NoError(testInstance, loadError)
	require.Equal(testInstance, []string{"/workspace/alpha", "/workspace/beta"}, configuration.Tools.Repository.Roots)
}

func TestConfigurationLoaderRejectsMalformedFile(testInstance *testing.T) {
	configurationFilePath := writeConfigurationFile(testInstance, "common: [unbalanced")
	loader := utils.NewConfigurationLoader(loaderConfigurationNameConstant, loaderConfigurationTypeConstant, loaderEnvironmentPrefixConstant, nil)

	configuration := loaderTestConfiguration{}
	_, loadError := loader.LoadConfiguration(configurationFilePath, nil, &configuration)

	require.Error(testInstance, loadError)
}
