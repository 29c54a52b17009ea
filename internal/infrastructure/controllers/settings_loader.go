package controllers

import (
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/programmeral/codeupdater/internal/domain/entities"
)

const rootFlag = "root"

// addCommonFlags adds the flags shared by every settings-driven subcommand.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().String(rootFlag, "", "Override update_path_options.root_directory")
}

// loadSettings resolves the config file, loads it, applies the CLI overrides
// and configures the log sink. The closer must be closed once the run ends.
func loadSettings(cmd *cobra.Command, log *logger.Logger) (*entities.Settings, io.Closer, error) {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	rootOverride, _ := cmd.Flags().GetString(rootFlag)

	if configPath == "" {
		var err error
		configPath, err = entities.FindConfigFile()
		if err != nil {
			return nil, nil, fmt.Errorf(
				"no config file found: %w\nSpecify one with --config or create .codeupdater.yaml", err)
		}
	}
	log.Infof("Using config file: %s", configPath)

	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if rootOverride != "" {
		settings.UpdatePathOptions.RootDirectory = rootOverride
	}

	closer, err := entities.ConfigureLogger(log, settings.LoggingOptions, verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	return settings, closer, nil
}
