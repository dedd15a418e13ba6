package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/inkwell/internal/configloader"
	"github.com/yaklabco/inkwell/internal/logging"
	"github.com/yaklabco/inkwell/pkg/config"
	"github.com/yaklabco/inkwell/pkg/fsutil"
	"github.com/yaklabco/inkwell/pkg/session"
)

// loadConfig resolves the effective configuration for a command, merging
// config files, environment variables, and CLI flags.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	if colorMode, err := cmd.Flags().GetString("color"); err == nil {
		cliCfg.Color = colorMode
	}
	if debug, err := cmd.Flags().GetBool("debug"); err == nil {
		cliCfg.Debug = debug
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	logger := logging.FromContext(ctx)
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", result.LoadedFrom)
	}

	return result.Config, nil
}

// sessionStore builds the session store from the resolved configuration.
func sessionStore(cfg *config.Config) (*session.Store, error) {
	backup := fsutil.BackupConfig{
		Enabled: cfg.Backups.Enabled,
		Mode:    fsutil.BackupMode(cfg.Backups.Mode),
	}
	store, err := session.NewStore(cfg.StateFile, backup)
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}
	return store, nil
}
