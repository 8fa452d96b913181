package main

import (
	"context"

	"github.com/ivoronin/nvmmatch/internal/config"
	"github.com/ivoronin/nvmmatch/internal/nvm"
)

// newClient builds an nvm client from the config file, environment and flags.
// Flags win over the config file, which wins over the environment.
func newClient(ctx context.Context) (*nvm.Client, error) {
	logger := loggerFromContext(ctx)

	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(config.Config{Shell: shellPath, NVMDir: nvmDir})

	logger.Debug("configuration", "file", path, "shell", cfg.Shell, "nvm_dir", cfg.NVMDir)

	return nvm.NewClient(&nvm.ShellRunner{
		Shell:  cfg.Shell,
		NVMDir: cfg.NVMDir,
		Logger: logger,
	}), nil
}
