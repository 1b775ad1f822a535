package main

import (
	"fmt"

	"github.com/jonathan/career-agent/internal/config"
	"github.com/jonathan/career-agent/internal/resources"
)

// resolveConfig merges flag values over the optional config file, the
// environment, and built-in defaults. Flags win.
func resolveConfig() (config.Config, error) {
	flagCfg := config.Config{
		ResourcesDir: rootResourcesDir,
		Verbose:      rootVerbose,
	}

	fileCfg := config.Config{}
	if rootConfigPath != "" {
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		fileCfg = *loaded
	}

	return flagCfg.MergeWithDefaults(fileCfg), nil
}

// loadStore loads the reference data store. A load failure is a fatal
// startup condition: no command runs against a partial store.
func loadStore(cfg config.Config) (*resources.Store, error) {
	store, err := resources.Load(cfg.ResourcesDir)
	if err != nil {
		return nil, fmt.Errorf("cannot start without reference data: %w", err)
	}
	return store, nil
}
