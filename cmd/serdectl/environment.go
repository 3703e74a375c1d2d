package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/hengadev/serde"
	"github.com/hengadev/serde/profile"
	"github.com/hengadev/serde/profiles/ble"
	"github.com/hengadev/serde/profiles/sensortag"
)

// environment is what every command needs: the resolved configuration and a
// registry of every bundled profile.
type environment struct {
	config   serde.Config
	registry *profile.Registry
}

func newEnvironment(configPath, envFile string, logOutput io.Writer) (*environment, error) {
	if configPath == "" {
		if _, err := os.Stat(serde.DefaultConfigFile); err == nil {
			configPath = serde.DefaultConfigFile
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}

	cfg, err := serde.LoadConfig(configPath, envFiles...)
	if err != nil {
		return nil, err
	}

	base, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	base.Observer = cfg.Observer(logOutput)
	options := []serde.Option{serde.WithOptions(base)}

	registry := profile.NewRegistry()
	if err := ble.Register(registry, options...); err != nil {
		return nil, fmt.Errorf("failed to register profiles: %w", err)
	}
	if err := sensortag.Register(registry, options...); err != nil {
		return nil, fmt.Errorf("failed to register profiles: %w", err)
	}

	return &environment{config: cfg, registry: registry}, nil
}
