package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// InitCmd writes a config file with the effective settings, unless one
// exists, and makes sure storage is ready.
type InitCmd struct {
	Force bool `help:"Overwrite an existing config file."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Session.Provider().Init(); err != nil {
		return err
	}

	if ctx.ConfigPath != "" {
		if _, err := os.Stat(ctx.ConfigPath); err == nil && !c.Force {
			ctx.printf("Config already exists at: %s\n", ctx.ConfigPath)
		} else {
			data, err := yaml.Marshal(ctx.Config)
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			if err := os.MkdirAll(filepath.Dir(ctx.ConfigPath), 0o755); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}
			if err := os.WriteFile(ctx.ConfigPath, data, 0o644); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			ctx.printf("Wrote config to: %s\n", ctx.ConfigPath)
		}
	}

	ctx.printf("Initialized lifehub storage at: %s\n", ctx.Session.Provider().GetConfigPath())
	return nil
}
