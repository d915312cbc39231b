package main

import (
	"log/slog"
	"strings"
	"sync"

	"platter/internal/config"
	"platter/internal/logging"
)

type commandContext struct {
	configFlag *string
	deviceFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, deviceFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		deviceFlag: deviceFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// devicePath resolves the drive to operate on: positional argument, then the
// --device flag, then the configured default.
func (c *commandContext) devicePath(args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return strings.TrimSpace(args[0]), nil
	}
	if c.deviceFlag != nil && strings.TrimSpace(*c.deviceFlag) != "" {
		return strings.TrimSpace(*c.deviceFlag), nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	return cfg.Device.Path, nil
}

func (c *commandContext) newLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
}
