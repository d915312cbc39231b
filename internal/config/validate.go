package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDevice(); err != nil {
		return err
	}
	if err := c.validateWait(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDevice() error {
	if c.Device.Path == "" {
		return errors.New("device.path must be set")
	}
	return nil
}

func (c *Config) validateWait() error {
	if c.Wait.TimeoutSeconds < 0 {
		return errors.New("wait.timeout_seconds must not be negative")
	}
	if c.Wait.PollIntervalSeconds < 0 {
		return errors.New("wait.poll_interval_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "auto", "json", "table":
		return nil
	default:
		return fmt.Errorf("output.format must be auto, json, or table (got %q)", c.Output.Format)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
	return nil
}
