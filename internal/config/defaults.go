package config

const (
	defaultDevicePath              = "/dev/sr0"
	defaultLockDir                 = "~/.local/state/platter/locks"
	defaultWaitTimeoutSeconds      = 60
	defaultWaitPollIntervalSeconds = 1
	defaultOutputFormat            = "auto"
	defaultLogFormat               = "console"
	defaultLogLevel                = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Device: Device{
			Path:    defaultDevicePath,
			LockDir: defaultLockDir,
		},
		Wait: Wait{
			TimeoutSeconds:      defaultWaitTimeoutSeconds,
			PollIntervalSeconds: defaultWaitPollIntervalSeconds,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
