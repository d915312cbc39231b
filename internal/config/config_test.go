package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize() error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if cfg.Device.Path != "/dev/sr0" {
		t.Errorf("default device path = %q", cfg.Device.Path)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[device]
path = "/dev/sr1"

[output]
format = "json"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !exists || resolved != path {
		t.Errorf("Load() resolved=%q exists=%v", resolved, exists)
	}
	if cfg.Device.Path != "/dev/sr1" {
		t.Errorf("device path = %q, want /dev/sr1", cfg.Device.Path)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("output format = %q, want json", cfg.Output.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
	// Unset sections fall back to defaults.
	if cfg.Wait.TimeoutSeconds != defaultWaitTimeoutSeconds {
		t.Errorf("wait timeout = %d, want default", cfg.Wait.TimeoutSeconds)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if exists {
		t.Error("exists = true for missing file")
	}
	if cfg.Device.Path != "/dev/sr0" {
		t.Errorf("device path = %q, want default", cfg.Device.Path)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad output format", "[output]\nformat = \"xml\"\n", "output.format"},
		{"bad log format", "[logging]\nformat = \"pretty\"\n", "logging.format"},
		{"bad log level", "[logging]\nlevel = \"verbose\"\n", "logging.level"},
		{"negative wait", "[wait]\ntimeout_seconds = -5\n", "wait.timeout_seconds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestCreateSampleParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample() error: %v", err)
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load(sample) error: %v", err)
	}
	if !exists {
		t.Fatal("sample config not detected")
	}
	if cfg.Device.Path != "/dev/sr0" {
		t.Errorf("sample device path = %q", cfg.Device.Path)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/foo")
	if err != nil {
		t.Fatalf("ExpandPath() error: %v", err)
	}
	if got != filepath.Join(home, "foo") {
		t.Errorf("ExpandPath(~/foo) = %q", got)
	}

	if got, _ := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want empty", got)
	}
}
