package main

import (
	"bytes"
	"testing"
)

func TestResolveOutputFormat(t *testing.T) {
	buf := &bytes.Buffer{}

	tests := []struct {
		name        string
		flagValue   string
		configValue string
		want        string
	}{
		{"flag wins over config", "table", "json", "table"},
		{"config used when flag empty", "", "json", "json"},
		{"auto falls back to json off-terminal", "", "auto", "json"},
		{"everything empty defaults to json off-terminal", "", "", "json"},
		{"explicit json", "json", "auto", "json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveOutputFormat(tt.flagValue, tt.configValue, buf)
			if got != tt.want {
				t.Errorf("resolveOutputFormat(%q, %q) = %q, want %q", tt.flagValue, tt.configValue, got, tt.want)
			}
		})
	}
}

func TestIsTerminalNonFile(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Error("buffer reported as terminal")
	}
}
