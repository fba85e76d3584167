package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "unitgen", configBaseName)
	assert.Equal(t, "unitgen.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "root", rootConfigKey)
	assert.Equal(t, "mocks.dir", mocksDirConfigKey)
	assert.Equal(t, "mocks.imports", importsConfigKey)
	assert.Equal(t, "mocks.testable_imports", testableImportsConfigKey)
	assert.Equal(t, "tools.sourcekitten", sourceKittenConfigKey)
	assert.Equal(t, "tools.sourcery", sourceryConfigKey)
	assert.Equal(t, "scaffold.output", scaffoldOutputConfigKey)
	assert.Equal(t, "scaffold.platform", scaffoldPlatformConfigKey)
	assert.Equal(t, "Generated", defaultMocksDir)
	assert.Equal(t, ".unitgen.log", defaultLogFilename)
	assert.Equal(t, "UNITGEN", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestHostPlatform(t *testing.T) {
	assert.Equal(t, "AppKit", hostPlatform("darwin"))
	assert.Equal(t, "UIKit", hostPlatform("ios"))
	assert.Empty(t, hostPlatform("linux"))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty uses default", "", slog.LevelInfo},
		{"debug", "debug", slog.LevelDebug},
		{"mixed case warn", " WARN ", slog.LevelWarn},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"unknown uses default", "loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{"nil", nil, nil},
		{"single", []string{"Core"}, []string{"Core"}},
		{"comma separated", []string{"Core, Networking"}, []string{"Core", "Networking"}},
		{"repeated and blanks", []string{"Core", " ", "UI,,Models"}, []string{"Core", "UI", "Models"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitList(tt.values))
		})
	}
}
