package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const forceFlagName = "force"

var initForceFlag bool

// configDocument is the unitgen.yaml layout written by init.
type configDocument struct {
	Version  int             `yaml:"version"`
	Root     string          `yaml:"root"`
	Mocks    mocksSection    `yaml:"mocks"`
	Tools    toolsSection    `yaml:"tools"`
	Scaffold scaffoldSection `yaml:"scaffold"`
	Log      logSection      `yaml:"log"`
}

type mocksSection struct {
	Dir             string   `yaml:"dir"`
	Imports         []string `yaml:"imports"`
	TestableImports []string `yaml:"testable_imports"`
}

type toolsSection struct {
	SourceKitten string `yaml:"sourcekitten"`
	Sourcery     string `yaml:"sourcery"`
}

type scaffoldSection struct {
	Output   string `yaml:"output"`
	Platform string `yaml:"platform"`
}

type logSection struct {
	Filename   string `yaml:"filename"`
	Level      string `yaml:"level"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a unitgen.yaml with the effective settings",
		Long: `Write unitgen.yaml to the current directory. Every value is the one a
generate run would use right now: built-in defaults overridden by UNITGEN_*
environment variables and by the global flags given to init. An existing file
is left alone unless --force is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			content, err := encodeConfig(currentConfig())
			if err != nil {
				return err
			}

			if err := writeConfig(targetPath, content, initForceFlag); err != nil {
				return err
			}

			cmd.Printf("Wrote %s\n", targetPath)

			return nil
		},
	}

	cmd.Flags().BoolVar(&initForceFlag, forceFlagName, false, "overwrite an existing "+configFileName)

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// currentConfig snapshots the settings viper resolves for every configurable key.
func currentConfig() configDocument {
	return configDocument{
		Version: viper.GetInt(configVersionKey),
		Root:    viper.GetString(rootConfigKey),
		Mocks: mocksSection{
			Dir:             viper.GetString(mocksDirConfigKey),
			Imports:         nonNil(splitList(viper.GetStringSlice(importsConfigKey))),
			TestableImports: nonNil(splitList(viper.GetStringSlice(testableImportsConfigKey))),
		},
		Tools: toolsSection{
			SourceKitten: viper.GetString(sourceKittenConfigKey),
			Sourcery:     viper.GetString(sourceryConfigKey),
		},
		Scaffold: scaffoldSection{
			Output:   viper.GetString(scaffoldOutputConfigKey),
			Platform: viper.GetString(scaffoldPlatformConfigKey),
		},
		Log: logSection{
			Filename:   viper.GetString(logFilenameKey),
			Level:      parseSlogLevel(viper.GetString(logLevelKey), slog.Level(defaultLogLevel)).String(),
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		},
	}
}

func encodeConfig(doc configDocument) ([]byte, error) {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	return buf.Bytes(), nil
}

func writeConfig(path string, content []byte, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}

	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("config file %s already exists, use --%s to overwrite", path, forceFlagName)
		}

		return fmt.Errorf("failed to write config file: %w", err)
	}

	if _, err := file.Write(content); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return file.Close()
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
