package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "unitgen"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	rootFlagName            = "root"
	mocksDirFlagName        = "mocks-dir"
	importsFlagName         = "imports"
	testableImportsFlagName = "testable-imports"
	outputFlagName          = "output"
	platformFlagName        = "platform"
	fileNameFlagName        = "file-name"
	noDoublesFlagName       = "no-doubles"
	dryRunFlagName          = "dry-run"
	formatFlagName          = "format"
	logFileFlagName         = "log-file"
	verboseFlagName         = "verbose"

	rootConfigKey             = "root"
	mocksDirConfigKey         = "mocks.dir"
	importsConfigKey          = "mocks.imports"
	testableImportsConfigKey  = "mocks.testable_imports"
	sourceKittenConfigKey     = "tools.sourcekitten"
	sourceryConfigKey         = "tools.sourcery"
	scaffoldOutputConfigKey   = "scaffold.output"
	scaffoldPlatformConfigKey = "scaffold.platform"

	defaultRoot           = "."
	defaultMocksDir       = "Generated"
	defaultSourceKitten   = "sourcekitten"
	defaultSourcery       = "sourcery"
	defaultScaffoldOutput = "."

	envPrefix = "UNITGEN"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".unitgen.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// defaultPlatform is the UI framework imported after Foundation when
// scaffold.platform is not configured.
var defaultPlatform = hostPlatform(runtime.GOOS)

var globalLogger *slog.Logger

// hostPlatform picks the UI framework for scaffolds built on goos: AppKit on
// macOS, nothing elsewhere. iOS projects set scaffold.platform to UIKit.
func hostPlatform(goos string) string {
	switch goos {
	case "darwin":
		return "AppKit"
	case "ios":
		return "UIKit"
	default:
		return ""
	}
}

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(rootConfigKey, defaultRoot)
	viper.SetDefault(mocksDirConfigKey, defaultMocksDir)
	viper.SetDefault(importsConfigKey, []string{})
	viper.SetDefault(testableImportsConfigKey, []string{})
	viper.SetDefault(sourceKittenConfigKey, defaultSourceKitten)
	viper.SetDefault(sourceryConfigKey, defaultSourcery)
	viper.SetDefault(scaffoldOutputConfigKey, defaultScaffoldOutput)
	viper.SetDefault(scaffoldPlatformConfigKey, defaultPlatform)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels, e.g. -4 for debug.
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// splitList flattens comma separated entries and drops blanks.
func splitList(values []string) []string {
	var out []string

	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}
