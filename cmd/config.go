package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "argue"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName  = "output"
	noSaveFlagName  = "no-save"
	uiModeFlagName  = "ui"
	verboseFlagName = "verbose"
	logFileFlagName = "log-file"

	maxArgumentsFlagName = "max-arguments"
	timeoutFlagName      = "timeout"
	upperFlagName        = "upper"
	runsFlagName         = "runs"
	probabilityFlagName  = "probability"
	parallelFlagName     = "parallel"
	seedFlagName         = "seed"

	uiModeConfigKey       = "ui.mode"
	maxArgumentsConfigKey = "engine.max_arguments"
	timeoutConfigKey      = "engine.timeout"
	sampleUpperKey        = "sample.upper"
	sampleRunsKey         = "sample.runs"
	sampleProbabilityKey  = "sample.probability"
	sampleParallelKey     = "sample.parallel"
	sampleSeedKey         = "sample.seed"

	defaultReportsDir   = ".argue-reports"
	defaultNoSave       = false
	defaultUIMode       = "auto"
	defaultMaxArguments = 16
	defaultTimeout      = time.Duration(0)

	defaultSampleUpper       = 10
	defaultSampleRuns        = 10
	defaultSampleProbability = 0.5
	defaultSampleParallel    = 4
	defaultSampleSeed        = 1

	envPrefix = "ARGUE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".argue.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(noSaveFlagName, defaultNoSave)
	viper.SetDefault(uiModeConfigKey, defaultUIMode)
	viper.SetDefault(maxArgumentsConfigKey, defaultMaxArguments)
	viper.SetDefault(timeoutConfigKey, int64(defaultTimeout.Seconds()))

	viper.SetDefault(sampleUpperKey, defaultSampleUpper)
	viper.SetDefault(sampleRunsKey, defaultSampleRuns)
	viper.SetDefault(sampleProbabilityKey, defaultSampleProbability)
	viper.SetDefault(sampleParallelKey, defaultSampleParallel)
	viper.SetDefault(sampleSeedKey, defaultSampleSeed)

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
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		fmt.Fprintf(os.Stderr, "argue: ignoring %s: %v\n", configFileName, err)
	}
}

// engineTimeout reads engine.timeout, given in seconds.
func engineTimeout() time.Duration {
	return time.Duration(viper.GetInt64(timeoutConfigKey)) * time.Second
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

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
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
