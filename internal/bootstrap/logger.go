package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/config"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// It creates the log directory, opens a timestamped session file, prunes older
// session files down to the newest LogFileRetentionCount and installs the slog default.
// Returns the log file handle (caller must close) and any error encountered.
func SetupLogger(cfg *config.Config, version string) (*os.File, error) {
	return setupLogger(cfg, version, os.Stdout, time.Now())
}

func setupLogger(cfg *config.Config, version string, stdout io.Writer, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, now.Format(LogFileTimestampFormat)))
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	cleanupLogs(cfg.LogDir, LogFileRetentionCount)

	// Source locations only in dev
	addSource := cfg.Environment == config.EnvironmentDev
	loggerConfig := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, logger.DefaultServiceName, version, cfg.Environment, addSource)
	logger.InitLoggerWithWriter(loggerConfig, io.MultiWriter(stdout, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel(), "format", cfg.LogFormat, "file", logFileName)
	slog.Info(LogMsgStarting, "environment", cfg.Environment, "version", version)
	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"store", cfg.StoreBackend,
		"tick_rate", cfg.TickRate,
		"autosave_interval", cfg.AutosaveInterval,
		"max_sessions", cfg.MaxSessions)

	for _, w := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "detail", w)
	}

	return logFile, nil
}

// cleanupLogs removes the oldest session logs, keeping only the newest keep files.
// Names embed a sortable timestamp, so lexical order is age order.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	if len(logFiles) <= keep {
		return
	}

	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			fmt.Printf(LogMsgFailedDeleteOldLog, name, err)
		}
	}
}
