package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/osse101/AlterEgo_Go/internal/config"
	"github.com/osse101/AlterEgo_Go/internal/logger"
)

// SetupLogger installs the process logger. With a log directory configured, output
// also goes to a timestamped session file there and older sessions are pruned.
// The returned closer closes that file; it is a no-op otherwise.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	if cfg.LogDir == "" {
		logger.InitLogger(cfg.LoggerConfig())
		slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf(ErrFmtCreateLogDir, cfg.LogDir, err)
	}
	cleanupLogs(cfg.LogDir, LogFileRetentionCount)

	name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtOpenLogFile, name, err)
	}

	logger.InitLoggerWithWriter(cfg.LoggerConfig(), io.MultiWriter(os.Stdout, f))
	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat, "file", name)
	return f, nil
}

// cleanupLogs deletes the oldest session logs so that at most keep remain.
// Names embed their start time, so lexical order is age order.
func cleanupLogs(dir string, keep int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var logs []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), LogFileExtension) {
			logs = append(logs, e.Name())
		}
	}
	slices.Sort(logs)

	for len(logs) > keep {
		if err := os.Remove(filepath.Join(dir, logs[0])); err != nil {
			slog.Warn("Failed to delete old log file", "file", logs[0], "error", err)
		}
		logs = logs[1:]
	}
}
