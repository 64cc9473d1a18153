package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// maxLogSize is the maximum log file size before rotation (2 MB).
	maxLogSize = 2 * 1024 * 1024
	// maxLogBackups is the number of rotated log files to keep.
	maxLogBackups = 2
)

// InitLogger opens the platform log file for appName and returns a JSON
// slog logger writing to it, together with a function that closes the file.
//   - macOS:   ~/Library/Logs/<app>/<app>.log
//   - Linux:   $XDG_STATE_HOME/<app>/<app>.log (default ~/.local/state)
//   - Windows: %LOCALAPPDATA%\<app>\Logs\<app>.log
//
// debug switches to DEBUG level and adds source locations.
func InitLogger(appName string, debug bool) (*slog.Logger, func() error, error) {
	logPath, err := LogFilePath(appName)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve log file path: %w", err)
	}

	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log directory %s: %w", logDir, err)
	}

	if err := rotateIfNeeded(logPath); err != nil {
		return nil, nil, fmt.Errorf("rotate log file: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", logPath, err)
	}

	return New(logFile, debug), logFile.Close, nil
}

// New returns a JSON logger writing to w.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}))
}

// Component tags every record from logger with the emitting component.
func Component(logger *slog.Logger, name string) *slog.Logger {
	if logger == nil {
		logger = NewNopLogger()
	}
	return logger.With(slog.String("component", name))
}

// rotateIfNeeded shifts <log> to <log>.1, <log>.1 to <log>.2 and so on once
// the file reaches maxLogSize. The oldest backup is dropped.
func rotateIfNeeded(logPath string) error {
	info, err := os.Stat(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.Size() < maxLogSize {
		return nil
	}

	os.Remove(fmt.Sprintf("%s.%d", logPath, maxLogBackups))
	for i := maxLogBackups - 1; i >= 1; i-- {
		os.Rename(fmt.Sprintf("%s.%d", logPath, i), fmt.Sprintf("%s.%d", logPath, i+1))
	}

	if err := os.Rename(logPath, logPath+".1"); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}

// LogFilePath returns the platform-specific log file path for appName.
func LogFilePath(appName string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get user home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", appName, appName+".log"), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, appName, appName+".log"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, appName, "Logs", appName+".log"), nil
	}
	return "", fmt.Errorf("unsupported platform: %s", runtime.GOOS)
}

// NewNopLogger returns a logger that discards everything. Used in tests.
func NewNopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
