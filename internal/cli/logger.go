package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// PlayLogger writes one JSON object per line for every event of a play run.
type PlayLogger struct {
	logger    *logrus.Logger
	startTime time.Time
	file      *os.File
}

// NewPlayLogger creates a logger that discards everything until Start.
func NewPlayLogger() *PlayLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &PlayLogger{logger: l}
}

// DefaultLogDir returns ~/.gocube_viewer/logs.
func DefaultLogDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".gocube_viewer", "logs"), nil
}

// Start begins logging to a new file in logDir. Debug events are only
// written when debug is set.
func (l *PlayLogger) Start(logDir string, debug bool) error {
	// Create log directory if needed
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	// Create log file with timestamp
	filename := fmt.Sprintf("play_%s.jsonl", time.Now().Format("20060102_150405"))
	path := filepath.Join(logDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	l.file = file
	l.startTime = time.Now()
	l.logger.SetOutput(file)
	l.logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	l.logger.SetLevel(logrus.InfoLevel)
	if debug {
		l.logger.SetLevel(logrus.DebugLevel)
	}

	l.logger.WithFields(logrus.Fields{
		"version": version,
		"type":    "header",
	}).Info("play log started")
	return nil
}

// Logger returns the underlying logger for library components.
func (l *PlayLogger) Logger() logrus.FieldLogger {
	return l.logger
}

func (l *PlayLogger) elapsed() logrus.Fields {
	if l.file == nil {
		return logrus.Fields{}
	}
	return logrus.Fields{"elapsed_ms": time.Since(l.startTime).Milliseconds()}
}

// LogKeyPress logs a key press.
func (l *PlayLogger) LogKeyPress(key string) {
	l.logger.WithFields(l.elapsed()).WithField("key", key).Debug("key press")
}

// LogMouse logs a pointer event in virtual pixels.
func (l *PlayLogger) LogMouse(action string, x, y float64) {
	l.logger.WithFields(l.elapsed()).WithFields(logrus.Fields{
		"action": action,
		"x":      x,
		"y":      y,
	}).Debug("pointer")
}

// LogError logs a failure that does not stop play.
func (l *PlayLogger) LogError(err error, msg string) {
	l.logger.WithFields(l.elapsed()).WithError(err).Error(msg)
}

// Close closes the log file.
func (l *PlayLogger) Close() error {
	if l.file != nil {
		l.logger.SetOutput(io.Discard)
		return l.file.Close()
	}
	return nil
}

// FilePath returns the current log file path.
func (l *PlayLogger) FilePath() string {
	if l.file != nil {
		return l.file.Name()
	}
	return ""
}
