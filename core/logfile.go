package core

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// OpenLog opens dir/name for appending, creating dir. A file already larger
// than maxSize is first renamed with a timestamp suffix.
func OpenLog(dir, name string, maxSize int64) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if info, err := os.Stat(path); err == nil && maxSize > 0 && info.Size() > maxSize {
		ext := filepath.Ext(name)
		stamp := time.Now().Format("20060102-150405.000")
		rotated := filepath.Join(dir, strings.TrimSuffix(name, ext)+"-"+stamp+ext)
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}

// SetupLogging routes stdlib log and the shared slog logger to dir/name when
// debug is set. Otherwise, or when the file cannot be opened, both are
// silenced and nil is returned. The caller closes the returned file.
func SetupLogging(debug bool, dir, name string, maxSize int64) *os.File {
	if debug {
		if f, err := OpenLog(dir, name, maxSize); err == nil {
			log.SetOutput(f)
			log.SetFlags(log.LstdFlags | log.Lmicroseconds)
			SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
			return f
		}
	}
	log.SetOutput(io.Discard)
	SetLogger(nil)
	return nil
}
