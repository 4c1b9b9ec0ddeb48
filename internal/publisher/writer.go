// Package publisher persists editions to disk and publishes them as git commits.
package publisher

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"newsrunner/internal/config"
	"newsrunner/internal/models"
)

// Writer serializes editions and writes them atomically.
type Writer struct {
	cfg config.OutputConfig
}

// NewWriter creates a writer for the configured output.
func NewWriter(cfg config.OutputConfig) *Writer {
	return &Writer{cfg: cfg}
}

// Marshal serializes an edition in the configured format. The bytes are
// what gets fingerprinted and written, so formatting must stay stable.
func (w *Writer) Marshal(edition models.Edition) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if w.cfg.PrettyPrint {
		data, err = json.MarshalIndent(edition, "", "  ")
	} else {
		data, err = json.Marshal(edition)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to marshal edition: %w", err)
	}

	return append(data, '\n'), nil
}

// Write persists data to the output path via temp-file rename, so a failed
// run never leaves a truncated artifact behind.
func (w *Writer) Write(data []byte) error {
	path := w.cfg.Path

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if w.cfg.CreateBackup {
		if err := w.backup(path); err != nil {
			return err
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}

// backup copies the current artifact aside before it is replaced.
func (w *Writer) backup(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("failed to read existing artifact: %w", err)
	}

	backupPath := fmt.Sprintf("%s.bak-%s", path, time.Now().UTC().Format("20060102T150405"))
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	return nil
}
