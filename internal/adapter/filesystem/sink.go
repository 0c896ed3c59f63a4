// Package filesystem stores generated exports on local disk.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"blind75-generator/internal/domain/model"
	"blind75-generator/internal/domain/ports"
)

var _ ports.FileSink = (*Sink)(nil)

// Sink writes exports into Dir.
type Sink struct {
	Dir string
	// Timestamped prefixes file names with the save time so scheduled runs keep history.
	Timestamped bool
	now         func() time.Time
}

// NewSink creates a Sink rooted at dir.
func NewSink(dir string, timestamped bool) *Sink {
	return &Sink{Dir: dir, Timestamped: timestamped, now: time.Now}
}

// Save writes the file through a temporary file and an atomic rename.
func (s *Sink) Save(ctx context.Context, file *model.ExportFile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if file == nil {
		return "", fmt.Errorf("nil export file")
	}

	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	name := filepath.Base(file.Filename)
	if s.Timestamped {
		name = s.now().UTC().Format("20060102T150405Z") + "_" + name
	}
	target := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, ".export-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(file.Data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("chmod export: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("move export into place: %w", err)
	}

	return target, nil
}
