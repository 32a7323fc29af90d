package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Sink stores a rendered report under name and returns where it went.
type Sink interface {
	Write(ctx context.Context, name string, data []byte) (string, error)
}

// FileSink writes reports into Dir, creating it when missing.
type FileSink struct {
	Dir string
}

func NewFileSink(dir string) *FileSink {
	if dir == "" {
		dir = "."
	}
	return &FileSink{Dir: dir}
}

func (s *FileSink) Write(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(s.Dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}
