package summary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	apperrors "country-catalog/core/errors"

	"github.com/spf13/afero"
)

// FileName is the artifact name inside the local directory.
const FileName = "summary.png"

// LocalSink keeps the artifact at <dir>/summary.png on an afero filesystem.
type LocalSink struct {
	fs  afero.Fs
	dir string
}

// NewLocalSink creates a sink writing under dir.
func NewLocalSink(fs afero.Fs, dir string) *LocalSink {
	return &LocalSink{fs: fs, dir: dir}
}

// Path returns the artifact location.
func (s *LocalSink) Path() string {
	return filepath.Join(s.dir, FileName)
}

// Store renders rec and atomically replaces the artifact.
func (s *LocalSink) Store(ctx context.Context, rec Record) error {
	data, err := renderBytes(rec)
	if err != nil {
		return err
	}

	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.dir, err)
	}

	tmp := s.Path() + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write summary image: %w", err)
	}
	if err := s.fs.Rename(tmp, s.Path()); err != nil {
		return fmt.Errorf("failed to replace summary image: %w", err)
	}
	return nil
}

// Exists reports whether the artifact file is present.
func (s *LocalSink) Exists(ctx context.Context) (bool, error) {
	return afero.Exists(s.fs, s.Path())
}

// Open reads the artifact file.
func (s *LocalSink) Open(ctx context.Context) (*Artifact, error) {
	info, err := s.fs.Stat(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFoundError("summary image", "")
		}
		return nil, fmt.Errorf("failed to stat summary image: %w", err)
	}

	data, err := afero.ReadFile(s.fs, s.Path())
	if err != nil {
		return nil, fmt.Errorf("failed to read summary image: %w", err)
	}

	return &Artifact{Data: data, ContentType: ContentType, ModTime: info.ModTime()}, nil
}
