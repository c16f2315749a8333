package filesystem

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/wpconf/pkg/errors"
	"github.com/spf13/afero"
)

// WriteAtomic replaces path with data.
// The target keeps its current permissions when it exists, otherwise perm
// is used. On failure the target is left untouched and the temporary file
// is removed.
func (s *Store) WriteAtomic(ctx context.Context, path string, data []byte, perm fs.FileMode) error {
	logger := s.logger.With().Str("path", path).Logger()

	if err := ctx.Err(); err != nil {
		return persistFailure(err, path, "write cancelled")
	}

	if info, err := s.fs.Stat(path); err == nil {
		if info.IsDir() {
			return errors.Newf(errors.ErrPersistFailure, "%s is a directory", path).
				WithDetail("path", path)
		}
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(path)+".wpconf-*")
	if err != nil {
		return persistFailure(err, path, "cannot create temporary file")
	}
	tmpName := tmp.Name()
	logger = logger.With().Str("tmp", tmpName).Logger()

	discard := func() {
		_ = tmp.Close()
		if rmErr := s.fs.Remove(tmpName); rmErr != nil {
			logger.Warn().Err(rmErr).Msg("Failed to remove temporary file")
		}
	}

	if _, err := tmp.Write(data); err != nil {
		discard()
		return persistFailure(err, path, "cannot write temporary file")
	}
	if err := tmp.Sync(); err != nil {
		discard()
		return persistFailure(err, path, "cannot sync temporary file")
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return persistFailure(err, path, "cannot close temporary file")
	}
	if err := s.fs.Chmod(tmpName, perm); err != nil {
		_ = s.fs.Remove(tmpName)
		return persistFailure(err, path, "cannot set permissions on temporary file")
	}

	if err := ctx.Err(); err != nil {
		_ = s.fs.Remove(tmpName)
		return persistFailure(err, path, "write cancelled")
	}

	if err := s.fs.Rename(tmpName, path); err != nil {
		_ = s.fs.Remove(tmpName)
		return persistFailure(err, path, "cannot replace target")
	}

	s.syncDir(dir)

	logger.Debug().Int("bytes", len(data)).Msg("File committed")
	return nil
}

// syncDir flushes the rename to disk where the filesystem supports it
func (s *Store) syncDir(dir string) {
	d, err := s.fs.Open(dir)
	if err != nil {
		return
	}
	defer func() { _ = d.Close() }()
	if err := d.Sync(); err != nil {
		s.logger.Trace().Err(err).Str("dir", dir).Msg("Directory sync not supported")
	}
}

func persistFailure(err error, path, message string) error {
	return errors.Wrap(err, errors.ErrPersistFailure, message).WithDetail("path", path)
}
