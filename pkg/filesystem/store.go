package filesystem

import (
	"os"

	"github.com/arthur-debert/wpconf/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Store reads and atomically writes files
type Store struct {
	fs     afero.Fs
	logger zerolog.Logger
}

// New creates a store over fs
func New(fs afero.Fs) *Store {
	return &Store{
		fs:     fs,
		logger: logging.GetLogger("filesystem"),
	}
}

// NewOS creates a store over the OS filesystem
func NewOS() *Store {
	return New(afero.NewOsFs())
}

// Fs returns the underlying filesystem
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// ReadFile returns the content of path
func (s *Store) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(s.fs, path)
}

// Exists reports whether path exists
func (s *Store) Exists(path string) (bool, error) {
	_, err := s.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
