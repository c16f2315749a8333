// Test Type: Unit Test
// Description: Tests for atomic commits of generated files

package filesystem_test

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wpconf/pkg/errors"
	"github.com/arthur-debert/wpconf/pkg/filesystem"
	"github.com/arthur-debert/wpconf/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const target = "/srv/app/wp-config.php"

func seed(t *testing.T, fs afero.Fs, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(target), 0755))
	require.NoError(t, afero.WriteFile(fs, target, []byte(content), 0640))
}

func dirNames(t *testing.T, fs afero.Fs) []string {
	t.Helper()
	entries, err := afero.ReadDir(fs, filepath.Dir(target))
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestWriteAtomic_CreatesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(filepath.Dir(target), 0755))
	store := filesystem.New(fs)

	require.NoError(t, store.WriteAtomic(context.Background(), target, []byte("<?php\n"), 0644))

	got, err := store.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "<?php\n", string(got))
	assert.Equal(t, []string{"wp-config.php"}, dirNames(t, fs), "no temporary files left behind")
}

func TestWriteAtomic_ReplacesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	seed(t, fs, "old")
	store := filesystem.New(fs)

	require.NoError(t, store.WriteAtomic(context.Background(), target, []byte("new"), 0644))

	got, err := store.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestWriteAtomic_RenameFailureKeepsTarget(t *testing.T) {
	mem := afero.NewMemMapFs()
	seed(t, mem, "old content")
	store := filesystem.New(testutil.RenameFailFs{Fs: mem})

	err := store.WriteAtomic(context.Background(), target, []byte("new content"), 0644)
	require.Error(t, err)
	assert.ErrorIs(t, err, testutil.ErrNoSpace)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPersistFailure))
	assert.Equal(t, target, errors.GetErrorDetails(err)["path"])

	got, readErr := afero.ReadFile(mem, target)
	require.NoError(t, readErr)
	assert.Equal(t, "old content", string(got))
	assert.Equal(t, []string{"wp-config.php"}, dirNames(t, mem), "temporary file is cleaned up")
}

func TestWriteAtomic_WriteFailureKeepsTarget(t *testing.T) {
	faults := []testutil.WriteFault{testutil.FailWrite, testutil.FailSync, testutil.FailClose, testutil.FailChmod}

	for _, fault := range faults {
		t.Run(fault.String(), func(t *testing.T) {
			mem := afero.NewMemMapFs()
			seed(t, mem, "old content")
			store := filesystem.New(testutil.WriteFailFs{Fs: mem, Fail: fault})

			err := store.WriteAtomic(context.Background(), target, []byte("new content"), 0644)
			require.Error(t, err)
			assert.ErrorIs(t, err, testutil.ErrIO)
			assert.True(t, errors.IsErrorCode(err, errors.ErrPersistFailure))
			assert.Equal(t, target, errors.GetErrorDetails(err)["path"])

			got, readErr := afero.ReadFile(mem, target)
			require.NoError(t, readErr)
			assert.Equal(t, "old content", string(got))
			assert.Equal(t, []string{"wp-config.php"}, dirNames(t, mem), "temporary file is cleaned up")
		})
	}
}

func TestWriteAtomic_ReadOnlyFilesystem(t *testing.T) {
	mem := afero.NewMemMapFs()
	seed(t, mem, "old content")
	store := filesystem.New(afero.NewReadOnlyFs(mem))

	err := store.WriteAtomic(context.Background(), target, []byte("new content"), 0644)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPersistFailure))

	got, readErr := afero.ReadFile(mem, target)
	require.NoError(t, readErr)
	assert.Equal(t, "old content", string(got))
}

func TestWriteAtomic_CrashBeforeRename(t *testing.T) {
	mem := afero.NewMemMapFs()
	seed(t, mem, "old content")
	store := filesystem.New(testutil.CrashFs{Fs: mem})

	assert.Panics(t, func() {
		_ = store.WriteAtomic(context.Background(), target, []byte("new content"), 0644)
	})

	got, err := afero.ReadFile(mem, target)
	require.NoError(t, err)
	assert.Equal(t, "old content", string(got), "target is untouched when the rename never ran")
	assert.Len(t, dirNames(t, mem), 2, "the orphaned temporary file is the only trace")
}

func TestWriteAtomic_Cancelled(t *testing.T) {
	mem := afero.NewMemMapFs()
	seed(t, mem, "old content")
	store := filesystem.New(mem)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.WriteAtomic(ctx, target, []byte("new content"), 0644)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPersistFailure))
	assert.True(t, stderrors.Is(err, context.Canceled))

	got, _ := afero.ReadFile(mem, target)
	assert.Equal(t, "old content", string(got))
}

func TestWriteAtomic_TargetIsDirectory(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll(target, 0755))
	store := filesystem.New(mem)

	err := store.WriteAtomic(context.Background(), target, []byte("x"), 0644)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPersistFailure))
}

func TestWriteAtomic_OSKeepsPermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wp-config.php")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0600))

	store := filesystem.NewOS()
	require.NoError(t, store.WriteAtomic(context.Background(), path, []byte("new"), 0644))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestExists(t *testing.T) {
	mem := afero.NewMemMapFs()
	store := filesystem.New(mem)

	ok, err := store.Exists(target)
	require.NoError(t, err)
	assert.False(t, ok)

	seed(t, mem, "x")
	ok, err = store.Exists(target)
	require.NoError(t, err)
	assert.True(t, ok)
}
