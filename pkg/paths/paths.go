package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/wpconf/pkg/errors"
	"github.com/go-git/go-git/v5"
)

// Environment variable names
const (
	// EnvRoot overrides project root discovery
	EnvRoot = "WPCONF_ROOT"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// FindProjectRoot determines the project root using the following priority:
// 1. WPCONF_ROOT environment variable (if set)
// 2. Root of the git work tree enclosing start
// 3. start itself
//
// The bool result reports whether the fallback was used.
func FindProjectRoot(start string) (string, bool, error) {
	if root := os.Getenv(EnvRoot); root != "" {
		abs, err := filepath.Abs(ExpandHome(root))
		if err != nil {
			return "", false, errors.Wrapf(err, errors.ErrConfigValid, "invalid %s", EnvRoot)
		}
		return abs, false, nil
	}

	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", false, errors.Wrap(err, errors.ErrInternal, "failed to get current directory")
		}
		start = cwd
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrConfigValid, "invalid start directory %s", start)
	}

	if root, err := findGitRoot(abs); err == nil {
		return root, false, nil
	}

	return abs, true, nil
}

// findGitRoot returns the work tree root of the repository containing dir
func findGitRoot(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", err
	}
	return wt.Filesystem.Root(), nil
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// Resolve makes path absolute relative to base. Empty stays empty.
func Resolve(base, path string) string {
	if path == "" {
		return ""
	}
	path = ExpandHome(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

// RelDir returns the shortest path from directory from to directory to,
// slash-separated and prefixed with "/" so it can be appended to a
// directory constant such as PHP's __DIR__. Identical directories give "".
func RelDir(from, to string) (string, error) {
	rel, err := filepath.Rel(filepath.Clean(from), filepath.Clean(to))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput,
			"cannot determine relative path from %s to %s", from, to)
	}
	if rel == "." {
		return "", nil
	}
	return "/" + strings.TrimPrefix(filepath.ToSlash(rel), "/"), nil
}
