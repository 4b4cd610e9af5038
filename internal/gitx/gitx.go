package gitx

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when a path exists neither in HEAD nor on disk.
var ErrNotFound = errors.New("file not in HEAD or working tree")

// RepoRoot resolves the git repository root from a given path (or current dir).
func RepoRoot(path string) (string, error) {
	if path == "" {
		path = "."
	}
	cmd := exec.Command("git", "-C", path, "rev-parse", "--show-toplevel")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("rev-parse: %w", err)
	}
	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", errors.New("empty git root")
	}
	return root, nil
}

// RelPath returns path relative to repoRoot in git's slash form.
func RelPath(repoRoot, path string) (string, error) {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", err
		}
		path = abs
	}
	root, err := filepath.EvalSymlinks(repoRoot)
	if err != nil {
		root = repoRoot
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(path)); err == nil {
		path = filepath.Join(dir, filepath.Base(path))
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", fmt.Errorf("relative path: %w", err)
	}
	if strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%s is outside repository %s", path, repoRoot)
	}
	return filepath.ToSlash(rel), nil
}

// HeadAndWorking returns the content of rel (repo-relative) at HEAD and in
// the working tree. Untracked files have an empty base; deleted files have
// an empty working copy.
func HeadAndWorking(repoRoot, rel string) (base, working string, err error) {
	tracked := isTracked(repoRoot, rel)
	if tracked {
		cmd := exec.Command("git", "-C", repoRoot, "show", "HEAD:"+rel)
		b, err := cmd.Output()
		if err != nil {
			return "", "", fmt.Errorf("git show %s: %w", rel, err)
		}
		base = string(b)
	}

	b, err := os.ReadFile(filepath.Join(repoRoot, filepath.FromSlash(rel)))
	switch {
	case err == nil:
		working = string(b)
	case errors.Is(err, fs.ErrNotExist) && tracked:
		// deleted in the working tree
	case errors.Is(err, fs.ErrNotExist):
		return "", "", fmt.Errorf("%s: %w", rel, ErrNotFound)
	default:
		return "", "", fmt.Errorf("read %s: %w", rel, err)
	}
	return base, working, nil
}

// isTracked reports whether rel exists in HEAD.
func isTracked(repoRoot, rel string) bool {
	cmd := exec.Command("git", "-C", repoRoot, "cat-file", "-e", "HEAD:"+rel)
	return cmd.Run() == nil
}
