package helpers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// SetupTestGitRepo initializes a git repository in a fresh temporary directory.
// Returns the repository, its worktree, and the absolute path to the directory.
func SetupTestGitRepo(t *testing.T) (*git.Repository, *git.Worktree, string) {
	t.Helper()

	tempDir := t.TempDir()

	repo, err := git.PlainInit(tempDir, false)
	if err != nil {
		t.Fatalf("failed to initialize git repo: %v", err)
	}

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("failed to get worktree: %v", err)
	}

	return repo, w, tempDir
}

// WriteRepoFile writes a file beneath the repository root, creating parent
// directories as needed. rel uses slash separators.
func WriteRepoFile(t *testing.T, repoDir, rel, content string, mode os.FileMode) {
	t.Helper()

	path := filepath.Join(repoDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent directories for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
}

// Commit stages the given paths and commits them with a fixed test author,
// returning the commit hash.
func Commit(t *testing.T, w *git.Worktree, message string, paths ...string) plumbing.Hash {
	t.Helper()

	for _, path := range paths {
		if _, err := w.Add(path); err != nil {
			t.Fatalf("failed to stage %s: %v", path, err)
		}
	}

	hash, err := w.Commit(message, &git.CommitOptions{
		Author: &object.Signature{Name: "fixture", Email: "fixture@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
	return hash
}
