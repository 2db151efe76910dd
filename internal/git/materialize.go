package git

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aligoren/iz/internal/logfields"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Materializer stages the tree of a resolved commit into target directories.
type Materializer struct {
	repoRoot string
}

// NewMaterializer creates a materializer reading from the repository at repoRoot.
func NewMaterializer(repoRoot string) *Materializer {
	return &Materializer{repoRoot: repoRoot}
}

// Materialize resolves revision in the repository and writes the commit's
// complete tree beneath dest. dest must already exist; entries are created
// inside it with the modes recorded in the tree, overwriting anything that
// occupies their paths.
func (m *Materializer) Materialize(revision, dest string) error {
	repo, err := git.PlainOpen(m.repoRoot)
	if err != nil {
		return &RepositoryNotFoundError{Path: m.repoRoot, Err: err}
	}

	commit, err := m.resolveCommit(repo, revision)
	if err != nil {
		return err
	}

	slog.Debug("Materializing commit tree",
		logfields.Commit(commit.Hash.String()),
		logfields.Path(dest))

	tree, err := commit.Tree()
	if err != nil {
		return &TreeUnavailableError{Commit: commit.Hash.String(), Err: err}
	}

	m.createDirectoryStructure(tree, dest)

	count, err := m.extractFiles(tree, dest)
	if err != nil {
		return &ExtractError{Dest: dest, Err: err}
	}

	slog.Debug("Commit tree materialized",
		logfields.Commit(commit.Hash.String()),
		logfields.Count(count))
	return nil
}

// resolveCommit turns a revision string into the commit it denotes, peeling
// annotated tags. Revisions denoting trees or blobs are rejected.
func (m *Materializer) resolveCommit(repo *git.Repository, revision string) (*object.Commit, error) {
	hash, err := m.lookupHash(repo, revision)
	if err != nil {
		return nil, err
	}

	obj, err := repo.Object(plumbing.AnyObject, *hash)
	if err != nil {
		return nil, &RevisionNotFoundError{Revision: revision, Err: err}
	}

	switch o := obj.(type) {
	case *object.Commit:
		return o, nil
	case *object.Tag:
		commit, err := o.Commit()
		if err != nil {
			return nil, &NotACommitError{Revision: revision, ObjectType: o.TargetType.String()}
		}
		return commit, nil
	default:
		return nil, &NotACommitError{Revision: revision, ObjectType: obj.Type().String()}
	}
}

// lookupHash resolves names the way rev-parse does, falling back to a direct
// object lookup for IDs ResolveRevision refuses. A full hash naming a tag,
// tree or blob still deserves a typed answer rather than "not found".
func (m *Materializer) lookupHash(repo *git.Repository, revision string) (*plumbing.Hash, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err == nil {
		return hash, nil
	}

	if h := plumbing.NewHash(revision); !h.IsZero() {
		if _, objErr := repo.Object(plumbing.AnyObject, h); objErr == nil {
			return &h, nil
		}
	}
	return nil, &RevisionNotFoundError{Revision: revision, Err: err}
}

// createDirectoryStructure pre-creates every directory entry in the tree.
// Submodule entries become empty directories. Failures here are logged and
// tolerated because extraction recreates missing parents on demand.
func (m *Materializer) createDirectoryStructure(tree *object.Tree, dest string) {
	walker := object.NewTreeWalker(tree, true, nil)
	defer walker.Close()

	for {
		name, entry, err := walker.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			slog.Warn("Tree walk aborted", logfields.Error(err))
			return
		}
		if entry.Mode != filemode.Dir && entry.Mode != filemode.Submodule {
			continue
		}

		dir := filepath.Join(dest, filepath.FromSlash(name))
		if err := os.MkdirAll(dir, 0o750); err != nil {
			slog.Warn("Failed to create directory", logfields.Path(dir), logfields.Error(err))
		}
	}
}

func (m *Materializer) extractFiles(tree *object.Tree, dest string) (int, error) {
	count := 0
	err := tree.Files().ForEach(func(f *object.File) error {
		target := filepath.Join(dest, filepath.FromSlash(f.Name))

		if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
			return fmt.Errorf("failed to create parent directory for %s: %w", f.Name, err)
		}

		if f.Mode == filemode.Symlink {
			if err := m.writeSymlink(f, target); err != nil {
				return err
			}
		} else if err := m.writeFile(f, target); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}

func (m *Materializer) writeFile(f *object.File, target string) error {
	mode, err := f.Mode.ToOSFileMode()
	if err != nil {
		return fmt.Errorf("unsupported mode for %s: %w", f.Name, err)
	}

	reader, err := f.Reader()
	if err != nil {
		return fmt.Errorf("failed to read blob for %s: %w", f.Name, err)
	}
	defer func() { _ = reader.Close() }()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", f.Name, err)
	}
	if _, err := io.Copy(out, reader); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write %s: %w", f.Name, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.Name, err)
	}

	// OpenFile filters the requested mode through the umask; exec bits must
	// survive it.
	return os.Chmod(target, mode.Perm())
}

func (m *Materializer) writeSymlink(f *object.File, target string) error {
	linkTarget, err := f.Contents()
	if err != nil {
		return fmt.Errorf("failed to read symlink target for %s: %w", f.Name, err)
	}

	// os.Symlink refuses to overwrite an existing path.
	_ = os.Remove(target)
	if err := os.Symlink(linkTarget, target); err != nil {
		return fmt.Errorf("failed to create symlink %s: %w", f.Name, err)
	}
	return nil
}
