package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	helpers "github.com/aligoren/iz/internal/testutil/testutils"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	repo    *git.Repository
	wt      *git.Worktree
	repoDir string
	commit  plumbing.Hash
}

func buildFixture(t *testing.T) fixture {
	t.Helper()

	repo, wt, dir := helpers.SetupTestGitRepo(t)

	helpers.WriteRepoFile(t, dir, "test.txt", "Test content", 0o644)
	helpers.WriteRepoFile(t, dir, "src/app/main.go", "package main\n", 0o644)
	helpers.WriteRepoFile(t, dir, "docs/readme.md", "# Fixture\n", 0o644)
	helpers.WriteRepoFile(t, dir, "scripts/build.sh", "#!/bin/sh\nexit 0\n", 0o755)

	hash := helpers.Commit(t, wt, "initial import",
		"test.txt", "src/app/main.go", "docs/readme.md", "scripts/build.sh")

	return fixture{repo: repo, wt: wt, repoDir: dir, commit: hash}
}

func TestMaterializeWritesFullTree(t *testing.T) {
	fx := buildFixture(t)
	dest := t.TempDir()

	err := NewMaterializer(fx.repoDir).Materialize(fx.commit.String(), dest)
	require.NoError(t, err)

	helpers.NewFileAssertions(t, dest).
		AssertFileContains("test.txt", "Test content").
		AssertDirExists("src/app").
		AssertFileExists("src/app/main.go").
		AssertFileExists("docs/readme.md").
		AssertFileExists("scripts/build.sh")
}

func TestMaterializeResolvesNamedRevisions(t *testing.T) {
	fx := buildFixture(t)

	for _, revision := range []string{"HEAD", fx.commit.String()[:8]} {
		dest := t.TempDir()
		err := NewMaterializer(fx.repoDir).Materialize(revision, dest)
		require.NoError(t, err, revision)

		helpers.NewFileAssertions(t, dest).AssertFileExists("test.txt")
	}
}

func TestMaterializePreservesExecutableBit(t *testing.T) {
	fx := buildFixture(t)
	dest := t.TempDir()

	require.NoError(t, NewMaterializer(fx.repoDir).Materialize(fx.commit.String(), dest))

	info, err := os.Stat(filepath.Join(dest, "scripts", "build.sh"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o111, "executable bit lost")
}

func TestMaterializePreservesSymlinks(t *testing.T) {
	fx := buildFixture(t)
	require.NoError(t, os.Symlink("test.txt", filepath.Join(fx.repoDir, "link.txt")))
	hash := helpers.Commit(t, fx.wt, "add link", "link.txt")

	dest := t.TempDir()
	require.NoError(t, NewMaterializer(fx.repoDir).Materialize(hash.String(), dest))

	target, err := os.Readlink(filepath.Join(dest, "link.txt"))
	require.NoError(t, err)
	assert.Equal(t, "test.txt", target)
}

func TestMaterializeOverwritesExistingFiles(t *testing.T) {
	fx := buildFixture(t)
	dest := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dest, "test.txt"), []byte("stale"), 0o644))
	require.NoError(t, NewMaterializer(fx.repoDir).Materialize(fx.commit.String(), dest))

	helpers.NewFileAssertions(t, dest).AssertFileContains("test.txt", "Test content")
}

func TestMaterializePicksRequestedCommitNotHead(t *testing.T) {
	fx := buildFixture(t)
	helpers.WriteRepoFile(t, fx.repoDir, "test.txt", "Changed content", 0o644)
	helpers.Commit(t, fx.wt, "change test.txt", "test.txt")

	dest := t.TempDir()
	require.NoError(t, NewMaterializer(fx.repoDir).Materialize(fx.commit.String(), dest))

	content, err := os.ReadFile(filepath.Join(dest, "test.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Test content", string(content))
}

func TestMaterializePeelsAnnotatedTags(t *testing.T) {
	fx := buildFixture(t)

	_, err := fx.repo.CreateTag("v1.0", fx.commit, &git.CreateTagOptions{
		Tagger:  &object.Signature{Name: "fixture", Email: "fixture@example.com", When: time.Now()},
		Message: "release v1.0",
	})
	require.NoError(t, err)

	dest := t.TempDir()
	require.NoError(t, NewMaterializer(fx.repoDir).Materialize("v1.0", dest))

	helpers.NewFileAssertions(t, dest).AssertFileExists("test.txt")
}

func TestMaterializeRejectsNonCommitObjects(t *testing.T) {
	fx := buildFixture(t)

	commit, err := fx.repo.CommitObject(fx.commit)
	require.NoError(t, err)

	err = NewMaterializer(fx.repoDir).Materialize(commit.TreeHash.String(), t.TempDir())

	var notCommit *NotACommitError
	require.ErrorAs(t, err, &notCommit)
	assert.Contains(t, notCommit.Error(), "does not point to a commit")
}

func TestMaterializeReportsMissingRepository(t *testing.T) {
	err := NewMaterializer(t.TempDir()).Materialize("HEAD", t.TempDir())

	var notFound *RepositoryNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "not a git repository")
}

func TestMaterializeReportsUnknownRevision(t *testing.T) {
	fx := buildFixture(t)

	err := NewMaterializer(fx.repoDir).Materialize("no-such-branch", t.TempDir())

	var notFound *RevisionNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "Commit not found")
}
