package git

import "fmt"

// Typed materialization errors enabling structured classification without string parsing upstream.

type RepositoryNotFoundError struct {
	Path string
	Err  error
}

func (e *RepositoryNotFoundError) Error() string {
	return fmt.Sprintf("Git repository not found - %s is not a git repository: %v", e.Path, e.Err)
}
func (e *RepositoryNotFoundError) Unwrap() error { return e.Err }

type RevisionNotFoundError struct {
	Revision string
	Err      error
}

func (e *RevisionNotFoundError) Error() string {
	return fmt.Sprintf("Commit not found - invalid commit ID %q: %v", e.Revision, e.Err)
}
func (e *RevisionNotFoundError) Unwrap() error { return e.Err }

type NotACommitError struct {
	Revision   string
	ObjectType string
}

func (e *NotACommitError) Error() string {
	return fmt.Sprintf("Given reference does not point to a commit: %q resolves to a %s", e.Revision, e.ObjectType)
}

type TreeUnavailableError struct {
	Commit string
	Err    error
}

func (e *TreeUnavailableError) Error() string {
	return fmt.Sprintf("Failed to get commit tree for %s: %v", e.Commit, e.Err)
}
func (e *TreeUnavailableError) Unwrap() error { return e.Err }

type ExtractError struct {
	Dest string
	Err  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("Failed to extract files to %s: %v", e.Dest, e.Err)
}
func (e *ExtractError) Unwrap() error { return e.Err }
