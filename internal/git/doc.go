// Package git materializes commit trees from a local repository into
// freshly created workspace directories.
//
// Materialization runs in stages:
//   - Open the repository at the materializer's root
//   - Resolve the requested revision (full or short hash, branch, tag, HEAD)
//   - Peel annotated tags down to their target commit
//   - Pre-create the tree's directory structure
//   - Extract file contents with their recorded modes, symlinks included
//
// Directory pre-creation tolerates individual failures because extraction
// recreates missing parents on demand; every other stage aborts with a typed
// error that callers can classify without string parsing.
package git
