// Package workspace allocates the ephemeral directories a commit is
// materialized into, and reaps stale ones left behind by prior invocations.
//
// Workspace names combine a millisecond epoch timestamp with a random 32-bit
// value in hex (e.g., iz-1724567890123-9f3a21c7), making collisions
// practically impossible even under rapid repeated invocation. The reaper
// recognizes abandoned workspaces purely by the iz- name prefix.
package workspace
