package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath         = "path"
	KeyBaseDir      = "base_dir"
	KeyCommit       = "commit"
	KeyCommand      = "command"
	KeyInvocationID = "invocation_id"
	KeyExitCode     = "exit_code"
	KeySignal       = "signal"
	KeyCount        = "count"
	KeyCleaned      = "cleaned"
	KeyFailed       = "failed"
	KeyDurationMS   = "duration_ms"
	KeyError        = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func BaseDir(d string) slog.Attr       { return slog.String(KeyBaseDir, d) }
func Commit(c string) slog.Attr        { return slog.String(KeyCommit, c) }
func Command(c string) slog.Attr       { return slog.String(KeyCommand, c) }
func InvocationID(id string) slog.Attr { return slog.String(KeyInvocationID, id) }
func ExitCode(code int) slog.Attr      { return slog.Int(KeyExitCode, code) }
func Signal(s string) slog.Attr        { return slog.String(KeySignal, s) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func Cleaned(n int) slog.Attr          { return slog.Int(KeyCleaned, n) }
func Failed(n int) slog.Attr           { return slog.Int(KeyFailed, n) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
