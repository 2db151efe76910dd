package workspace

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aligoren/iz/internal/logfields"
)

// NamePrefix marks directories owned by iz. The reaper removes only
// directories carrying this prefix.
const NamePrefix = "iz-"

// Allocate ensures baseDir exists and creates a uniquely named workspace
// directory beneath it. If workspace creation fails no success is reported;
// the base directory is left in place.
func Allocate(baseDir string) (string, error) {
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create temp directory %s: %w", baseDir, err)
	}

	path := filepath.Join(baseDir, uniqueName())
	if err := os.MkdirAll(path, 0o750); err != nil {
		return "", fmt.Errorf("failed to create workspace directory %s: %w", path, err)
	}

	slog.Debug("Created workspace", logfields.Path(path))
	return path, nil
}

// uniqueName combines a millisecond epoch timestamp with a random 32-bit
// value so rapid repeated invocations cannot collide.
func uniqueName() string {
	var buf [4]byte
	_, _ = rand.Read(buf[:])
	random := binary.BigEndian.Uint32(buf[:])
	return fmt.Sprintf("%s%d-%x", NamePrefix, time.Now().UnixMilli(), random)
}
