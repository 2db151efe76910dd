package workspace

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestAllocate_CreatesWorkspace(t *testing.T) {
	base := t.TempDir()

	path, err := Allocate(base)
	if err != nil {
		t.Fatalf("Allocate() failed: %v", err)
	}

	if !strings.HasPrefix(filepath.Base(path), NamePrefix) {
		t.Errorf("Expected %s prefix, got: %s", NamePrefix, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Workspace directory does not exist: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("Workspace is not a directory: %s", path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty workspace, found %d entries", len(entries))
	}
}

func TestAllocate_CreatesBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", ".iztemp")

	path, err := Allocate(base)
	if err != nil {
		t.Fatalf("Allocate() failed: %v", err)
	}

	if _, err := os.Stat(base); err != nil {
		t.Errorf("Base directory was not created: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Workspace directory was not created: %v", err)
	}
}

func TestAllocate_RapidCallsProduceDistinctDirectories(t *testing.T) {
	base := t.TempDir()

	first, err := Allocate(base)
	if err != nil {
		t.Fatalf("First Allocate() failed: %v", err)
	}
	second, err := Allocate(base)
	if err != nil {
		t.Fatalf("Second Allocate() failed: %v", err)
	}

	if first == second {
		t.Fatalf("Expected distinct workspace paths, both were: %s", first)
	}

	for _, path := range []string{first, second} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Workspace does not exist after allocation: %s", path)
		}
	}
}

func TestAllocate_NameFormat(t *testing.T) {
	base := t.TempDir()

	path, err := Allocate(base)
	if err != nil {
		t.Fatalf("Allocate() failed: %v", err)
	}

	// iz-<millisecond epoch>-<random uint32 as lowercase hex>
	pattern := regexp.MustCompile(`^iz-\d{13,}-[0-9a-f]{1,8}$`)
	name := filepath.Base(path)
	if !pattern.MatchString(name) {
		t.Errorf("Workspace name %q does not match expected format", name)
	}
}
