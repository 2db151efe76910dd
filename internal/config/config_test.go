package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFrom_Success(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{
		"commands": {
			"run": "dotnet run",
			"test": "dotnet test"
		}
	}`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "dotnet run", cfg.Commands["run"])
	assert.Equal(t, "dotnet test", cfg.Commands["test"])
}

func TestLoadFrom_OptionalFieldsDefault(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{"commands": {"run": "dotnet run"}}`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.TempDir)
	assert.False(t, cfg.Keep)
}

func TestLoadFrom_TempDirAndKeep(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{
		"commands": {"run": "dotnet run"},
		"temp_dir": "/tmp/iz-custom",
		"keep": true
	}`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/iz-custom", cfg.TempDir)
	assert.True(t, cfg.Keep)
}

func TestLoadFrom_MissingFile_EmbedsExample(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "izconfig.json not found")
	// The embedded example must be a usable starting point.
	assert.Contains(t, err.Error(), `"run": "dotnet run"`)
	assert.Contains(t, err.Error(), `"temp_dir": ".iztemp"`)
	assert.Contains(t, err.Error(), `"keep": false`)
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "invalid json content")

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_ReadsFromWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"commands": {"hello": "echo hi"}}`)
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "echo hi", cfg.Commands["hello"])
}

func TestLoad_EnvFileFeedsEnvironment(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"commands": {"hello": "echo hi"}}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("IZTEMP=/tmp/from-env-file\n"), 0o600))
	t.Chdir(dir)

	// t.Setenv registers restoration; the unset makes room for the .env value.
	t.Setenv("IZTEMP", "placeholder")
	require.NoError(t, os.Unsetenv("IZTEMP"))

	cfg, err := Load()
	require.NoError(t, err)

	base, err := cfg.ResolveBaseDir("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env-file", base)
}

func TestResolveBaseDir_Priority(t *testing.T) {
	t.Run("flag wins over everything", func(t *testing.T) {
		t.Setenv("IZTEMP", "/tmp/from-env")
		cfg := &Config{TempDir: "/tmp/from-config"}

		base, err := cfg.ResolveBaseDir("/tmp/from-flag")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/from-flag", base)
	})

	t.Run("env wins over config", func(t *testing.T) {
		t.Setenv("IZTEMP", "/tmp/from-env")
		cfg := &Config{TempDir: "/tmp/from-config"}

		base, err := cfg.ResolveBaseDir("")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/from-env", base)
	})

	t.Run("config wins over default", func(t *testing.T) {
		t.Setenv("IZTEMP", "placeholder")
		require.NoError(t, os.Unsetenv("IZTEMP"))
		cfg := &Config{TempDir: "/tmp/from-config"}

		base, err := cfg.ResolveBaseDir("")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/from-config", base)
	})

	t.Run("default is .iztemp under the working directory", func(t *testing.T) {
		t.Setenv("IZTEMP", "placeholder")
		require.NoError(t, os.Unsetenv("IZTEMP"))
		dir := t.TempDir()
		t.Chdir(dir)

		cfg := &Config{}
		base, err := cfg.ResolveBaseDir("")
		require.NoError(t, err)

		cwd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd, ".iztemp"), base)
	})
}
