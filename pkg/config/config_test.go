package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/treeprune/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SPEC_FILE", "ROOT_DIR", "CLASS", "IGNORE_MISSING", "DRY_RUN", "DISPLAY_LIMIT", "FORMAT", "CONFIG"} {
		t.Setenv(EnvPrefix+key, "")
		require.NoError(t, os.Unsetenv(EnvPrefix+key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.DisplayLimit)
	assert.Equal(t, "auto", cfg.Format)
	assert.False(t, cfg.DryRun)
	assert.Empty(t, cfg.IgnoreMissing)
	assert.Empty(t, cfg.Class)
}

func TestLoad_Layering(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	configFile := filepath.Join(dir, "treeprune.toml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
spec_file = "from-file.spec"
root_dir = "/from/file"
class = "file-class"
ignore_missing = ["cache"]
display_limit = 3
`), 0644))

	t.Setenv("TREEPRUNE_CLASS", "env-class")
	t.Setenv("TREEPRUNE_IGNORE_MISSING", "tmp, logs")

	cfg, err := Load(LoadOptions{
		ConfigFile: configFile,
		Overrides:  map[string]interface{}{KeyRootDir: "/from/flag"},
	})
	require.NoError(t, err)

	assert.Equal(t, "from-file.spec", cfg.SpecFile, "file beats defaults")
	assert.Equal(t, "env-class", cfg.Class, "env beats file")
	assert.Equal(t, "/from/flag", cfg.RootDir, "flags beat everything")
	assert.Equal(t, []string{"tmp", "logs"}, cfg.IgnoreMissing)
	assert.Equal(t, 3, cfg.DisplayLimit)
}

func TestLoad_ConfigFromEnvironment(t *testing.T) {
	clearEnv(t)
	configFile := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, os.WriteFile(configFile, []byte(`dry_run = true`), 0644))
	t.Setenv(EnvConfigFile, configFile)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.True(t, cfg.DryRun)
}

func TestLoad_BadFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "missing.toml")})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))

	broken := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("class = = ="), 0644))
	_, err = Load(LoadOptions{ConfigFile: broken})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestValidate(t *testing.T) {
	valid := Config{SpecFile: "s", RootDir: "r", Class: "c", DisplayLimit: 10}
	assert.NoError(t, valid.Validate())

	missing := Config{DisplayLimit: 10, RootDir: "r"}
	err := missing.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	assert.Contains(t, err.Error(), "spec file, class")

	badLimit := valid
	badLimit.DisplayLimit = 0
	assert.True(t, errors.IsErrorCode(badLimit.Validate(), errors.ErrConfigValid))
}
