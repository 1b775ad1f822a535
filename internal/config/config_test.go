package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"resources_dir": "/data/resources",
		"profile_path": "/data/profile.json",
		"top_paths": 5,
		"verbose": true
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/resources", cfg.ResourcesDir)
	assert.Equal(t, "/data/profile.json", cfg.ProfilePath)
	assert.Equal(t, 5, cfg.TopPaths)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{bad"), 0644))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := Config{TopPaths: 3}
	assert.NoError(t, valid.Validate())

	invalid := Config{TopPaths: -1}
	assert.Error(t, invalid.Validate())
}

func TestMergeWithDefaults_FlagWins(t *testing.T) {
	flags := Config{ResourcesDir: "/from/flag"}
	file := Config{ResourcesDir: "/from/file", ProfilePath: "/from/file.json"}

	merged := flags.MergeWithDefaults(file)

	assert.Equal(t, "/from/flag", merged.ResourcesDir)
	assert.Equal(t, "/from/file.json", merged.ProfilePath)
}

func TestMergeWithDefaults_EnvFallback(t *testing.T) {
	t.Setenv(EnvResourcesDir, "/from/env")

	merged := (&Config{}).MergeWithDefaults(Config{})

	assert.Equal(t, "/from/env", merged.ResourcesDir)
}

func TestMergeWithDefaults_BuiltinDefaults(t *testing.T) {
	t.Setenv(EnvResourcesDir, "")

	merged := (&Config{}).MergeWithDefaults(Config{})

	assert.Equal(t, "resources", merged.ResourcesDir)
	assert.Equal(t, "profile.json", merged.ProfilePath)
	assert.Zero(t, merged.TopPaths)
}
