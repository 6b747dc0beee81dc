package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gaecom/arco-cli/internal/adapters/config"
	"github.com/gaecom/arco-cli/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadEnvFile(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.EnvFileName, "ARCO_TEST_FRESH=from-file\nARCO_TEST_PRESET=from-file\n")

	unsetenv(t, "ARCO_TEST_FRESH")
	t.Setenv("ARCO_TEST_PRESET", "from-shell")

	require.NoError(t, config.LoadEnvFile(root))

	assert.Equal(t, "from-file", os.Getenv("ARCO_TEST_FRESH"))
	assert.Equal(t, "from-shell", os.Getenv("ARCO_TEST_PRESET"))
}

func TestLoadEnvFile_Missing(t *testing.T) {
	require.NoError(t, config.LoadEnvFile(t.TempDir()))
}

func TestLoadEnvFile_Unreadable(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, domain.EnvFileName), domain.DirPerm))

	err := config.LoadEnvFile(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load .env file")
}

func TestDevModeFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"development", true},
		{"Development", true},
		{"production", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(domain.EnvBuildMode, tt.value)
			assert.Equal(t, tt.want, config.DevModeFromEnv())
		})
	}
}

func TestMinifyDisabledFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"yes", true},
		{"0", false},
		{"false", false},
		{"", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(domain.EnvDisableMinify, tt.value)
			assert.Equal(t, tt.want, config.MinifyDisabledFromEnv())
		})
	}
}
