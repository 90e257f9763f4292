package appcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: zh\ncores: 4\noutput: \"\"\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "zh", c.Language)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 4, c.Cores)
	assert.Equal(t, DefaultOutput, c.Output)
	assert.Equal(t, "text", c.Events)
	assert.True(t, c.HideSecretsInConsole)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cores: [1, 2\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
