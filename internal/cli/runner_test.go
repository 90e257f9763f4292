package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VanityGen/pkg/appcfg"
	"VanityGen/pkg/config"
)

func TestSpecFlagsOverrideYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prefix: \"abc\"\nsuffix: \"99\"\ntarget_count: 5\nworkers: 3\n"), 0o600))

	r := NewRunner(nil)
	cmd := r.Command()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--suffix", "FF", "-n", "2"}))

	spec, err := r.Spec(cmd)
	require.NoError(t, err)
	assert.Equal(t, "abc", spec.Prefix)
	assert.Equal(t, "FF", spec.Suffix)
	assert.Equal(t, 2, spec.TargetCount)
	assert.Equal(t, 3, spec.Workers)
}

func TestSpecRejectsInvalidSuffix(t *testing.T) {
	r := NewRunner(nil)
	cmd := r.Command()
	require.NoError(t, cmd.ParseFlags([]string{"--suffix", "0xff"}))

	_, err := r.Spec(cmd)
	assert.ErrorIs(t, err, ErrConfig)
	assert.ErrorIs(t, err, config.ErrInvalidPattern)
}

func TestSpecUsesAppCores(t *testing.T) {
	r := NewRunner(&appcfg.Config{Cores: 7})
	cmd := r.Command()
	require.NoError(t, cmd.ParseFlags([]string{"-p", "1"}))

	spec, err := r.Spec(cmd)
	require.NoError(t, err)
	assert.Equal(t, 7, spec.Workers)
}

func TestSpecUsesAppCoresWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prefix: \"888\"\nworkers: 0\n"), 0o600))

	r := NewRunner(&appcfg.Config{Cores: 7})
	cmd := r.Command()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path}))

	spec, err := r.Spec(cmd)
	require.NoError(t, err)
	assert.Equal(t, 7, spec.Workers)
}

func TestSpecRejectsZeroCount(t *testing.T) {
	r := NewRunner(nil)
	cmd := r.Command()
	require.NoError(t, cmd.ParseFlags([]string{"-p", "1", "-n", "0"}))

	_, err := r.Spec(cmd)
	assert.ErrorIs(t, err, ErrConfig)
	assert.ErrorIs(t, err, config.ErrInvalidCount)
}

func TestAppConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cores: 5\nevents: json\n"), 0o600))

	var seen *appcfg.Config
	r := NewRunner(nil)
	r.AppPath = filepath.Join(t.TempDir(), "ignored.yaml")
	r.OnApp = func(app *appcfg.Config) error {
		seen = app
		return nil
	}
	cmd := r.Command()
	require.NoError(t, cmd.ParseFlags([]string{"--app-config", path, "-p", "1"}))
	require.NoError(t, cmd.PersistentPreRunE(cmd, nil))

	require.NotNil(t, seen)
	assert.Equal(t, 5, seen.Cores)
	assert.Equal(t, "json", seen.Events)

	spec, err := r.Spec(cmd)
	require.NoError(t, err)
	assert.Equal(t, 5, spec.Workers)
}

func TestAppConfigFlagMissingFile(t *testing.T) {
	r := NewRunner(nil)
	cmd := r.Command()
	require.NoError(t, cmd.ParseFlags([]string{"--app-config", filepath.Join(t.TempDir(), "nope.yaml")}))
	assert.ErrorIs(t, cmd.PersistentPreRunE(cmd, nil), ErrConfig)
}

func TestAppPathMissingKeepsDefaults(t *testing.T) {
	r := NewRunner(nil)
	r.AppPath = filepath.Join(t.TempDir(), "nope.yaml")
	cmd := r.Command()
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)

	require.NoError(t, cmd.PersistentPreRunE(cmd, nil))
	assert.Contains(t, stderr.String(), "using defaults")
	assert.Equal(t, appcfg.Defaults(), r.App)
}

func TestRunRejectsEmptySpec(t *testing.T) {
	out := filepath.Join(t.TempDir(), "wallets.txt")
	r := NewRunner(nil)
	var stdout bytes.Buffer
	r.Stdout = &stdout

	cmd := r.Command()
	cmd.SetArgs([]string{"-o", out})
	err := cmd.Execute()

	assert.ErrorIs(t, err, ErrConfig)
	assert.ErrorIs(t, err, config.ErrNoConstraint)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
	assert.Empty(t, stdout.String())
}

func TestRunEndToEndJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "wallets.txt")
	app := appcfg.Defaults()
	app.HideSecretsInConsole = false

	r := NewRunner(app)
	var stdout bytes.Buffer
	r.Stdout = &stdout

	cmd := r.Command()
	cmd.SetArgs([]string{"-p", "0", "-w", "2", "-o", out, "--events", "json"})
	require.NoError(t, cmd.Execute())

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "prefix: 0\n")
	assert.Contains(t, string(b), "wallet #1\n")

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], `"event":"started"`)
	assert.Contains(t, lines[len(lines)-2], `"event":"match"`)
	assert.Contains(t, lines[len(lines)-2], `"private_key":"0x`)
	assert.Contains(t, lines[len(lines)-1], `"event":"summary"`)
}

func TestRunRejectsUnknownEvents(t *testing.T) {
	r := NewRunner(nil)
	cmd := r.Command()
	cmd.SetArgs([]string{"-p", "0", "-o", filepath.Join(t.TempDir(), "w.txt"), "--events", "xml"})
	assert.ErrorIs(t, cmd.Execute(), ErrConfig)
}
