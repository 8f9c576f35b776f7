package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/changekit/coinchange"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config dir and working directory at an empty temp
// dir so a stray changekit.yaml on the host cannot leak into a test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	return dir
}

func newFlagCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Int("max-amount", DefaultMaxAmount, "")
	cmd.Flags().String("order", "from-zero", "")
	cmd.Flags().String("output", OutputText, "")
	cmd.Flags().Bool("verbose", false, "")

	return cmd
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	c, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxAmount, c.MaxAmount)
	assert.Equal(t, "from-zero", c.Order)
	assert.Equal(t, OutputText, c.Output)
	assert.False(t, c.Verbose)
}

func TestLoad_FileEnvFlagPrecedence(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_amount: 50\norder: from-amount\noutput: json\n"), 0o600))

	c, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, 50, c.MaxAmount)
	assert.Equal(t, "from-amount", c.Order)
	assert.Equal(t, OutputJSON, c.Output)

	t.Setenv("CHANGEKIT_MAX_AMOUNT", "40")
	c, err = Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, 40, c.MaxAmount, "env overrides file")

	cmd := newFlagCmd()
	require.NoError(t, cmd.Flags().Set("max-amount", "30"))
	c, err = Load(cmd, path)
	require.NoError(t, err)
	assert.Equal(t, 30, c.MaxAmount, "flag overrides env")
	assert.Equal(t, "from-amount", c.Order, "unset flag does not shadow file")
}

func TestLoad_SearchesWorkingDirectory(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "changekit.yaml"), []byte("output: yaml\n"), 0o600))

	c, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, OutputYAML, c.Output)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(nil, filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	ok := Config{MaxAmount: 10, Order: "from-zero", Output: OutputText}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.MaxAmount = -1
	assert.ErrorIs(t, bad.Validate(), coinchange.ErrBadMaxAmount)

	bad = ok
	bad.Order = "upward"
	assert.ErrorIs(t, bad.Validate(), coinchange.ErrBadOrder)

	bad = ok
	bad.Output = "xml"
	assert.ErrorIs(t, bad.Validate(), ErrBadOutput)
}

func TestSolverOptions(t *testing.T) {
	c := Config{MaxAmount: 12, Order: "from-amount", Output: OutputText}
	o := coinchange.DefaultOptions()
	for _, opt := range c.SolverOptions() {
		opt(&o)
	}
	assert.Equal(t, 12, o.MaxAmount)
	assert.Equal(t, coinchange.FromAmount, o.Order)
}
