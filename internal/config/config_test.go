package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fsx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Tree)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultTopN, cfg.Report.TopN)
	assert.Equal(t, DefaultExtension, cfg.Report.Extension)
	assert.Equal(t, DefaultPattern, cfg.Report.Pattern)
	assert.True(t, cfg.Report.IncludeDirs)
	assert.Equal(t, DefaultFocus, cfg.Report.Focus)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
tree: trees/archive.json
output: json
report:
  top_n: 3
  focus: Downloads
  include_dirs: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "trees/archive.json", cfg.Tree)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 3, cfg.Report.TopN)
	assert.Equal(t, "Downloads", cfg.Report.Focus)
	assert.False(t, cfg.Report.IncludeDirs)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, DefaultExtension, cfg.Report.Extension)
	assert.Equal(t, DefaultPattern, cfg.Report.Pattern)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "{output: [unterminated")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidOutput(t *testing.T) {
	path := writeConfig(t, "output: xml\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestLoad_NegativeTopN(t *testing.T) {
	path := writeConfig(t, "report:\n  top_n: -2\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top_n")
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("FSX_OUTPUT", "json")
	t.Setenv("FSX_REPORT_TOP_N", "9")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 9, cfg.Report.TopN)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Output: "table"}
	assert.NoError(t, cfg.Validate())

	cfg.Output = "yaml"
	assert.Error(t, cfg.Validate())
}
