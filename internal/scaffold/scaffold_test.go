package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fsx/internal/config"
)

func TestRender(t *testing.T) {
	rendered, err := Render()
	require.NoError(t, err)

	assert.Contains(t, rendered, "output: table")
	assert.Contains(t, rendered, "top_n: 5")
	assert.Contains(t, rendered, "extension: pdf")
	assert.Contains(t, rendered, "focus: Documents/Personal/Photos")
	assert.NotContains(t, rendered, "{{", "all placeholders must be substituted")
}

// The generated file must load back to the built-in defaults.
func TestRender_RoundTripsThroughLoad(t *testing.T) {
	rendered, err := Render()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "fsx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(rendered), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Tree)
	assert.Equal(t, config.DefaultOutput, cfg.Output)
	assert.Equal(t, config.DefaultTopN, cfg.Report.TopN)
	assert.Equal(t, config.DefaultExtension, cfg.Report.Extension)
	assert.Equal(t, config.DefaultPattern, cfg.Report.Pattern)
	assert.True(t, cfg.Report.IncludeDirs)
	assert.Equal(t, config.DefaultFocus, cfg.Report.Focus)
}
