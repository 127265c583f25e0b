// Package scaffold provides the embedded starter configuration.
package scaffold

import (
	"bytes"
	_ "embed"
	"text/template"

	"fsx/internal/config"
)

// Starter contains the starter configuration template with commented
// defaults.
//
//go:embed fsx.yaml
var Starter string

// Render renders the starter configuration with the built-in defaults
// substituted, so the generated file and the zero-config behavior always
// agree.
func Render() (string, error) {
	tmpl, err := template.New("fsx-config").Parse(Starter)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{
		"Output":    config.DefaultOutput,
		"TopN":      config.DefaultTopN,
		"Extension": config.DefaultExtension,
		"Pattern":   config.DefaultPattern,
		"Focus":     config.DefaultFocus,
	}); err != nil {
		return "", err
	}

	return buf.String(), nil
}
