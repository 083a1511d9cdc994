package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// styles colour status lines when the writer is a terminal and leave them
// as plain text otherwise.
type styles struct {
	ok   lipgloss.Style
	fail lipgloss.Style
	warn lipgloss.Style
	dim  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		ok:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		fail: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		warn: r.NewStyle().Foreground(lipgloss.Color("11")),
		dim:  r.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// checkFormat rejects unknown -o values before any work is done
func checkFormat(format string, allowed ...string) error {
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format %q (expected one of %v)", format, allowed)
}

// writeStructured encodes v as YAML or JSON
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
