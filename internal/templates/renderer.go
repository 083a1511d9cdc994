package templates

import (
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// Embed all templates at compile time
//
//go:embed *.tmpl
var templates embed.FS

// Template names
const (
	DebugText  = "debug.txt"
	DebugHTML  = "debug.html"
	Diagnostic = "diagnostic.txt"
)

// executor is satisfied by both text/template and html/template
type executor interface {
	Execute(w io.Writer, data any) error
}

var funcs = map[string]any{
	"onoff": func(b bool) string {
		if b {
			return "true"
		}
		return "false"
	},
	"join": strings.Join,
	"pad": func(width int, s string) string {
		if len(s) >= width {
			return s
		}
		return s + strings.Repeat(" ", width-len(s))
	},
}

// Renderer handles template operations
type Renderer struct {
	outputDir string
}

// NewRenderer creates a new template renderer writing files into outputDir
func NewRenderer(outputDir string) *Renderer {
	return &Renderer{
		outputDir: outputDir,
	}
}

// Render executes the named template into w. Templates ending in .html are
// parsed with html/template so values are escaped.
func (r *Renderer) Render(w io.Writer, templateName string, data any) error {
	tmpl, err := parse(templateName)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render template %s: %w", templateName, err)
	}
	return nil
}

// RenderToFile renders the named template into outputDir/templateName and
// returns the path written.
func (r *Renderer) RenderToFile(templateName string, data any) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", r.outputDir, err)
	}

	outputPath := filepath.Join(r.outputDir, templateName)
	outputFile, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}
	defer outputFile.Close()

	if err := r.Render(outputFile, templateName, data); err != nil {
		return "", err
	}
	return outputPath, nil
}

func parse(templateName string) (executor, error) {
	// Read from embedded filesystem
	templateContent, err := templates.ReadFile(templateName + ".tmpl")
	if err != nil {
		return nil, fmt.Errorf("unknown template %s: %w", templateName, err)
	}

	if strings.HasSuffix(templateName, ".html") {
		tmpl, err := htmltemplate.New(templateName).Funcs(funcs).Parse(string(templateContent))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", templateName, err)
		}
		return tmpl, nil
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(templateContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}
	return tmpl, nil
}
