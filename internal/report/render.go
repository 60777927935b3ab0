// Package report renders analysis results into their output targets:
// machine-readable JSON and YAML, and a human-readable Markdown
// narrative. All targets render from the same Report value.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/p6tools/p6delta/pkg/models"
)

// Format names a rendering target.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatYAML     Format = "yaml"
	// FormatBoth writes the JSON and Markdown targets together, the
	// tool's original default pairing.
	FormatBoth Format = "both"
)

// Valid reports whether f is a recognized format.
func (f Format) Valid() bool {
	switch f {
	case FormatJSON, FormatMarkdown, FormatYAML, FormatBoth:
		return true
	}
	return false
}

// Renderer produces one output document from a report.
type Renderer interface {
	Render(r *models.Report) ([]byte, error)
}

type jsonRenderer struct{}

// NewJSONRenderer creates the machine-readable JSON renderer.
func NewJSONRenderer() Renderer {
	return &jsonRenderer{}
}

func (jsonRenderer) Render(r *models.Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding JSON report: %w", err)
	}
	return append(data, '\n'), nil
}

type yamlRenderer struct{}

// NewYAMLRenderer creates the machine-readable YAML renderer.
func NewYAMLRenderer() Renderer {
	return &yamlRenderer{}
}

func (yamlRenderer) Render(r *models.Report) ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encoding YAML report: %w", err)
	}
	return data, nil
}

// extensions maps a single-document format to its file extension.
var extensions = map[Format]string{
	FormatJSON:     ".json",
	FormatMarkdown: ".md",
	FormatYAML:     ".yaml",
}

// rendererFor returns the renderer for a single-document format.
func rendererFor(f Format) Renderer {
	switch f {
	case FormatJSON:
		return NewJSONRenderer()
	case FormatYAML:
		return NewYAMLRenderer()
	case FormatMarkdown:
		return NewMarkdownRenderer()
	}
	return nil
}

// Write renders the report in the given format and writes the result
// under dir with the given file name prefix, creating dir if needed.
// FormatBoth writes the JSON and Markdown documents. Returns the paths
// written, in write order.
func Write(r *models.Report, dir, prefix string, format Format) ([]string, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("unknown report format %q", format)
	}

	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	formats := []Format{format}
	if format == FormatBoth {
		formats = []Format{FormatJSON, FormatMarkdown}
	}

	var written []string
	for _, f := range formats {
		data, err := rendererFor(f).Render(r)
		if err != nil {
			return written, err
		}
		path := filepath.Join(dir, prefix+extensions[f])
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("writing %s report: %w", f, err)
		}
		written = append(written, path)
	}

	return written, nil
}
