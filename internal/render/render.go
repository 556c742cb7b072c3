package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/gemdown/internal/gemtext"
)

// Renderer converts a Gemtext document into one output format.
type Renderer interface {
	Render(r io.Reader) ([]byte, error)
	ContentType() string
}

// SupportedFormats lists the output formats this service can produce.
var SupportedFormats = map[string]bool{
	"markdown": true,
	"html":     true,
}

// ForFormat returns the renderer for an output format name. An empty name
// selects markdown.
func ForFormat(name string) (Renderer, error) {
	switch strings.ToLower(name) {
	case "", "markdown", "md":
		return &MarkdownRenderer{}, nil
	case "html":
		return &HTMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", name)
	}
}

// MarkdownRenderer produces CommonMark text, the native output of the
// conversion pipeline.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(src io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	if err := gemtext.Convert(src, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *MarkdownRenderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}
