package report

import (
	"fmt"
	"io"
)

// Renderer writes a document in one output format.
type Renderer interface {
	Render(w io.Writer, doc Document) error
	Extension() string
}

// Format names a supported output format.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatCSV Format = "csv"
)

// NewRenderer returns the renderer for format.
func NewRenderer(format Format) (Renderer, error) {
	switch format {
	case FormatPDF:
		return NewPDFRenderer(), nil
	case FormatCSV:
		return NewCSVRenderer(), nil
	default:
		return nil, fmt.Errorf("unsupported report format %q (expected pdf or csv)", format)
	}
}
