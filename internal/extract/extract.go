// Package extract pulls plain text out of uploaded files so the rest of
// the pipeline only ever sees strings. Dispatch is by MIME type, matching
// what browsers send for the supported upload formats.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"prdforge/internal/logging"
)

// ErrUnsupportedFileType is returned for MIME types with no extractor.
var ErrUnsupportedFileType = errors.New("unsupported file type")

const (
	mimePDF  = "application/pdf"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Extract converts file bytes to plain text. Any text/* subtype passes
// through as-is; PDF and docx are parsed. Everything else fails with
// ErrUnsupportedFileType.
func Extract(data []byte, mimeType string) (string, error) {
	// Strip parameters like "; charset=utf-8" before matching.
	base := mimeType
	if i := strings.Index(base, ";"); i >= 0 {
		base = base[:i]
	}
	base = strings.TrimSpace(strings.ToLower(base))

	logging.Get(logging.CategoryExtract).Debug("extract mime=%s bytes=%d", base, len(data))

	switch {
	case strings.HasPrefix(base, "text/"):
		return string(data), nil
	case base == mimePDF:
		return extractPDF(data)
	case base == mimeDocx:
		return extractDocx(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, mimeType)
	}
}
