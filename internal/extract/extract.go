// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract reads source documents and yields ordered text fragments
// annotated with the formatting signals each format can provide. Adapters
// guarantee reading order, trimmed non-empty text, and contiguous zero-based
// indices; blank paragraphs and lines never reach the classifier.
package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/resumetex/pkg/types"
)

// ErrUnsupportedFormat reports a file extension with no extraction adapter.
var ErrUnsupportedFormat = errors.New("unsupported format")

// defaultMaxFileSize caps accepted source files at 50 MB.
const defaultMaxFileSize = 50 * 1024 * 1024

// Extractor produces the ordered fragment sequence for one source format.
type Extractor interface {
	Extract(path string) ([]types.Fragment, error)
}

// Detect maps a file extension to its source format.
func Detect(path string) (types.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return types.FormatPDF, nil
	case ".docx", ".doc":
		return types.FormatDocx, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: .pdf, .docx, .doc)", ErrUnsupportedFormat, ext)
	}
}

// ForFormat returns the extraction adapter for a format.
func ForFormat(format types.Format) (Extractor, error) {
	switch format {
	case types.FormatPDF:
		return &PDFExtractor{}, nil
	case types.FormatDocx:
		return &DocxExtractor{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// CheckSource stats the file and enforces the size cap before any parsing.
// A missing file fails here, before an extraction attempt. maxSize of 0
// means the default cap.
func CheckSource(path string, maxSize int64) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if maxSize <= 0 {
		maxSize = defaultMaxFileSize
	}
	if info.Size() > maxSize {
		return fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), maxSize)
	}
	return nil
}
