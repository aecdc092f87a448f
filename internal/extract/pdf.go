// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/resumetex/pkg/types"
)

// PDFExtractor reads PDF files. PDF fragments carry a precise font size and
// a page number, but no boldness or style-name signals.
type PDFExtractor struct{}

// lineTolerance is the maximum Y-coordinate drift, in points, for two text
// runs to count as the same line.
const lineTolerance = 2.0

// Extract yields one fragment per text line, in page order. The largest font
// size among a line's runs becomes the fragment's font size, mirroring how
// a heading with mixed runs still reads as large.
func (e *PDFExtractor) Extract(path string) (fragments []types.Fragment, err error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	// The pdf library panics on some malformed or encrypted files; surface
	// that as an ordinary extraction error.
	defer func() {
		if rec := recover(); rec != nil {
			fragments = nil
			err = fmt.Errorf("parse pdf: %v", rec)
		}
	}()

	for pageNr := 1; pageNr <= r.NumPage(); pageNr++ {
		page := r.Page(pageNr)
		if page.V.IsNull() {
			continue
		}
		fragments = appendPageFragments(fragments, page.Content().Text, pageNr)
	}
	return fragments, nil
}

// appendPageFragments groups positioned text runs into lines by Y coordinate
// and appends one fragment per non-blank line.
func appendPageFragments(fragments []types.Fragment, texts []pdf.Text, pageNr int) []types.Fragment {
	var line strings.Builder
	var fontSize, y float64

	flush := func() {
		text := strings.TrimSpace(line.String())
		size := fontSize
		line.Reset()
		fontSize = 0
		if text == "" {
			return
		}
		fragments = append(fragments, types.Fragment{
			Text:     text,
			FontSize: size,
			Index:    len(fragments),
			Page:     pageNr,
		})
	}

	for i, t := range texts {
		if i > 0 && math.Abs(t.Y-y) > lineTolerance {
			flush()
		}
		y = t.Y
		line.WriteString(t.S)
		if t.FontSize > fontSize {
			fontSize = t.FontSize
		}
	}
	flush()

	return fragments
}
