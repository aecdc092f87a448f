// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/resumetex/pkg/types"
)

// DocxExtractor reads Microsoft Word files by walking the WordprocessingML
// token stream in word/document.xml. DOCX fragments carry boldness, an
// explicit font size when one is set, and the paragraph style name folded
// into a heading flag, but no page numbers.
type DocxExtractor struct{}

// Extract yields one fragment per non-empty paragraph, in document order.
func (e *DocxExtractor) Extract(path string) ([]types.Fragment, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open docx archive: %w", err)
	}
	defer r.Close()

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("word/document.xml not found in archive")
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	return parseDocumentXML(rc)
}

// parseDocumentXML walks the token stream, accumulating text and run
// properties per paragraph. A paragraph is bold when any of its runs is.
// The first explicit run size wins, converted from half-points.
func parseDocumentXML(r io.Reader) ([]types.Fragment, error) {
	decoder := xml.NewDecoder(r)

	var fragments []types.Fragment
	var (
		text        strings.Builder
		inParagraph bool
		inRunProps  bool
		inTextRun   bool
		style       string
		bold        bool
		fontSize    float64
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				text.Reset()
				style = ""
				bold = false
				fontSize = 0
			case "pStyle":
				if inParagraph {
					style = attrVal(t, "val")
				}
			case "rPr":
				inRunProps = true
			case "b":
				if inRunProps && toggleOn(attrVal(t, "val")) {
					bold = true
				}
			case "sz":
				if inRunProps && fontSize == 0 {
					if v, err := strconv.ParseFloat(attrVal(t, "val"), 64); err == nil {
						fontSize = v / 2 // w:sz is in half-points
					}
				}
			case "t":
				inTextRun = inParagraph
			}

		case xml.CharData:
			if inTextRun {
				text.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inTextRun = false
			case "rPr":
				inRunProps = false
			case "p":
				if !inParagraph {
					continue
				}
				inParagraph = false
				content := strings.TrimSpace(text.String())
				if content == "" {
					continue
				}
				fragments = append(fragments, types.Fragment{
					Text:         content,
					FontSize:     fontSize,
					Bold:         bold,
					HeadingStyle: isHeadingStyle(style),
					StyleKnown:   true,
					Index:        len(fragments),
				})
			}
		}
	}

	return fragments, nil
}

// attrVal returns the value of the named attribute, ignoring namespaces.
func attrVal(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// toggleOn interprets a WordprocessingML toggle attribute: an absent or
// empty value means on; "false" and "0" mean off.
func toggleOn(v string) bool {
	return v != "false" && v != "0"
}

// isHeadingStyle reports whether a paragraph style name marks a heading or
// title ("Heading1", "Title", "Subtitle", localized variants with the same
// stem).
func isHeadingStyle(style string) bool {
	lower := strings.ToLower(style)
	if lower == "" {
		return false
	}
	return strings.Contains(lower, "heading") ||
		strings.HasPrefix(lower, "title") ||
		lower == "subtitle"
}
