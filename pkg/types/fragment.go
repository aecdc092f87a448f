// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the resumetex pipeline:
// extracted text fragments, classified blocks, and stage configuration.
package types

// Fragment is one extracted unit of text together with the weak formatting
// signals its source format could supply. Adapters populate whichever signals
// they have and leave the rest at their zero values; the classifier never
// learns which format produced a fragment, only which signals are present.
type Fragment struct {
	// Text is the trimmed, non-empty fragment content.
	Text string `json:"text" yaml:"text"`

	// FontSize is the font size in points, or 0 when the adapter does not
	// report one.
	FontSize float64 `json:"font_size,omitempty" yaml:"font_size,omitempty"`

	// Bold reports whether any run in the fragment is bold. Only meaningful
	// when StyleKnown is true.
	Bold bool `json:"bold,omitempty" yaml:"bold,omitempty"`

	// HeadingStyle reports whether the paragraph carries a heading or title
	// style name. Only meaningful when StyleKnown is true.
	HeadingStyle bool `json:"heading_style,omitempty" yaml:"heading_style,omitempty"`

	// StyleKnown is true when the producing adapter supplies boldness and
	// style-name signals at all. Word documents do; PDFs do not.
	StyleKnown bool `json:"style_known,omitempty" yaml:"style_known,omitempty"`

	// Index is the zero-based position of the fragment in reading order.
	Index int `json:"index" yaml:"index"`

	// Page is the 1-based source page number, or 0 when the format has no
	// page concept.
	Page int `json:"page,omitempty" yaml:"page,omitempty"`
}
