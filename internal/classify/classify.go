// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify infers document structure from an ordered sequence of
// extracted text fragments. A fixed set of heuristic rules labels each
// fragment as a name, contact line, section heading, list item, or body
// paragraph; consecutive list items are merged into a single list block.
//
// Classification is total: it never fails, every fragment receives exactly
// one label, and the only many-to-one mapping is the bullet merge. Because
// the font-size rule compares against the document-wide average, the
// classifier runs in two phases: a statistics pre-pass over the whole
// sequence, then a pure fold over the fragments.
package classify

import (
	"strings"

	"github.com/pdiddy/resumetex/pkg/types"
)

// headingScale is the factor over the average font size above which a
// fragment reads as a heading.
const headingScale = 1.1

// Stats holds aggregates computed over the full fragment sequence before
// per-fragment classification.
type Stats struct {
	// AvgFontSize is the arithmetic mean of the font sizes of all fragments
	// that report one, or 0 when none do.
	AvgFontSize float64
}

// ComputeStats runs the pre-pass over the full fragment sequence.
func ComputeStats(fragments []types.Fragment) Stats {
	var sum float64
	var n int
	for _, f := range fragments {
		if f.FontSize > 0 {
			sum += f.FontSize
			n++
		}
	}
	var s Stats
	if n > 0 {
		s.AvgFontSize = sum / float64(n)
	}
	return s
}

// Classify maps an ordered fragment sequence to an ordered block sequence.
func Classify(fragments []types.Fragment) []types.Block {
	return ClassifyWithStats(fragments, ComputeStats(fragments))
}

// ClassifyWithStats labels each fragment using the precomputed stats, first
// matching rule wins:
//
//  1. first fragment that reads like a name       → name
//  2. email / phone / URL                         → contact
//  3. heading signal (style, boldness, font size) → section
//  4. bullet glyph or numbering                   → buffered list item
//  5. anything else                               → paragraph
//
// Buffered list items are flushed as one list block before any non-bullet
// block is appended, and again at end of input, so a list is never split by
// an intervening fragment.
func ClassifyWithStats(fragments []types.Fragment, stats Stats) []types.Block {
	var blocks []types.Block
	var pending []string

	flush := func() {
		if len(pending) == 0 {
			return
		}
		blocks = append(blocks, types.Block{Kind: types.BlockList, Items: pending})
		pending = nil
	}

	emit := func(kind types.BlockKind, text string) {
		flush()
		blocks = append(blocks, types.Block{Kind: kind, Text: text})
	}

	for _, f := range fragments {
		switch {
		case f.Index == 0 && isLikelyName(f.Text):
			emit(types.BlockName, f.Text)
		case isLikelyContactInfo(f.Text):
			emit(types.BlockContact, f.Text)
		case isSection(f, stats):
			emit(types.BlockSection, f.Text)
		case detectBulletPoint(f.Text):
			pending = append(pending, stripBullet(f.Text))
		default:
			emit(types.BlockParagraph, f.Text)
		}
	}
	flush()

	return blocks
}

// isSection applies the heading rule for whichever signals the adapter
// supplied. Fragments with style information use the paragraph style and
// boldness; the rest fall back to relative font size. Both branches accept
// the textual heading heuristic.
//
// The short-and-bold path can mislabel a three-word bold paragraph as a
// heading; it only exists for formats that report boldness, so PDF input
// never takes it.
func isSection(f types.Fragment, stats Stats) bool {
	if f.StyleKnown {
		if f.HeadingStyle || (f.Bold && len(strings.Fields(f.Text)) <= 3) {
			return true
		}
		return detectSectionHeading(f.Text)
	}
	if stats.AvgFontSize > 0 && f.FontSize > stats.AvgFontSize*headingScale {
		return true
	}
	return detectSectionHeading(f.Text)
}
