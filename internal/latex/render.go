// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"fmt"
	"strings"

	"github.com/pdiddy/resumetex/pkg/types"
)

const (
	defaultFontSize = "11pt"
	defaultPaper    = "a4paper"
	defaultMargin   = "1in"
)

const footer = "\\end{document}\n"

// Render turns a classified document into a complete LaTeX file. It knows
// nothing about how the blocks were derived.
func Render(doc *types.Document, cfg types.RenderConfig) string {
	var b strings.Builder
	b.WriteString(Header(cfg))
	for _, blk := range doc.Blocks {
		switch blk.Kind {
		case types.BlockName:
			writeName(&b, blk.Text)
		case types.BlockContact:
			writeContact(&b, blk.Text)
		case types.BlockSection:
			writeSection(&b, blk.Text)
		case types.BlockList:
			writeList(&b, blk.Items)
		default:
			writeParagraph(&b, blk.Text)
		}
	}
	b.WriteString(footer)
	return b.String()
}

// Header returns the document preamble. Zero-value config fields fall back
// to 11pt, a4paper, and a 1in margin.
func Header(cfg types.RenderConfig) string {
	fontSize := cfg.FontSize
	if fontSize == "" {
		fontSize = defaultFontSize
	}
	paper := cfg.Paper
	if paper == "" {
		paper = defaultPaper
	}
	margin := cfg.Margin
	if margin == "" {
		margin = defaultMargin
	}

	return fmt.Sprintf(`\documentclass[%s,%s]{article}
\usepackage[utf8]{inputenc}
\usepackage[margin=%s]{geometry}
\usepackage{enumitem}
\usepackage{hyperref}
\usepackage{titlesec}

%% Formatting
\setlength{\parindent}{0pt}
\setlength{\parskip}{0.5em}
\titlespacing*{\section}{0pt}{1em}{0.5em}
\titlespacing*{\subsection}{0pt}{0.75em}{0.25em}

\begin{document}

`, fontSize, paper, margin)
}

// writeName emits the candidate's name as a centered large bold title.
func writeName(b *strings.Builder, name string) {
	fmt.Fprintf(b, "\\begin{center}\n  {\\Large \\textbf{%s}}\n\\end{center}\n\n", Escape(strings.TrimSpace(name)))
}

// writeContact emits a centered contact line.
func writeContact(b *strings.Builder, text string) {
	fmt.Fprintf(b, "\\begin{center}\n  %s\n\\end{center}\n\n", Escape(strings.TrimSpace(text)))
}

func writeSection(b *strings.Builder, heading string) {
	fmt.Fprintf(b, "\\section{%s}\n", Escape(heading))
}

// writeList emits an itemize environment. Items arrive with their bullet
// prefixes already stripped.
func writeList(b *strings.Builder, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\\begin{itemize}\n")
	for _, item := range items {
		fmt.Fprintf(b, "  \\item %s\n", Escape(item))
	}
	b.WriteString("\\end{itemize}\n\n")
}

func writeParagraph(b *strings.Builder, text string) {
	fmt.Fprintf(b, "%s\n\n", Escape(strings.TrimSpace(text)))
}
