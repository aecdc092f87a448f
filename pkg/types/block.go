// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Format identifies a source document type.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDocx Format = "docx"
)

// BlockKind labels the semantic role of a classified block.
type BlockKind string

const (
	// BlockName is the candidate's name, at most one per document and only
	// ever derived from the first fragment.
	BlockName BlockKind = "name"

	// BlockContact is a line carrying an email address, phone number, or URL.
	BlockContact BlockKind = "contact"

	// BlockSection is a section heading.
	BlockSection BlockKind = "section"

	// BlockList is one or more consecutive bullet fragments merged into a
	// single list.
	BlockList BlockKind = "list"

	// BlockParagraph is body text that matched no other rule.
	BlockParagraph BlockKind = "paragraph"
)

// Block is one classified unit of output. Text is set for every kind except
// BlockList; Items holds the list entries with their bullet prefixes already
// stripped.
type Block struct {
	Kind  BlockKind `json:"kind" yaml:"kind"`
	Text  string    `json:"text,omitempty" yaml:"text,omitempty"`
	Items []string  `json:"items,omitempty" yaml:"items,omitempty"`
}

// Document is the classified structure of one source file, in reading order.
type Document struct {
	Source string  `json:"source" yaml:"source"`
	Format Format  `json:"format" yaml:"format"`
	Blocks []Block `json:"blocks" yaml:"blocks"`
}
