// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RenderConfig holds LaTeX output settings. Zero values fall back to the
// defaults noted on each field.
type RenderConfig struct {
	// FontSize is the document class font size option (default "11pt").
	FontSize string `json:"font_size" yaml:"font_size"`

	// Paper is the document class paper option (default "a4paper").
	Paper string `json:"paper" yaml:"paper"`

	// Margin is the page margin passed to the geometry package (default "1in").
	Margin string `json:"margin" yaml:"margin"`
}

// ConvertConfig holds settings for a conversion run.
type ConvertConfig struct {
	// Format forces a specific input format; empty means detect from the
	// file extension.
	Format Format `json:"format,omitempty" yaml:"format,omitempty"`

	// MaxFileSize is the largest source file accepted, in bytes
	// (default 50 MB).
	MaxFileSize int64 `json:"max_file_size" yaml:"max_file_size"`

	// Render configures the LaTeX output.
	Render RenderConfig `json:"render" yaml:"render"`
}
