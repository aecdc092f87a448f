// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert orchestrates the pipeline: extract fragments from a source
// document, classify them into typed blocks, and render LaTeX. Each run is
// independent and stateless; nothing is written unless the full render
// succeeds.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/resumetex/internal/classify"
	"github.com/pdiddy/resumetex/internal/extract"
	"github.com/pdiddy/resumetex/internal/latex"
	"github.com/pdiddy/resumetex/pkg/types"
)

// Convert reads a source document and returns the rendered LaTeX text.
func Convert(path string, cfg types.ConvertConfig) (string, error) {
	doc, err := ClassifyFile(path, cfg)
	if err != nil {
		return "", err
	}
	return latex.Render(doc, cfg.Render), nil
}

// ClassifyFile extracts and classifies a source document without rendering.
// A missing source fails before any extraction attempt; an unrecognized
// extension fails with extract.ErrUnsupportedFormat unless cfg.Format forces
// an adapter.
func ClassifyFile(path string, cfg types.ConvertConfig) (*types.Document, error) {
	if err := extract.CheckSource(path, cfg.MaxFileSize); err != nil {
		return nil, err
	}

	format := cfg.Format
	if format == "" {
		var err error
		format, err = extract.Detect(path)
		if err != nil {
			return nil, err
		}
	}

	ex, err := extract.ForFormat(format)
	if err != nil {
		return nil, err
	}

	fragments, err := ex.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("extract %s (%s): %w", path, format, err)
	}

	return &types.Document{
		Source: path,
		Format: format,
		Blocks: classify.Classify(fragments),
	}, nil
}

// ConvertAndSave converts a source document and writes the UTF-8 LaTeX
// output to outPath, overwriting any existing file. On failure no output
// file is touched.
func ConvertAndSave(path, outPath string, cfg types.ConvertConfig) error {
	rendered, err := Convert(path, cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

// OutputPath returns the default output location for a source file: the same
// path with the extension swapped for .tex.
func OutputPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".tex"
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of inputs processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any input failed to convert.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertBatch converts each source path to its default output location,
// printing per-file status to w and returning a summary. Inputs whose output
// already exists are skipped unless force is set; one bad input does not stop
// the rest.
func ConvertBatch(paths []string, cfg types.ConvertConfig, force bool, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range paths {
		outPath := OutputPath(p)

		if !force {
			if _, err := os.Stat(outPath); err == nil {
				fmt.Fprintf(w, "skipped: %s (already exists)\n", outPath)
				result.Skipped++
				continue
			}
		}

		if err := ConvertAndSave(p, outPath, cfg); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", p, err)
			result.Failed++
			continue
		}

		fmt.Fprintf(w, "converted: %s -> %s\n", p, outPath)
		result.Converted++
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}
