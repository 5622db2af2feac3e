// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dump streams the text of a PDF document page by page.
//
// Pages are produced lazily and strictly in document order. A page whose
// text cannot be extracted is still emitted, with no body; only failures to
// open the document abort a run.
package dump

import (
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/pdiddy/pagedump/internal/backend"
	"github.com/pdiddy/pagedump/internal/textenc"
	"github.com/pdiddy/pagedump/pkg/types"
)

// Source is the part of an open document the dumper reads from.
type Source interface {
	NumPage() int
	PageText(n int) (string, error)
}

// Pages returns a lazy sequence over the pages of src, numbered from 1.
// Each page's text is extracted only when the consumer asks for it.
// Extraction errors are recorded on the page, not returned.
func Pages(src Source) iter.Seq[types.Page] {
	return func(yield func(types.Page) bool) {
		n := src.NumPage()
		for i := 1; i <= n; i++ {
			text, err := src.PageText(i)
			if err != nil {
				text = ""
			}
			if !yield(types.Page{Number: i, Text: text, Err: err}) {
				return
			}
		}
	}
}

// Run opens the PDF named by cfg.Path and writes all of its pages to w in
// the configured format and encoding. Nothing is written if the document
// cannot be opened.
func Run(cfg types.DumpConfig, w io.Writer, logger *slog.Logger) error {
	cfg = cfg.WithDefaults()
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Path == "" {
		return fmt.Errorf("no PDF path given")
	}
	if err := backend.Validate(cfg.Backend); err != nil {
		return err
	}
	if err := ValidateFormat(cfg.Format); err != nil {
		return err
	}
	if err := textenc.Validate(cfg.Encoding); err != nil {
		return err
	}

	doc, err := backend.Open(cfg.Backend, cfg.Path)
	if err != nil {
		return err
	}
	defer doc.Close()

	logger.Debug("document opened", "path", cfg.Path, "backend", cfg.Backend, "pages", doc.NumPage())

	out, err := textenc.NewWriter(w, cfg.Encoding)
	if err != nil {
		return err
	}

	pages := func(yield func(types.Page) bool) {
		for p := range Pages(doc) {
			if p.Err != nil {
				logger.Debug("page extraction failed", "page", p.Number, "error", p.Err)
			}
			if !yield(p) {
				return
			}
		}
	}

	if err := Write(out, pages, cfg.Format); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
