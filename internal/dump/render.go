// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dump

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pagedump/pkg/types"
)

// ValidateFormat returns an error if f is not a supported output format.
func ValidateFormat(f types.OutputFormat) error {
	switch f {
	case types.FormatText, types.FormatJSON, types.FormatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (valid: text, json, yaml)", f)
}

// Write renders pages to w in the given format. Pages are written as they
// are produced; output already written stays written if a later page fails.
func Write(w io.Writer, pages iter.Seq[types.Page], format types.OutputFormat) error {
	switch format {
	case types.FormatText:
		return writeText(w, pages)
	case types.FormatJSON:
		return writeJSON(w, pages)
	case types.FormatYAML:
		return writeYAML(w, pages)
	}
	return ValidateFormat(format)
}

// writeText emits a "=== PAGE n ===" header per page, the page text when
// there is any, and a blank line after every page.
func writeText(w io.Writer, pages iter.Seq[types.Page]) error {
	bw := bufio.NewWriter(w)
	for p := range pages {
		fmt.Fprintf(bw, "=== PAGE %d ===\n", p.Number)
		if p.HasText() {
			bw.WriteString(p.Text)
			bw.WriteByte('\n')
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing page %d: %w", p.Number, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// writeJSON emits one JSON object per page per line.
func writeJSON(w io.Writer, pages iter.Seq[types.Page]) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for p := range pages {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encoding page %d: %w", p.Number, err)
		}
	}
	return nil
}

// writeYAML emits a YAML stream with one document per page.
func writeYAML(w io.Writer, pages iter.Seq[types.Page]) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for p := range pages {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encoding page %d: %w", p.Number, err)
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
