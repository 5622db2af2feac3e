// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textenc wraps an output stream in a character encoding that never
// fails on unrepresentable input. Invalid UTF-8 becomes U+FFFD; runes the
// target encoding cannot express become its replacement byte.
package textenc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Validate returns an error if name is not a known encoding label.
func Validate(name string) error {
	_, err := lookup(name)
	return err
}

// NewWriter returns a writer that encodes UTF-8 text written to it into the
// named encoding and forwards it to w. Close must be called to flush the
// final buffered bytes; it does not close w.
func NewWriter(w io.Writer, name string) (io.WriteCloser, error) {
	t, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return transform.NewWriter(w, t), nil
}

func lookup(name string) (transform.Transformer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		// The UTF-8 decoder substitutes U+FFFD for every invalid sequence.
		return unicode.UTF8.NewDecoder(), nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown output encoding %q: %w", name, err)
	}
	return encoding.ReplaceUnsupported(enc.NewEncoder()), nil
}
