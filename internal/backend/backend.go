// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package backend adapts third-party PDF libraries to a common page-oriented
// Document interface. Each backend owns the open file for the life of the
// Document and releases it on Close.
package backend

import (
	"fmt"
	"strings"

	"github.com/pdiddy/pagedump/pkg/types"
)

// Document is an open PDF whose pages can be read one at a time.
type Document interface {
	// NumPage returns the number of pages in the document.
	NumPage() int

	// PageText extracts the text of page n (1-based). An error means the
	// page could not be extracted; the document stays usable.
	PageText(n int) (string, error)

	// Close releases the underlying file.
	Close() error
}

// opener opens the PDF at path with one specific library.
type opener func(path string) (Document, error)

var openers = map[types.Backend]opener{
	types.BackendLedongthuc: openLedongthuc,
	types.BackendRSC:        openRSC,
	types.BackendPdfcpu:     openPdfcpu,
}

// Names returns the valid backend names in sorted order.
func Names() []string {
	return []string{
		string(types.BackendLedongthuc),
		string(types.BackendPdfcpu),
		string(types.BackendRSC),
	}
}

// Validate returns an error if name is not a known backend.
func Validate(name types.Backend) error {
	if _, ok := openers[name]; !ok {
		return fmt.Errorf("unknown backend %q (valid: %s)", name, strings.Join(Names(), ", "))
	}
	return nil
}

// Open opens the PDF at path using the named backend. Missing files and
// unparsable documents are reported here, before any page is read.
func Open(name types.Backend, path string) (Document, error) {
	if err := Validate(name); err != nil {
		return nil, err
	}
	return openers[name](path)
}

// recoverPage converts a library panic during page extraction into an error.
// The PDF libraries panic on malformed content streams.
func recoverPage(n int, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("extracting page %d: %v", n, r)
	}
}

// checkPage returns an error if n is outside 1..count.
func checkPage(n, count int) error {
	if n < 1 || n > count {
		return fmt.Errorf("page %d out of range (document has %d pages)", n, count)
	}
	return nil
}
