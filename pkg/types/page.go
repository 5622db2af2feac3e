// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Page holds the text extracted from one page of a document.
type Page struct {
	// Number is the 1-based position of the page in the document.
	Number int `json:"page" yaml:"page"`

	// Text is the extracted text. Empty when the page has no text layer
	// or extraction failed.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// Err records a per-page extraction failure. It is never fatal.
	Err error `json:"-" yaml:"-"`
}

// HasText reports whether extraction produced any text for the page.
func (p Page) HasText() bool {
	return p.Text != ""
}
