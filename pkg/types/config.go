// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Backend identifies the PDF library used for text extraction.
type Backend string

const (
	BackendLedongthuc Backend = "ledongthuc"
	BackendRSC        Backend = "rsc"
	BackendPdfcpu     Backend = "pdfcpu"
)

// OutputFormat selects how pages are rendered.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// DumpConfig holds settings for a single dump run.
type DumpConfig struct {
	// Path is the PDF file to read.
	Path string `json:"path" yaml:"path"`

	// Backend selects the extraction library (default ledongthuc).
	Backend Backend `json:"backend" yaml:"backend"`

	// Format selects the output rendering: text, json, or yaml (default text).
	Format OutputFormat `json:"format" yaml:"format"`

	// Encoding is the WHATWG label of the output encoding (default utf-8).
	// Characters the encoding cannot represent are replaced, not rejected.
	Encoding string `json:"encoding" yaml:"encoding"`
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c DumpConfig) WithDefaults() DumpConfig {
	if c.Backend == "" {
		c.Backend = BackendLedongthuc
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if c.Encoding == "" {
		c.Encoding = "utf-8"
	}
	return c
}
