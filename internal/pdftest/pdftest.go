// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest builds small, valid PDF files in memory for tests.
// Every page uses the standard Helvetica font; lines of page text are laid
// out top to bottom with T*.
package pdftest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Build returns a PDF with one page per entry in pages. An empty entry
// produces a page whose content stream draws no text.
func Build(pages ...string) []byte {
	streams := make([]string, len(pages))
	for i, text := range pages {
		streams[i] = TextStream(text)
	}
	return BuildStreams(streams...)
}

// BuildStreams returns a PDF with one page per content stream, written into
// the page as given. Font /F1 is available to every page.
func BuildStreams(pages ...string) []byte {
	// Object layout: 1 catalog, 2 page tree, 3 font, then a page object and
	// its content stream for each page.
	nObjs := 3 + 2*len(pages)
	offsets := make([]int, nObjs+1)

	var b strings.Builder
	b.WriteString("%PDF-1.4\n")

	obj := func(n int, body string) {
		offsets[n] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", n, body)
	}

	obj(1, "<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	obj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))

	widths := strings.TrimSpace(strings.Repeat("600 ", 126-32+1))
	obj(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /FirstChar 32 /LastChar 126 /Widths ["+widths+"] >>")

	for i, stream := range pages {
		pageObj, contentObj := 4+2*i, 5+2*i
		obj(pageObj, fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents %d 0 R /Resources << /Font << /F1 3 0 R >> >> >>", contentObj))

		obj(contentObj, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", nObjs+1)
	b.WriteString("0000000000 65535 f \n")
	for n := 1; n <= nObjs; n++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[n])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", nObjs+1, xref)
	return []byte(b.String())
}

// Write builds a PDF from pages, writes it to dir/name, and returns the path.
func Write(t testing.TB, dir, name string, pages ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, Build(pages...), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// WriteStreams is Write for raw content streams.
func WriteStreams(t testing.TB, dir, name string, streams ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, BuildStreams(streams...), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TextStream returns a content stream that shows text in /F1, one T* line
// per newline-separated line. Empty text gives a stream that draws nothing.
func TextStream(text string) string {
	if text == "" {
		return "q Q"
	}
	var b strings.Builder
	b.WriteString("BT\n/F1 12 Tf\n14 TL\n72 720 Td\n")
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteString("T*\n")
		}
		fmt.Fprintf(&b, "(%s) Tj\n", escape(line))
	}
	b.WriteString("ET")
	return b.String()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "(", `\(`)
	return strings.ReplaceAll(s, ")", `\)`)
}
