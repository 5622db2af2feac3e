// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package backend

import (
	"fmt"
	"os"
	"strings"

	"rsc.io/pdf"
)

// wordGap is the horizontal gap, as a fraction of the font size, between the
// end of one glyph and the start of the next that counts as a word break.
const wordGap = 0.1

// rscDocument reads pages with rsc.io/pdf. The library reports text as
// positioned glyphs and drops space glyphs, so glyphs are joined in content
// order with a newline whenever the baseline moves and a space wherever a
// gap wider than wordGap opens on the same baseline.
type rscDocument struct {
	file   *os.File
	reader *pdf.Reader
}

func openRSC(path string) (doc Document, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer func() {
		if r := recover(); r != nil {
			f.Close()
			err = fmt.Errorf("opening PDF %s: %v", path, r)
		}
	}()

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	r, err := pdf.NewReader(f, fi.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	return &rscDocument{file: f, reader: r}, nil
}

func (d *rscDocument) NumPage() int {
	return d.reader.NumPage()
}

func (d *rscDocument) PageText(n int) (text string, err error) {
	if err := checkPage(n, d.NumPage()); err != nil {
		return "", err
	}
	defer recoverPage(n, &err)

	p := d.reader.Page(n)
	if p.V.IsNull() {
		return "", fmt.Errorf("page %d has no page object", n)
	}

	var b strings.Builder
	var last pdf.Text
	for i, t := range p.Content().Text {
		switch {
		case i == 0:
		case t.Y != last.Y:
			b.WriteByte('\n')
		case t.X-(last.X+last.W) > wordGap*t.FontSize:
			b.WriteByte(' ')
		}
		b.WriteString(t.S)
		last = t
	}
	return b.String(), nil
}

func (d *rscDocument) Close() error {
	return d.file.Close()
}
