// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package backend

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// ledongthucDocument reads pages with github.com/ledongthuc/pdf.
type ledongthucDocument struct {
	file   *os.File
	reader *pdf.Reader
}

func openLedongthuc(path string) (doc Document, err error) {
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
	return &ledongthucDocument{file: f, reader: r}, nil
}

func (d *ledongthucDocument) NumPage() int {
	return d.reader.NumPage()
}

func (d *ledongthucDocument) PageText(n int) (text string, err error) {
	if err := checkPage(n, d.NumPage()); err != nil {
		return "", err
	}
	defer recoverPage(n, &err)

	p := d.reader.Page(n)
	if p.V.IsNull() {
		return "", fmt.Errorf("page %d has no page object", n)
	}
	// Font resource names are page-scoped, so the map is rebuilt per page.
	fonts := make(map[string]*pdf.Font)
	for _, name := range p.Fonts() {
		f := p.Font(name)
		fonts[name] = &f
	}

	text, err = p.GetPlainText(fonts)
	if err != nil {
		return "", fmt.Errorf("extracting page %d: %w", n, err)
	}
	return text, nil
}

func (d *ledongthucDocument) Close() error {
	return d.file.Close()
}
