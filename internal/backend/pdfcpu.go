// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package backend

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// pdfcpu writes a user config directory on first use unless told not to.
var disableConfigDir sync.Once

// pdfcpuDocument reads pages with github.com/pdfcpu/pdfcpu. pdfcpu has no
// text extraction of its own, so page text is recovered from the decoded
// content stream by scanContentText.
type pdfcpuDocument struct {
	ctx *model.Context
}

func openPdfcpu(path string) (doc Document, err error) {
	disableConfigDir.Do(api.DisableConfigDir)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("opening PDF %s: %v", path, r)
		}
	}()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: pdfcpu read: %w", path, err)
	}
	return &pdfcpuDocument{ctx: ctx}, nil
}

func (d *pdfcpuDocument) NumPage() int {
	return d.ctx.PageCount
}

func (d *pdfcpuDocument) PageText(n int) (text string, err error) {
	if err := checkPage(n, d.NumPage()); err != nil {
		return "", err
	}
	defer recoverPage(n, &err)

	r, err := pdfcpu.ExtractPageContent(d.ctx, n)
	if err != nil {
		return "", fmt.Errorf("reading content of page %d: %w", n, err)
	}
	if r == nil {
		return "", nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading content of page %d: %w", n, err)
	}
	return scanContentText(data), nil
}

// Close is a no-op: pdfcpu reads the whole file into memory at open.
func (d *pdfcpuDocument) Close() error {
	return nil
}
