// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanContentText(t *testing.T) {
	tests := []struct {
		name   string
		stream string
		want   string
	}{
		{
			name:   "single Tj",
			stream: "BT\n/F1 12 Tf\n72 720 Td\n(Hello) Tj\nET",
			want:   "Hello",
		},
		{
			name:   "T* and vertical Td start new lines",
			stream: "BT (A) Tj T* (B) Tj 0 -14 Td (C) Tj 10 0 Td (D) Tj ET",
			want:   "A\nB\nC D",
		},
		{
			name:   "TJ array ignores kerning",
			stream: "BT [(Hel) -20 (lo)] TJ ET",
			want:   "Hello",
		},
		{
			name:   "quote operators",
			stream: "BT (one) Tj (two) ' 1 2 (three) \" ET",
			want:   "one\ntwo\nthree",
		},
		{
			name:   "hex string",
			stream: "BT <48656C6C6F> Tj ET",
			want:   "Hello",
		},
		{
			name:   "utf-16 hex string",
			stream: "BT <FEFF00E9> Tj ET",
			want:   "é",
		},
		{
			name:   "escapes and octal",
			stream: `BT (a\(b\)) Tj ( caf\351) Tj ET`,
			want:   "a(b) café",
		},
		{
			name:   "nested parentheses",
			stream: "BT (f(x)) Tj ET",
			want:   "f(x)",
		},
		{
			name:   "separate text objects",
			stream: "BT (top) Tj ET BT (bottom) Tj ET",
			want:   "top\nbottom",
		},
		{
			name:   "comments and dictionaries are skipped",
			stream: "% comment (not text)\n/Span << /ActualText (x) >> BDC BT (shown) Tj ET EMC",
			want:   "shown",
		},
		{
			name:   "inline image data is skipped",
			stream: "BI /W 1 /H 1 ID \x00(\xffEIx EI BT (after) Tj ET",
			want:   "after",
		},
		{
			name:   "no text operators",
			stream: "q 1 0 0 1 0 0 cm 0 0 m 10 10 l S Q",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanContentText([]byte(tt.stream)))
		})
	}
}
