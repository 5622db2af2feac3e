// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textenc

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriter(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		input    string
		want     []byte
	}{
		{
			name:     "utf-8 passes valid text through",
			encoding: "utf-8",
			input:    "=== PAGE 1 ===\nnaïve café 日本\n",
			want:     []byte("=== PAGE 1 ===\nnaïve café 日本\n"),
		},
		{
			name:     "default label is utf-8",
			encoding: "",
			input:    "plain",
			want:     []byte("plain"),
		},
		{
			name:     "invalid utf-8 becomes replacement character",
			encoding: "UTF8",
			input:    "a\xffb\xc3",
			want:     []byte("a�b�"),
		},
		{
			name:     "windows-1252 encodes representable runes",
			encoding: "windows-1252",
			input:    "café €",
			want:     []byte("caf\xe9 \x80"),
		},
		{
			name:     "windows-1252 substitutes unrepresentable runes",
			encoding: "windows-1252",
			input:    "a日b",
			want:     []byte("a\x1ab"),
		},
		{
			name:     "latin1 label resolves through the WHATWG index",
			encoding: "latin1",
			input:    "é",
			want:     []byte("\xe9"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			w, err := NewWriter(&out, tt.encoding)
			require.NoError(t, err)

			_, err = io.WriteString(w, tt.input)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			assert.Equal(t, tt.want, out.Bytes())
		})
	}
}

func TestNewWriter_UnknownEncoding(t *testing.T) {
	_, err := NewWriter(io.Discard, "klingon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output encoding "klingon"`)
	assert.Error(t, Validate("klingon"))
	assert.NoError(t, Validate("shift_jis"))
}
