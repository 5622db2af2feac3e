// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package backend

import (
	"bytes"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// operand is one value preceding a content stream operator. Only strings
// and numbers matter for text recovery; everything else is dropped.
type operand struct {
	str   []byte
	num   float64
	isStr bool
}

// scanContentText recovers the text shown by a decoded page content stream.
// String operands of Tj, TJ, ' and " are emitted in stream order. T*, ' and
// " start a new line, as do Td and TD when they move vertically. BT starts a
// new line when text was already emitted.
func scanContentText(data []byte) string {
	var (
		out      strings.Builder
		operands []operand
	)
	newline := func() {
		if out.Len() > 0 && !strings.HasSuffix(out.String(), "\n") {
			out.WriteByte('\n')
		}
	}
	show := func(ops []operand) {
		for _, o := range ops {
			if o.isStr {
				out.WriteString(decodePDFString(o.str))
			}
		}
	}

	s := &contentScanner{data: data}
	for {
		tok, kind := s.next()
		switch kind {
		case tokEOF:
			return strings.TrimSpace(out.String())
		case tokString:
			operands = append(operands, operand{str: tok, isStr: true})
			continue
		case tokNumber:
			n, _ := strconv.ParseFloat(string(tok), 64)
			operands = append(operands, operand{num: n})
			continue
		case tokOther:
			continue
		}

		switch string(tok) {
		case "BT":
			newline()
		case "Tj", "TJ":
			show(operands)
		case "'":
			newline()
			show(operands)
		case "\"":
			newline()
			if len(operands) > 0 {
				show(operands[len(operands)-1:])
			}
		case "T*":
			newline()
		case "Td", "TD":
			if len(operands) == 2 && operands[1].num != 0 {
				newline()
			} else if out.Len() > 0 {
				out.WriteByte(' ')
			}
		case "ID":
			s.skipInlineImage()
		}
		operands = operands[:0]
	}
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokString
	tokNumber
	tokOperator
	tokOther
)

// contentScanner splits a content stream into tokens.
type contentScanner struct {
	data []byte
	pos  int
}

func isPDFSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\f', 0:
		return true
	}
	return false
}

func isPDFDelim(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

func (s *contentScanner) next() ([]byte, tokenKind) {
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		switch {
		case isPDFSpace(c):
			s.pos++
		case c == '%':
			for s.pos < len(s.data) && s.data[s.pos] != '\n' && s.data[s.pos] != '\r' {
				s.pos++
			}
		case c == '(':
			s.pos++
			return s.literal(), tokString
		case c == '<':
			if s.pos+1 < len(s.data) && s.data[s.pos+1] == '<' {
				s.pos += 2
				return nil, tokOther
			}
			s.pos++
			return s.hex(), tokString
		case c == '/':
			s.pos++
			s.regular()
			return nil, tokOther
		case isPDFDelim(c):
			s.pos++
			return nil, tokOther
		default:
			tok := s.regular()
			if _, err := strconv.ParseFloat(string(tok), 64); err == nil {
				return tok, tokNumber
			}
			return tok, tokOperator
		}
	}
	return nil, tokEOF
}

func (s *contentScanner) regular() []byte {
	start := s.pos
	for s.pos < len(s.data) && !isPDFSpace(s.data[s.pos]) && !isPDFDelim(s.data[s.pos]) {
		s.pos++
	}
	return s.data[start:s.pos]
}

// literal reads a parenthesised string, the opening paren already consumed.
func (s *contentScanner) literal() []byte {
	var b []byte
	depth := 1
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		s.pos++
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return b
			}
		case '\\':
			if s.pos >= len(s.data) {
				return b
			}
			e := s.data[s.pos]
			s.pos++
			switch e {
			case 'n':
				b = append(b, '\n')
			case 'r':
				b = append(b, '\r')
			case 't':
				b = append(b, '\t')
			case 'b':
				b = append(b, '\b')
			case 'f':
				b = append(b, '\f')
			case '\r':
				if s.pos < len(s.data) && s.data[s.pos] == '\n' {
					s.pos++
				}
			case '\n':
			case '0', '1', '2', '3', '4', '5', '6', '7':
				v := int(e - '0')
				for i := 0; i < 2 && s.pos < len(s.data) && s.data[s.pos] >= '0' && s.data[s.pos] <= '7'; i++ {
					v = v*8 + int(s.data[s.pos]-'0')
					s.pos++
				}
				b = append(b, byte(v))
			default:
				b = append(b, e)
			}
			continue
		}
		b = append(b, c)
	}
	return b
}

// hex reads a hex string, the opening angle bracket already consumed.
func (s *contentScanner) hex() []byte {
	var b []byte
	var hi byte
	half := false
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		s.pos++
		if c == '>' {
			break
		}
		v, ok := hexValue(c)
		if !ok {
			continue
		}
		if half {
			b = append(b, hi<<4|v)
		} else {
			hi = v
		}
		half = !half
	}
	if half {
		b = append(b, hi<<4)
	}
	return b
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// skipInlineImage advances past inline image data up to and including EI.
func (s *contentScanner) skipInlineImage() {
	i := bytes.Index(s.data[s.pos:], []byte("EI"))
	for i >= 0 {
		at := s.pos + i
		before := at == 0 || isPDFSpace(s.data[at-1])
		after := at+2 >= len(s.data) || isPDFSpace(s.data[at+2])
		if before && after {
			s.pos = at + 2
			return
		}
		next := bytes.Index(s.data[at+2:], []byte("EI"))
		if next < 0 {
			break
		}
		i = at + 2 + next - s.pos
	}
	s.pos = len(s.data)
}

var utf16BOM = []byte{0xFE, 0xFF}

// decodePDFString converts a string operand to UTF-8. Strings with a UTF-16
// byte order mark are decoded as UTF-16BE; all others are taken as single
// byte codes.
func decodePDFString(raw []byte) string {
	if bytes.HasPrefix(raw, utf16BOM) {
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		if s, err := dec.Bytes(raw); err == nil {
			return string(s)
		}
	}
	r := make([]rune, len(raw))
	for i, c := range raw {
		r[i] = rune(c)
	}
	return string(r)
}
