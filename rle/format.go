// Package rle implements a reversible line-oriented run-length encoding for text.
//
// Every line of the original text becomes one line of tokens. A token is a
// symbol byte followed by a single space and the decimal length of the run:
//
//	aaab\ncc\n  <->  a 3 b 1\nc 2\n
//
// Runs never cross a line terminator and adjacent tokens on a line never share
// a symbol. The space byte delimits tokens, so it can not appear in the
// original text.
package rle

import (
	"bytes"
	"strconv"
)

const (
	Delimiter  byte = ' '
	Terminator byte = '\n'
	Tab        byte = '\t'
)

type (
	Token struct {
		Symbol byte
		Count  int
	}
	Line     []Token
	Document struct {
		Lines []Line
		// Terminated reports whether the last line was followed by a terminator.
		Terminated bool
	}
)

// IsSymbol reports whether b may be encoded as a token symbol.
func IsSymbol(b byte) bool {
	return b == Tab || (b > Delimiter && b < 0x7f)
}

//

func (t Token) AppendText(buf []byte) []byte {
	buf = append(buf, t.Symbol, Delimiter)
	return strconv.AppendInt(buf, int64(t.Count), 10)
}

func (t Token) String() string {
	return string(t.AppendText(nil))
}

//

func (l Line) AppendText(buf []byte) []byte {
	for n, t := range l {
		if n > 0 {
			buf = append(buf, Delimiter)
		}
		buf = t.AppendText(buf)
	}
	return buf
}

func (l Line) String() string {
	return string(l.AppendText(nil))
}

// Size returns the number of raw bytes the line expands to.
func (l Line) Size() int64 {
	var size int64
	for _, t := range l {
		size += int64(t.Count)
	}
	return size
}

func (l Line) AppendExpand(buf []byte) []byte {
	for _, t := range l {
		for n := 0; n < t.Count; n++ {
			buf = append(buf, t.Symbol)
		}
	}
	return buf
}

// ParseLine parses one serialized line without its terminator.
func ParseLine(text []byte) (Line, error) {
	if !Validate(text) {
		return nil, &FormatError{Text: string(text)}
	}

	var (
		line Line
		pos  = skipDelimiters(text, 0)
	)
	for pos < len(text) {
		t, next := parseToken(text, pos)
		line = append(line, t)
		pos = next
		if pos < len(text) {
			pos++ // delimiter
		}
	}
	return line, nil
}

// parseToken reads the token starting at pos from text which must
// already be validated and returns the position right after its count.
func parseToken(text []byte, pos int) (Token, int) {
	t := Token{Symbol: text[pos]}
	pos += 2
	for pos < len(text) && isDigit(text[pos]) {
		t.Count = t.Count*10 + int(text[pos]-'0')
		pos++
	}
	return t, pos
}

//

// Tokens returns the total number of tokens in the document.
func (d *Document) Tokens() int {
	var n int
	for _, l := range d.Lines {
		n += len(l)
	}
	return n
}

// Size returns the number of raw bytes the document expands to,
// including line terminators.
func (d *Document) Size() int64 {
	var size int64
	for n, l := range d.Lines {
		size += l.Size()
		if d.terminated(n) {
			size++
		}
	}
	return size
}

// RunLength returns the sum of all run lengths, which is Size without
// line terminators.
func (d *Document) RunLength() int64 {
	var size int64
	for _, l := range d.Lines {
		size += l.Size()
	}
	return size
}

func (d *Document) terminated(n int) bool {
	return n < len(d.Lines)-1 || d.Terminated
}

func (d *Document) MarshalText() ([]byte, error) {
	var buf []byte
	for n, l := range d.Lines {
		buf = l.AppendText(buf)
		if d.terminated(n) {
			buf = append(buf, Terminator)
		}
	}
	return buf, nil
}

func (d *Document) UnmarshalText(text []byte) error {
	doc := Document{}
	for n := 1; len(text) > 0; n++ {
		var raw []byte
		if i := bytes.IndexByte(text, Terminator); i >= 0 {
			raw, text = text[:i], text[i+1:]
			doc.Terminated = true
		} else {
			raw, text = text, nil
			doc.Terminated = false
		}

		l, err := ParseLine(raw)
		if err != nil {
			err.(*FormatError).Line = n
			return err
		}
		doc.Lines = append(doc.Lines, l)
	}

	*d = doc
	return nil
}

// Expand returns the original text the document represents.
func (d *Document) Expand() []byte {
	buf := make([]byte, 0, d.Size())
	for n, l := range d.Lines {
		buf = l.AppendExpand(buf)
		if d.terminated(n) {
			buf = append(buf, Terminator)
		}
	}
	return buf
}
