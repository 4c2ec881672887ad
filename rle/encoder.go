package rle

import (
	"bytes"
	"io"
)

// scanner tracks the pending run and the position of the input.
type scanner struct {
	run    Token
	line   int
	column int
	offset int64
}

func newScanner() scanner {
	return scanner{line: 1}
}

// next consumes b and returns the run it terminated, if any.
func (s *scanner) next(b byte) (Token, bool, error) {
	offset := s.offset
	s.offset++

	if b == Terminator {
		t, ok := s.flush()
		s.line++
		s.column = 0
		return t, ok, nil
	}

	s.column++
	if !IsSymbol(b) {
		return Token{}, false, &DisallowedSymbolError{
			Symbol: b,
			Line:   s.line,
			Column: s.column,
			Offset: offset,
		}
	}

	if s.run.Count > 0 && s.run.Symbol == b {
		s.run.Count++
		return Token{}, false, nil
	}

	t, ok := s.flush()
	s.run = Token{Symbol: b, Count: 1}
	return t, ok, nil
}

func (s *scanner) flush() (Token, bool) {
	t := s.run
	s.run = Token{}
	return t, t.Count > 0
}

//

// Encode writes the token stream for r into w and returns the number of
// tokens written. The stream is held in memory until the whole input was
// encoded, nothing reaches w when Encode fails.
func (c *Codec) Encode(r io.Reader, w io.Writer) (int, error) {
	var (
		br      = c.reader(r)
		out     = bytes.NewBuffer(make([]byte, 0, c.Config.BufferSize))
		s       = newScanner()
		buf     = make([]byte, 0, 32)
		tokens  int
		onLine  int
		emitted = func(t Token) {
			buf = buf[:0]
			if onLine > 0 {
				buf = append(buf, Delimiter)
			}
			buf = t.AppendText(buf)
			out.Write(buf)
			onLine++
			tokens++
		}
	)

	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return tokens, &IOError{Op: "read", Err: err}
		}

		t, ok, err := s.next(b)
		if err != nil {
			return tokens, err
		}
		if ok {
			emitted(t)
		}
		if b == Terminator {
			out.WriteByte(Terminator)
			onLine = 0
		}
	}

	if s.offset == 0 {
		return 0, &EmptyInputError{Op: OpEncode}
	}
	if t, ok := s.flush(); ok {
		emitted(t)
	}

	_, err := out.WriteTo(w)
	if err != nil {
		return tokens, &IOError{Op: "write", Err: err}
	}
	return tokens, nil
}
