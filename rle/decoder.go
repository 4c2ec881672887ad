package rle

import (
	"bufio"
	"io"
)

// Decode validates every line of the token stream r and writes the expanded
// text into w, returning the number of bytes written including terminators.
// Text decoded before a malformed line or a line crossing Config.MaxOutput
// is still flushed into w, callers should treat the whole output as invalid
// on error. File helpers discard it.
func (c *Codec) Decode(r io.Reader, w io.Writer) (int64, error) {
	var (
		br      = c.reader(r)
		bw      = c.writer(w)
		read    int64
		written int64
	)

	for n := 1; ; n++ {
		raw, err := readLine(br, nil)
		if err != nil && err != io.EOF {
			return written, &IOError{Op: "read", Err: err}
		}
		if len(raw) == 0 {
			break
		}
		read += int64(len(raw))

		text := raw
		terminated := text[len(text)-1] == Terminator
		if terminated {
			text = text[:len(text)-1]
		}

		if !Validate(text) {
			return written, flushWith(bw, &FormatError{Line: n, Text: string(text)})
		}

		for pos := skipDelimiters(text, 0); pos < len(text); {
			var t Token
			t, pos = parseToken(text, pos)
			if pos < len(text) {
				pos++
			}
			if c.exceeds(written, int64(t.Count)) {
				return written, flushWith(bw, &OutputLimitError{Limit: c.Config.MaxOutput, Line: n})
			}
			written += writeRun(bw, t)
		}
		if terminated {
			if c.exceeds(written, 1) {
				return written, flushWith(bw, &OutputLimitError{Limit: c.Config.MaxOutput, Line: n})
			}
			_ = bw.WriteByte(Terminator)
			written++
		}

		if err == io.EOF {
			break
		}
	}

	if read == 0 {
		return 0, &EmptyInputError{Op: OpDecode}
	}

	err := bw.Flush()
	if err != nil {
		return written, &IOError{Op: "write", Err: err}
	}
	return written, nil
}

func (c *Codec) exceeds(written int64, n int64) bool {
	return c.Config.MaxOutput > 0 && n > c.Config.MaxOutput-written
}

func flushWith(w *bufio.Writer, err error) error {
	if ferr := w.Flush(); ferr != nil {
		return &IOError{Op: "write", Err: ferr}
	}
	return err
}

func writeRun(w *bufio.Writer, t Token) int64 {
	var n int64
	for ; n < int64(t.Count); n++ {
		if w.WriteByte(t.Symbol) != nil {
			break
		}
	}
	return n
}

// readLine returns the next line including its terminator.
// The result may alias the reader buffer when it fits into it.
func readLine(br *bufio.Reader, buf []byte) ([]byte, error) {
	for {
		chunk, err := br.ReadSlice(Terminator)
		if err == bufio.ErrBufferFull {
			buf = append(buf, chunk...)
			continue
		}
		if len(buf) > 0 {
			return append(buf, chunk...), err
		}
		return chunk, err
	}
}
