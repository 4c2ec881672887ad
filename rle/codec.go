package rle

import (
	"bufio"
	"bytes"
	"io"

	"github.com/corpix/rle/errors"
)

const DefaultBufferSize = 64 * 1024

type Config struct {
	BufferSize int `yaml:"buffer-size"`
	// MaxOutput bounds the number of bytes a single decode may write,
	// zero means no bound.
	MaxOutput int64 `yaml:"max-output"`
}

func (c *Config) Default() {
	if c.BufferSize == 0 {
		c.BufferSize = DefaultBufferSize
	}
}

func (c *Config) Validate() error {
	if c.BufferSize < 16 {
		return errors.Newf("buffer-size should be at least 16 bytes, got %d", c.BufferSize)
	}
	if c.MaxOutput < 0 {
		return errors.Newf("max-output should not be negative, got %d", c.MaxOutput)
	}
	return nil
}

// Codec holds no state between calls and is safe to share.
type Codec struct {
	Config *Config
}

var Default = New(nil)

func New(c *Config) *Codec {
	if c == nil {
		c = &Config{}
	}
	c.Default()
	return &Codec{Config: c}
}

func (c *Codec) reader(r io.Reader) *bufio.Reader {
	return bufio.NewReaderSize(r, c.Config.BufferSize)
}

func (c *Codec) writer(w io.Writer) *bufio.Writer {
	return bufio.NewWriterSize(w, c.Config.BufferSize)
}

//

func Encode(r io.Reader, w io.Writer) (int, error) {
	return Default.Encode(r, w)
}

func Decode(r io.Reader, w io.Writer) (int64, error) {
	return Default.Decode(r, w)
}

// EncodeBytes returns the token stream for buf and the number of tokens in it.
func EncodeBytes(buf []byte) ([]byte, int, error) {
	out := bytes.NewBuffer(make([]byte, 0, len(buf)))
	tokens, err := Default.Encode(bytes.NewReader(buf), out)
	if err != nil {
		return nil, 0, err
	}
	return out.Bytes(), tokens, nil
}

// DecodeBytes returns the text for the token stream buf and its length.
func DecodeBytes(buf []byte) ([]byte, int64, error) {
	out := bytes.NewBuffer(make([]byte, 0, len(buf)))
	n, err := Default.Decode(bytes.NewReader(buf), out)
	if err != nil {
		return nil, 0, err
	}
	return out.Bytes(), n, nil
}

// EncodeDocument builds the in-memory form of buf.
func EncodeDocument(buf []byte) (*Document, error) {
	if len(buf) == 0 {
		return nil, &EmptyInputError{Op: OpEncode}
	}

	var (
		doc  = &Document{}
		s    = newScanner()
		line Line
	)
	for _, b := range buf {
		t, flush, err := s.next(b)
		if err != nil {
			return nil, err
		}
		if flush {
			line = append(line, t)
		}
		if b == Terminator {
			doc.Lines = append(doc.Lines, line)
			line = nil
		}
	}
	if t, ok := s.flush(); ok {
		line = append(line, t)
	}
	if s.column > 0 {
		doc.Lines = append(doc.Lines, line)
	} else {
		doc.Terminated = true
	}
	return doc, nil
}
