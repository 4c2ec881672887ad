package rle

import (
	"io"
	"os"
	"path/filepath"
)

// EncodeFile encodes the file at in into the file at out.
func (c *Codec) EncodeFile(in string, out string) (tokens int, err error) {
	err = withFiles(in, out, func(r io.Reader, w io.Writer) error {
		tokens, err = c.Encode(r, w)
		return err
	})
	return tokens, err
}

// DecodeFile decodes the token stream file at in into the file at out.
func (c *Codec) DecodeFile(in string, out string) (written int64, err error) {
	err = withFiles(in, out, func(r io.Reader, w io.Writer) error {
		written, err = c.Decode(r, w)
		return err
	})
	return written, err
}

func EncodeFile(in string, out string) (int, error)   { return Default.EncodeFile(in, out) }
func DecodeFile(in string, out string) (int64, error) { return Default.DecodeFile(in, out) }

// withFiles opens in for reading and writes into a temporary file next to
// out, which replaces out only when fn succeeded. Both files are closed on
// every exit path and the temporary file is removed on failure.
func withFiles(in string, out string, fn func(io.Reader, io.Writer) error) (err error) {
	r, err := os.Open(in)
	if err != nil {
		return &IOError{Op: "open", Path: in, Err: err}
	}
	defer r.Close()

	w, err := os.CreateTemp(filepath.Dir(out), "."+filepath.Base(out)+".*")
	if err != nil {
		return &IOError{Op: "create", Path: out, Err: err}
	}
	defer func() {
		cerr := w.Close()
		if cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: out, Err: cerr}
		}
		if err == nil {
			rerr := os.Rename(w.Name(), out)
			if rerr != nil {
				err = &IOError{Op: "rename", Path: out, Err: rerr}
			}
		}
		if err != nil {
			_ = os.Remove(w.Name())
		}
	}()

	err = w.Chmod(0o644)
	if err != nil {
		return &IOError{Op: "create", Path: out, Err: err}
	}

	err = fn(r, w)
	if ioErr, ok := err.(*IOError); ok && ioErr.Path == "" {
		switch ioErr.Op {
		case "read":
			ioErr.Path = in
		case "write":
			ioErr.Path = out
		}
	}
	return err
}
