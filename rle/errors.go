package rle

import (
	"fmt"
	"strconv"

	"github.com/corpix/rle/errors"
)

var (
	ErrEmptyInput       = errors.New("empty input")
	ErrDisallowedSymbol = errors.New("disallowed symbol")
	ErrFormat           = errors.New("malformed token line")
	ErrIO               = errors.New("i/o failure")
	ErrOutputLimit      = errors.New("output limit exceeded")
)

const (
	OpEncode = "encode"
	OpDecode = "decode"
)

type (
	EmptyInputError struct {
		Op string
	}
	DisallowedSymbolError struct {
		Symbol byte
		Line   int // 1-based
		Column int // 1-based
		Offset int64
	}
	FormatError struct {
		Line int // 1-based
		Text string
	}
	OutputLimitError struct {
		Limit int64
		Line  int // 1-based
	}
	IOError struct {
		Op   string
		Path string
		Err  error
	}
)

func (e *EmptyInputError) Error() string {
	return e.Op + ": " + ErrEmptyInput.Error()
}

func (e *EmptyInputError) Unwrap() error { return ErrEmptyInput }

//

func (e *DisallowedSymbolError) Error() string {
	return fmt.Sprintf(
		"%s %s at line %d, column %d (offset %d)",
		ErrDisallowedSymbol.Error(), strconv.QuoteRune(rune(e.Symbol)),
		e.Line, e.Column, e.Offset,
	)
}

func (e *DisallowedSymbolError) Unwrap() error { return ErrDisallowedSymbol }

//

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s %d: %q", ErrFormat.Error(), e.Line, e.Text)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

//

func (e *OutputLimitError) Error() string {
	return fmt.Sprintf("%s: %d bytes at line %d", ErrOutputLimit.Error(), e.Limit, e.Line)
}

func (e *OutputLimitError) Unwrap() error { return ErrOutputLimit }

//

func (e *IOError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// Is makes every IOError match ErrIO while Unwrap keeps the cause reachable.
func (e *IOError) Is(target error) bool { return target == ErrIO }
