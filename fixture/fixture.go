// Package fixture reads golden test files for the codec and runs them.
//
// A fixture file is a sequence of cases:
//
//	# name of the case
//	input lines
//	-
//	expected output lines
//	=
//
// Lines outside of a case are ignored. The marker lines only need to start
// with the marker byte.
package fixture

import (
	"bufio"
	"io"
	"os"

	"github.com/corpix/rle/errors"
)

const (
	MarkerCase     byte = '#'
	MarkerExpected byte = '-'
	MarkerEnd      byte = '='
)

var ErrUnterminatedCase = errors.New("unterminated fixture case")

type Case struct {
	Name     string
	Line     int
	Input    []byte
	Expected []byte
}

type parseState uint8

const (
	stateOutside parseState = iota
	stateInput
	stateExpected
)

func Parse(r io.Reader) ([]*Case, error) {
	var (
		br    = bufio.NewReader(r)
		cases []*Case
		c     *Case
		state = stateOutside
	)

	for n := 1; ; n++ {
		line, err := br.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrapf(err, "failed to read fixture line %d", n)
		}
		if len(line) == 0 {
			break
		}

		switch state {
		case stateOutside:
			if line[0] == MarkerCase {
				c = &Case{Name: caseName(line), Line: n}
				state = stateInput
			}
		case stateInput:
			if line[0] == MarkerExpected {
				state = stateExpected
				continue
			}
			c.Input = append(c.Input, line...)
		case stateExpected:
			if line[0] == MarkerEnd {
				cases = append(cases, c)
				state = stateOutside
				continue
			}
			c.Expected = append(c.Expected, line...)
		}

		if err == io.EOF {
			break
		}
	}

	if state != stateOutside {
		return nil, errors.Wrapf(
			ErrUnterminatedCase,
			"case %q opened at line %d", c.Name, c.Line,
		)
	}
	return cases, nil
}

func ParseFile(path string) ([]*Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open fixture file %q", path)
	}
	defer f.Close()

	cases, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse fixture file %q", path)
	}
	return cases, nil
}

func caseName(line []byte) string {
	name := line[1:]
	for len(name) > 0 && isSpace(name[0]) {
		name = name[1:]
	}
	for len(name) > 0 && isSpace(name[len(name)-1]) {
		name = name[:len(name)-1]
	}
	return string(name)
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}
