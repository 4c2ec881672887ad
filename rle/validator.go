package rle

import (
	"math"
)

const maxCount = math.MaxInt

// Validate reports whether line (without its terminator) follows the token grammar:
//
//	line   := (token (" " token)*)?
//	token  := symbol " " count
//	count  := one or more ASCII digits, value >= 1
//
// Leading spaces are skipped.
func Validate(line []byte) bool {
	pos := skipDelimiters(line, 0)

	for pos < len(line) {
		if !IsSymbol(line[pos]) {
			return false
		}
		pos++

		if pos >= len(line) || line[pos] != Delimiter {
			return false
		}
		pos++

		var (
			start = pos
			count int
		)
		for pos < len(line) && isDigit(line[pos]) {
			d := int(line[pos] - '0')
			if count > (maxCount-d)/10 {
				return false
			}
			count = count*10 + d
			pos++
		}
		if pos == start || count < 1 {
			return false
		}

		if pos == len(line) {
			break
		}
		if line[pos] != Delimiter {
			return false
		}
		pos++
		if pos == len(line) {
			return false // trailing delimiter
		}
	}

	return true
}

func ValidateString(line string) bool {
	return Validate([]byte(line))
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func skipDelimiters(line []byte, pos int) int {
	for pos < len(line) && line[pos] == Delimiter {
		pos++
	}
	return pos
}
