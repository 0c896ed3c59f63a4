package model

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var errInvalidUTF8 = errors.New("invalid UTF-8")

// CheckText reports whether s can be stored verbatim in a spreadsheet cell:
// valid UTF-8 made only of XML 1.0 characters.
func CheckText(s string) error {
	if !utf8.ValidString(s) {
		return errInvalidUTF8
	}
	for i, r := range s {
		if !isXMLChar(r) {
			return fmt.Errorf("unsupported character %U at byte %d", r, i)
		}
	}
	return nil
}

func isXMLChar(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return true
	case r < 0x20:
		return false
	case r >= 0xD800 && r <= 0xDFFF:
		return false
	case r == 0xFFFE, r == 0xFFFF:
		return false
	default:
		return r <= utf8.MaxRune
	}
}
