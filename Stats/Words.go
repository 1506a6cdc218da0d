package Stats

import (
	"fmt"
	"strings"
	"unicode"
)

// Mode of decoding text into characters.
type Mode string

const (
	ModeUTF8  Mode = "utf8"  // text is utf-8 encoded
	ModeBytes Mode = "bytes" // every byte is a character, as in latin-1
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeUTF8, ModeBytes:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q, want utf8|bytes", s)
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\''
}

// Words calls f with every lower-cased word of line, a word being a maximal run of letters, digits and '.
func Words(line string, mode Mode, f func(string)) {
	var w strings.Builder
	flush := func() {
		if w.Len() > 0 {
			f(w.String())
			w.Reset()
		}
	}
	add := func(r rune) {
		if isWordChar(r) {
			w.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	if mode == ModeBytes {
		for i := 0; i < len(line); i++ {
			add(rune(line[i]))
		}
	} else {
		for _, r := range line {
			add(r)
		}
	}
	flush()
}
