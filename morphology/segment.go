package morphology

import (
	"unicode"
	"unicode/utf8"
)

// segmentAlphabetic finds the first raw token of text written in an
// alphabetic script. Words are runs of letters, digits and combining marks,
// joined by a single hyphen, apostrophe or colon ("EU:n", "vaa'an").
func segmentAlphabetic(text []byte) (TokenType, int) {
	if len(text) == 0 {
		return TokenNone, 0
	}
	r, size := utf8.DecodeRune(text)
	switch {
	case r == utf8.RuneError && size <= 1:
		return TokenUnknown, 1
	case unicode.IsSpace(r):
		return TokenWhitespace, spaceRun(text)
	case isWordRune(r):
		return TokenWord, wordRun(text)
	case unicode.IsPunct(r) || unicode.IsSymbol(r):
		return TokenPunctuation, size
	default:
		return TokenUnknown, size
	}
}

func wordRun(text []byte) int {
	n := 0
	for n < len(text) {
		r, size := utf8.DecodeRune(text[n:])
		if isWordRune(r) {
			n += size
			continue
		}
		if !isJoiner(r) || n+size >= len(text) {
			break
		}
		next, _ := utf8.DecodeRune(text[n+size:])
		if !isWordRune(next) {
			break
		}
		n += size
	}
	return n
}

func isWordRune(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

func isJoiner(r rune) bool {
	switch r {
	case '-', '\'', '’', ':', '\u00ad':
		return true
	}
	return false
}
