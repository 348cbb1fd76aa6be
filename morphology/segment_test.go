package morphology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentAlphabetic(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   TokenType
		length int
	}{
		{"empty", "", TokenNone, 0},
		{"word", "Olen vastuussa", TokenWord, 4},
		{"umlauts", "pöytä.", TokenWord, len("pöytä")},
		{"digits", "2024 vuonna", TokenWord, 4},
		{"hyphen", "EU-maat ovat", TokenWord, len("EU-maat")},
		{"colon", "EU:n jäsen", TokenWord, len("EU:n")},
		{"apostrophe", "vaa'an ", TokenWord, len("vaa'an")},
		{"trailing hyphen", "alku- ja", TokenWord, len("alku")},
		{"double hyphen", "a--b", TokenWord, 1},
		{"whitespace run", " \t\n x", TokenWhitespace, 4},
		{"period", ".", TokenPunctuation, 1},
		{"symbol", "€5", TokenPunctuation, len("€")},
		{"invalid utf8", "\xffabc", TokenUnknown, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, n := segmentAlphabetic([]byte(tt.input))
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.length, n)
		})
	}
}

func TestSegmentAlphabeticCoversInput(t *testing.T) {
	text := []byte("Olen vastuussa kolmannesta luokasta.")
	var words []string
	for len(text) > 0 {
		kind, n := segmentAlphabetic(text)
		if kind == TokenNone {
			break
		}
		if !assert.Positive(t, n) {
			return
		}
		if kind == TokenWord {
			words = append(words, string(text[:n]))
		}
		text = text[n:]
	}
	assert.Equal(t, []string{"Olen", "vastuussa", "kolmannesta", "luokasta"}, words)
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, "fi", Language("fi-morpho"))
	assert.Equal(t, "fi", Language("fi_FI-morpho"))
	assert.Equal(t, "ja", Language("JA"))
	assert.Equal(t, "", Language(""))
}
