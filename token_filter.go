package morphofts

import (
	"strings"

	"github.com/kotaroooo0/gojaconv/jaconv"
)

type TokenFilter interface {
	Filter(TokenStream) TokenStream
}

func withTerm(token Token, term string) Token {
	return NewToken(term, setKana(token.Kana), setSpan(token.Start, token.End), setPosition(token.Position))
}

type LowerCaseFilter struct{}

func (f LowerCaseFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		r[i] = withTerm(token, strings.ToLower(token.Term()))
	}
	return NewTokenStream(r)
}

// StopWordFilter drops tokens whose term is a stop word. Positions of the
// remaining tokens are kept, leaving gaps where stop words were.
type StopWordFilter struct {
	stopWords []string
}

func NewStopWordFilter(stopWords ...string) StopWordFilter {
	return StopWordFilter{stopWords: stopWords}
}

func (f StopWordFilter) Filter(
	tokenStream TokenStream) TokenStream {
	stopwords := make(map[string]struct{})
	for _, w := range f.stopWords {
		stopwords[w] = struct{}{}
	}
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if _, ok := stopwords[token.Term()]; !ok {
			r = append(r, token)
		}
	}
	return NewTokenStream(r)
}

// 特定の単語から特定の単語への変換マップ(ex. ":("" → "sad"))
type MappingFilter struct {
	mapper map[string]string
}

func NewMappingFilter(mapper map[string]string) MappingFilter {
	return MappingFilter{mapper: mapper}
}

func (f MappingFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		if to, ok := f.mapper[token.Term()]; ok {
			r[i] = withTerm(token, to)
			continue
		}
		r[i] = token
	}
	return NewTokenStream(r)
}

// RomajiReadingFilter replaces each term with the Hepburn romanization of its
// reading. Tokens without a reading are left as they are.
type RomajiReadingFilter struct{}

func (f RomajiReadingFilter) Filter(
	tokenStream TokenStream,
) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		if token.Kana == "" {
			r[i] = token
			continue
		}
		r[i] = withTerm(token, jaconv.ToHebon(jaconv.KatakanaToHiragana(token.Kana)))
	}
	return NewTokenStream(r)
}
