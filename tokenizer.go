package morphofts

import (
	"io"

	"github.com/cockroachdb/errors"
)

type TextTokenizer interface {
	Tokenize(string) (TokenStream, error)
}

// MorphologicalTokenizer collects every token of a text through a Cursor.
type MorphologicalTokenizer struct {
	tokenizer *Tokenizer
}

func NewMorphologicalTokenizer(tokenizer *Tokenizer) MorphologicalTokenizer {
	return MorphologicalTokenizer{
		tokenizer: tokenizer,
	}
}

func (t MorphologicalTokenizer) Tokenize(s string) (TokenStream, error) {
	cursor, err := t.tokenizer.Open([]byte(s))
	if err != nil {
		return TokenStream{}, err
	}
	defer cursor.Close()

	tokens := []Token{}
	for {
		token, err := cursor.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return TokenStream{}, err
		}
		tokens = append(tokens, token.Clone())
	}
	return NewTokenStream(tokens), nil
}
