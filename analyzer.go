package morphofts

type Analyzer struct {
	tokenizer    TextTokenizer
	tokenFilters []TokenFilter
}

func NewAnalyzer(tokenizer TextTokenizer, tokenFilters ...TokenFilter) Analyzer {
	return Analyzer{
		tokenizer:    tokenizer,
		tokenFilters: tokenFilters,
	}
}

// Analyze tokenizes s and runs the token filters in order. Filters rewrite
// terms only; offsets and positions stay those of the source text.
func (a Analyzer) Analyze(s string) (TokenStream, error) {
	tokenStream, err := a.tokenizer.Tokenize(s)
	if err != nil {
		return TokenStream{}, err
	}
	for _, f := range a.tokenFilters {
		tokenStream = f.Filter(tokenStream)
	}
	return tokenStream, nil
}
