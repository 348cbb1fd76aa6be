package morphofts

// Token is one normalized word. Start and End are byte offsets of the source
// span in the input, which may differ in length from Bytes. Kana is the
// reading of the word when the analysis engine provides one.
type Token struct {
	Bytes    []byte
	Kana     string
	Start    int
	End      int
	Position int
}

type TokenOption func(*Token)

func NewToken(term string, options ...TokenOption) Token {
	token := Token{Bytes: []byte(term)}
	for _, option := range options {
		option(&token)
	}
	return token
}

func setKana(kana string) TokenOption {
	return func(t *Token) {
		t.Kana = kana
	}
}

func setSpan(start, end int) TokenOption {
	return func(t *Token) {
		t.Start = start
		t.End = end
	}
}

func setPosition(position int) TokenOption {
	return func(t *Token) {
		t.Position = position
	}
}

func (t Token) Term() string {
	return string(t.Bytes)
}

// Clone returns a copy of t that does not share Bytes with the cursor.
func (t Token) Clone() Token {
	return NewToken(string(t.Bytes), setKana(t.Kana), setSpan(t.Start, t.End), setPosition(t.Position))
}

type TokenStream struct {
	Tokens []Token
}

func NewTokenStream(tokens []Token) TokenStream {
	return TokenStream{
		Tokens: tokens,
	}
}

func (ts TokenStream) Size() int {
	return len(ts.Tokens)
}

func (ts TokenStream) Terms() []string {
	terms := make([]string, len(ts.Tokens))
	for i, t := range ts.Tokens {
		terms[i] = t.Term()
	}
	return terms
}
