package morphology

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// TokenType is the kind of a raw token found by a Binding.
type TokenType int

const (
	TokenNone TokenType = iota
	TokenWord
	TokenPunctuation
	TokenWhitespace
	TokenUnknown
)

func (t TokenType) String() string {
	switch t {
	case TokenNone:
		return "none"
	case TokenWord:
		return "word"
	case TokenPunctuation:
		return "punctuation"
	case TokenWhitespace:
		return "whitespace"
	default:
		return "unknown"
	}
}

// Attribute names exposed by analyses.
const (
	AttrBaseForm = "BASEFORM"
	AttrClass    = "CLASS"
	AttrReading  = "READING"
	AttrRomaji   = "ROMAJI"
	AttrWordForm = "WORDFORM"
)

// Analysis is one candidate interpretation of a word.
type Analysis map[string]string

// Value returns the attribute value, if the analysis has one.
func (a Analysis) Value(attr string) (string, bool) {
	v, ok := a[attr]
	return v, ok
}

// Keys returns the attribute names in sorted order.
func (a Analysis) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Binding is a handle to a morphological analysis engine bound to one
// language variant and dictionary.
//
// Implementations are not required to be safe for concurrent use.
type Binding interface {
	// NextRawToken inspects the front of text and reports the kind and byte
	// length of the first token. TokenNone means end of input.
	NextRawToken(text []byte) (TokenType, int)
	// Analyze returns the candidate analyses of word, best first, or nil.
	// A non-nil result must be handed back to ReleaseAnalyses.
	Analyze(word []byte) []Analysis
	ReleaseAnalyses([]Analysis)
	Terminate() error
}

// Init opens a Binding for the language variant (e.g. "fi-morpho", "ja")
// backed by the dictionary at dictionaryPath.
// Options only affect lexicon bindings.
func Init(variant, dictionaryPath string, opts ...Option) (Binding, error) {
	lang := Language(variant)
	if lang == "" {
		return nil, errors.Newf("invalid language variant %q", variant)
	}
	if lang == "ja" {
		return NewKagome(dictionaryPath)
	}
	return NewLexicon(lang, dictionaryPath, opts...)
}

// Language returns the language code of a variant: "fi_FI-morpho" -> "fi".
func Language(variant string) string {
	lang := variant
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	return strings.ToLower(strings.TrimSpace(lang))
}
