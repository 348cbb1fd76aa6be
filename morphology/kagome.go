package morphology

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	ipaneologd "github.com/ikawaha/kagome-dict-ipa-neologd"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/kotaroooo0/gojaconv/jaconv"
)

// IPA feature indexes.
const (
	featurePOS      = 0
	featurePOSSub   = 1
	featureBaseForm = 6
	featureReading  = 7
)

// github.com/ikawaha/kagomeに直接依存しないようにラップする
type Kagome struct {
	kagome *tokenizer.Tokenizer
}

// NewKagome loads a kagome dictionary. dictionaryPath is "" or "ipa" for the
// bundled IPA dictionary, "neologd" for mecab-ipadic-NEologd, otherwise the
// path of a dictionary file.
func NewKagome(dictionaryPath string) (*Kagome, error) {
	var d *dict.Dict
	switch dictionaryPath {
	case "", "ipa":
		d = ipa.Dict()
	case "neologd":
		d = ipaneologd.Dict()
	default:
		var err error
		d, err = dict.LoadDictFile(dictionaryPath)
		if err != nil {
			return nil, errors.Wrapf(err, "load kagome dictionary %s", dictionaryPath)
		}
	}
	t, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Kagome{
		kagome: t,
	}, nil
}

// NextRawToken analyzes the text up to the first sentence or whitespace
// boundary and reports the first morpheme. Morphemes never span those
// boundaries, so the rest of the text does not have to be looked at.
func (k *Kagome) NextRawToken(text []byte) (TokenType, int) {
	if len(text) == 0 {
		return TokenNone, 0
	}
	r, size := utf8.DecodeRune(text)
	if r == utf8.RuneError && size <= 1 {
		return TokenUnknown, 1
	}
	if unicode.IsSpace(r) {
		return TokenWhitespace, spaceRun(text)
	}

	window := text[:kagomeWindow(text)]
	tokens := k.kagome.Analyze(string(window), tokenizer.Search)
	if len(tokens) == 0 {
		return TokenUnknown, size
	}
	tok := tokens[0]
	if tok.Position > 0 {
		return TokenUnknown, tok.Position
	}
	if len(tok.Surface) == 0 {
		return TokenUnknown, size
	}
	features := tok.Features()
	if len(features) > featurePOSSub && features[featurePOS] == "記号" {
		if features[featurePOSSub] == "空白" {
			return TokenWhitespace, len(tok.Surface)
		}
		return TokenPunctuation, len(tok.Surface)
	}
	return TokenWord, len(tok.Surface)
}

// Analyze returns a single analysis when word is exactly one known morpheme.
func (k *Kagome) Analyze(word []byte) []Analysis {
	tokens := k.kagome.Analyze(string(word), tokenizer.Normal)
	if len(tokens) != 1 || tokens[0].Class != tokenizer.KNOWN {
		return nil
	}
	tok := tokens[0]
	features := tok.Features()
	a := Analysis{AttrWordForm: tok.Surface}
	if len(features) > featurePOS {
		a[AttrClass] = features[featurePOS]
	}
	if len(features) > featureBaseForm && features[featureBaseForm] != "*" {
		a[AttrBaseForm] = features[featureBaseForm]
	}
	if len(features) > featureReading && features[featureReading] != "*" {
		kana := features[featureReading]
		a[AttrReading] = kana
		a[AttrRomaji] = jaconv.ToHebon(jaconv.KatakanaToHiragana(kana))
	}
	return []Analysis{a}
}

func (k *Kagome) ReleaseAnalyses([]Analysis) {}

func (k *Kagome) Terminate() error {
	k.kagome = nil
	return nil
}

// kagomeWindow returns the length of the prefix of text ending after the
// first sentence terminator or before the first whitespace.
func kagomeWindow(text []byte) int {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRune(text[i:])
		if unicode.IsSpace(r) || r == utf8.RuneError {
			if i == 0 {
				return size
			}
			return i
		}
		i += size
		if strings.ContainsRune("。！？", r) {
			return i
		}
	}
	return len(text)
}

func spaceRun(text []byte) int {
	n := 0
	for n < len(text) {
		r, size := utf8.DecodeRune(text[n:])
		if !unicode.IsSpace(r) {
			break
		}
		n += size
	}
	return n
}
