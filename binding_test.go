package morphofts

import (
	"github.com/masamichhhhi/morphofts/morphology"
)

// fakeBinding segments ASCII text into letter runs, single spaces and single
// punctuation bytes, and answers analyses from a fixed table. It counts
// analysis lists handed out and not yet released.
type fakeBinding struct {
	analyses map[string][]morphology.Analysis
	// zeroAt makes NextRawToken report a zero-length word at this byte.
	zeroAt byte

	analyzeCalls int
	outstanding  int
	terminated   int
}

func newFakeBinding(baseForms map[string]string) *fakeBinding {
	f := &fakeBinding{analyses: map[string][]morphology.Analysis{}}
	for word, base := range baseForms {
		f.analyses[word] = []morphology.Analysis{{morphology.AttrBaseForm: base}}
	}
	return f
}

func isASCIILetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func (f *fakeBinding) NextRawToken(text []byte) (morphology.TokenType, int) {
	if len(text) == 0 {
		return morphology.TokenNone, 0
	}
	if f.zeroAt != 0 && text[0] == f.zeroAt {
		return morphology.TokenWord, 0
	}
	switch {
	case isASCIILetter(text[0]):
		n := 0
		for n < len(text) && isASCIILetter(text[n]) {
			n++
		}
		return morphology.TokenWord, n
	case text[0] == ' ':
		return morphology.TokenWhitespace, 1
	default:
		return morphology.TokenPunctuation, 1
	}
}

func (f *fakeBinding) Analyze(word []byte) []morphology.Analysis {
	f.analyzeCalls++
	anas, ok := f.analyses[string(word)]
	if !ok {
		return nil
	}
	f.outstanding++
	return anas
}

func (f *fakeBinding) ReleaseAnalyses([]morphology.Analysis) {
	f.outstanding--
}

func (f *fakeBinding) Terminate() error {
	f.terminated++
	return nil
}
