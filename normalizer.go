package morphofts

import "github.com/masamichhhhi/morphofts/morphology"

// normalize appends the normal form of word to dst: the configured attribute
// of the first analysis, or word itself when there is none. It also returns
// the reading of the first analysis, if any.
func (t *Tokenizer) normalize(dst, word []byte) ([]byte, string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.binding == nil {
		return dst, "", ErrTokenizerDestroyed
	}

	anas := t.binding.Analyze(word)
	if anas == nil {
		return append(dst, word...), "", nil
	}
	defer t.binding.ReleaseAnalyses(anas)

	if len(anas) == 0 {
		return append(dst, word...), "", nil
	}
	// The engine ranks the analyses; the first one wins.
	reading, _ := anas[0].Value(morphology.AttrReading)
	if form, ok := anas[0].Value(t.attribute); ok && form != "" {
		return append(dst, form...), reading, nil
	}
	return append(dst, word...), reading, nil
}
