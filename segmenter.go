package morphofts

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/masamichhhhi/morphofts/morphology"
)

type rawSpan struct {
	start, end int
}

// nextWord walks the raw tokens of input[offset:offset+remaining] and returns
// the span of the first word. ok is false when the window is exhausted.
func (t *Tokenizer) nextWord(input []byte, offset, remaining int) (span rawSpan, ok bool, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.binding == nil {
		return rawSpan{}, false, ErrTokenizerDestroyed
	}

	for remaining > 0 {
		window := input[offset : offset+remaining]
		kind, n := t.binding.NextRawToken(window)
		if kind == morphology.TokenNone {
			break
		}
		if n <= 0 {
			// A raw token that does not advance would loop forever.
			_, n = utf8.DecodeRune(window)
			t.log.Warn("zero-length raw token",
				zap.Stringer("kind", kind),
				zap.Int("offset", offset),
				zap.Int("skip", n))
			kind = morphology.TokenUnknown
		}
		if n > remaining {
			n = remaining
		}
		if kind == morphology.TokenWord {
			return rawSpan{start: offset, end: offset + n}, true, nil
		}
		offset += n
		remaining -= n
	}
	return rawSpan{start: offset, end: offset}, false, nil
}
