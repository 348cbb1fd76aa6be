package morphofts

import (
	"io"

	"go.uber.org/zap"
)

type cursorState int

const (
	stateOpen cursorState = iota
	stateYielding
	stateExhausted
	stateClosed
)

// Cursor streams the tokens of one text. A Cursor must not be used by more
// than one goroutine at a time.
type Cursor struct {
	tokenizer *Tokenizer
	state     cursorState

	input     []byte
	offset    int
	remaining int
	position  int
	// last backs the Bytes of the most recently returned token.
	last []byte
}

// Open starts a cursor over a private copy of input; the caller may reuse
// input as soon as Open returns.
func (t *Tokenizer) Open(input []byte) (*Cursor, error) {
	t.mu.Lock()
	destroyed := t.binding == nil
	t.mu.Unlock()
	if destroyed {
		return nil, ErrTokenizerDestroyed
	}

	c := &Cursor{
		tokenizer: t,
		state:     stateOpen,
		remaining: len(input),
	}
	if len(input) > 0 {
		c.input = make([]byte, len(input))
		copy(c.input, input)
	}
	t.log.Debug("cursor opened", zap.Int("bytes", len(input)))
	return c, nil
}

// Next returns the next word token, or io.EOF once the input is exhausted.
// The returned Bytes are owned by the cursor and only valid until the next
// call to Next or Close; use Token.Clone to keep them.
func (c *Cursor) Next() (Token, error) {
	switch c.state {
	case stateClosed:
		return Token{}, ErrCursorClosed
	case stateExhausted:
		return Token{}, io.EOF
	}

	c.last = c.last[:0]
	if c.remaining == 0 {
		c.state = stateExhausted
		return Token{}, io.EOF
	}

	span, ok, err := c.tokenizer.nextWord(c.input, c.offset, c.remaining)
	if err != nil {
		return Token{}, err
	}
	if !ok {
		c.offset = span.end
		c.remaining = len(c.input) - span.end
		c.state = stateExhausted
		return Token{}, io.EOF
	}

	var kana string
	c.last, kana, err = c.tokenizer.normalize(c.last, c.input[span.start:span.end])
	if err != nil {
		return Token{}, err
	}
	tok := Token{
		Bytes:    c.last,
		Kana:     kana,
		Start:    span.start,
		End:      span.end,
		Position: c.position,
	}
	c.position++
	c.offset = span.end
	c.remaining = len(c.input) - span.end
	c.state = stateYielding
	return tok, nil
}

// Close releases the cursor's buffers. Closing twice returns ErrCursorClosed.
func (c *Cursor) Close() error {
	if c.state == stateClosed {
		return ErrCursorClosed
	}
	c.state = stateClosed
	c.last = nil
	c.input = nil
	c.tokenizer.log.Debug("cursor closed", zap.Int("tokens", c.position))
	return nil
}
