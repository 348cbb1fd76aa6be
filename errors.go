package morphofts

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	ErrCursorClosed       = errors.New("morphofts: cursor is closed")
	ErrTokenizerDestroyed = errors.New("morphofts: tokenizer is destroyed")
	ErrBindingInUse       = errors.New("morphofts: binding is owned by another tokenizer")
)

// InitializationError is returned by New when the analysis engine cannot be
// started for the configured language and dictionary.
type InitializationError struct {
	Language       string
	DictionaryPath string
	Diagnostic     string
	cause          error
}

func newInitializationError(cfg Config, cause error) *InitializationError {
	return &InitializationError{
		Language:       cfg.Language,
		DictionaryPath: cfg.DictionaryPath,
		Diagnostic:     cause.Error(),
		cause:          cause,
	}
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("morphofts: initialization error (%s, %q): %s", e.Language, e.DictionaryPath, e.Diagnostic)
}

func (e *InitializationError) Unwrap() error {
	return e.cause
}
