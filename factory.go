package morphofts

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/masamichhhhi/morphofts/morphology"
)

// Name is the name hosts register this tokenizer under.
const Name = "morpho"

// Tokenizer owns one analysis engine binding, shared by every cursor opened
// on it. Calls into the binding are serialized.
type Tokenizer struct {
	mu        sync.Mutex
	binding   morphology.Binding
	attribute string
	log       *zap.Logger
	optErr    error
}

type Option func(*Tokenizer)

func WithLogger(log *zap.Logger) Option {
	return func(t *Tokenizer) {
		t.log = log
	}
}

// WithBinding uses an already initialized binding instead of calling
// morphology.Init. The tokenizer takes ownership of it, so the option can
// only be applied once; New fails with ErrBindingInUse after that.
func WithBinding(b morphology.Binding) Option {
	var claimed atomic.Bool
	return func(t *Tokenizer) {
		if !claimed.CompareAndSwap(false, true) {
			t.optErr = ErrBindingInUse
			return
		}
		t.binding = b
	}
}

// New creates a tokenizer for cfg. If the engine cannot be initialized an
// *InitializationError is returned.
func New(cfg Config, opts ...Option) (*Tokenizer, error) {
	t := &Tokenizer{
		attribute: cfg.Attribute,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.optErr != nil {
		return nil, t.optErr
	}
	if t.attribute == "" {
		t.attribute = morphology.AttrBaseForm
	}

	if t.binding == nil {
		b, err := morphology.Init(cfg.Language, cfg.DictionaryPath,
			morphology.WithCache(cfg.CacheSize))
		if err != nil {
			t.log.Error("initialization error",
				zap.String("language", cfg.Language),
				zap.String("dictionary", cfg.DictionaryPath),
				zap.Error(err))
			return nil, newInitializationError(cfg, err)
		}
		t.binding = b
	}
	t.log.Debug("tokenizer created",
		zap.String("language", cfg.Language),
		zap.String("dictionary", cfg.DictionaryPath),
		zap.String("attribute", t.attribute))
	return t, nil
}

// Destroy terminates the binding. Cursors still open on t fail with
// ErrTokenizerDestroyed afterwards.
func (t *Tokenizer) Destroy() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.binding == nil {
		return ErrTokenizerDestroyed
	}
	err := t.binding.Terminate()
	t.binding = nil
	t.log.Debug("tokenizer destroyed")
	return err
}

// Module is the capability a host engine dispatches through: create a
// tokenizer, open cursors on it, pull tokens, close, destroy.
type Module interface {
	Create(cfg Config) (Instance, error)
}

type Instance interface {
	Open(input []byte) (TokenCursor, error)
	Destroy() error
}

type TokenCursor interface {
	Next() (Token, error)
	Close() error
}

// MorphoModule implements Module with Tokenizer. Options that carry a binding
// serve a single Create.
type MorphoModule struct {
	Options []Option
}

var _ Module = MorphoModule{}

func (m MorphoModule) Create(cfg Config) (Instance, error) {
	t, err := New(cfg, m.Options...)
	if err != nil {
		return nil, err
	}
	return instance{t}, nil
}

type instance struct {
	*Tokenizer
}

func (i instance) Open(input []byte) (TokenCursor, error) {
	c, err := i.Tokenizer.Open(input)
	if err != nil {
		return nil, err
	}
	return c, nil
}
