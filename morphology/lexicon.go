package morphology

import (
	"strings"

	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultCacheSize = 4096

type options struct {
	cacheSize int
}

type Option func(*options)

// WithCache sizes the lookup cache of lexicon bindings. size <= 0 disables it.
func WithCache(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

// Lexicon is a dictionary-driven Binding for alphabetic languages. The
// dictionary lives in a SQLite file or, for mysql:// paths, a MySQL database.
type Lexicon struct {
	language string
	store    *lexiconStore
	cache    *lru.Cache[string, []Analysis]
}

func NewLexicon(language, dictionaryPath string, opts ...Option) (*Lexicon, error) {
	o := options{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}

	store, err := openLexiconStore(dictionaryPath)
	if err != nil {
		return nil, err
	}
	declared, err := store.language()
	if err != nil {
		_ = store.close()
		return nil, err
	}
	if Language(declared) != language {
		_ = store.close()
		return nil, errors.Newf("no dictionary for language %q: %s is %q", language, dictionaryPath, declared)
	}

	l := &Lexicon{
		language: language,
		store:    store,
	}
	if o.cacheSize > 0 {
		cache, err := lru.New[string, []Analysis](o.cacheSize)
		if err != nil {
			_ = store.close()
			return nil, err
		}
		l.cache = cache
	}
	return l, nil
}

func (l *Lexicon) Language() string {
	return l.language
}

func (l *Lexicon) NextRawToken(text []byte) (TokenType, int) {
	return segmentAlphabetic(text)
}

// Analyze looks the lowercased word up in the dictionary. Lookup failures are
// reported as "no analysis".
func (l *Lexicon) Analyze(word []byte) []Analysis {
	form := strings.ToLower(string(word))
	if l.cache != nil {
		if anas, ok := l.cache.Get(form); ok {
			return nonEmpty(anas)
		}
	}

	entries, err := l.store.lookup(form)
	if err != nil {
		return nil
	}
	anas := make([]Analysis, 0, len(entries))
	for _, e := range entries {
		a := Analysis{AttrWordForm: form}
		if e.BaseForm.Valid {
			a[AttrBaseForm] = e.BaseForm.String
		}
		if e.Class.Valid {
			a[AttrClass] = e.Class.String
		}
		anas = append(anas, a)
	}
	if l.cache != nil {
		l.cache.Add(form, anas)
	}
	return nonEmpty(anas)
}

// ReleaseAnalyses is a no-op: analyses may be shared with the cache and are
// never mutated.
func (l *Lexicon) ReleaseAnalyses([]Analysis) {}

func (l *Lexicon) Terminate() error {
	if l.cache != nil {
		l.cache.Purge()
	}
	return l.store.close()
}

func nonEmpty(anas []Analysis) []Analysis {
	if len(anas) == 0 {
		return nil
	}
	return anas
}
