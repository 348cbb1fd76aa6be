package morphology

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const mysqlScheme = "mysql://"

// DBConfig addresses a lexicon served from MySQL.
type DBConfig struct {
	User     string
	Password string
	Addr     string
	Port     string
	DB       string
}

// DictionaryPath renders the config as a mysql:// dictionary path.
func (c DBConfig) DictionaryPath() string {
	return mysqlScheme + fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", c.User, c.Password, c.Addr, c.Port, c.DB)
}

func NewDBClient(dictionaryPath string) (*sqlx.DB, error) {
	if dsn, ok := strings.CutPrefix(dictionaryPath, mysqlScheme); ok {
		return sqlx.Open("mysql", dsn)
	}
	// sqlite would silently create a missing file.
	if _, err := os.Stat(dictionaryPath); err != nil {
		return nil, errors.Wrap(err, "dictionary not found")
	}
	return sqlx.Open("sqlite3", sqliteDSN(dictionaryPath, "ro"))
}

// sqliteDSN renders path as a SQLite URI filename, escaping characters such
// as '?' and '#' that would otherwise start the query or fragment.
func sqliteDSN(path, mode string) string {
	u := url.URL{Scheme: "file", OmitHost: true, Path: path, RawQuery: "mode=" + mode}
	return u.String()
}

type lexiconEntry struct {
	BaseForm sql.NullString `db:"baseform"`
	Class    sql.NullString `db:"class"`
}

type lexiconStore struct {
	db *sqlx.DB
}

func openLexiconStore(dictionaryPath string) (*lexiconStore, error) {
	db, err := NewDBClient(dictionaryPath)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "open dictionary")
	}
	return &lexiconStore{db: db}, nil
}

func (s *lexiconStore) language() (string, error) {
	var lang string
	err := s.db.Get(&lang, `SELECT value FROM meta WHERE name = ?`, "language")
	if errors.Is(err, sql.ErrNoRows) {
		return "", errors.New("dictionary does not declare a language")
	}
	if err != nil {
		return "", errors.Wrap(err, "read dictionary language")
	}
	return lang, nil
}

func (s *lexiconStore) lookup(wordform string) ([]lexiconEntry, error) {
	var entries []lexiconEntry
	err := s.db.Select(&entries,
		`SELECT baseform, class FROM lexicon WHERE wordform = ? ORDER BY priority, id`, wordform)
	if err != nil {
		return nil, errors.Wrapf(err, "lookup %q", wordform)
	}
	return entries, nil
}

func (s *lexiconStore) close() error {
	return s.db.Close()
}
