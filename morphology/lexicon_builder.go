package morphology

import (
	"database/sql"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
)

// Entry is one analysis of a word form in a lexicon dictionary. An empty
// BaseForm is stored as NULL.
type Entry struct {
	WordForm string
	BaseForm string
	Class    string
	Priority int
}

var lexiconSchema = []string{
	`CREATE TABLE IF NOT EXISTS meta (
		name TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS lexicon (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		wordform TEXT NOT NULL,
		baseform TEXT,
		class TEXT,
		priority INTEGER NOT NULL DEFAULT 0
	);`,
	`CREATE INDEX IF NOT EXISTS idx_lexicon_wordform ON lexicon(wordform);`,
}

// BuildLexicon writes a SQLite lexicon dictionary for language at
// dictionaryPath, creating the file if needed. Word forms are stored
// lowercased.
func BuildLexicon(dictionaryPath, language string, entries []Entry) error {
	db, err := sqlx.Open("sqlite3", sqliteDSN(dictionaryPath, "rwc"))
	if err != nil {
		return err
	}
	defer db.Close()

	for _, stmt := range lexiconSchema {
		if _, err := db.Exec(stmt); err != nil {
			return errors.Wrap(err, "create lexicon schema")
		}
	}

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT OR REPLACE INTO meta (name, value) VALUES (?, ?)`, "language", language); err != nil {
		return errors.Wrap(err, "write language")
	}
	for _, e := range entries {
		base := sql.NullString{String: e.BaseForm, Valid: e.BaseForm != ""}
		class := sql.NullString{String: e.Class, Valid: e.Class != ""}
		_, err := tx.Exec(`INSERT INTO lexicon (wordform, baseform, class, priority) VALUES (?, ?, ?, ?)`,
			strings.ToLower(e.WordForm), base, class, e.Priority)
		if err != nil {
			return errors.Wrapf(err, "insert %q", e.WordForm)
		}
	}
	return tx.Commit()
}
