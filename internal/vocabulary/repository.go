package vocabulary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

//go:generate mockgen -source=repository.go -destination=../mocks/vocabulary/mock_repository.go -package=mock_vocabulary Repository

// Repository provides the imported practice vocabulary.
type Repository interface {
	Import(ctx context.Context, words []Word) (int, error)
	FindAll(ctx context.Context) ([]Word, error)
	FindByPOS(ctx context.Context, prefix string) ([]Word, error)
	FindNorwegianVerbs(ctx context.Context) ([]Word, error)
	Count(ctx context.Context) (int, error)
}

// SQLiteRepository implements Repository on a local SQLite database.
type SQLiteRepository struct {
	db *sqlx.DB
}

// OpenSQLiteRepository opens (or creates) the vocabulary database and applies
// the schema.
func OpenSQLiteRepository(path string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open(%s) > %w", path, err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS words (
		russian TEXT PRIMARY KEY,
		english TEXT NOT NULL DEFAULT '',
		norwegian TEXT NOT NULL DEFAULT '',
		pos TEXT NOT NULL DEFAULT '',
		level TEXT NOT NULL DEFAULT '',
		aspect TEXT NOT NULL DEFAULT ''
	)`); err != nil {
		closeErr := db.Close()
		_ = closeErr
		return nil, fmt.Errorf("db.Exec(create words) > %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the underlying database.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Import upserts words by lemma so re-importing a source is idempotent and a
// second source can fill in the other translation column. Returns the number
// of rows written.
func (r *SQLiteRepository) Import(ctx context.Context, words []Word) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	imported := 0
	for _, word := range words {
		if word.Russian == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO words (russian, english, norwegian, pos, level, aspect)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(russian) DO UPDATE SET
				english = CASE WHEN excluded.english != '' THEN excluded.english ELSE words.english END,
				norwegian = CASE WHEN excluded.norwegian != '' THEN excluded.norwegian ELSE words.norwegian END,
				pos = CASE WHEN excluded.pos != '' THEN excluded.pos ELSE words.pos END,
				level = CASE WHEN excluded.level != '' THEN excluded.level ELSE words.level END,
				aspect = CASE WHEN excluded.aspect != '' THEN excluded.aspect ELSE words.aspect END`,
			word.Russian, word.English, word.Norwegian, word.POS, word.Level, word.Aspect); err != nil {
			return 0, fmt.Errorf("tx.ExecContext(insert word %s) > %w", word.Russian, err)
		}
		imported++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("tx.Commit() > %w", err)
	}
	return imported, nil
}

// FindAll returns every imported word ordered by lemma.
func (r *SQLiteRepository) FindAll(ctx context.Context) ([]Word, error) {
	var words []Word
	if err := r.db.SelectContext(ctx, &words, "SELECT * FROM words ORDER BY russian"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(words) > %w", err)
	}
	return words, nil
}

// FindByPOS returns words whose part of speech starts with the given prefix,
// e.g. "N" for nouns or "V" for verbs.
func (r *SQLiteRepository) FindByPOS(ctx context.Context, prefix string) ([]Word, error) {
	var words []Word
	if err := r.db.SelectContext(ctx, &words,
		"SELECT * FROM words WHERE pos LIKE ? ORDER BY russian", prefix+"%"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(words by pos) > %w", err)
	}
	return words, nil
}

// FindNorwegianVerbs returns words whose Norwegian gloss is an infinitive.
func (r *SQLiteRepository) FindNorwegianVerbs(ctx context.Context) ([]Word, error) {
	var words []Word
	if err := r.db.SelectContext(ctx, &words,
		"SELECT * FROM words WHERE norwegian LIKE 'å %' ORDER BY russian"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(norwegian verbs) > %w", err)
	}
	return words, nil
}

// Count returns the number of imported words.
func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM words"); err != nil {
		return 0, fmt.Errorf("db.GetContext(count words) > %w", err)
	}
	return count, nil
}
