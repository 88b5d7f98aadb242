package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/hebnorm/pkg/hebnorm/internalerr"
	"github.com/cognicore/hebnorm/pkg/hebnorm/store"
	"github.com/cognicore/hebnorm/pkg/hebnorm/wordtype"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled and creates the
// schema when missing.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS docs (
	id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	indexed_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS doc_terms (
	doc_id TEXT NOT NULL,
	ord INTEGER NOT NULL,
	position INTEGER NOT NULL,
	term TEXT NOT NULL,
	word_type TEXT NOT NULL,
	PRIMARY KEY(doc_id, ord),
	FOREIGN KEY(doc_id) REFERENCES docs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_doc_terms_term ON doc_terms(term);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// PutDoc inserts or replaces a document and its terms in one transaction.
func (s *sqliteStore) PutDoc(ctx context.Context, d store.Doc) error {
	if d.ID == "" {
		return fmt.Errorf("put doc: empty id: %w", internalerr.ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const upsert = `
INSERT INTO docs (id, source, indexed_at)
VALUES (?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	source=excluded.source,
	indexed_at=excluded.indexed_at;
`
	if _, err := tx.ExecContext(ctx, upsert, d.ID, d.Source, d.IndexedAt.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("upsert doc %s: %w", d.ID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM doc_terms WHERE doc_id = ?`, d.ID); err != nil {
		return fmt.Errorf("clear terms %s: %w", d.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO doc_terms (doc_id, ord, position, term, word_type) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, t := range d.Terms {
		if _, err := stmt.ExecContext(ctx, d.ID, i, t.Position, t.Text, t.Type.String()); err != nil {
			return fmt.Errorf("insert term %q at %d: %w", t.Text, t.Position, err)
		}
	}

	return tx.Commit()
}

// GetDoc loads a document and its terms in emission order.
func (s *sqliteStore) GetDoc(ctx context.Context, id string) (store.Doc, error) {
	var (
		d         store.Doc
		indexedAt string
	)
	err := s.db.QueryRowContext(ctx, `SELECT id, source, indexed_at FROM docs WHERE id = ?`, id).
		Scan(&d.ID, &d.Source, &indexedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Doc{}, fmt.Errorf("doc %s: %w", id, internalerr.ErrNotFound)
	}
	if err != nil {
		return store.Doc{}, err
	}
	if d.IndexedAt, err = time.Parse(time.RFC3339Nano, indexedAt); err != nil {
		return store.Doc{}, fmt.Errorf("doc %s: parse indexed_at: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT position, term, word_type FROM doc_terms WHERE doc_id = ? ORDER BY ord`, id)
	if err != nil {
		return store.Doc{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			t  store.Term
			wt string
		)
		if err := rows.Scan(&t.Position, &t.Text, &wt); err != nil {
			return store.Doc{}, err
		}
		if t.Type, err = wordtype.Parse(wt); err != nil {
			return store.Doc{}, fmt.Errorf("doc %s position %d: %w", id, t.Position, err)
		}
		d.Terms = append(d.Terms, t)
	}
	return d, rows.Err()
}

// TermFreq counts occurrences of term across all documents.
func (s *sqliteStore) TermFreq(ctx context.Context, term string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM doc_terms WHERE term = ?`, term).Scan(&n)
	return n, err
}

// TopTerms returns the k most frequent terms. k <= 0 returns all terms.
func (s *sqliteStore) TopTerms(ctx context.Context, k int) ([]store.TermCount, error) {
	if k <= 0 {
		k = -1
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT term, COUNT(*) AS n FROM doc_terms
GROUP BY term
ORDER BY n DESC, term ASC
LIMIT ?`, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.TermCount
	for rows.Next() {
		var tc store.TermCount
		if err := rows.Scan(&tc.Term, &tc.Count); err != nil {
			return nil, err
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}
