package store

import (
	"context"
	"time"

	"github.com/cognicore/hebnorm/pkg/hebnorm/wordtype"
)

// Store persists analyzed documents and answers term statistics.
// It is the downstream consumer of an analysis pipeline.
type Store interface {
	Close() error

	// PutDoc inserts or replaces a document keyed by its ID.
	PutDoc(ctx context.Context, d Doc) error
	// GetDoc returns the document with the given ID, or an error wrapping
	// internalerr.ErrNotFound.
	GetDoc(ctx context.Context, id string) (Doc, error)

	// TermFreq returns the number of occurrences of term across all documents.
	TermFreq(ctx context.Context, term string) (int64, error)
	// TopTerms returns the k most frequent terms, most frequent first, ties
	// broken by term text.
	TopTerms(ctx context.Context, k int) ([]TermCount, error)
}

// Doc is an analyzed document.
type Doc struct {
	ID        string
	Source    string
	IndexedAt time.Time
	Terms     []Term
}

// Term is one emitted token of a document.
type Term struct {
	Text     string
	Type     wordtype.WordType
	Position int
}

// TermCount pairs a term with its frequency.
type TermCount struct {
	Term  string
	Count int64
}
