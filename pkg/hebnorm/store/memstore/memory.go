package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/hebnorm/pkg/hebnorm/internalerr"
	"github.com/cognicore/hebnorm/pkg/hebnorm/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu     sync.RWMutex
	docs   map[string]store.Doc
	freq   map[string]int64
	closed bool
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		docs: make(map[string]store.Doc),
		freq: make(map[string]int64),
	}
}

// Close implements store.Store.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// PutDoc implements store.Store. Replacing a document first removes the
// previous version's term counts.
func (s *Store) PutDoc(ctx context.Context, d store.Doc) error {
	if d.ID == "" {
		return fmt.Errorf("put doc: empty id: %w", internalerr.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return internalerr.ErrClosed
	}

	if prev, ok := s.docs[d.ID]; ok {
		for _, t := range prev.Terms {
			if s.freq[t.Text]--; s.freq[t.Text] <= 0 {
				delete(s.freq, t.Text)
			}
		}
	}

	d.Terms = append([]store.Term(nil), d.Terms...)
	s.docs[d.ID] = d
	for _, t := range d.Terms {
		s.freq[t.Text]++
	}
	return nil
}

// GetDoc implements store.Store.
func (s *Store) GetDoc(ctx context.Context, id string) (store.Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return store.Doc{}, internalerr.ErrClosed
	}

	d, ok := s.docs[id]
	if !ok {
		return store.Doc{}, fmt.Errorf("doc %s: %w", id, internalerr.ErrNotFound)
	}
	d.Terms = append([]store.Term(nil), d.Terms...)
	return d, nil
}

// TermFreq implements store.Store.
func (s *Store) TermFreq(ctx context.Context, term string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, internalerr.ErrClosed
	}
	return s.freq[term], nil
}

// TopTerms implements store.Store.
func (s *Store) TopTerms(ctx context.Context, k int) ([]store.TermCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, internalerr.ErrClosed
	}

	out := make([]store.TermCount, 0, len(s.freq))
	for term, n := range s.freq {
		out = append(out, store.TermCount{Term: term, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Term < out[j].Term
	})
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out, nil
}

var _ store.Store = (*Store)(nil)
