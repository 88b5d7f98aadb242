// Package storetest holds the behavior suite every store.Store implementation
// must pass.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/hebnorm/pkg/hebnorm/internalerr"
	"github.com/cognicore/hebnorm/pkg/hebnorm/store"
	"github.com/cognicore/hebnorm/pkg/hebnorm/wordtype"
)

// Run exercises st. The store must be empty.
func Run(t *testing.T, st store.Store) {
	ctx := context.Background()
	indexed := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	doc := store.Doc{
		ID:        "01J0000000000000000000000A",
		Source:    "a.txt",
		IndexedAt: indexed,
		Terms: []store.Term{
			{Text: "שלום", Type: wordtype.Hebrew, Position: 0},
			{Text: "world", Type: wordtype.NonHebrew, Position: 1},
			{Text: "שלום", Type: wordtype.HebrewWithPrefix, Position: 3},
		},
	}
	require.NoError(t, st.PutDoc(ctx, doc))

	got, err := st.GetDoc(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.Source, got.Source)
	assert.True(t, indexed.Equal(got.IndexedAt))
	assert.Equal(t, doc.Terms, got.Terms)

	n, err := st.TermFreq(ctx, "שלום")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = st.GetDoc(ctx, "missing")
	assert.ErrorIs(t, err, internalerr.ErrNotFound)

	second := store.Doc{
		ID:        "01J0000000000000000000000B",
		Source:    "b.txt",
		IndexedAt: indexed,
		Terms: []store.Term{
			{Text: "world", Type: wordtype.NonHebrew, Position: 0},
			{Text: "עולם", Type: wordtype.Hebrew, Position: 1},
		},
	}
	require.NoError(t, st.PutDoc(ctx, second))

	top, err := st.TopTerms(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []store.TermCount{{Term: "world", Count: 2}, {Term: "שלום", Count: 2}}, top)

	// Replacing a document drops its previous terms.
	doc.Terms = []store.Term{{Text: "עולם", Type: wordtype.Hebrew, Position: 0}}
	require.NoError(t, st.PutDoc(ctx, doc))

	n, err = st.TermFreq(ctx, "שלום")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	top, err = st.TopTerms(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []store.TermCount{{Term: "עולם", Count: 2}, {Term: "world", Count: 1}}, top)

	err = st.PutDoc(ctx, store.Doc{Source: "no-id"})
	assert.ErrorIs(t, err, internalerr.ErrInvalidInput)
}
