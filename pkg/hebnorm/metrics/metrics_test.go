package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/hebnorm/pkg/hebnorm/analysis"
	"github.com/cognicore/hebnorm/pkg/hebnorm/wordtype"
)

func TestCollectorFilterCounts(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	src := analysis.NewSliceStream(
		analysis.Term{Text: "ספר", Type: wordtype.Hebrew},
		analysis.Term{Text: "\u05b0", Type: wordtype.Hebrew},
		analysis.Term{Text: "book", Type: wordtype.NonHebrew},
	)
	terms, err := analysis.Collect(c.Filter(analysis.NewNiqqudFilter(src)))
	require.NoError(t, err)
	require.Len(t, terms, 3)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Tokens.WithLabelValues("HEBREW")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Tokens.WithLabelValues("NON_HEBREW")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.Tokens.WithLabelValues("CUSTOM")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.EmptyTokens))
}

func TestCollectorPrecreatesSeries(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	assert.Equal(t, len(wordtype.All()), testutil.CollectAndCount(c.Tokens))
}

func TestTotalsSumsAcrossWordTypes(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.Tokens.WithLabelValues("HEBREW").Add(3)
	c.Tokens.WithLabelValues("NON_HEBREW").Inc()
	c.Documents.Inc()

	totals, err := Totals(reg)
	require.NoError(t, err)
	assert.Equal(t, 4.0, totals[TokensTotal])
	assert.Equal(t, 1.0, totals[DocumentsTotal])
	assert.Equal(t, 0.0, totals[EmptyTokensTotal])
}
