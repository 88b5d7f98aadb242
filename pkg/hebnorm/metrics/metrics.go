// Package metrics exposes Prometheus counters for the analysis pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cognicore/hebnorm/pkg/hebnorm/analysis"
	"github.com/cognicore/hebnorm/pkg/hebnorm/wordtype"
)

// Metric names.
const (
	TokensTotal      = "hebnorm_tokens_total"
	EmptyTokensTotal = "hebnorm_empty_tokens_total"
	DocumentsTotal   = "hebnorm_documents_total"
)

// Collector holds the pipeline counters. Label values are bounded by the
// eight word types.
type Collector struct {
	Tokens      *prometheus.CounterVec
	EmptyTokens prometheus.Counter
	Documents   prometheus.Counter
}

// NewCollector registers the counters with reg. A nil reg uses the default
// Prometheus registerer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	c := &Collector{
		Tokens: f.NewCounterVec(prometheus.CounterOpts{
			Name: TokensTotal,
			Help: "Total number of tokens emitted by the analysis pipeline, by word type.",
		}, []string{"word_type"}),
		EmptyTokens: f.NewCounter(prometheus.CounterOpts{
			Name: EmptyTokensTotal,
			Help: "Total number of zero-length tokens reaching the end of the pipeline.",
		}),
		Documents: f.NewCounter(prometheus.CounterOpts{
			Name: DocumentsTotal,
			Help: "Total number of documents analyzed.",
		}),
	}
	// Pre-create every series so dashboards see zeros.
	for _, wt := range wordtype.All() {
		c.Tokens.WithLabelValues(wt.String())
	}
	return c
}

// Filter returns a pass-through stage that counts each token it forwards.
func (c *Collector) Filter(input analysis.TokenStream) analysis.TokenStream {
	return &countingFilter{input: input, c: c}
}

type countingFilter struct {
	input analysis.TokenStream
	c     *Collector
}

func (f *countingFilter) Next(tok *analysis.Token) (bool, error) {
	ok, err := f.input.Next(tok)
	if !ok || err != nil {
		return ok, err
	}
	f.c.Tokens.WithLabelValues(tok.Type.String()).Inc()
	if tok.Len() == 0 {
		f.c.EmptyTokens.Inc()
	}
	return true, nil
}

// Totals gathers g and sums every counter series per metric name, e.g.
// hebnorm_tokens_total across all word types.
func Totals(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(families))
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				out[mf.GetName()] += c.GetValue()
			}
		}
	}
	return out, nil
}
