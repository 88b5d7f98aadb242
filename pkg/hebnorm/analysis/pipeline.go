package analysis

import (
	"fmt"
	"io"
	"strings"
)

// Pipeline chains a tokenizer with an ordered list of filters:
// text → tokenizer → filter[0] → ... → filter[n-1].
type Pipeline struct {
	tokenizer *Tokenizer
	names     []string
	filters   []Filter
}

// NewPipeline resolves names against reg. An empty list selects DefaultFilters.
func NewPipeline(tokenizer *Tokenizer, reg *Registry, names ...string) (*Pipeline, error) {
	if len(names) == 0 {
		names = DefaultFilters
	}
	p := &Pipeline{
		tokenizer: tokenizer,
		names:     append([]string(nil), names...),
		filters:   make([]Filter, 0, len(names)),
	}
	for _, name := range names {
		f, err := reg.Get(name)
		if err != nil {
			return nil, fmt.Errorf("build pipeline: %w", err)
		}
		p.filters = append(p.filters, f)
	}
	return p, nil
}

// Filters returns the filter names in chain order.
func (p *Pipeline) Filters() []string {
	return append([]string(nil), p.names...)
}

// Wrap applies the filter chain to an already tagged source.
func (p *Pipeline) Wrap(source TokenStream) TokenStream {
	stream := source
	for _, f := range p.filters {
		stream = f(stream)
	}
	return stream
}

// Stream tokenizes r and applies the filter chain.
func (p *Pipeline) Stream(r io.Reader) TokenStream {
	return p.Wrap(p.tokenizer.Stream(r))
}

// Analyze runs text through the pipeline and returns the emitted terms.
func (p *Pipeline) Analyze(text string) ([]Term, error) {
	return Collect(p.Stream(strings.NewReader(text)))
}
