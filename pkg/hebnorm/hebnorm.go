// Package hebnorm ties the Hebrew analysis pipeline to a term store.
package hebnorm

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/cognicore/hebnorm/internal/log"
	"github.com/cognicore/hebnorm/pkg/hebnorm/analysis"
	"github.com/cognicore/hebnorm/pkg/hebnorm/internalerr"
	"github.com/cognicore/hebnorm/pkg/hebnorm/metrics"
	"github.com/cognicore/hebnorm/pkg/hebnorm/store"
)

// Engine analyzes documents and hands the resulting terms to a store.
type Engine struct {
	store    store.Store
	pipeline *analysis.Pipeline
	metrics  *metrics.Collector
	logger   zerolog.Logger
	now      func() time.Time

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// Options configures an Engine. Pipeline is required; Store and Metrics are
// optional.
type Options struct {
	Store    store.Store
	Pipeline *analysis.Pipeline
	Metrics  *metrics.Collector
	Logger   *zerolog.Logger
}

// New creates an Engine with the given dependencies
func New(opts Options) (*Engine, error) {
	if opts.Pipeline == nil {
		return nil, fmt.Errorf("engine: pipeline is required: %w", internalerr.ErrInvalidInput)
	}
	logger := log.WithComponent("engine")
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Engine{
		store:    opts.Store,
		pipeline: opts.Pipeline,
		metrics:  opts.Metrics,
		logger:   logger,
		now:      time.Now,
		entropy:  ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Close releases the store, if any.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

// IndexDoc is a document submitted for indexing.
type IndexDoc struct {
	Source string // file name, URL or other caller-chosen label
	Body   string
	HTML   bool // Body is HTML and its visible text is analyzed
}

// Validate checks if the document has required fields
func (d *IndexDoc) Validate() error {
	if strings.TrimSpace(d.Source) == "" {
		return fmt.Errorf("doc source is required: %w", internalerr.ErrInvalidInput)
	}
	if strings.TrimSpace(d.Body) == "" {
		return fmt.Errorf("doc body is required: %w", internalerr.ErrInvalidInput)
	}
	return nil
}

// Analyze runs text through the pipeline.
func (e *Engine) Analyze(text string) ([]analysis.Term, error) {
	return e.run(strings.NewReader(text))
}

// AnalyzeHTML extracts the visible text of an HTML document and analyzes it.
func (e *Engine) AnalyzeHTML(r io.Reader) ([]analysis.Term, error) {
	text, err := analysis.ExtractText(r)
	if err != nil {
		return nil, err
	}
	return e.Analyze(text)
}

func (e *Engine) run(r io.Reader) ([]analysis.Term, error) {
	stream := e.pipeline.Stream(r)
	if e.metrics == nil {
		return analysis.Collect(stream)
	}

	terms, err := analysis.Collect(e.metrics.Filter(stream))
	if err != nil {
		return nil, err
	}
	e.metrics.Documents.Inc()
	return terms, nil
}

// Index analyzes d and stores its terms under a new ULID, which is returned.
func (e *Engine) Index(ctx context.Context, d IndexDoc) (string, error) {
	if e.store == nil {
		return "", errors.New("index: engine has no store")
	}
	if err := d.Validate(); err != nil {
		return "", err
	}

	var (
		terms []analysis.Term
		err   error
	)
	if d.HTML {
		terms, err = e.AnalyzeHTML(strings.NewReader(d.Body))
	} else {
		terms, err = e.Analyze(d.Body)
	}
	if err != nil {
		return "", fmt.Errorf("analyze %s: %w", d.Source, err)
	}

	now := e.now()
	doc := store.Doc{
		ID:        e.newID(now),
		Source:    d.Source,
		IndexedAt: now,
		Terms:     make([]store.Term, len(terms)),
	}
	for i, t := range terms {
		doc.Terms[i] = store.Term{Text: t.Text, Type: t.Type, Position: t.Position}
	}

	if err := e.store.PutDoc(ctx, doc); err != nil {
		return "", fmt.Errorf("store %s: %w", d.Source, err)
	}

	e.logger.Debug().
		Str("doc_id", doc.ID).
		Str("source", d.Source).
		Int("terms", len(doc.Terms)).
		Msg("indexed document")
	return doc.ID, nil
}

func (e *Engine) newID(t time.Time) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), e.entropy).String()
}
