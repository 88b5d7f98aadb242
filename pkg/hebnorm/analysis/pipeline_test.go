package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/hebnorm/pkg/hebnorm/internalerr"
	"github.com/cognicore/hebnorm/pkg/hebnorm/wordtype"
)

func defaultPipeline(t *testing.T) *Pipeline {
	t.Helper()
	p, err := NewPipeline(NewTokenizer(0), NewRegistry())
	require.NoError(t, err)
	return p
}

func TestPipelineDefaultChain(t *testing.T) {
	p := defaultPipeline(t)
	assert.Equal(t, DefaultFilters, p.Filters())

	terms, err := p.Analyze(shalomVocalized + " " + onlyNiqqud + " Hello עוֹלָם")
	require.NoError(t, err)

	require.Len(t, terms, 3)
	assert.Equal(t, Term{Text: shalom, Type: wordtype.Hebrew, Position: 0, StartOffset: 0, EndOffset: 7}, terms[0])
	assert.Equal(t, "hello", terms[1].Text)
	assert.Equal(t, 2, terms[1].Position)
	assert.Equal(t, "עולם", terms[2].Text)
	assert.Equal(t, 3, terms[2].Position)
}

func TestPipelineEmptyInput(t *testing.T) {
	terms, err := defaultPipeline(t).Analyze("")
	require.NoError(t, err)
	assert.Empty(t, terms)
}

func TestPipelineWrapTaggedSource(t *testing.T) {
	p, err := NewPipeline(NewTokenizer(0), NewRegistry(), FilterNiqqud)
	require.NoError(t, err)

	src := NewSliceStream(
		Term{Text: shalomVocalized, Type: wordtype.HebrewWithPrefix},
		Term{Text: shalomVocalized, Type: wordtype.CustomWithPrefix},
		Term{Text: shalomVocalized, Type: wordtype.Unrecognized},
	)
	terms, err := Collect(p.Wrap(src))
	require.NoError(t, err)

	require.Len(t, terms, 3)
	assert.Equal(t, shalom, terms[0].Text)
	assert.Equal(t, shalom, terms[1].Text)
	assert.Equal(t, shalomVocalized, terms[2].Text)
	assert.Equal(t, wordtype.CustomWithPrefix, terms[1].Type)
}

func TestPipelineWithStopwords(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterStopwords(NewStopSet("של")))

	p, err := NewPipeline(NewTokenizer(0), reg, FilterNiqqud, FilterStop)
	require.NoError(t, err)

	terms, err := Collect(p.Stream(strings.NewReader("ספר שֶׁל דוד")))
	require.NoError(t, err)
	require.Len(t, terms, 2)
	assert.Equal(t, "דוד", terms[1].Text)
	assert.Equal(t, 2, terms[1].Position)
}

func TestPipelineUnknownFilter(t *testing.T) {
	_, err := NewPipeline(NewTokenizer(0), NewRegistry(), FilterNiqqud, "soundex")
	require.Error(t, err)
	assert.ErrorIs(t, err, internalerr.ErrNotFound)
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, []string{FilterDecompose, FilterDropEmpty, FilterLowerCase, FilterNiqqud}, reg.Names())

	err := reg.Register(FilterNiqqud, func(in TokenStream) TokenStream { return in })
	assert.ErrorIs(t, err, internalerr.ErrDuplicate)

	_, err = reg.Get(FilterStop)
	assert.ErrorIs(t, err, internalerr.ErrNotFound)

	require.NoError(t, reg.RegisterStopwords(NewStopSet("a")))
	f, err := reg.Get(FilterStop)
	require.NoError(t, err)
	assert.NotNil(t, f)
}
