package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/hebnorm/pkg/hebnorm/wordtype"
)

func collect(t *testing.T, stream TokenStream) []Term {
	t.Helper()
	terms, err := Collect(stream)
	require.NoError(t, err)
	return terms
}

func TestDecomposeExposesPresentationFormNiqqud(t *testing.T) {
	// U+FB2E alef with patah, U+FB35 vav with dagesh, U+FB4B vav with holam
	src := NewSliceStream(Term{Text: "\ufb2e\ufb35\ufb4b", Type: wordtype.Hebrew})

	terms := collect(t, NewNiqqudFilter(NewDecomposeFilter(src)))
	require.Len(t, terms, 1)
	assert.Equal(t, "\u05d0\u05d5\u05d5", terms[0].Text)
}

func TestDecomposeSkipsNonNormalizable(t *testing.T) {
	src := NewSliceStream(Term{Text: "\ufb2e", Type: wordtype.NonHebrew})

	terms := collect(t, NewDecomposeFilter(src))
	assert.Equal(t, "\ufb2e", terms[0].Text)
}

func TestDecomposeLeavesOtherRunes(t *testing.T) {
	src := NewSliceStream(
		Term{Text: "caf\u00e9", Type: wordtype.Custom},
		// lower dot (ccc 220) before qamats qatan (ccc 18), not canonical order
		Term{Text: "\u05d0\u05c5\u05c7", Type: wordtype.Hebrew},
		Term{Text: "\u00e9\ufb2e", Type: wordtype.CustomWithPrefix},
	)

	terms := collect(t, NewDecomposeFilter(src))
	require.Len(t, terms, 3)
	assert.Equal(t, "caf\u00e9", terms[0].Text)
	assert.Equal(t, "\u05d0\u05c5\u05c7", terms[1].Text)
	assert.Equal(t, "\u00e9\u05d0\u05b7", terms[2].Text)
}

func TestLowerCaseOnlyNonHebrew(t *testing.T) {
	src := NewSliceStream(
		Term{Text: "HeLLo", Type: wordtype.NonHebrew},
		Term{Text: "ABCא", Type: wordtype.Unrecognized},
		Term{Text: "ÉCOLE", Type: wordtype.NonHebrew},
		Term{Text: shalom, Type: wordtype.Hebrew},
	)

	terms := collect(t, NewLowerCaseFilter(src))
	require.Len(t, terms, 4)
	assert.Equal(t, "hello", terms[0].Text)
	assert.Equal(t, "ABCא", terms[1].Text)
	assert.Equal(t, "école", terms[2].Text)
	assert.Equal(t, shalom, terms[3].Text)
}

func TestDropEmptyCarriesPositions(t *testing.T) {
	src := NewSliceStream(
		Term{Text: "alpha", Type: wordtype.NonHebrew},
		Term{Text: onlyNiqqud, Type: wordtype.Hebrew},
		Term{Text: onlyNiqqud, Type: wordtype.Custom},
		Term{Text: shalomVocalized, Type: wordtype.Hebrew},
	)

	terms := collect(t, NewDropEmptyFilter(NewNiqqudFilter(src)))
	require.Len(t, terms, 2)
	assert.Equal(t, "alpha", terms[0].Text)
	assert.Equal(t, 0, terms[0].Position)
	assert.Equal(t, shalom, terms[1].Text)
	assert.Equal(t, 3, terms[1].Position)
}

func TestStopSetNormalizesEntries(t *testing.T) {
	set := NewStopSet(" The ", "שֶׁל", "", "the")

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("the"))
	assert.True(t, set.Contains("של"))
	assert.False(t, set.Contains("The"))
}

func TestStopSetMatchesPipelineNormalization(t *testing.T) {
	// precomposed e-acute and upper-case Greek with a word-final sigma
	set := NewStopSet("caf\u00e9", "\u039f\u0394\u039f\u03a3")
	reg := NewRegistry()
	require.NoError(t, reg.RegisterStopwords(set))
	p, err := NewPipeline(NewTokenizer(0), reg, FilterDecompose, FilterNiqqud, FilterLowerCase, FilterStop)
	require.NoError(t, err)

	terms, err := p.Analyze("Caf\u00e9 \u039f\u0394\u039f\u03a3 book")
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, "book", terms[0].Text)
	assert.Equal(t, 2, terms[0].Position)
}

func TestStopSetKeepsMixedScriptEntries(t *testing.T) {
	set := NewStopSet("ABC\u05d0")

	assert.True(t, set.Contains("ABC\u05d0"))
	assert.False(t, set.Contains("abc\u05d0"))
}

func TestStopFilterDropsAndCarriesPositions(t *testing.T) {
	set := NewStopSet("של", "the")
	src := NewSliceStream(
		Term{Text: "the", Type: wordtype.NonHebrew},
		Term{Text: "ספר", Type: wordtype.Hebrew},
		Term{Text: "של", Type: wordtype.Hebrew},
		Term{Text: "דוד", Type: wordtype.Hebrew},
	)

	terms := collect(t, set.Filter(src))
	require.Len(t, terms, 2)
	assert.Equal(t, "ספר", terms[0].Text)
	assert.Equal(t, 1, terms[0].Position)
	assert.Equal(t, "דוד", terms[1].Text)
	assert.Equal(t, 3, terms[1].Position)
}

func TestTokenBufferReuse(t *testing.T) {
	var tok Token
	tok.SetTerm("abcdefgh")
	buf := tok.Buffer()

	tok.SetTerm("xy")
	assert.Equal(t, "xy", tok.Term())
	assert.Same(t, &buf[0], &tok.Buffer()[0], "shorter term must reuse the buffer")

	tok.AppendRune('z')
	assert.Equal(t, "xyz", tok.Term())

	assert.Panics(t, func() { tok.SetLen(len(tok.Buffer()) + 1) })
	assert.Panics(t, func() { tok.SetLen(-1) })
}
