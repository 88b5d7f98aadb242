package analysis

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cognicore/hebnorm/pkg/hebnorm/wordtype"
)

// LowerCaseFilter lower-cases NonHebrew tokens. Hebrew has no case, and
// Unrecognized tokens are left as the tokenizer produced them.
type LowerCaseFilter struct {
	input TokenStream
	lower cases.Caser
}

// newLowerCaser returns the caser shared by LowerCaseFilter and StopSet.
func newLowerCaser() cases.Caser {
	return cases.Lower(language.Und)
}

func lowerCases(wt wordtype.WordType) bool {
	return wt == wordtype.NonHebrew
}

// NewLowerCaseFilter wraps input.
func NewLowerCaseFilter(input TokenStream) *LowerCaseFilter {
	return &LowerCaseFilter{
		input: input,
		lower: newLowerCaser(),
	}
}

// Next implements TokenStream.
func (f *LowerCaseFilter) Next(tok *Token) (bool, error) {
	ok, err := f.input.Next(tok)
	if !ok || err != nil {
		return ok, err
	}
	if !lowerCases(tok.Type) {
		return true, nil
	}

	term := tok.Term()
	if lowered := f.lower.String(term); lowered != term {
		tok.SetTerm(lowered)
	}
	return true, nil
}
