package analysis

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// StopSet is an immutable set of stopwords.
type StopSet struct {
	words map[string]struct{}
}

// NewStopSet builds a set from words. Each entry is classified by script the
// way the tokenizer classifies a word and then normalized as DefaultFilters
// would normalize such a token: Hebrew entries are decomposed and stripped of
// niqqud, NonHebrew entries are lower-cased and mixed-script entries are kept.
func NewStopSet(words ...string) StopSet {
	lower := newLowerCaser()
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = normalizeStopword(strings.TrimSpace(w), lower)
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return StopSet{words: set}
}

// Contains reports whether term is a stopword. The term is looked up as-is.
func (s StopSet) Contains(term string) bool {
	_, ok := s.words[term]
	return ok
}

// Len returns the number of distinct stopwords.
func (s StopSet) Len() int {
	return len(s.words)
}

// Filter returns a stage that drops stopwords.
func (s StopSet) Filter(input TokenStream) TokenStream {
	return &StopFilter{input: input, set: s}
}

func normalizeStopword(w string, lower cases.Caser) string {
	var hebrew, other bool
	for _, r := range w {
		switch {
		case unicode.Is(unicode.Hebrew, r):
			hebrew = true
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			other = true
		}
	}

	wt := classify(hebrew, other)
	switch {
	case wt.Normalizable():
		r := []rune(norm.NFD.String(w))
		return string(r[:StripNiqqud(r)])
	case lowerCases(wt):
		return lower.String(w)
	}
	return w
}

// StopFilter drops tokens found in a StopSet. The position increments of
// dropped tokens are carried onto the next emitted token.
type StopFilter struct {
	input TokenStream
	set   StopSet
}

// Next implements TokenStream.
func (f *StopFilter) Next(tok *Token) (bool, error) {
	skipped := 0
	for {
		ok, err := f.input.Next(tok)
		if !ok || err != nil {
			return ok, err
		}
		if !f.set.Contains(tok.Term()) {
			tok.PositionIncrement += skipped
			return true, nil
		}
		skipped += tok.PositionIncrement
	}
}
