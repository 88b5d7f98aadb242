package analysis

import (
	"bufio"
	"io"
	"unicode"

	"github.com/cognicore/hebnorm/pkg/hebnorm/wordtype"
)

// DefaultMaxTokenLength caps a single token, in runes. Longer words are split.
const DefaultMaxTokenLength = 255

const (
	geresh     = '׳'
	gershayim  = '״'
	apostrophe = '\''
	quote      = '"'
)

// Tokenizer segments text into words and assigns each a script-based word type:
// Hebrew-only words are Hebrew, words without Hebrew are NonHebrew and words
// mixing Hebrew with another script are Unrecognized.
//
// It does no morphology: prefixes, tolerated spellings and custom dictionary
// entries are for an external analyzer to tag.
type Tokenizer struct {
	maxTokenLength int
}

// NewTokenizer creates a tokenizer. A non-positive maxTokenLength selects
// DefaultMaxTokenLength.
func NewTokenizer(maxTokenLength int) *Tokenizer {
	if maxTokenLength <= 0 {
		maxTokenLength = DefaultMaxTokenLength
	}
	return &Tokenizer{maxTokenLength: maxTokenLength}
}

// Stream returns a TokenStream reading from r. Read errors other than io.EOF
// are returned from Next as-is.
func (t *Tokenizer) Stream(r io.Reader) TokenStream {
	br, ok := r.(io.RuneScanner)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &tokenStream{r: br, maxLen: t.maxTokenLength}
}

type tokenStream struct {
	r      io.RuneScanner
	maxLen int
	offset int // runes consumed so far
}

func (s *tokenStream) Next(tok *Token) (bool, error) {
	tok.Reset()
	var hebrew, other bool

	for tok.Len() < s.maxLen {
		r, _, err := s.r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return false, err
		}
		offset := s.offset
		s.offset++

		if !isWordRune(r) {
			if tok.Len() == 0 {
				continue
			}
			if isWordQuote(r) && endsWithHebrewLetter(tok) {
				joined, err := s.joinQuoted(tok, r)
				if err != nil {
					return false, err
				}
				if joined {
					hebrew = true
					continue
				}
			}
			break
		}

		if tok.Len() == 0 {
			tok.StartOffset = offset
		}
		tok.AppendRune(r)
		tok.EndOffset = s.offset

		switch {
		case unicode.Is(unicode.Hebrew, r):
			hebrew = true
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			other = true
		}
	}

	if tok.Len() == 0 {
		return false, nil
	}
	tok.Type = classify(hebrew, other)
	return true, nil
}

// joinQuoted handles a quote mark following a Hebrew letter, possibly carrying
// niqqud. Acronyms such as צה"ל keep the quote when another Hebrew letter
// follows; marks on that letter are read by the caller as part of the word. A
// trailing geresh or gershayim is kept as part of the word. It reports whether
// the word continues.
func (s *tokenStream) joinQuoted(tok *Token, q rune) (bool, error) {
	next, _, err := s.r.ReadRune()
	switch {
	case err == io.EOF:
	case err != nil:
		return false, err
	case isHebrewLetter(next) && tok.Len()+2 <= s.maxLen:
		tok.AppendRune(q)
		tok.AppendRune(next)
		s.offset++
		tok.EndOffset = s.offset
		return true, nil
	default:
		if err := s.r.UnreadRune(); err != nil {
			return false, err
		}
	}

	if q == geresh || q == gershayim {
		tok.AppendRune(q)
		tok.EndOffset = s.offset
	}
	return false, nil
}

func classify(hebrew, other bool) wordtype.WordType {
	switch {
	case hebrew && other:
		return wordtype.Unrecognized
	case hebrew:
		return wordtype.Hebrew
	default:
		return wordtype.NonHebrew
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

func isWordQuote(r rune) bool {
	return r == geresh || r == gershayim || r == apostrophe || r == quote
}

// endsWithHebrewLetter reports whether the last base rune of tok, skipping
// trailing nonspacing marks, is a Hebrew letter.
func endsWithHebrewLetter(tok *Token) bool {
	for i := tok.length - 1; i >= 0; i-- {
		r := tok.buf[i]
		if !unicode.Is(unicode.Mn, r) {
			return isHebrewLetter(r)
		}
	}
	return false
}

func isHebrewLetter(r rune) bool {
	return unicode.Is(unicode.Hebrew, r) && unicode.IsLetter(r)
}
