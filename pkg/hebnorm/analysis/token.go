package analysis

import (
	"fmt"
	"unicode/utf8"

	"github.com/cognicore/hebnorm/pkg/hebnorm/wordtype"
)

// Token is the unit threaded through a TokenStream. A single Token value is
// reused for every pull: stages mutate it in place and must not retain it.
//
// The buffer may be longer than the term; only the first Len() runes are
// meaningful.
type Token struct {
	buf    []rune
	length int

	// Type is the classification assigned upstream. Normalization stages read it
	// and never change it.
	Type wordtype.WordType

	// PositionIncrement is the distance from the previous emitted token.
	PositionIncrement int
	StartOffset       int
	EndOffset         int
}

// Runes returns the meaningful part of the buffer. Writes through the slice
// mutate the token.
func (t *Token) Runes() []rune {
	return t.buf[:t.length]
}

// Buffer returns the whole backing buffer, including stale runes past Len().
func (t *Token) Buffer() []rune {
	return t.buf
}

// Len returns the logical term length in runes.
func (t *Token) Len() int {
	return t.length
}

// SetLen sets the logical length. It panics if n is outside the buffer.
func (t *Token) SetLen(n int) {
	if n < 0 || n > len(t.buf) {
		panic(fmt.Sprintf("analysis: token length %d out of range [0,%d]", n, len(t.buf)))
	}
	t.length = n
}

// SetTerm replaces the term text.
func (t *Token) SetTerm(s string) {
	n := utf8.RuneCountInString(s)
	if len(t.buf) < n {
		t.buf = make([]rune, grow(n))
	}
	i := 0
	for _, r := range s {
		t.buf[i] = r
		i++
	}
	t.length = n
}

// AppendRune appends r after the current term.
func (t *Token) AppendRune(r rune) {
	if t.length < len(t.buf) {
		t.buf[t.length] = r
	} else {
		t.buf = append(t.buf[:t.length], r)
		t.buf = t.buf[:cap(t.buf)]
	}
	t.length++
}

// Term returns the term as a string.
func (t *Token) Term() string {
	return string(t.buf[:t.length])
}

// Reset clears the term and attributes but keeps the buffer for reuse.
func (t *Token) Reset() {
	t.length = 0
	t.Type = wordtype.Hebrew
	t.PositionIncrement = 1
	t.StartOffset = 0
	t.EndOffset = 0
}

func (t *Token) String() string {
	return fmt.Sprintf("%q %s [%d,%d) +%d", t.Term(), t.Type, t.StartOffset, t.EndOffset, t.PositionIncrement)
}

func grow(n int) int {
	if n < 16 {
		return 16
	}
	return n + n/2
}

// Term is an immutable snapshot of a token, detached from the stream buffer.
type Term struct {
	Text        string            `json:"text"`
	Type        wordtype.WordType `json:"type"`
	Position    int               `json:"position"`
	StartOffset int               `json:"start"`
	EndOffset   int               `json:"end"`
}
