package analysis

// Niqqud code points, inclusive. The range is fixed.
const (
	NiqqudFirst rune = 1455 // U+05AF
	NiqqudLast  rune = 1476 // U+05C4
)

// IsNiqqud reports whether r is a niqqud mark.
func IsNiqqud(r rune) bool {
	return r >= NiqqudFirst && r <= NiqqudLast
}

// StripNiqqud compacts buf in place, dropping niqqud marks and keeping the
// order of every other rune. It returns the new length; buf[n:] is stale.
func StripNiqqud(buf []rune) int {
	j := 0
	for _, r := range buf {
		if !IsNiqqud(r) {
			buf[j] = r
			j++
		}
	}
	return j
}

// NiqqudFilter removes niqqud from tokens whose word type is normalizable.
// Other tokens pass through untouched. The token is mutated in place and the
// word type is never changed.
type NiqqudFilter struct {
	input TokenStream
}

// NewNiqqudFilter wraps input.
func NewNiqqudFilter(input TokenStream) *NiqqudFilter {
	return &NiqqudFilter{input: input}
}

// Next implements TokenStream.
func (f *NiqqudFilter) Next(tok *Token) (bool, error) {
	ok, err := f.input.Next(tok)
	if !ok || err != nil {
		return ok, err
	}

	if !tok.Type.Normalizable() {
		return true, nil
	}

	tok.SetLen(StripNiqqud(tok.Runes()))
	return true, nil
}
