package analysis

import "golang.org/x/text/unicode/norm"

// Hebrew presentation forms block.
const (
	presentationFirst = 0xFB1D
	presentationLast  = 0xFB4F
)

// DecomposeFilter applies canonical decomposition (NFD) to the Hebrew
// presentation forms found in normalizable tokens. U+FB2E (alef with patah)
// becomes a base letter followed by its niqqud mark, which a following
// NiqqudFilter can then strip.
//
// Other runes are copied as-is: Latin text in custom tokens stays precomposed
// and the order of combining marks is not canonicalized.
type DecomposeFilter struct {
	input   TokenStream
	scratch []rune
}

// NewDecomposeFilter wraps input.
func NewDecomposeFilter(input TokenStream) *DecomposeFilter {
	return &DecomposeFilter{input: input}
}

// Next implements TokenStream.
func (f *DecomposeFilter) Next(tok *Token) (bool, error) {
	ok, err := f.input.Next(tok)
	if !ok || err != nil {
		return ok, err
	}
	if !tok.Type.Normalizable() || !hasPresentationForm(tok.Runes()) {
		return true, nil
	}

	f.scratch = f.scratch[:0]
	for _, r := range tok.Runes() {
		if isPresentationForm(r) {
			f.scratch = append(f.scratch, []rune(norm.NFD.String(string(r)))...)
			continue
		}
		f.scratch = append(f.scratch, r)
	}
	tok.SetLen(0)
	for _, r := range f.scratch {
		tok.AppendRune(r)
	}
	return true, nil
}

func isPresentationForm(r rune) bool {
	return r >= presentationFirst && r <= presentationLast
}

func hasPresentationForm(runes []rune) bool {
	for _, r := range runes {
		if isPresentationForm(r) {
			return true
		}
	}
	return false
}
