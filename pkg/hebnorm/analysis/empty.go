package analysis

// DropEmptyFilter discards zero-length tokens, such as a Hebrew token that
// consisted only of niqqud. Position increments of dropped tokens carry over.
type DropEmptyFilter struct {
	input TokenStream
}

// NewDropEmptyFilter wraps input.
func NewDropEmptyFilter(input TokenStream) *DropEmptyFilter {
	return &DropEmptyFilter{input: input}
}

// Next implements TokenStream.
func (f *DropEmptyFilter) Next(tok *Token) (bool, error) {
	skipped := 0
	for {
		ok, err := f.input.Next(tok)
		if !ok || err != nil {
			return ok, err
		}
		if tok.Len() > 0 {
			tok.PositionIncrement += skipped
			return true, nil
		}
		skipped += tok.PositionIncrement
	}
}
