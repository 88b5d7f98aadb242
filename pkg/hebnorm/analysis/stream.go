package analysis

// TokenStream is a pull-based source of tokens.
//
// Next advances the stream by exactly one token and writes it into tok.
// It returns false with a nil error at end of stream. Errors from an upstream
// source are returned unchanged.
type TokenStream interface {
	Next(tok *Token) (bool, error)
}

// Filter is a stage that wraps an upstream TokenStream.
type Filter func(input TokenStream) TokenStream

// SliceStream replays a fixed list of terms, e.g. tokens already tagged by an
// external morphological analyzer.
type SliceStream struct {
	terms []Term
	pos   int
}

// NewSliceStream creates a stream over terms. Term.Position is ignored; each
// term is emitted with a position increment of one.
func NewSliceStream(terms ...Term) *SliceStream {
	return &SliceStream{terms: terms}
}

// Next implements TokenStream.
func (s *SliceStream) Next(tok *Token) (bool, error) {
	if s.pos >= len(s.terms) {
		return false, nil
	}
	t := s.terms[s.pos]
	s.pos++

	tok.Reset()
	tok.SetTerm(t.Text)
	tok.Type = t.Type
	tok.StartOffset = t.StartOffset
	tok.EndOffset = t.EndOffset
	return true, nil
}

// Collect drains stream and returns detached copies of every token.
// Positions are accumulated from position increments, starting at zero.
func Collect(stream TokenStream) ([]Term, error) {
	var (
		tok   Token
		terms []Term
		pos   = -1
	)
	for {
		ok, err := stream.Next(&tok)
		if err != nil {
			return terms, err
		}
		if !ok {
			return terms, nil
		}
		pos += tok.PositionIncrement
		terms = append(terms, Term{
			Text:        tok.Term(),
			Type:        tok.Type,
			Position:    pos,
			StartOffset: tok.StartOffset,
			EndOffset:   tok.EndOffset,
		})
	}
}
