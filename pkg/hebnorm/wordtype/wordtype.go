// Package wordtype defines the closed set of classifications a token can carry
// through the analysis pipeline.
//
// The classification is assigned upstream (tokenizer or morphological analyzer)
// and is read-only for the normalization stages. Every predicate in this package
// switches over all eight variants; adding a variant requires revisiting each one.
package wordtype

import (
	"fmt"

	"github.com/cognicore/hebnorm/pkg/hebnorm/internalerr"
)

// WordType classifies a token's linguistic category.
type WordType uint8

const (
	Hebrew WordType = iota
	HebrewWithPrefix
	HebrewTolerated
	HebrewToleratedWithPrefix
	NonHebrew
	Unrecognized
	Custom
	CustomWithPrefix
)

var names = [...]string{
	Hebrew:                    "HEBREW",
	HebrewWithPrefix:          "HEBREW_WITH_PREFIX",
	HebrewTolerated:           "HEBREW_TOLERATED",
	HebrewToleratedWithPrefix: "HEBREW_TOLERATED_WITH_PREFIX",
	NonHebrew:                 "NON_HEBREW",
	Unrecognized:              "UNRECOGNIZED",
	Custom:                    "CUSTOM",
	CustomWithPrefix:          "CUSTOM_WITH_PREFIX",
}

// All returns every variant in declaration order.
func All() []WordType {
	return []WordType{
		Hebrew,
		HebrewWithPrefix,
		HebrewTolerated,
		HebrewToleratedWithPrefix,
		NonHebrew,
		Unrecognized,
		Custom,
		CustomWithPrefix,
	}
}

// Valid reports whether w is one of the eight declared variants.
func (w WordType) Valid() bool {
	return int(w) < len(names)
}

func (w WordType) String() string {
	if !w.Valid() {
		return fmt.Sprintf("WordType(%d)", uint8(w))
	}
	return names[w]
}

// Parse returns the WordType whose String form is s.
func Parse(s string) (WordType, error) {
	for i, n := range names {
		if n == s {
			return WordType(i), nil
		}
	}
	return 0, fmt.Errorf("word type %q: %w", s, internalerr.ErrInvalidInput)
}

// MarshalText implements encoding.TextMarshaler.
func (w WordType) MarshalText() ([]byte, error) {
	if !w.Valid() {
		return nil, fmt.Errorf("word type %d: %w", uint8(w), internalerr.ErrInvalidInput)
	}
	return []byte(names[w]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *WordType) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// IsHebrew reports whether the token is a recognized Hebrew word, with or
// without prefix, standard or tolerated spelling.
func (w WordType) IsHebrew() bool {
	switch w {
	case Hebrew, HebrewWithPrefix, HebrewTolerated, HebrewToleratedWithPrefix:
		return true
	case NonHebrew, Unrecognized, Custom, CustomWithPrefix:
		return false
	}
	return false
}

// IsCustom reports whether the token came from a custom dictionary.
func (w WordType) IsCustom() bool {
	switch w {
	case Custom, CustomWithPrefix:
		return true
	case Hebrew, HebrewWithPrefix, HebrewTolerated, HebrewToleratedWithPrefix, NonHebrew, Unrecognized:
		return false
	}
	return false
}

// HasPrefix reports whether an attached prefix was detected.
func (w WordType) HasPrefix() bool {
	switch w {
	case HebrewWithPrefix, HebrewToleratedWithPrefix, CustomWithPrefix:
		return true
	case Hebrew, HebrewTolerated, NonHebrew, Unrecognized, Custom:
		return false
	}
	return false
}

// IsTolerated reports whether the token is an accepted alternate spelling.
func (w WordType) IsTolerated() bool {
	switch w {
	case HebrewTolerated, HebrewToleratedWithPrefix:
		return true
	case Hebrew, HebrewWithPrefix, NonHebrew, Unrecognized, Custom, CustomWithPrefix:
		return false
	}
	return false
}

// Normalizable reports whether niqqud normalization applies: every Hebrew and
// custom variant. NonHebrew and Unrecognized tokens pass through untouched.
func (w WordType) Normalizable() bool {
	switch w {
	case Hebrew, HebrewWithPrefix, HebrewTolerated, HebrewToleratedWithPrefix, Custom, CustomWithPrefix:
		return true
	case NonHebrew, Unrecognized:
		return false
	}
	return false
}

// Signature returns the coarse token type label used by Lucene-style token
// type attributes.
func (w WordType) Signature() string {
	switch w {
	case Hebrew, HebrewWithPrefix, HebrewTolerated, HebrewToleratedWithPrefix:
		return "<HEBREW>"
	case NonHebrew:
		return "<NON_HEBREW>"
	case Unrecognized:
		return "<UNRECOGNIZED>"
	case Custom, CustomWithPrefix:
		return "<CUSTOM>"
	}
	return ""
}
