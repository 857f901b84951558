// Package textproc holds the text transformations applied between the chat
// export and the word cloud: normalization, tokenization, right-to-left
// shaping and visual reordering.
package textproc

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	tatweel         = '\u0640'
	maddaAbove      = '\u0653'
	hamzaAbove      = '\u0654'
	hamzaBelow      = '\u0655'
	zeroWidthJoiner = '\u200D'
)

// Normalizer canonicalizes equivalent spellings of a text. Implementations
// must be idempotent.
type Normalizer interface {
	Normalize(text string) string
}

// TextNormalizer applies compatibility composition, lowercases, strips
// diacritics, unifies Arabic letter variants to their Persian form and
// collapses whitespace.
type TextNormalizer struct{}

func NewNormalizer() TextNormalizer {
	return TextNormalizer{}
}

func (TextNormalizer) Normalize(text string) string {
	// A Caser keeps state, the chain is rebuilt on every call. NFKC runs
	// first: compatibility forms such as mathematical bold letters fold to
	// uppercase ASCII and must still be lowercased.
	t := transform.Chain(
		norm.NFKC,
		cases.Lower(language.Und),
		norm.NFD,
		runes.Remove(runes.Predicate(isDropped)),
		norm.NFC,
		runes.Map(unifyLetter),
	)
	// None of the chained transformers reports an error on its own, invalid
	// UTF-8 becomes U+FFFD. The fallback only keeps the input readable if a
	// future step starts failing.
	out, _, err := transform.String(t, text)
	if err != nil {
		out = strings.ToValidUTF8(text, string(utf8.RuneError))
	}
	return strings.Join(strings.Fields(out), " ")
}

// isDropped keeps the hamza and madda marks so that NFC can recompose
// letters such as آ and أ.
func isDropped(r rune) bool {
	switch r {
	case maddaAbove, hamzaAbove, hamzaBelow:
		return false
	case tatweel, zeroWidthJoiner:
		return true
	}
	return unicode.Is(unicode.Mn, r)
}

func unifyLetter(r rune) rune {
	switch {
	case r == '\u064A', r == '\u0649':
		return '\u06CC'
	case r == '\u0643':
		return '\u06A9'
	case r >= '\u0660' && r <= '\u0669':
		return '\u06F0' + (r - '\u0660')
	}
	return r
}
