package textproc

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/bidi"
)

// ContainsRTL reports whether text holds at least one letter of a
// right-to-left script.
func ContainsRTL(text string) bool {
	for _, r := range text {
		if unicode.In(r, unicode.Arabic, unicode.Hebrew, unicode.Syriac, unicode.Thaana, unicode.Nko) {
			return true
		}
	}
	return false
}

// ToVisual converts a single line from logical order to the left-to-right
// visual order a glyph renderer expects. The paragraph direction is
// right-to-left, which is the only case this is called for.
func ToVisual(text string) (string, error) {
	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.RightToLeft)); err != nil {
		return "", err
	}
	ordering, err := p.Order()
	if err != nil {
		return "", err
	}

	runs := make([]string, ordering.NumRuns())
	for i := range runs {
		run := ordering.Run(i)
		s := run.String()
		if run.Direction() == bidi.RightToLeft {
			s = bidi.ReverseString(s)
		}
		runs[i] = s
	}
	slices.Reverse(runs)
	return strings.Join(runs, ""), nil
}

// Reshaper prepares right-to-left text for a left-to-right renderer.
type Reshaper interface {
	Reshape(text string) (string, error)
}

// VisualReshaper shapes letters then reorders them visually. Text without
// right-to-left letters is returned unchanged.
type VisualReshaper struct{}

func NewReshaper() VisualReshaper {
	return VisualReshaper{}
}

func (VisualReshaper) Reshape(text string) (string, error) {
	if !ContainsRTL(text) {
		return text, nil
	}
	return ToVisual(Shape(text))
}
