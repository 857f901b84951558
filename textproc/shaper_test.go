package textproc

import (
	"bytes"
	"testing"

	"github.com/go-fonts/dejavu/dejavusans"
	"github.com/go-text/typesetting/di"
	gotextfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func TestShape(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Lam alef ligature after a joining letter", "سلام", "ﺳﻼﻡ"},
		{"Initial medial final isolated", "کتاب", "ﮐﺘﺎﺏ"},
		{"Right joining letters break the chain", "دنیا", "ﺩﻧﯿﺎ"},
		{"Isolated lam alef", "لا", "ﻻ"},
		{"Hamza never joins", "ء", "ﺀ"},
		{"Heh with yeh above joins on its right", "خانۀ", "\uFEA7\uFE8E\uFEE7\uFBA5"},
		{"Isolated heh with yeh above", "ۀ", "\uFBA4"},
		{"Latin is untouched", "hello", "hello"},
		{"Mixed scripts", "سلام hello", "ﺳﻼﻡ hello"},
		{"Empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, Shape(tt.input))
		})
	}
}

func TestShape_NormalizeRoundTrip(t *testing.T) {
	req := require.New(t)
	n := NewNormalizer()

	for _, word := range []string{"سلام", "کتاب", "دنیا", "پنجره", "گچ", "خانۀ"} {
		req.Equal(word, n.Normalize(Shape(word)))
	}
}

// A shaping engine turns the base letters into the glyphs of their
// contextual forms. Drawing the output of Shape in visual order through
// the font character map must select the same glyphs.
func TestShape_MatchesHarfBuzzGlyphs(t *testing.T) {
	face, err := gotextfont.ParseTTF(bytes.NewReader(dejavusans.TTF))
	require.NoError(t, err)
	var shaper shaping.HarfbuzzShaper

	for _, word := range []string{"سمع", "کتب", "نیم"} {
		t.Run(word, func(t *testing.T) {
			req := require.New(t)
			text := []rune(word)
			out := shaper.Shape(shaping.Input{
				Text:      text,
				RunStart:  0,
				RunEnd:    len(text),
				Direction: di.DirectionRTL,
				Face:      face,
				Size:      fixed.I(16),
				Script:    language.Arabic,
				Language:  language.NewLanguage("fa"),
			})

			visual, err := ToVisual(Shape(word))
			req.NoError(err)
			var expected []gotextfont.GID
			for _, r := range visual {
				gid, ok := face.NominalGlyph(r)
				req.True(ok, "rune=%U", r)
				expected = append(expected, gid)
			}
			req.Equal(expected, lo.Map(out.Glyphs, func(g shaping.Glyph, _ int) gotextfont.GID { return g.GlyphID }))
		})
	}
}
