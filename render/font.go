package render

import (
	"chat-stats/domain/mimetypes"
	"chat-stats/errors"
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-fonts/dejavu/dejavusans"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// DefaultFont is DejaVu Sans, it covers Latin and the Arabic presentation
// forms produced by the shaper.
var DefaultFont = dejavusans.TTF

// loadFont parses the font at path, or DefaultFont when path is empty.
// The first font of a collection is used.
func loadFont(path string) (*opentype.Font, error) {
	if path == "" {
		return parseFont(DefaultFont)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidFont, err)
	}
	detected := mimetype.Detect(b).String()
	if _, ok := mimetypes.Matches(detected, mimetypes.FontCollection); ok {
		c, err := opentype.ParseCollection(b)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrInvalidFont, err)
		}
		f, err := c.Font(0)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrInvalidFont, err)
		}
		return f, nil
	}
	if _, ok := mimetypes.MatchesAny(detected, mimetypes.FontTTF, mimetypes.FontOTF); !ok {
		return nil, fmt.Errorf("%w: %s is %s", errors.ErrInvalidFont, path, detected)
	}
	return parseFont(b)
}

func parseFont(data []byte) (*opentype.Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidFont, err)
	}
	return f, nil
}

// missingGlyphs returns the runes of word the face has no glyph for. Spaces are ignored.
func missingGlyphs(face font.Face, word string) []rune {
	var missing []rune
	for _, r := range word {
		if r == ' ' {
			continue
		}
		if _, ok := face.GlyphAdvance(r); !ok {
			missing = append(missing, r)
		}
	}
	return missing
}

// faceCache keeps one face per point size.
type faceCache struct {
	font  *opentype.Font
	faces map[int]font.Face
}

func newFaceCache(f *opentype.Font) *faceCache {
	return &faceCache{font: f, faces: make(map[int]font.Face)}
}

func (c *faceCache) face(size int) (font.Face, error) {
	if face, ok := c.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	c.faces[size] = face
	return face, nil
}

func (c *faceCache) Close() {
	for _, face := range c.faces {
		_ = face.Close()
	}
}
