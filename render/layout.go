package render

import (
	"chat-stats/domain"
	"chat-stats/errors"
	"image"
	"image/color"
	"math"
	"math/rand"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Placement is one word drawn on the canvas. Bounds includes the margin.
type Placement struct {
	Word     string
	Count    int
	FontSize int
	Bounds   image.Rectangle
	Color    color.Color
	dot      fixed.Point26_6
}

type Layout struct {
	Width      int
	Height     int
	Placements []Placement
	Skipped    []string
}

// layout places the most frequent words first, each at a random free
// position, shrinking the font until the word fits or gets too small.
// Font sizes never grow along the way.
func (r *Renderer) layout(frequencies []domain.WordFrequency, faces *faceCache) (Layout, error) {
	cfg := r.config
	rng := rand.New(rand.NewSource(cfg.Seed))
	grid := newOccupancy(cfg.Width, cfg.Height)
	words := domain.Top(frequencies, cfg.MaxWords)
	maxCount := words[0].Count
	lastSize := cfg.MaxFontSize

	result := Layout{Width: cfg.Width, Height: cfg.Height}
	for _, wf := range words {
		size := min(fontSize(wf.Count, maxCount, cfg), lastSize)
		placement, ok, err := r.place(wf, size, faces, grid, rng)
		if err != nil {
			return Layout{}, err
		}
		if !ok {
			r.log.Debug("Word skipped, no room left", "word", wf.Word, "count", wf.Count)
			result.Skipped = append(result.Skipped, wf.Word)
			continue
		}
		lastSize = placement.FontSize
		result.Placements = append(result.Placements, placement)
	}

	if len(result.Placements) == 0 {
		return Layout{}, errors.ErrNoWordPlaced
	}
	return result, nil
}

func (r *Renderer) place(wf domain.WordFrequency, size int, faces *faceCache, grid *occupancy, rng *rand.Rand) (Placement, bool, error) {
	margin := r.config.Margin
	for ; size >= r.config.MinFontSize; size = shrink(size) {
		face, err := faces.face(size)
		if err != nil {
			return Placement{}, false, err
		}
		bounds, _ := font.BoundString(face, wf.Word)
		textW := (bounds.Max.X - bounds.Min.X).Ceil()
		textH := (bounds.Max.Y - bounds.Min.Y).Ceil()
		if textW <= 0 || textH <= 0 {
			return Placement{}, false, nil
		}

		w, h := textW+2*margin, textH+2*margin
		pos, ok := grid.find(w, h, rng)
		if !ok {
			continue
		}
		grid.mark(pos, w, h)

		return Placement{
			Word:     wf.Word,
			Count:    wf.Count,
			FontSize: size,
			Bounds:   image.Rect(pos.X, pos.Y, pos.X+w, pos.Y+h),
			Color:    wordColor(rng),
			dot: fixed.Point26_6{
				X: fixed.I(pos.X+margin) - bounds.Min.X,
				Y: fixed.I(pos.Y+margin) - bounds.Min.Y,
			},
		}, true, nil
	}
	return Placement{}, false, nil
}

// fontSize scales linearly between the minimum and maximum font size with
// the word frequency relative to the most frequent word.
func fontSize(count, maxCount int, cfg Config) int {
	ratio := float64(count) / float64(maxCount)
	return cfg.MinFontSize + int(math.Round(ratio*float64(cfg.MaxFontSize-cfg.MinFontSize)))
}

func shrink(size int) int {
	next := size * 9 / 10
	if next == size {
		return size - 1
	}
	return next
}
