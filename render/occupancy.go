package render

import (
	"image"
	"math/rand"
)

const cellSize = 4

// occupancy tracks the canvas cells already covered by words. sum is the
// summed-area table of used, so testing a rectangle costs four lookups.
type occupancy struct {
	width, height int
	cols, rows    int
	used          []bool
	sum           []int32
}

func newOccupancy(width, height int) *occupancy {
	cols := (width + cellSize - 1) / cellSize
	rows := (height + cellSize - 1) / cellSize
	return &occupancy{
		width:  width,
		height: height,
		cols:   cols,
		rows:   rows,
		used:   make([]bool, cols*rows),
		sum:    make([]int32, (cols+1)*(rows+1)),
	}
}

// spanCells returns the number of cells a length of px pixels covers when it
// starts on a cell boundary.
func spanCells(px int) int {
	return (px + cellSize - 1) / cellSize
}

func (o *occupancy) count(c0, r0, c1, r1 int) int32 {
	stride := o.cols + 1
	return o.sum[r1*stride+c1] - o.sum[r0*stride+c1] - o.sum[r1*stride+c0] + o.sum[r0*stride+c0]
}

// find picks at random one free cell-aligned position for a w x h box, using rng.
func (o *occupancy) find(w, h int, rng *rand.Rand) (image.Point, bool) {
	if w > o.width || h > o.height {
		return image.Point{}, false
	}
	wc, hc := spanCells(w), spanCells(h)

	var candidates int
	o.scan(w, h, wc, hc, func(image.Point) bool {
		candidates++
		return true
	})
	if candidates == 0 {
		return image.Point{}, false
	}

	target := rng.Intn(candidates)
	var found image.Point
	o.scan(w, h, wc, hc, func(p image.Point) bool {
		if target == 0 {
			found = p
			return false
		}
		target--
		return true
	})
	return found, true
}

// scan visits the free positions in row-major order until fn returns false.
func (o *occupancy) scan(w, h, wc, hc int, fn func(image.Point) bool) {
	for r := 0; r+hc <= o.rows && r*cellSize+h <= o.height; r++ {
		for c := 0; c+wc <= o.cols && c*cellSize+w <= o.width; c++ {
			if o.count(c, r, c+wc, r+hc) != 0 {
				continue
			}
			if !fn(image.Pt(c*cellSize, r*cellSize)) {
				return
			}
		}
	}
}

// mark flags the cells covered by the w x h box at p as used.
func (o *occupancy) mark(p image.Point, w, h int) {
	c0, r0 := p.X/cellSize, p.Y/cellSize
	c1, r1 := min(c0+spanCells(w), o.cols), min(r0+spanCells(h), o.rows)
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			o.used[r*o.cols+c] = true
		}
	}
	o.rebuild(r0)
}

// rebuild refreshes the summed-area table from row `from` downwards; rows
// above it are unaffected by a mark starting there.
func (o *occupancy) rebuild(from int) {
	stride := o.cols + 1
	for r := from; r < o.rows; r++ {
		var rowSum int32
		for c := 0; c < o.cols; c++ {
			if o.used[r*o.cols+c] {
				rowSum++
			}
			o.sum[(r+1)*stride+c+1] = o.sum[r*stride+c+1] + rowSum
		}
	}
}
