package model

import "math/rand"

// Glider adds a glider pattern with its top-left corner at origin.
func (f *Field) Glider(origin Coordinate) {
	pattern := []Coordinate{
		{1, 0},
		{2, 1},
		{0, 2}, {1, 2}, {2, 2},
	}

	for _, p := range pattern {
		f.AddLifeAt(Coordinate{X: origin.X + p.X, Y: origin.Y + p.Y})
	}
}

// Blinker adds a horizontal blinker oscillator starting at origin.
func (f *Field) Blinker(origin Coordinate) {
	f.AddLifeAt(origin)
	f.AddLifeAt(Coordinate{X: origin.X + 1, Y: origin.Y})
	f.AddLifeAt(Coordinate{X: origin.X + 2, Y: origin.Y})
}

// Randomize sprinkles life over the rectangle [min, max] with the given
// density. Cells outside the rectangle are untouched.
func (f *Field) Randomize(minC, maxC Coordinate, density float64) {
	for y := minC.Y; y <= maxC.Y; y++ {
		for x := minC.X; x <= maxC.X; x++ {
			if rand.Float64() < density {
				f.AddLifeAt(Coordinate{X: x, Y: y})
			}
		}
	}
}
