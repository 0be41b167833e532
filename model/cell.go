package model

// Coordinate identifies a cell on the unbounded plane. Both axes may be
// negative; there are no bounds to check anywhere in the engine.
type Coordinate struct {
	X int
	Y int
}

// Neighbors returns the 8 coordinates of the Moore neighborhood.
func (c Coordinate) Neighbors() [8]Coordinate {
	return [8]Coordinate{
		{c.X - 1, c.Y - 1}, {c.X, c.Y - 1}, {c.X + 1, c.Y - 1},
		{c.X - 1, c.Y}, {c.X + 1, c.Y},
		{c.X - 1, c.Y + 1}, {c.X, c.Y + 1}, {c.X + 1, c.Y + 1},
	}
}

// Cell is one stored entry of a Field: a coordinate plus its life flag.
// Entries with HasLife false exist only as candidates during generation
// advance and in intermediate states; a spawned generation never keeps them.
//
// The JSON tags define the persisted cell shape directly.
type Cell struct {
	X       int  `json:"x"`
	Y       int  `json:"y"`
	HasLife bool `json:"hasLife"`
}

// Coord returns the cell's position as a map key.
func (c Cell) Coord() Coordinate {
	return Coordinate{X: c.X, Y: c.Y}
}
