package rules

/*
Alive applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func Alive(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
