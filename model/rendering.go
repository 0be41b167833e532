package model

import (
	"fmt"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// Viewport is the window of the unbounded plane that gets drawn: Min is
// the top-left coordinate, Width and Height the window size in cells.
type Viewport struct {
	Min    Coordinate
	Width  int
	Height int
}

// Follow returns the viewport recentered on the live bounding box of f.
// With no live cells the viewport is returned unchanged.
func (v Viewport) Follow(f *Field) Viewport {
	minC, maxC, ok := f.Bounds()
	if !ok {
		return v
	}

	centerX := (minC.X + maxC.X) / 2
	centerY := (minC.Y + maxC.Y) / 2
	v.Min = Coordinate{
		X: centerX - v.Width/2,
		Y: centerY - v.Height/2,
	}
	return v
}

// Contains reports whether the coordinate falls inside the viewport.
func (v Viewport) Contains(c Coordinate) bool {
	return c.X >= v.Min.X && c.X < v.Min.X+v.Width &&
		c.Y >= v.Min.Y && c.Y < v.Min.Y+v.Height
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders the viewport window of the field to the terminal
func (r *TerminalRenderer) Display(f *Field, v Viewport) {
	for y := v.Min.Y; y < v.Min.Y+v.Height; y++ {
		for x := v.Min.X; x < v.Min.X+v.Width; x++ {
			if f.HasLifeAt(Coordinate{X: x, Y: y}) {
				fmt.Print(gridPosBlock)
			} else {
				fmt.Print(gridPosEmpty)
			}
		}
		fmt.Println()
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
