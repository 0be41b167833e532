package model

import (
	"crypto/md5"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/AlbertPrograms/gameOfLife/rules"
)

// Field is one generation's sparse cell state. Entries are keyed by
// coordinate (key present = cell stored, value = hasLife), so no two
// entries can ever share a coordinate.
//
// A Field instance is exclusively owned by whoever holds it; nothing in
// the engine shares state between fields, and every generation advance
// produces a fresh instance.
type Field struct {
	cells map[Coordinate]bool
}

// NewField builds a field from an optional set of cells. With no
// arguments the field is empty: all dead, nothing stored.
func NewField(cells ...Cell) *Field {
	f := &Field{cells: make(map[Coordinate]bool)}
	for _, c := range cells {
		f.cells[c.Coord()] = c.HasLife
	}
	return f
}

// HasLifeAt reports whether a living cell is stored at the coordinate.
// Absent entries and dead placeholders both count as no life.
func (f *Field) HasLifeAt(c Coordinate) bool {
	return f.cells[c]
}

// HasCellAt reports whether any entry, alive or not, is stored at the
// coordinate. Used to avoid duplicate inserts during expansion.
func (f *Field) HasCellAt(c Coordinate) bool {
	_, ok := f.cells[c]
	return ok
}

// AddLifeAt marks the coordinate alive, inserting the cell if absent.
// Idempotent.
func (f *Field) AddLifeAt(c Coordinate) {
	f.cells[c] = true
}

// KillLifeAt removes the entry at the coordinate entirely; explicitly
// killed cells are not retained as dead placeholders. Idempotent.
func (f *Field) KillLifeAt(c Coordinate) {
	delete(f.cells, c)
}

// ToggleCell flips the coordinate between alive and dead. This is the
// single entry point for user-driven cell editing.
func (f *Field) ToggleCell(c Coordinate) {
	if f.HasLifeAt(c) {
		f.KillLifeAt(c)
	} else {
		f.AddLifeAt(c)
	}
}

// GetCells returns every stored cell, alive and not, sorted by (y, x).
// The sort keeps rendering, fingerprints and save files deterministic.
func (f *Field) GetCells() []Cell {
	cells := make([]Cell, 0, len(f.cells))
	for coord, alive := range f.cells {
		cells = append(cells, Cell{X: coord.X, Y: coord.Y, HasLife: alive})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

// LiveCells returns only the living cells, sorted by (y, x).
func (f *Field) LiveCells() []Cell {
	cells := f.GetCells()
	live := cells[:0]
	for _, c := range cells {
		if c.HasLife {
			live = append(live, c)
		}
	}
	return live
}

// Population returns the number of living cells.
func (f *Field) Population() (count int) {
	for _, alive := range f.cells {
		if alive {
			count++
		}
	}
	return
}

// countLiveNeighbors counts living Moore neighbors of c. Dead
// placeholder entries never contribute, so expansion cannot skew counts.
func (f *Field) countLiveNeighbors(c Coordinate) int {
	count := 0
	for _, n := range c.Neighbors() {
		if f.cells[n] {
			count++
		}
	}
	return count
}

// expand inserts a dead placeholder for every missing neighbor of every
// stored cell, then returns the frozen candidate list. Every cell that
// could be alive next generation is adjacent to a stored cell, so after
// expansion the candidate set is complete without scanning the plane.
func (f *Field) expand() []Coordinate {
	// Freeze the stored set first: inserting while ranging over the map
	// could expand freshly added placeholders as well.
	stored := make([]Coordinate, 0, len(f.cells))
	for coord := range f.cells {
		stored = append(stored, coord)
	}

	for _, coord := range stored {
		for _, n := range coord.Neighbors() {
			if !f.HasCellAt(n) {
				f.cells[n] = false
			}
		}
	}
	candidates := make([]Coordinate, 0, len(f.cells))
	for coord := range f.cells {
		candidates = append(candidates, coord)
	}
	return candidates
}

// compactSelf prunes the field down to its living cells, dropping the
// placeholders left behind by expansion.
func (f *Field) compactSelf() {
	for coord, alive := range f.cells {
		if !alive {
			delete(f.cells, coord)
		}
	}
}

// SpawnNew advances one generation and returns the new field. The
// expansion pass completes fully before any rule evaluation begins, so
// neighbor counts are taken against a stable snapshot. The returned
// field stores only living cells; the receiver is pruned back down to
// its previously living cells as well.
func (f *Field) SpawnNew() *Field {
	return f.NextGeneration(false, nil)
}

// SpawnNewParallel computes the same generation as SpawnNew, fanning the
// rule evaluation out over worker goroutines.
func (f *Field) SpawnNewParallel() *Field {
	return f.NextGeneration(true, nil)
}

// NextGeneration advances one generation. The new field is drawn from
// pool when one is provided; evaluation fans out over workers when
// parallel is set. Both paths produce identical generations.
func (f *Field) NextGeneration(parallel bool, pool *FieldPool) *Field {
	candidates := f.expand()

	var next *Field
	if pool != nil {
		next = pool.Get()
	} else {
		next = NewField()
	}

	if parallel {
		f.evaluateParallel(candidates, next)
	} else {
		for _, coord := range candidates {
			if rules.Alive(f.countLiveNeighbors(coord), f.cells[coord]) {
				next.cells[coord] = true
			}
		}
	}

	f.compactSelf()
	return next
}

// evaluateParallel applies the rule to the frozen candidate list across
// worker goroutines. Workers only read the expanded map, so no locking
// is needed; results are merged after all workers finish.
func (f *Field) evaluateParallel(candidates []Coordinate, next *Field) {
	var (
		eg              errgroup.Group
		numWorkers      = runtime.NumCPU()
		coordsPerWorker = (len(candidates) + numWorkers - 1) / numWorkers
		aliveByWorker   = make([][]Coordinate, numWorkers)
	)

	for i := 0; i < numWorkers; i++ {
		var (
			start = i * coordsPerWorker
			end   = min(start+coordsPerWorker, len(candidates))
		)
		if start >= len(candidates) {
			break
		}

		worker := i
		eg.Go(func() error {
			for _, coord := range candidates[start:end] {
				if rules.Alive(f.countLiveNeighbors(coord), f.cells[coord]) {
					aliveByWorker[worker] = append(aliveByWorker[worker], coord)
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		fmt.Printf("Error in parallel evaluation: %v\n", err)
	}

	for _, chunk := range aliveByWorker {
		for _, coord := range chunk {
			next.cells[coord] = true
		}
	}
}

// DifferenceFrom returns every living cell of other that has no life in
// f. It is directional and liveness-only: dead placeholders on either
// side never appear in the result. Callers use it to compute what must
// be erased between two generations.
func (f *Field) DifferenceFrom(other *Field) []Cell {
	var diff []Cell
	for _, c := range other.LiveCells() {
		if !f.HasLifeAt(c.Coord()) {
			diff = append(diff, c)
		}
	}
	return diff
}

// Clone deep-copies the stored cell set into an independent field.
func (f *Field) Clone() *Field {
	clone := NewField()
	for coord, alive := range f.cells {
		clone.cells[coord] = alive
	}
	return clone
}

// Bounds returns the bounding box of the living cells. ok is false when
// the field holds no life.
func (f *Field) Bounds() (minC, maxC Coordinate, ok bool) {
	for coord, alive := range f.cells {
		if !alive {
			continue
		}
		if !ok {
			minC, maxC = coord, coord
			ok = true
			continue
		}
		minC.X = min(minC.X, coord.X)
		minC.Y = min(minC.Y, coord.Y)
		maxC.X = max(maxC.X, coord.X)
		maxC.Y = max(maxC.Y, coord.Y)
	}
	return
}

// Fingerprint returns an MD5 hash of the sorted live cell set. Two
// fields with the same living cells hash identically regardless of any
// leftover placeholders.
func (f *Field) Fingerprint() string {
	h := md5.New()
	for _, c := range f.LiveCells() {
		fmt.Fprintf(h, "%d,%d;", c.X, c.Y)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
