package model

import "testing"

func blinkerField() *Field {
	f := NewField()
	f.Blinker(Coordinate{X: 0, Y: 0})
	return f
}

func TestHistoryIndexingIsOneBased(t *testing.T) {
	gen1 := blinkerField()
	h := NewHistory(gen1)

	gen2 := gen1.Clone().SpawnNew()
	h.Append(gen2)

	if h.Len() != 2 {
		t.Fatalf("history length = %d, expected 2", h.Len())
	}

	got, ok := h.Generation(1)
	if !ok || got != gen1 {
		t.Fatal("generation 1 did not return the initial snapshot")
	}
	got, ok = h.Generation(2)
	if !ok || got != gen2 {
		t.Fatal("generation 2 did not return the appended snapshot")
	}
	if h.Latest() != gen2 {
		t.Fatal("latest did not return the newest snapshot")
	}

	for _, n := range []int{0, -1, 3} {
		if _, ok = h.Generation(n); ok {
			t.Fatalf("generation %d unexpectedly found", n)
		}
	}
}

func TestHistoryTruncateForRewind(t *testing.T) {
	h := NewHistory(blinkerField())
	for i := 0; i < 4; i++ {
		h.Append(h.Latest().Clone().SpawnNew())
	}

	h.Truncate(2)
	if h.Len() != 2 {
		t.Fatalf("history length after truncate = %d, expected 2", h.Len())
	}

	// Branch off the rewound generation.
	branch := h.Latest().Clone()
	branch.ToggleCell(Coordinate{X: 8, Y: 8})
	h.Append(branch)

	if h.Len() != 3 || h.Latest() != branch {
		t.Fatal("appending after truncate did not branch the history")
	}
}

func TestHistoryReset(t *testing.T) {
	h := NewHistory(blinkerField())
	h.Append(blinkerField())

	fresh := NewField()
	h.Reset(fresh)

	if h.Len() != 1 || h.Latest() != fresh {
		t.Fatal("reset did not reseed the history with the fresh field")
	}
}

func TestHistoryStagnantDetectsOscillator(t *testing.T) {
	h := NewHistory(blinkerField())
	h.Append(h.Latest().Clone().SpawnNew())

	if h.Stagnant(3) {
		t.Fatal("two distinct generations reported stagnant")
	}

	// Third generation matches the first: period-2 cycle.
	h.Append(h.Latest().Clone().SpawnNew())

	if !h.Stagnant(3) {
		t.Fatal("period-2 oscillator not detected within window 3")
	}
	if h.Stagnant(1) {
		t.Fatal("window 1 cannot see a period-2 cycle")
	}
}
