package model

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	gen1 := NewField()
	gen1.Glider(Coordinate{X: 0, Y: 0})

	h := NewHistory(gen1)
	gen2 := gen1.Clone().SpawnNew()
	h.Append(gen2)

	active := gen2.Clone()
	active.ToggleCell(Coordinate{X: 5, Y: 5})

	restoredHistory, restoredActive := Restore(Snapshot(h, active))

	if restoredHistory.Len() != h.Len() {
		t.Fatalf("restored history length = %d, expected %d", restoredHistory.Len(), h.Len())
	}
	for n := 1; n <= h.Len(); n++ {
		want, _ := h.Generation(n)
		got, _ := restoredHistory.Generation(n)
		if want.Fingerprint() != got.Fingerprint() {
			t.Fatalf("generation %d changed across snapshot/restore", n)
		}
	}
	if restoredActive.Fingerprint() != active.Fingerprint() {
		t.Fatal("active field changed across snapshot/restore")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")

	f := NewField()
	f.Blinker(Coordinate{X: -1, Y: -1})
	h := NewHistory(f)

	if err := SaveGame(path, Snapshot(h, f)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	sg, err := LoadGame(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	_, restored := Restore(sg)
	for _, c := range []Coordinate{{-1, -1}, {0, -1}, {1, -1}, {2, 2}} {
		if f.HasLifeAt(c) != restored.HasLifeAt(c) {
			t.Fatalf("round-trip changed life at (%d,%d)", c.X, c.Y)
		}
	}
}

func TestLoadGameRejectsMalformedData(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name string
		data string
	}{
		{"not json", "not even json"},
		{"wrong types", `{"fields": "nope", "current": []}`},
		{"unknown field", `{"fields": [], "current": [], "bogus": 1}`},
	}

	for _, tc := range cases {
		path := filepath.Join(dir, tc.name+".json")
		if err := os.WriteFile(path, []byte(tc.data), 0o644); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadGame(path); err == nil {
			t.Fatalf("%s: malformed save file was accepted", tc.name)
		}
	}
}

func TestLoadGameMissingFile(t *testing.T) {
	if _, err := LoadGame(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("missing save file was accepted")
	}
}
