package model

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// SavedGame is the external persisted-state shape: the ordered sequence
// of generation snapshots (live cells each) plus the currently active
// field. This is plain data; serialization beyond JSON tags lives with
// whoever writes the file.
type SavedGame struct {
	Fields  [][]Cell `json:"fields"`
	Current []Cell   `json:"current"`
}

// Snapshot captures a history and the active field as a SavedGame. Only
// live cells are persisted; placeholders are an internal detail.
func Snapshot(h *History, active *Field) SavedGame {
	sg := SavedGame{
		Fields:  make([][]Cell, 0, h.Len()),
		Current: active.LiveCells(),
	}
	for n := 1; n <= h.Len(); n++ {
		f, _ := h.Generation(n)
		sg.Fields = append(sg.Fields, f.LiveCells())
	}
	return sg
}

// Restore rebuilds a history and active field from a SavedGame. An
// empty snapshot list yields a single-generation history seeded from
// the current field.
func Restore(sg SavedGame) (*History, *Field) {
	active := NewField(sg.Current...)

	if len(sg.Fields) == 0 {
		return NewHistory(active), active
	}

	h := NewHistory(NewField(sg.Fields[0]...))
	for _, cells := range sg.Fields[1:] {
		h.Append(NewField(cells...))
	}
	return h, active
}

// SaveGame writes a saved game to path as JSON.
func SaveGame(path string, sg SavedGame) error {
	data, err := json.MarshalIndent(sg, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "[SaveGame] failed to marshal saved game for: %+v", path)
	}

	if err = os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "[SaveGame] failed to write file: %+v", path)
	}

	return nil
}

// LoadGame reads a saved game from path. Unknown or mistyped fields are
// rejected, and nothing is returned until the whole file has decoded,
// so a failed load never touches the caller's in-memory state.
func LoadGame(path string) (SavedGame, error) {
	var sg SavedGame

	data, err := os.ReadFile(path)
	if err != nil {
		return sg, errors.Wrapf(err, "[LoadGame] failed to read file: %+v", path)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err = dec.Decode(&sg); err != nil {
		return SavedGame{}, errors.Wrapf(err, "[LoadGame] failed to unmarshal data from file: %+v", path)
	}

	return sg, nil
}
