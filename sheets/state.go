// ABOUTME: Persisted adapter state with environment overrides
// ABOUTME: Remembers the discovered spreadsheet id across restarts
package sheets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// State is the adapter's persisted state. Keeping the spreadsheet id here
// means a reconnect reuses the discovered container instead of searching
// Drive again.
type State struct {
	SpreadsheetID string `json:"spreadsheet_id"`
}

// StatePath returns the XDG-compliant path for the adapter state file.
func StatePath() string {
	return filepath.Join(xdg.DataHome, "shopbook", "sheets-state.json")
}

// LoadState loads adapter state from the XDG data directory. Returns an empty
// state if the file does not exist. SHOPBOOK_SPREADSHEET_ID overrides the
// stored id.
func LoadState() (*State, error) {
	state := &State{}

	f, err := os.Open(StatePath())
	if err != nil {
		if os.IsNotExist(err) {
			applyStateOverrides(state)
			return state, nil
		}
		return nil, fmt.Errorf("failed to open state file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := json.NewDecoder(f).Decode(state); err != nil {
		return nil, fmt.Errorf("failed to decode state file: %w", err)
	}

	applyStateOverrides(state)
	return state, nil
}

func applyStateOverrides(state *State) {
	if id := os.Getenv("SHOPBOOK_SPREADSHEET_ID"); id != "" {
		state.SpreadsheetID = id
	}
}

// SaveState saves adapter state to the XDG data directory.
func SaveState(state *State) error {
	path := StatePath()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create state file: %w", err)
	}
	defer func() { _ = f.Close() }()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(state); err != nil {
		return fmt.Errorf("failed to encode state file: %w", err)
	}

	return nil
}
