package sheets

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

func TestOAuthConfigCreation(t *testing.T) {
	config := NewOAuthConfig()

	if config == nil {
		t.Fatal("expected config, got nil")
	}

	if len(config.Scopes) != 2 {
		t.Errorf("expected 2 scopes, got %d", len(config.Scopes))
	}

	requiredScopes := map[string]bool{
		"https://www.googleapis.com/auth/spreadsheets": false,
		"https://www.googleapis.com/auth/drive.file":   false,
	}

	for _, scope := range config.Scopes {
		if _, ok := requiredScopes[scope]; ok {
			requiredScopes[scope] = true
		}
	}

	for scope, found := range requiredScopes {
		if !found {
			t.Errorf("missing required scope: %s", scope)
		}
	}
}

func TestTokenPathXDG(t *testing.T) {
	path := TokenPath()

	expectedBase := filepath.Join(xdg.DataHome, "shopbook")
	if !strings.HasPrefix(path, expectedBase) {
		t.Errorf("expected path under %s, got %s", expectedBase, path)
	}

	if filepath.Base(path) != "google-credentials.json" {
		t.Errorf("expected filename google-credentials.json, got %s", filepath.Base(path))
	}
}

func TestStatePathXDG(t *testing.T) {
	path := StatePath()

	expectedBase := filepath.Join(xdg.DataHome, "shopbook")
	if !strings.HasPrefix(path, expectedBase) {
		t.Errorf("expected path under %s, got %s", expectedBase, path)
	}
}

func TestStateRoundTrip(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	state, err := LoadState()
	if err != nil {
		t.Fatalf("LoadState on empty dir failed: %v", err)
	}
	if state.SpreadsheetID != "" {
		t.Errorf("fresh state should be empty, got %q", state.SpreadsheetID)
	}

	state.SpreadsheetID = "ss-123"
	if err := SaveState(state); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	loaded, err := LoadState()
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if loaded.SpreadsheetID != "ss-123" {
		t.Errorf("expected ss-123, got %q", loaded.SpreadsheetID)
	}
}

func TestStateEnvOverride(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	t.Setenv("SHOPBOOK_SPREADSHEET_ID", "override-id")

	state, err := LoadState()
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if state.SpreadsheetID != "override-id" {
		t.Errorf("env override ignored, got %q", state.SpreadsheetID)
	}
}
