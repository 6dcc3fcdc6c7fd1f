// ABOUTME: Google Sheets remote adapter for the sync engine
// ABOUTME: Container discovery, schema setup, append/read rows, and settings
package sheets

import (
	"context"
	"fmt"

	driveapi "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/harperreed/shopbook/models"
)

// ContainerName is the well-known spreadsheet title. Discovery is by exact
// name match so repeated schema setup never creates duplicate containers.
const ContainerName = "Business Manager Data"

const (
	settingsSheet       = "Settings"
	settingsHeaderRange = "Settings!A1:B1"
	settingsDataRange   = "Settings!A2:B"
	settingsAppendRange = "Settings!A:B"
)

// Adapter speaks to one tabular remote store: one sheet per entity kind plus
// the settings sheet. It never retries; retry policy lives in the
// reconciliation engine.
type Adapter struct {
	state *State
	svc   *sheetsapi.Service
	drive *driveapi.Service
}

// New returns an adapter that authenticates lazily on first use.
func New() *Adapter {
	return &Adapter{}
}

// NewWithServices wires pre-built API services and state. Used by tests and
// by the connect flow right after an OAuth exchange.
func NewWithServices(svc *sheetsapi.Service, drive *driveapi.Service, state *State) *Adapter {
	if state == nil {
		state = &State{}
	}
	return &Adapter{state: state, svc: svc, drive: drive}
}

// EnsureReady lazily establishes authentication. A previously stored token is
// reused without user interaction; if none exists the call fails with
// models.ErrAuthRequired and the caller must run the interactive flow.
func (a *Adapter) EnsureReady(ctx context.Context) error {
	if a.svc != nil && a.drive != nil {
		if a.state == nil {
			a.state = &State{}
		}
		return nil
	}

	config := NewOAuthConfig()
	if config.ClientID == "" || config.ClientSecret == "" {
		return fmt.Errorf("%w: set GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET", models.ErrAuthRequired)
	}

	token, err := LoadToken()
	if err != nil {
		return fmt.Errorf("%w: no stored grant, run 'shopbook connect'", models.ErrAuthRequired)
	}

	client := config.Client(ctx, token)

	svc, err := sheetsapi.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("%w: sheets service: %v", models.ErrRemoteUnavailable, err)
	}
	drive, err := driveapi.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("%w: drive service: %v", models.ErrRemoteUnavailable, err)
	}

	state, err := LoadState()
	if err != nil {
		// Corrupt state file: fall back to rediscovery
		state = &State{}
	}

	a.svc = svc
	a.drive = drive
	a.state = state
	return nil
}

// EnsureSchema idempotently sets up the remote container: search for the
// well-known spreadsheet first, create it with one sheet per kind (plus
// Settings) and header rows only if it does not exist.
func (a *Adapter) EnsureSchema(ctx context.Context) error {
	if a.state.SpreadsheetID != "" {
		return nil
	}

	query := fmt.Sprintf("name = '%s' and mimeType = 'application/vnd.google-apps.spreadsheet' and trashed = false", ContainerName)
	list, err := a.drive.Files.List().Q(query).Fields("files(id, name)").Spaces("drive").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: search container: %v", models.ErrRemoteUnavailable, err)
	}

	if len(list.Files) > 0 {
		a.state.SpreadsheetID = list.Files[0].Id
	} else {
		if err := a.createContainer(ctx); err != nil {
			return err
		}
	}

	if err := SaveState(a.state); err != nil {
		// Rediscovery on next start is search-by-name, so a failed save only
		// costs an extra Drive query
		return nil
	}
	return nil
}

func (a *Adapter) createContainer(ctx context.Context) error {
	tabs := make([]*sheetsapi.Sheet, 0, len(models.Kinds())+1)
	for _, kind := range models.Kinds() {
		tabs = append(tabs, &sheetsapi.Sheet{
			Properties: &sheetsapi.SheetProperties{Title: kind.SheetName()},
		})
	}
	tabs = append(tabs, &sheetsapi.Sheet{
		Properties: &sheetsapi.SheetProperties{Title: settingsSheet},
	})

	created, err := a.svc.Spreadsheets.Create(&sheetsapi.Spreadsheet{
		Properties: &sheetsapi.SpreadsheetProperties{Title: ContainerName},
		Sheets:     tabs,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: create container: %v", models.ErrRemoteUnavailable, err)
	}
	a.state.SpreadsheetID = created.SpreadsheetId

	for _, kind := range models.Kinds() {
		if err := a.writeHeader(ctx, headerRange(kind), headerRow(kind)); err != nil {
			return err
		}
	}
	return a.writeHeader(ctx, settingsHeaderRange, []interface{}{"Key", "Value"})
}

func (a *Adapter) writeHeader(ctx context.Context, rng string, header []interface{}) error {
	_, err := a.svc.Spreadsheets.Values.Update(a.state.SpreadsheetID, rng, &sheetsapi.ValueRange{
		Values: [][]interface{}{header},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: write header %s: %v", models.ErrRemoteUnavailable, rng, err)
	}
	return nil
}

// AppendRow serializes the record's fixed column set and appends one row to
// the kind's sheet. At-least-once: re-appending a row that already logically
// exists remotely is accepted, duplicates are never silently deduplicated.
func (a *Adapter) AppendRow(ctx context.Context, rec models.Record) error {
	values := rowValues(rec)
	if values == nil {
		return fmt.Errorf("unknown record type %T", rec)
	}

	_, err := a.svc.Spreadsheets.Values.Append(a.state.SpreadsheetID, appendRange(rec.Kind()), &sheetsapi.ValueRange{
		Values: [][]interface{}{values},
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: append %s row: %v", models.ErrRemoteUnavailable, rec.Kind(), err)
	}
	return nil
}

// ReadRows returns all data rows for the kind, header excluded. Rows without
// an id cell are skipped; other malformed cells default rather than failing
// the read.
func (a *Adapter) ReadRows(ctx context.Context, kind models.Kind) ([]models.Record, error) {
	resp, err := a.svc.Spreadsheets.Values.Get(a.state.SpreadsheetID, dataRange(kind)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: read %s rows: %v", models.ErrRemoteUnavailable, kind, err)
	}

	var records []models.Record
	for _, row := range resp.Values {
		if cellString(row, 0) == "" {
			continue
		}
		records = append(records, recordFromRow(kind, row))
	}
	return records, nil
}

// GetSetting point-reads a settings key by linear scan. The second return is
// false when the key is absent remotely.
func (a *Adapter) GetSetting(ctx context.Context, key string) (string, bool, error) {
	resp, err := a.svc.Spreadsheets.Values.Get(a.state.SpreadsheetID, settingsDataRange).Context(ctx).Do()
	if err != nil {
		return "", false, fmt.Errorf("%w: read settings: %v", models.ErrRemoteUnavailable, err)
	}

	for _, row := range resp.Values {
		if cellString(row, 0) == key {
			return cellString(row, 1), true, nil
		}
	}
	return "", false, nil
}

// SetSetting updates the key's value row in place if present, appending a new
// key/value row otherwise.
func (a *Adapter) SetSetting(ctx context.Context, key, value string) error {
	resp, err := a.svc.Spreadsheets.Values.Get(a.state.SpreadsheetID, settingsDataRange).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: read settings: %v", models.ErrRemoteUnavailable, err)
	}

	for i, row := range resp.Values {
		if cellString(row, 0) != key {
			continue
		}
		// Data rows start at sheet row 2
		rng := fmt.Sprintf("%s!B%d", settingsSheet, i+2)
		_, err := a.svc.Spreadsheets.Values.Update(a.state.SpreadsheetID, rng, &sheetsapi.ValueRange{
			Values: [][]interface{}{{value}},
		}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("%w: update setting %s: %v", models.ErrRemoteUnavailable, key, err)
		}
		return nil
	}

	_, err = a.svc.Spreadsheets.Values.Append(a.state.SpreadsheetID, settingsAppendRange, &sheetsapi.ValueRange{
		Values: [][]interface{}{{key, value}},
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: append setting %s: %v", models.ErrRemoteUnavailable, key, err)
	}
	return nil
}

// SpreadsheetID exposes the discovered container id, mainly for status output.
func (a *Adapter) SpreadsheetID() string {
	if a.state == nil {
		return ""
	}
	return a.state.SpreadsheetID
}
