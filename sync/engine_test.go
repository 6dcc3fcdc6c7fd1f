// ABOUTME: Tests for the reconciliation engine's push, pull-and-merge, and
// ABOUTME: cycle-guard behavior against a fake remote
package sync

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/harperreed/shopbook/db"
	"github.com/harperreed/shopbook/models"
)

type fakeRemote struct {
	readyErr   error
	schemaErr  error
	readErr    error
	appendErr  map[string]error
	appended   []models.Record
	rows       map[models.Kind][]models.Record
	settings   map[string]string
	readyCalls  int
	schemaCalls int
	readySig    chan struct{}
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		appendErr: map[string]error{},
		rows:      map[models.Kind][]models.Record{},
		settings:  map[string]string{},
	}
}

func (f *fakeRemote) EnsureReady(ctx context.Context) error {
	f.readyCalls++
	if f.readySig != nil {
		f.readySig <- struct{}{}
	}
	return f.readyErr
}

func (f *fakeRemote) EnsureSchema(ctx context.Context) error {
	f.schemaCalls++
	return f.schemaErr
}

func (f *fakeRemote) AppendRow(ctx context.Context, rec models.Record) error {
	if err, ok := f.appendErr[rec.RecordID()]; ok {
		return err
	}
	f.appended = append(f.appended, rec)
	return nil
}

func (f *fakeRemote) ReadRows(ctx context.Context, kind models.Kind) ([]models.Record, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.rows[kind], nil
}

func (f *fakeRemote) GetSetting(ctx context.Context, key string) (string, bool, error) {
	v, ok := f.settings[key]
	return v, ok, nil
}

func (f *fakeRemote) SetSetting(ctx context.Context, key, value string) error {
	f.settings[key] = value
	return nil
}

func openTestStore(t *testing.T) *db.Store {
	t.Helper()
	store, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func appendedIDs(recs []models.Record) []string {
	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.RecordID())
	}
	return ids
}

func TestTriggerSyncPushesAndMarksEachRecord(t *testing.T) {
	store := openTestStore(t)
	remote := newFakeRemote()
	engine := New(store, remote, nil)

	var ids []string
	for _, desc := range []string{"coffee beans", "milk", "cups"} {
		id, err := store.Put(&models.Sale{Description: desc, Amount: 4.5})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	engine.TriggerSync(context.Background())

	require.ElementsMatch(t, ids, appendedIDs(remote.appended))

	pending, err := store.ListUnsynced(models.KindSale)
	require.NoError(t, err)
	require.Empty(t, pending)
	require.Equal(t, 1, remote.schemaCalls)
}

func TestTriggerSyncFailureIsolatedToOneRecord(t *testing.T) {
	store := openTestStore(t)
	remote := newFakeRemote()
	engine := New(store, remote, nil)

	first, err := store.Put(&models.Expense{Description: "rent", Amount: 900})
	require.NoError(t, err)
	bad, err := store.Put(&models.Expense{Description: "supplies", Amount: 40})
	require.NoError(t, err)
	third, err := store.Put(&models.Expense{Description: "power", Amount: 120})
	require.NoError(t, err)

	remote.appendErr[bad] = models.ErrRemoteUnavailable
	engine.TriggerSync(context.Background())

	require.ElementsMatch(t, []string{first, third}, appendedIDs(remote.appended))

	pending, err := store.ListUnsynced(models.KindExpense)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, bad, pending[0].RecordID())

	// Next trigger retries only the failed record
	delete(remote.appendErr, bad)
	remote.appended = nil
	engine.TriggerSync(context.Background())
	require.Equal(t, []string{bad}, appendedIDs(remote.appended))
}

func TestTriggerSyncNotReadyKeepsRecordsPending(t *testing.T) {
	store := openTestStore(t)
	remote := newFakeRemote()
	remote.readyErr = models.ErrAuthRequired

	var statuses []Status
	engine := New(store, remote, func(s Status) { statuses = append(statuses, s) })

	_, err := store.Put(&models.Customer{Name: "Ada"})
	require.NoError(t, err)

	engine.TriggerSync(context.Background())

	require.Empty(t, remote.appended)
	require.Equal(t, 0, remote.schemaCalls)
	pending, err := store.ListUnsynced(models.KindCustomer)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, []Status{StatusSyncing, StatusOffline}, statuses)
}

func TestConnectPullsThenPushes(t *testing.T) {
	store := openTestStore(t)
	remote := newFakeRemote()
	remote.rows[models.KindSale] = []models.Record{
		&models.Sale{ID: "remote-1", Description: "from sheet", Amount: 10},
	}

	var statuses []Status
	engine := New(store, remote, func(s Status) { statuses = append(statuses, s) })

	pendingID, err := store.Put(&models.Sale{Description: "local only", Amount: 5})
	require.NoError(t, err)

	require.NoError(t, engine.Connect(context.Background()))

	// Remote row landed locally as synced; pending record survived the merge
	// and was pushed
	all, err := store.ListAll(models.KindSale)
	require.NoError(t, err)
	require.Len(t, all, 2)

	byID := map[string]models.Record{}
	for _, rec := range all {
		byID[rec.RecordID()] = rec
	}
	require.True(t, byID["remote-1"].Meta().Synced)
	require.Equal(t, []string{pendingID}, appendedIDs(remote.appended))

	pending, err := store.ListUnsynced(models.KindSale)
	require.NoError(t, err)
	require.Empty(t, pending)

	require.Equal(t, []Status{StatusSyncing, StatusSynced}, statuses)
	require.Equal(t, 1, remote.schemaCalls)
}

func TestConnectAuthFailureReported(t *testing.T) {
	store := openTestStore(t)
	remote := newFakeRemote()
	remote.readyErr = models.ErrAuthRequired

	var statuses []Status
	engine := New(store, remote, func(s Status) { statuses = append(statuses, s) })

	err := engine.Connect(context.Background())
	require.ErrorIs(t, err, models.ErrAuthRequired)
	require.Equal(t, []Status{StatusSyncing, StatusOffline}, statuses)
}

func TestPullMergeEmptyRemoteLeavesLocalAlone(t *testing.T) {
	store := openTestStore(t)
	remote := newFakeRemote()
	engine := New(store, remote, nil)

	id, err := store.Put(&models.Service{Customer: "Bo", Device: "laptop"})
	require.NoError(t, err)
	require.NoError(t, store.MarkSynced(models.KindService, id))

	require.NoError(t, engine.PullMerge(context.Background(), models.KindService))

	all, err := store.ListAll(models.KindService)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, id, all[0].RecordID())
}

func TestPullMergeLocalWinsOnIDCollision(t *testing.T) {
	store := openTestStore(t)
	remote := newFakeRemote()
	engine := New(store, remote, nil)

	id, err := store.Put(&models.Company{ID: "c-1", Name: "local edit"})
	require.NoError(t, err)
	require.Equal(t, "c-1", id)

	remote.rows[models.KindCompany] = []models.Record{
		&models.Company{ID: "c-1", Name: "stale remote"},
		&models.Company{ID: "c-2", Name: "remote only"},
	}

	require.NoError(t, engine.PullMerge(context.Background(), models.KindCompany))

	all, err := store.ListAll(models.KindCompany)
	require.NoError(t, err)
	require.Len(t, all, 2)

	for _, rec := range all {
		co := rec.(*models.Company)
		switch co.ID {
		case "c-1":
			require.Equal(t, "local edit", co.Name)
			require.False(t, co.Sync.Synced)
		case "c-2":
			require.Equal(t, "remote only", co.Name)
			require.True(t, co.Sync.Synced)
		default:
			t.Fatalf("unexpected record %s", co.ID)
		}
	}
}

func TestBusyEngineDropsTriggersAndRejectsConnect(t *testing.T) {
	store := openTestStore(t)
	remote := newFakeRemote()
	engine := New(store, remote, nil)

	_, err := store.Put(&models.Sale{Description: "queued", Amount: 1})
	require.NoError(t, err)

	engine.busy.Store(true)

	engine.TriggerSync(context.Background())
	require.Equal(t, 0, remote.readyCalls)
	require.Empty(t, remote.appended)

	require.ErrorIs(t, engine.Connect(context.Background()), ErrCycleInProgress)
	require.ErrorIs(t, engine.PullMerge(context.Background(), models.KindSale), ErrCycleInProgress)

	engine.busy.Store(false)
	engine.TriggerSync(context.Background())
	require.Len(t, remote.appended, 1)
}

func TestRunPeriodicTriggersUntilCancelled(t *testing.T) {
	store := openTestStore(t)
	remote := newFakeRemote()
	remote.readySig = make(chan struct{})
	engine := New(store, remote, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		engine.RunPeriodic(ctx, 5*time.Millisecond)
		close(done)
	}()

	<-remote.readySig
	cancel()
	// Drain any tick already in flight so the goroutine can exit
	go func() {
		for range remote.readySig {
		}
	}()
	<-done
}
