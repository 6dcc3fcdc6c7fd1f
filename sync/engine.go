// ABOUTME: Reconciliation engine orchestrating push and pull-and-merge cycles
// ABOUTME: Owns the conflict policy and the single-cycle serialization guard
package sync

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/harperreed/shopbook/db"
	"github.com/harperreed/shopbook/models"
)

// DefaultSyncInterval is the periodic push trigger cadence.
const DefaultSyncInterval = 5 * time.Minute

// ErrCycleInProgress reports that a sync cycle is already running. Triggers
// are dropped, never queued; the caller simply waits for the next trigger.
var ErrCycleInProgress = errors.New("sync cycle already in progress")

// Remote is the tabular remote store the engine reconciles against. The
// concrete implementation is sheets.Adapter; tests inject fakes.
type Remote interface {
	EnsureReady(ctx context.Context) error
	EnsureSchema(ctx context.Context) error
	AppendRow(ctx context.Context, rec models.Record) error
	ReadRows(ctx context.Context, kind models.Kind) ([]models.Record, error)
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Engine maintains the invariant that no unsynced local write is ever lost
// and remote state eventually reflects all acknowledged local writes. It is
// constructed once at process start and handed to collaborators; there are no
// package-level singletons.
type Engine struct {
	store  *db.Store
	remote Remote
	notify func(Status)

	busy     atomic.Bool
	state    atomic.Int32
	schemaOK atomic.Bool
}

// New creates an engine. notify receives status events on every cycle
// transition and may be nil.
func New(store *db.Store, remote Remote, notify func(Status)) *Engine {
	if notify == nil {
		notify = func(Status) {}
	}
	return &Engine{store: store, remote: remote, notify: notify}
}

// State returns the current cycle phase.
func (e *Engine) State() State {
	return State(e.state.Load())
}

func (e *Engine) setState(s State) {
	e.state.Store(int32(s))
}

// acquire is the single serialization point every trigger routes through.
func (e *Engine) acquire() bool {
	return e.busy.CompareAndSwap(false, true)
}

func (e *Engine) release() {
	e.setState(StateIdle)
	e.busy.Store(false)
}

// Connect runs the full manual-connect cycle: establish auth, set up the
// remote schema, pull-and-merge every kind, then push. Unlike background
// triggers, errors are returned so the caller can prompt the user.
func (e *Engine) Connect(ctx context.Context) error {
	if !e.acquire() {
		return ErrCycleInProgress
	}
	defer e.release()

	e.notify(StatusSyncing)

	e.setState(StateAuthenticating)
	if err := e.remote.EnsureReady(ctx); err != nil {
		e.notify(StatusOffline)
		return err
	}
	if err := e.remote.EnsureSchema(ctx); err != nil {
		e.notify(StatusOffline)
		return fmt.Errorf("schema setup: %w", err)
	}
	e.schemaOK.Store(true)

	e.setState(StatePulling)
	for _, kind := range models.Kinds() {
		if err := e.pullMerge(ctx, kind); err != nil {
			e.notify(StatusOffline)
			return fmt.Errorf("pull %s: %w", kind, err)
		}
	}

	e.setState(StatePushing)
	if failed := e.pushAll(ctx); failed > 0 {
		e.notify(StatusOffline)
		return nil
	}

	e.notify(StatusSynced)
	return nil
}

// TriggerSync runs one push-only cycle. It is the entry point for the
// periodic timer, the offline→online transition, and manual sync. If a cycle
// is already in progress the trigger is dropped. Failures are logged and
// swallowed; affected records stay unsynced for the next trigger.
func (e *Engine) TriggerSync(ctx context.Context) {
	if !e.acquire() {
		return
	}
	defer e.release()

	e.notify(StatusSyncing)

	e.setState(StateAuthenticating)
	if err := e.remote.EnsureReady(ctx); err != nil {
		log.Printf("sync: not ready: %v", err)
		e.notify(StatusOffline)
		return
	}
	if !e.schemaOK.Load() {
		if err := e.remote.EnsureSchema(ctx); err != nil {
			log.Printf("sync: schema setup: %v", err)
			e.notify(StatusOffline)
			return
		}
		e.schemaOK.Store(true)
	}

	e.setState(StatePushing)
	if failed := e.pushAll(ctx); failed > 0 {
		e.notify(StatusOffline)
		return
	}

	e.notify(StatusSynced)
}

// PullMerge runs an on-demand pull-and-merge for one kind, for collaborators
// refreshing a view. It routes through the same serialization point as full
// cycles; a pull is never safe concurrently with a push for the same kind.
func (e *Engine) PullMerge(ctx context.Context, kind models.Kind) error {
	if !e.acquire() {
		return ErrCycleInProgress
	}
	defer e.release()

	e.setState(StateAuthenticating)
	if err := e.remote.EnsureReady(ctx); err != nil {
		return err
	}

	e.setState(StatePulling)
	return e.pullMerge(ctx, kind)
}

// pushAll pushes unsynced records kind by kind, returning the number of
// records that failed. Caller holds the cycle guard.
func (e *Engine) pushAll(ctx context.Context) int {
	failed := 0
	for _, kind := range models.Kinds() {
		failed += e.pushKind(ctx, kind)
	}
	return failed
}

// pushKind pushes one kind's unsynced records one at a time, in the order the
// store returns them. Each record is marked synced before the next push
// starts, so no two pushes for the same record ever overlap. One record's
// failure never blocks the rest.
func (e *Engine) pushKind(ctx context.Context, kind models.Kind) int {
	records, err := e.store.ListUnsynced(kind)
	if err != nil {
		log.Printf("sync: list unsynced %s: %v", kind, err)
		return 1
	}

	failed := 0
	for _, rec := range records {
		if err := e.remote.AppendRow(ctx, rec); err != nil {
			log.Printf("sync: push %s %s: %v", kind, rec.RecordID(), err)
			failed++
			continue
		}
		if err := e.store.MarkSynced(kind, rec.RecordID()); err != nil {
			// The row reached the remote; the record will re-append on the
			// next cycle, which the at-least-once contract accepts
			log.Printf("sync: mark synced %s %s: %v", kind, rec.RecordID(), err)
			failed++
		}
	}
	return failed
}

// pullMerge merges remote rows into the local store for one kind. Remote
// rows come back marked synced; pending local records are re-inserted
// unchanged, so an unsynced write is never lost to a merge. An empty remote
// sheet skips the merge entirely, which keeps a genuinely new sheet from
// wiping local-only data. Caller holds the cycle guard.
func (e *Engine) pullMerge(ctx context.Context, kind models.Kind) error {
	pending, err := e.store.ListUnsynced(kind)
	if err != nil {
		return err
	}

	remote, err := e.remote.ReadRows(ctx, kind)
	if err != nil {
		return err
	}
	if len(remote) == 0 {
		return nil
	}

	now := time.Now().UnixMilli()
	merged := make([]models.Record, 0, len(remote)+len(pending))
	for _, rec := range remote {
		m := rec.Meta()
		m.Synced = true
		if m.Timestamp == 0 {
			m.Timestamp = now
		}
		merged = append(merged, rec)
	}
	// Pending records go last: if a pending record ever shares an id with a
	// remote row, the local version wins the slot
	merged = append(merged, pending...)

	return e.store.ReplaceAll(kind, merged)
}

// RunPeriodic pushes on a fixed timer until ctx is cancelled. Ticks that land
// while a cycle is running are dropped by the cycle guard.
func (e *Engine) RunPeriodic(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.TriggerSync(ctx)
		}
	}
}
