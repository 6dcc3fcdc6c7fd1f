// ABOUTME: Generic per-kind store operations for the sync engine and CLI
// ABOUTME: Put, Delete, ListAll, ListUnsynced, MarkSynced, and ReplaceAll
package db

import (
	"fmt"
	"time"

	"github.com/harperreed/shopbook/models"
)

// Put inserts or overwrites rec by id. Every put stamps the record unsynced
// with a fresh timestamp; records only become synced through MarkSynced after
// a successful remote append. A missing id is assigned. Returns the record id.
func (s *Store) Put(rec models.Record) (string, error) {
	if !rec.Kind().Valid() {
		return "", fmt.Errorf("unknown kind %q", rec.Kind())
	}
	if rec.RecordID() == "" {
		rec.SetRecordID(models.NewID())
	}

	m := rec.Meta()
	m.Synced = false
	m.Timestamp = time.Now().UnixMilli()

	if err := insertRecord(s.db, rec); err != nil {
		return "", fmt.Errorf("put %s: %w", rec.Kind(), err)
	}
	return rec.RecordID(), nil
}

// Delete removes the record. Deleting an absent id is not an error. Deletes
// are local-only; they are never propagated to the remote store.
func (s *Store) Delete(kind models.Kind, id string) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown kind %q", kind)
	}
	_, err := s.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", kind), id)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", kind, id, err)
	}
	return nil
}

// ListAll returns every record of the kind. Order is unspecified; callers
// sort.
func (s *Store) ListAll(kind models.Kind) ([]models.Record, error) {
	return s.queryRecords(kind, false)
}

// ListUnsynced returns the records the remote store has not acknowledged yet.
func (s *Store) ListUnsynced(kind models.Kind) ([]models.Record, error) {
	return s.queryRecords(kind, true)
}

// MarkSynced flips the synced flag on the stored record. Idempotent, and a
// safe no-op if the record was deleted since it was listed.
func (s *Store) MarkSynced(kind models.Kind, id string) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown kind %q", kind)
	}
	_, err := s.db.Exec(fmt.Sprintf("UPDATE %s SET synced = 1 WHERE id = ?", kind), id)
	if err != nil {
		return fmt.Errorf("mark synced %s %s: %w", kind, id, err)
	}
	return nil
}

// ReplaceAll atomically clears the kind's collection and repopulates it with
// records, preserving each record's sync metadata as given. Used only for
// remote-sourced resets during pull-and-merge. Readers never observe the
// half-replaced state, and a failure rolls back to the previous contents.
func (s *Store) ReplaceAll(kind models.Kind, records []models.Record) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown kind %q", kind)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("replace %s: %w", kind, err)
	}
	defer func() {
		_ = tx.Rollback() // Safe even after commit
	}()

	if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", kind)); err != nil {
		return fmt.Errorf("replace %s: clear: %w", kind, err)
	}

	for _, rec := range records {
		if rec.Kind() != kind {
			return fmt.Errorf("replace %s: record %s has kind %s", kind, rec.RecordID(), rec.Kind())
		}
		if rec.RecordID() == "" {
			rec.SetRecordID(models.NewID())
		}
		if err := insertRecord(tx, rec); err != nil {
			return fmt.Errorf("replace %s: insert %s: %w", kind, rec.RecordID(), err)
		}
	}

	return tx.Commit()
}
