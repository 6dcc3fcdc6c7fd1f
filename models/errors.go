// ABOUTME: Error taxonomy shared across the store, adapter, and engine
// ABOUTME: Sentinel errors matched with errors.Is at policy decision points
package models

import "errors"

var (
	// ErrStorageUnavailable means the local store failed to open. Fatal for
	// the session; surfaced to the collaborator immediately.
	ErrStorageUnavailable = errors.New("local storage unavailable")

	// ErrAuthRequired means the remote store needs interactive consent. The
	// adapter never prompts on its own; the caller surfaces an action prompt.
	ErrAuthRequired = errors.New("google authorization required")

	// ErrRemoteUnavailable covers any network or API failure during a remote
	// call. The adapter does not retry; the reconciliation engine leaves the
	// affected records unsynced for the next cycle.
	ErrRemoteUnavailable = errors.New("remote spreadsheet unavailable")
)
