// ABOUTME: Local record id generation
// ABOUTME: ULIDs keep ids time-ordered while avoiding merge-time collisions
package models

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
)

// NewID generates the id for a locally-created record. ULIDs sort by creation
// time, so sync-queue ordering stays stable, and the entropy component keeps
// locally-minted ids from ever colliding with remote-assigned ones during a
// merge.
func NewID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
