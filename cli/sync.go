// ABOUTME: One-shot sync CLI command
// ABOUTME: Pushes pending records, optionally pulling remote data first
package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/harperreed/shopbook/db"
	"github.com/harperreed/shopbook/sync"
)

// SyncCommand runs a single sync cycle
func SyncCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	pull := fs.Bool("pull", false, "Pull and merge remote data before pushing")
	_ = fs.Parse(args)

	ctx := context.Background()

	var final sync.Status
	engine := newEngine(store, func(s sync.Status) { final = s })

	if *pull {
		if err := engine.Connect(ctx); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
	} else {
		engine.TriggerSync(ctx)
	}

	switch final {
	case sync.StatusSynced:
		fmt.Println("✓ All records synced")
	default:
		fmt.Println("✗ Sync incomplete; records will retry on the next cycle")
	}
	return nil
}
