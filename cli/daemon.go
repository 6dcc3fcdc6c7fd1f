// ABOUTME: Background sync daemon CLI command
// ABOUTME: Runs the periodic push loop until interrupted
package cli

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/harperreed/shopbook/db"
	"github.com/harperreed/shopbook/sync"
)

// DaemonCommand runs the periodic sync loop in the foreground
func DaemonCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("daemon", flag.ExitOnError)
	interval := fs.Duration("interval", sync.DefaultSyncInterval, "Time between sync cycles")
	_ = fs.Parse(args)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine := newEngine(store, func(s sync.Status) {
		log.Printf("sync: status %s", s)
	})
	monitor := sync.NewMonitor(engine, func(online bool) {
		if online {
			log.Println("sync: online")
		} else {
			log.Println("sync: offline")
		}
	})

	fmt.Printf("Sync daemon running (interval %s). Ctrl-C to stop.\n", *interval)

	// The daemon starts in the online state; the resulting edge fires the
	// initial sync before the first tick
	monitor.SetOnline(ctx, true)
	engine.RunPeriodic(ctx, *interval)

	fmt.Println("\nSync daemon stopped")
	return nil
}
