// ABOUTME: Sync status CLI command
// ABOUTME: Shows per-kind pending counts with a colored indicator
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/shopbook/db"
	"github.com/harperreed/shopbook/models"
)

var (
	syncedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)
)

// StatusCommand shows pending record counts per kind
func StatusCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	_ = fs.Parse(args)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tTOTAL\tPENDING")
	fmt.Fprintln(w, "----\t-----\t-------")

	totalPending := 0
	for _, kind := range models.Kinds() {
		all, err := store.ListAll(kind)
		if err != nil {
			return fmt.Errorf("failed to list %s: %w", kind, err)
		}
		pending, err := store.ListUnsynced(kind)
		if err != nil {
			return fmt.Errorf("failed to list unsynced %s: %w", kind, err)
		}
		totalPending += len(pending)

		fmt.Fprintf(w, "%s\t%d\t%d\n", kind, len(all), len(pending))
	}
	w.Flush()

	fmt.Println()
	if totalPending == 0 {
		fmt.Println(syncedStyle.Render("● synced") + ": all records are on the remote")
	} else {
		fmt.Println(pendingStyle.Render("● pending") + fmt.Sprintf(": %d record(s) waiting for the next sync", totalPending))
	}
	return nil
}
